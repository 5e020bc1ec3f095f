// Package complaintsvc - Test các điều kiện lọc post-fetch.
package complaintsvc

import (
	"testing"

	complaintdto "complaint_hub/internal/api/complaint/dto"
	complaintmodels "complaint_hub/internal/api/complaint/models"
)

func TestMatchCity_SuffixInsensitive(t *testing.T) {
	cases := []struct {
		record, filter string
		want           bool
	}{
		{"台北市", "台北", true},
		{"台北", "台北市", true},
		{"台北市", "台北市", true},
		{"新竹縣", "新竹", true},
		{"台北市", "台中市", false},
		{"", "台北", false},
	}
	for _, c := range cases {
		if got := matchCity(c.record, c.filter); got != c.want {
			t.Errorf("matchCity(%q, %q) = %v, muốn %v", c.record, c.filter, got, c.want)
		}
	}
}

func TestMatchMonth_Single(t *testing.T) {
	if !matchMonth("20240715", "7") {
		t.Error("tháng 7 phải khớp filter \"7\"")
	}
	if !matchMonth("20230715", "07") {
		t.Error("so khớp tháng không phân biệt năm và chấp nhận số 0 đầu")
	}
	if matchMonth("20240815", "7") {
		t.Error("tháng 8 không được khớp filter \"7\"")
	}
	if matchMonth("", "7") {
		t.Error("reactionTime rỗng không được khớp")
	}
	if matchMonth("20240715", "13") {
		t.Error("filter tháng 13 không hợp lệ, không được khớp")
	}
}

func TestMatchMonth_Range(t *testing.T) {
	if !matchMonth("20240515", "3~8") {
		t.Error("tháng 5 phải nằm trong khoảng 3~8")
	}
	if !matchMonth("20240315", "3~8") {
		t.Error("khoảng bao cả đầu dưới")
	}
	if !matchMonth("20240815", "3~8") {
		t.Error("khoảng bao cả đầu trên")
	}
	if matchMonth("20240915", "3~8") {
		t.Error("tháng 9 không được khớp khoảng 3~8")
	}
	// Khoảng ngược không khớp record nào
	if matchMonth("20240515", "8~3") {
		t.Error("khoảng ngược 8~3 không được khớp record nào")
	}
}

func TestApplyPostFetchFilters(t *testing.T) {
	records := []complaintmodels.Complaint{
		{ComplaintNumber: "C-001", City: "台北市", ProductItem: "洋芋片 Original", ReactionTime: "20240715", PurchaseChannel: "7-11信義店"},
		{ComplaintNumber: "C-002", City: "台中市", ProductItem: "餅乾", ReactionTime: "20240815", PurchaseChannel: "蝦皮購物"},
		{ComplaintNumber: "C-003", City: "台北", ProductItem: "洋芋片", ReactionTime: "20231215", PurchaseChannel: "自家雜貨店"},
	}

	// City: khớp cả dạng đầy đủ lẫn dạng ngắn
	got := ApplyPostFetchFilters(records, &complaintdto.ComplaintFilter{City: "台北"})
	if len(got) != 2 {
		t.Errorf("filter city 台北 phải khớp 2 bản ghi, got %d", len(got))
	}

	// Product: contains không phân biệt hoa thường
	got = ApplyPostFetchFilters(records, &complaintdto.ComplaintFilter{Product: "original"})
	if len(got) != 1 || got[0].ComplaintNumber != "C-001" {
		t.Errorf("filter product 'original' phải khớp đúng C-001, got %v", got)
	}

	// Month: không phân biệt năm
	got = ApplyPostFetchFilters(records, &complaintdto.ComplaintFilter{Month: "12"})
	if len(got) != 1 || got[0].ComplaintNumber != "C-003" {
		t.Errorf("filter month 12 phải khớp đúng C-003, got %v", got)
	}

	// Channel: so khớp sau khi chuẩn hóa
	got = ApplyPostFetchFilters(records, &complaintdto.ComplaintFilter{Channel: ChannelOnlinePlatform})
	if len(got) != 1 || got[0].ComplaintNumber != "C-002" {
		t.Errorf("filter channel 網購平台 phải khớp đúng C-002, got %v", got)
	}

	// Kết hợp nhiều điều kiện (AND)
	got = ApplyPostFetchFilters(records, &complaintdto.ComplaintFilter{City: "台北", Month: "7"})
	if len(got) != 1 || got[0].ComplaintNumber != "C-001" {
		t.Errorf("kết hợp city+month phải khớp đúng C-001, got %v", got)
	}

	// Có yearMonth thì month bị bỏ qua (yearMonth đã lọc ở tầng store)
	got = ApplyPostFetchFilters(records, &complaintdto.ComplaintFilter{YearMonth: "2024-07", Month: "12"})
	if len(got) != len(records) {
		t.Errorf("month phải bị bỏ qua khi có yearMonth, got %d bản ghi", len(got))
	}

	// Filter nil trả về nguyên tập
	got = ApplyPostFetchFilters(records, nil)
	if len(got) != len(records) {
		t.Errorf("filter nil phải giữ nguyên tập, got %d", len(got))
	}
}
