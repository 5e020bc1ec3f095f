// Package complaintsvc - Test engine thống kê tổng hợp.
package complaintsvc

import (
	"testing"
	"time"

	complaintmodels "complaint_hub/internal/api/complaint/models"
)

func TestGroupCount_SortAndFallback(t *testing.T) {
	records := []complaintmodels.Complaint{
		{City: "台中"},
		{City: "台北"},
		{City: "台北"},
		{City: ""},
	}
	groups := groupCount(records, complaintmodels.SentinelUncategorized, func(r complaintmodels.Complaint) string { return r.City })

	if len(groups) != 3 {
		t.Fatalf("phải có 3 nhóm, got %d", len(groups))
	}
	if groups[0].Key != "台北" || groups[0].Count != 2 {
		t.Errorf("nhóm lớn nhất phải là 台北 x2, got %v", groups[0])
	}
	// Count bằng nhau: nhóm xuất hiện trước đứng trước
	if groups[1].Key != "台中" {
		t.Errorf("tie-break phải theo thứ tự xuất hiện, got %v", groups[1])
	}
	if groups[2].Key != complaintmodels.SentinelUncategorized {
		t.Errorf("key rỗng phải về %q, got %q", complaintmodels.SentinelUncategorized, groups[2].Key)
	}
}

func TestBuildPareto_CumulativeEndsAt100(t *testing.T) {
	entries := []groupEntry{
		{Key: "A", Count: 5},
		{Key: "B", Count: 3},
		{Key: "C", Count: 1},
	}
	pareto := buildPareto(entries, 10)

	if len(pareto) != 3 {
		t.Fatalf("phải giữ cả 3 mục, got %d", len(pareto))
	}
	// 5/9 = 55.56, (5+3)/9 = 88.89, 9/9 = 100.00
	if pareto[0].CumulativePercentage != 55.56 {
		t.Errorf("mục 1 = %v, muốn 55.56", pareto[0].CumulativePercentage)
	}
	if pareto[1].CumulativePercentage != 88.89 {
		t.Errorf("mục 2 = %v, muốn 88.89", pareto[1].CumulativePercentage)
	}
	if pareto[2].CumulativePercentage != 100.00 {
		t.Errorf("mục cuối phải là 100.00, got %v", pareto[2].CumulativePercentage)
	}
	// Đơn điệu không giảm
	for i := 1; i < len(pareto); i++ {
		if pareto[i].CumulativePercentage < pareto[i-1].CumulativePercentage {
			t.Errorf("phần trăm tích lũy phải đơn điệu không giảm: %v", pareto)
		}
	}
}

func TestBuildPareto_LimitRecomputesTotal(t *testing.T) {
	entries := []groupEntry{
		{Key: "A", Count: 4},
		{Key: "B", Count: 3},
		{Key: "C", Count: 2},
		{Key: "D", Count: 1},
	}
	pareto := buildPareto(entries, 2)

	if len(pareto) != 2 {
		t.Fatalf("limit 2 phải giữ 2 mục, got %d", len(pareto))
	}
	// Tổng tính trên các mục được giữ (4+3=7): mục cuối vẫn 100.00
	if pareto[1].CumulativePercentage != 100.00 {
		t.Errorf("mục cuối sau cắt limit vẫn phải là 100.00, got %v", pareto[1].CumulativePercentage)
	}
}

func TestBuildPareto_Empty(t *testing.T) {
	if got := buildPareto(nil, 10); len(got) != 0 {
		t.Errorf("không có nhóm thì Pareto rỗng, got %v", got)
	}
}

func TestShelfLifeBuckets(t *testing.T) {
	records := []complaintmodels.Complaint{
		// 2024-07-15 → 2024-10-15 là 92 ngày: rơi vào 91-180天
		{ReactionTime: "20240715", ExpiryDate: "20241015"},
		// Đã quá hạn tại thời điểm phản ánh
		{ReactionTime: "20240715", ExpiryDate: "20240701"},
		// Đúng 0 ngày: biên dưới của 0-90天
		{ReactionTime: "20240715", ExpiryDate: "20240715"},
		// Ngày không parse được: loại khỏi mẫu
		{ReactionTime: "20240715", ExpiryDate: ""},
		{ReactionTime: "", ExpiryDate: "20241015"},
	}

	stats := buildShelfLifeStats(records)

	if stats.Total != 3 {
		t.Fatalf("chỉ 3 bản ghi có đủ hai ngày hợp lệ, got %d", stats.Total)
	}
	want := map[string]int{
		"已過期":    1,
		"0-90天":   1,
		"91-180天": 1,
	}
	for _, bucket := range stats.Buckets {
		if bucket.Count != want[bucket.Range] {
			t.Errorf("bucket %q = %d, muốn %d", bucket.Range, bucket.Count, want[bucket.Range])
		}
	}
	if len(stats.Buckets) != 5 {
		t.Errorf("phải trả đủ 5 bucket kể cả bucket trống, got %d", len(stats.Buckets))
	}
}

func TestBuildAvgResolutionDays(t *testing.T) {
	// Phản ánh 2024-07-15, cập nhật lần cuối 2024-07-25 → 10 ngày
	updated := time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC).UnixMilli()
	records := []complaintmodels.Complaint{
		{ReactionTime: "20240715", UpdatedAt: updated},
		// Cập nhật trước lúc phản ánh (âm): loại
		{ReactionTime: "20240801", UpdatedAt: updated},
		// Thiếu timestamp: loại
		{ReactionTime: "20240715"},
	}

	avg := buildAvgResolutionDays(records)
	if avg == nil {
		t.Fatal("có bản ghi hợp lệ thì KPI không được nil")
	}
	if *avg != 10.0 {
		t.Errorf("avg = %v, muốn 10.0", *avg)
	}
}

func TestBuildAvgResolutionDays_NilWhenNoValidRecords(t *testing.T) {
	records := []complaintmodels.Complaint{
		{ReactionTime: "20240715"},
		{ReactionTime: ""},
	}
	if got := buildAvgResolutionDays(records); got != nil {
		t.Errorf("không có bản ghi hợp lệ thì KPI phải nil (phân biệt với 0), got %v", *got)
	}
}

func TestBuildKeywordStats(t *testing.T) {
	records := []complaintmodels.Complaint{
		{CauseAnalysis: "設備異常，溫度過高"},
		{CauseAnalysis: "設備異常 (人為疏失)"},
		{CauseAnalysis: "的"},
	}

	stats := buildKeywordStats(records)
	if len(stats) == 0 {
		t.Fatal("phải có keyword")
	}
	if stats[0].Keyword != "設備異常" || stats[0].Count != 2 {
		t.Errorf("keyword đứng đầu phải là 設備異常 x2, got %v", stats[0])
	}
	for _, s := range stats {
		if len([]rune(s.Keyword)) < 2 {
			t.Errorf("token dưới 2 ký tự phải bị loại: %q", s.Keyword)
		}
		if _, stop := causeStopWords[s.Keyword]; stop {
			t.Errorf("stop word không được xuất hiện: %q", s.Keyword)
		}
	}
}

func TestBuildMonthlyStats_Last12WithData(t *testing.T) {
	var records []complaintmodels.Complaint
	// 14 tháng liên tiếp từ 2023-01
	for m := 0; m < 14; m++ {
		date := time.Date(2023, time.Month(1+m), 10, 0, 0, 0, 0, time.UTC)
		records = append(records, complaintmodels.Complaint{ReactionTime: date.Format("20060102")})
	}

	stats := buildMonthlyStats(records)
	if len(stats) != 12 {
		t.Fatalf("chỉ giữ 12 tháng gần nhất có dữ liệu, got %d", len(stats))
	}
	if stats[0].Month != "2023-03" {
		t.Errorf("tháng đầu phải là 2023-03 (2 tháng cũ nhất bị cắt), got %q", stats[0].Month)
	}
	if stats[len(stats)-1].Month != "2024-02" {
		t.Errorf("tháng cuối phải là 2024-02, got %q", stats[len(stats)-1].Month)
	}
	for i := 1; i < len(stats); i++ {
		if stats[i].Month <= stats[i-1].Month {
			t.Errorf("tháng phải sắp tăng dần: %v", stats)
		}
	}
}

func TestBuildComplaintStats_CountsConsistent(t *testing.T) {
	records := []complaintmodels.Complaint{
		{ComplaintNumber: "C-001", City: "台北", ProductItem: "洋芋片", PurchaseChannel: "7-11", ReactionTime: "20240715", ExpiryDate: "20241015"},
		{ComplaintNumber: "C-002", City: "台北", ProductItem: "餅乾", PurchaseChannel: "蝦皮", ReactionTime: "20240815", ExpiryDate: "20240901"},
		{ComplaintNumber: "C-003", City: "", ProductItem: "洋芋片", PurchaseChannel: "", ReactionTime: "20240915", ExpiryDate: "20241001"},
	}

	stats := BuildComplaintStats(records)

	if stats.Total != 3 {
		t.Fatalf("total = %d, muốn 3", stats.Total)
	}

	sum := 0
	for _, s := range stats.CityStats {
		sum += s.Count
	}
	if sum != stats.Total {
		t.Errorf("tổng count theo city = %d phải bằng total %d", sum, stats.Total)
	}

	sum = 0
	for _, s := range stats.ChannelStats {
		sum += s.Count
	}
	if sum != stats.Total {
		t.Errorf("tổng count theo channel = %d phải bằng total %d", sum, stats.Total)
	}

	// Channel được chuẩn hóa trước khi group
	for _, s := range stats.ChannelStats {
		if s.Channel == "蝦皮" {
			t.Error("channel phải được chuẩn hóa thành 網購平台 trước khi group")
		}
	}

	// City rỗng về 未分類
	found := false
	for _, s := range stats.CityStats {
		if s.City == complaintmodels.SentinelUncategorized {
			found = true
		}
	}
	if !found {
		t.Error("city rỗng phải được group vào 未分類")
	}
}

func TestBuildComplaintStats_TopNTruncation(t *testing.T) {
	var records []complaintmodels.Complaint
	// 12 sản phẩm, 7 nguyên nhân, 12 thành phố khác nhau
	for i := 0; i < 12; i++ {
		records = append(records, complaintmodels.Complaint{
			ProductItem:   string(rune('A' + i)),
			CauseAnalysis: string(rune('a' + i%7)),
			City:          string(rune('甲' + i)),
		})
	}

	stats := BuildComplaintStats(records)

	if len(stats.ProductStats) != 10 {
		t.Errorf("phân bố product phải cắt top 10, got %d", len(stats.ProductStats))
	}
	if len(stats.CauseStats) != 5 {
		t.Errorf("phân bố cause phải cắt top 5, got %d", len(stats.CauseStats))
	}
	if len(stats.CityStats) != 12 {
		t.Errorf("phân bố city không bị cắt, got %d", len(stats.CityStats))
	}
	if len(stats.ProductPareto) != 10 || len(stats.CausePareto) != 5 {
		t.Errorf("Pareto chạy trên tập đã cắt: product %d, cause %d", len(stats.ProductPareto), len(stats.CausePareto))
	}
}

func TestBuildComplaintStats_EmptyInput(t *testing.T) {
	stats := BuildComplaintStats(nil)

	if stats.Total != 0 {
		t.Errorf("total = %d, muốn 0", stats.Total)
	}
	if stats.AvgResolutionDays != nil {
		t.Error("KPI trên tập rỗng phải nil")
	}
	if len(stats.CityStats) != 0 || len(stats.ProductPareto) != 0 {
		t.Error("tập rỗng phải cho các phân bố rỗng")
	}
}
