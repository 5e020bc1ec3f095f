// Package complaintsvc - Test pipeline import workbook.
package complaintsvc

import (
	"bytes"
	"testing"

	complaintmodels "complaint_hub/internal/api/complaint/models"

	"github.com/xuri/excelize/v2"
)

func TestBuildHeaderIndex_Aliases(t *testing.T) {
	header := []string{"客訴編號", "產品品項", "消費者反映點", "已存放時間（月）", "反映時間", "ghi chú"}
	index := buildHeaderIndex(header)

	want := map[int]string{
		0: "complaintNumber",
		1: "productItem",
		2: "consumerReactionPoint", // biến thể 反映
		3: "storagePeriodMonths",   // biến thể ngoặc full-width
		4: "reactionTime",
	}
	for col, field := range want {
		if index[col] != field {
			t.Errorf("cột %d phải map về %q, got %q", col, field, index[col])
		}
	}
	if _, ok := index[5]; ok {
		t.Error("cột không nhận diện được không được vào index")
	}
}

func TestIsValidComplaintNumber(t *testing.T) {
	for _, summary := range []string{"合計", "小計：", "總計:", "Subtotal", "Total", ""} {
		if isValidComplaintNumber(summary) {
			t.Errorf("%q không phải số khiếu nại hợp lệ", summary)
		}
	}
	if !isValidComplaintNumber("C-001") {
		t.Error("C-001 phải là số khiếu nại hợp lệ")
	}
}

func TestRowToComplaint(t *testing.T) {
	headerIndex := map[int]string{
		0: "complaintNumber",
		1: "productItem",
		2: "expiryDate",
		3: "reactionTime",
		4: "storagePeriodMonths",
	}

	record, ok := rowToComplaint([]string{"C-001", "洋芋片", "2024/10/15", "", "6"}, headerIndex)
	if !ok {
		t.Fatal("dòng có số khiếu nại phải dựng được bản ghi")
	}
	if record.ExpiryDate != "20241015" {
		t.Errorf("expiryDate = %q, muốn 20241015", record.ExpiryDate)
	}
	if record.ReactionTime != "20241015" {
		t.Errorf("reactionTime rỗng phải rơi về expiryDate, got %q", record.ReactionTime)
	}
	if record.StoragePeriodMonths != 6 {
		t.Errorf("storagePeriodMonths = %d, muốn 6", record.StoragePeriodMonths)
	}

	// Dòng ngắn hơn header không panic
	if _, ok := rowToComplaint([]string{"C-002"}, headerIndex); !ok {
		t.Error("dòng chỉ có số khiếu nại vẫn phải dựng được bản ghi")
	}

	// Dòng thiếu số khiếu nại bị loại
	if _, ok := rowToComplaint([]string{"", "洋芋片"}, headerIndex); ok {
		t.Error("dòng thiếu số khiếu nại phải bị loại")
	}

	// Nhãn tổng kết ở cột số khiếu nại thì loại cả dòng
	if _, ok := rowToComplaint([]string{"合計", "", "", "", "120"}, headerIndex); ok {
		t.Error("dòng tổng kết phải bị loại")
	}

	// Nhãn tổng kết ở cột khác không làm mất dòng dữ liệu hợp lệ
	record, ok = rowToComplaint([]string{"C-100", "Total", "2024/10/15", "", ""}, headerIndex)
	if !ok {
		t.Fatal("cell khác mang giá trị Total không được biến dòng dữ liệu thành dòng tổng kết")
	}
	if record.ProductItem != "Total" {
		t.Errorf("productItem = %q, muốn giữ nguyên Total", record.ProductItem)
	}
}

func TestDedupeFirstWins(t *testing.T) {
	records := []complaintmodels.Complaint{
		{ComplaintNumber: "C-001", ProductItem: "bản đầu"},
		{ComplaintNumber: "C-002"},
		{ComplaintNumber: "C-001", ProductItem: "bản sau"},
	}
	out := dedupeFirstWins(records)

	if len(out) != 2 {
		t.Fatalf("còn lại %d bản ghi, muốn 2", len(out))
	}
	if out[0].ProductItem != "bản đầu" {
		t.Error("trùng số khiếu nại thì bản xuất hiện trước phải thắng")
	}
}

// buildTestWorkbook dựng một workbook xlsx in-memory cho test parse
func buildTestWorkbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("tạo cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("ghi dòng %d: %v", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("ghi workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseWorkbook(t *testing.T) {
	reader := buildTestWorkbook(t, [][]interface{}{
		{"客訴編號", "產品品項", "有效日期", "反應時間", "購買通路"},
		{"C-001", "洋芋片", "2024/10/15", "2024/07/15", "7-11信義店"},
		{"C-002", "餅乾", "2024/09/01", "", "蝦皮購物"},
		{"合計", "", "", "", ""},
		{"", "dòng thiếu số khiếu nại", "", "", ""},
	})

	records, err := parseWorkbook(reader)
	if err != nil {
		t.Fatalf("parseWorkbook lỗi: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("phải parse được 2 bản ghi, got %d", len(records))
	}
	if records[0].ComplaintNumber != "C-001" || records[0].ReactionTime != "20240715" {
		t.Errorf("bản ghi 1 sai: %+v", records[0])
	}
	// reactionTime rỗng rơi về expiryDate
	if records[1].ReactionTime != "20240901" {
		t.Errorf("reactionTime bản ghi 2 phải rơi về expiryDate, got %q", records[1].ReactionTime)
	}
}

func TestParseWorkbook_SummaryOnlyInKeyColumn(t *testing.T) {
	// Dòng dữ liệu có cell khác mang giá trị Total vẫn phải được import
	reader := buildTestWorkbook(t, [][]interface{}{
		{"客訴編號", "產品品項", "產品狀態"},
		{"C-100", "洋芋片", "Total"},
	})

	records, err := parseWorkbook(reader)
	if err != nil {
		t.Fatalf("parseWorkbook lỗi: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("phải parse được 1 bản ghi, got %d", len(records))
	}
	if records[0].ComplaintNumber != "C-100" || records[0].ProductStatus != "Total" {
		t.Errorf("bản ghi sai: %+v", records[0])
	}
}

func TestParseWorkbook_InvalidFile(t *testing.T) {
	if _, err := parseWorkbook(bytes.NewReader([]byte("không phải xlsx"))); err == nil {
		t.Error("file không hợp lệ phải trả về lỗi")
	}
}

func TestParseWorkbook_SheetWithoutKeyColumn(t *testing.T) {
	// Sheet kiểu pivot: có cột nhận diện được nhưng không có cột số
	// khiếu nại thì bỏ qua cả sheet
	reader := buildTestWorkbook(t, [][]interface{}{
		{"產品品項", "購買通路"},
		{"洋芋片", "7-11"},
		{"合計", ""},
	})

	records, err := parseWorkbook(reader)
	if err != nil {
		t.Fatalf("parseWorkbook lỗi: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("sheet thiếu cột số khiếu nại phải cho 0 bản ghi, got %d", len(records))
	}
}

func TestParseWorkbook_NoRecognizedColumns(t *testing.T) {
	reader := buildTestWorkbook(t, [][]interface{}{
		{"cột A", "cột B"},
		{"1", "2"},
	})

	records, err := parseWorkbook(reader)
	if err != nil {
		t.Fatalf("parseWorkbook lỗi: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("sheet không có cột nhận diện được phải cho 0 bản ghi, got %d", len(records))
	}
}
