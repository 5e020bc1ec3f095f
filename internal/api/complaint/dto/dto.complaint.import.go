package dto

// ImportReport kết quả một lần import workbook.
// Added/Skipped đếm theo bản ghi; Errors chỉ chứa lỗi vận hành (store không
// khả dụng, batch fail) — dòng summary/subtotal bị loại im lặng, không báo lỗi.
type ImportReport struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}
