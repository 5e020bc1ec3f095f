package complaintsvc

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	complaintdto "complaint_hub/internal/api/complaint/dto"
	complaintmodels "complaint_hub/internal/api/complaint/models"
	"complaint_hub/internal/common"
	"complaint_hub/internal/global"
	"complaint_hub/internal/logger"

	"github.com/xuri/excelize/v2"
)

// headerAliases map tiêu đề cột trong file Excel về field nội bộ.
// Một field có thể có nhiều alias vì các phòng ban đặt tên cột khác nhau
// (kể cả biến thể dấu ngoặc full-width và lỗi chính tả 反應/反映).
var headerAliases = map[string][]string{
	"complaintNumber":       {"客訴編號"},
	"productItem":           {"產品品項"},
	"manufacturingMachine":  {"製造機台"},
	"expiryDate":            {"有效日期"},
	"consumerReactionPoint": {"消費者反應點", "消費者反映點"},
	"reactionTime":          {"反應時間", "反映時間"},
	"productStatus":         {"產品狀態"},
	"storagePeriodMonths":   {"已存放時間 (月)", "已存放時間(月)", "已存放時間（月）"},
	"departmentReply":       {"相關單位回覆"},
	"causeAnalysis":         {"原因分析"},
	"distributor":           {"經銷商"},
	"regionAddress":         {"區域縣市"},
	"city":                  {"縣市"},
	"consumer":              {"消費者"},
	"purchaseChannel":       {"購買通路"},
}

// summaryValues giá trị cột số khiếu nại đánh dấu dòng tổng kết do người
// dùng chèn vào cuối bảng — các dòng này không phải bản ghi và bị loại
// im lặng. Chỉ xét ở cột số khiếu nại: cell khác mang giá trị này (ví dụ
// trạng thái "Total") không biến dòng dữ liệu hợp lệ thành dòng tổng kết.
var summaryValues = map[string]struct{}{
	"合計": {}, "小計": {}, "總計": {},
	"合計:": {}, "小計:": {}, "總計:": {},
	"合計：": {}, "小計：": {}, "總計：": {},
	"Subtotal": {}, "Total": {},
}

// buildHeaderIndex map chỉ số cột → field nội bộ từ dòng tiêu đề
func buildHeaderIndex(headerRow []string) map[int]string {
	index := make(map[int]string)
	for col, cell := range headerRow {
		title := strings.TrimSpace(cell)
		if title == "" {
			continue
		}
		for field, aliases := range headerAliases {
			for _, alias := range aliases {
				if title == alias {
					index[col] = field
				}
			}
		}
	}
	return index
}

// isValidComplaintNumber số khiếu nại hợp lệ: không rỗng và không phải
// nhãn tổng kết
func isValidComplaintNumber(number string) bool {
	if number == "" {
		return false
	}
	_, summary := summaryValues[number]
	return !summary
}

// rowToComplaint dựng bản ghi từ một dòng dữ liệu theo header index.
// Trả về false khi dòng không có số khiếu nại hợp lệ (dòng trống,
// ghi chú hoặc dòng tổng kết).
func rowToComplaint(row []string, headerIndex map[int]string) (complaintmodels.Complaint, bool) {
	fields := make(map[string]string, len(headerIndex))
	for col, field := range headerIndex {
		if col < len(row) {
			fields[field] = strings.TrimSpace(row[col])
		}
	}

	if !isValidComplaintNumber(fields["complaintNumber"]) {
		return complaintmodels.Complaint{}, false
	}

	months, _ := strconv.Atoi(fields["storagePeriodMonths"])

	record := complaintmodels.Complaint{
		ComplaintNumber:       fields["complaintNumber"],
		ProductItem:           fields["productItem"],
		ManufacturingMachine:  fields["manufacturingMachine"],
		ExpiryDate:            CoerceDateString(fields["expiryDate"]),
		ConsumerReactionPoint: fields["consumerReactionPoint"],
		ReactionTime:          CoerceDateString(fields["reactionTime"]),
		ProductStatus:         fields["productStatus"],
		StoragePeriodMonths:   months,
		DepartmentReply:       fields["departmentReply"],
		CauseAnalysis:         fields["causeAnalysis"],
		Distributor:           fields["distributor"],
		RegionAddress:         fields["regionAddress"],
		City:                  fields["city"],
		Consumer:              fields["consumer"],
		PurchaseChannel:       fields["purchaseChannel"],
	}
	if record.ReactionTime == "" {
		record.ReactionTime = record.ExpiryDate
	}
	return record, true
}

// parseWorkbook đọc toàn bộ workbook thành danh sách bản ghi ứng viên.
// Dòng tổng kết và dòng thiếu số khiếu nại bị loại im lặng, không vào
// report.
func parseWorkbook(reader io.Reader) ([]complaintmodels.Complaint, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Không đọc được file Excel", common.StatusBadRequest, err)
	}
	defer workbook.Close()

	var records []complaintmodels.Complaint
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Không đọc được sheet "+sheet, common.StatusBadRequest, err)
		}
		if len(rows) == 0 {
			continue
		}

		// Dòng không trống đầu tiên là tiêu đề
		headerRowIdx := -1
		for i, row := range rows {
			for _, cell := range row {
				if strings.TrimSpace(cell) != "" {
					headerRowIdx = i
					break
				}
			}
			if headerRowIdx >= 0 {
				break
			}
		}
		if headerRowIdx < 0 {
			continue
		}

		headerIndex := buildHeaderIndex(rows[headerRowIdx])
		hasKeyColumn := false
		for _, field := range headerIndex {
			if field == "complaintNumber" {
				hasKeyColumn = true
				break
			}
		}
		if !hasKeyColumn {
			// Sheet không có cột số khiếu nại thì không phải sheet dữ liệu
			// (sheet pivot/tổng hợp), bỏ qua cả sheet
			continue
		}

		for _, row := range rows[headerRowIdx+1:] {
			record, ok := rowToComplaint(row, headerIndex)
			if !ok {
				continue
			}
			records = append(records, record)
		}
	}

	return records, nil
}

// dedupeFirstWins loại bản ghi trùng số khiếu nại trong cùng một lần import,
// giữ bản xuất hiện trước. Bản trùng trong file bị loại im lặng.
func dedupeFirstWins(records []complaintmodels.Complaint) []complaintmodels.Complaint {
	seen := make(map[string]struct{}, len(records))
	out := make([]complaintmodels.Complaint, 0, len(records))
	for _, record := range records {
		if _, dup := seen[record.ComplaintNumber]; dup {
			continue
		}
		seen[record.ComplaintNumber] = struct{}{}
		out = append(out, record)
	}
	return out
}

// existingNumbers tra store xem những số khiếu nại nào đã tồn tại,
// tra theo chunk để giữ filter $in trong giới hạn
func (s *ComplaintService) existingNumbers(ctx context.Context, numbers []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	chunkSize := global.ServerConfig.ImportInChunk
	if chunkSize < 1 {
		chunkSize = 1
	}

	for start := 0; start < len(numbers); start += chunkSize {
		end := start + chunkSize
		if end > len(numbers) {
			end = len(numbers)
		}
		found, err := s.FindByValueSet(ctx, "complaintNumber", numbers[start:end])
		if err != nil {
			return nil, err
		}
		for _, record := range found {
			existing[record.ComplaintNumber] = struct{}{}
		}
	}

	return existing, nil
}

// ImportWorkbook nạp một workbook Excel vào store: parse mọi sheet, loại
// dòng tổng kết, khử trùng lặp trong file (bản đầu thắng), bỏ qua bản ghi
// đã tồn tại trong store, rồi ghi phần còn lại theo batch. Lỗi của một
// batch không hủy các batch đã ghi trước đó. Skipped chỉ đếm bản ghi bị
// loại vì đã tồn tại trong store; dòng tổng kết và bản trùng trong file
// không vào report.
func (s *ComplaintService) ImportWorkbook(ctx context.Context, reader io.Reader) (*complaintdto.ImportReport, error) {
	log := logger.GetAppLogger()

	records, err := parseWorkbook(reader)
	if err != nil {
		return nil, err
	}

	report := &complaintdto.ImportReport{Errors: []string{}}

	records = dedupeFirstWins(records)
	if len(records) == 0 {
		return report, nil
	}

	numbers := make([]string, 0, len(records))
	for _, record := range records {
		numbers = append(numbers, record.ComplaintNumber)
	}
	existing, err := s.existingNumbers(ctx, numbers)
	if err != nil {
		return nil, err
	}

	toInsert := make([]complaintmodels.Complaint, 0, len(records))
	for _, record := range records {
		if _, dup := existing[record.ComplaintNumber]; dup {
			report.Skipped++
			continue
		}
		toInsert = append(toInsert, record)
	}

	batchSize := global.ServerConfig.ImportBatchSize
	if batchSize < 1 {
		batchSize = 1
	}
	for start := 0; start < len(toInsert); start += batchSize {
		end := start + batchSize
		if end > len(toInsert) {
			end = len(toInsert)
		}
		batch := toInsert[start:end]

		if _, err := s.InsertMany(ctx, batch); err != nil {
			log.WithError(err).WithField("batchStart", start).Error("Ghi batch import thất bại")
			report.Errors = append(report.Errors, fmt.Sprintf("batch %d-%d: %v", start, end-1, err))
			continue
		}
		report.Added += len(batch)
	}

	log.WithFields(map[string]interface{}{
		"added":   report.Added,
		"skipped": report.Skipped,
		"errors":  len(report.Errors),
	}).Info("Hoàn tất import khiếu nại")

	return report, nil
}
