package complaintsvc

import (
	"context"
	"sort"
	"strings"
	"time"

	basesvc "complaint_hub/internal/api/base/service"
	complaintdto "complaint_hub/internal/api/complaint/dto"
	complaintmodels "complaint_hub/internal/api/complaint/models"
	"complaint_hub/internal/common"
	"complaint_hub/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ComplaintService xử lý nghiệp vụ khiếu nại người tiêu dùng
type ComplaintService struct {
	*basesvc.BaseServiceMongoImpl[complaintmodels.Complaint]
}

// NewComplaintService tạo mới ComplaintService trên collection đã đăng ký
func NewComplaintService() (*ComplaintService, error) {
	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Complaints)
	if !exists {
		return nil, common.NewError(common.ErrCodeDatabase, common.MsgDatabaseError, common.StatusInternalServerError, nil)
	}
	return &ComplaintService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[complaintmodels.Complaint](collection),
	}, nil
}

// buildStoreFilter dựng filter đẩy xuống store: các điều kiện store so khớp
// được chính xác (machine, status exact; khoảng ngày trên chuỗi YYYYMMDD —
// so sánh lexicographic trùng với so sánh số vì độ dài cố định).
// City/product/month/channel cần chuẩn hóa nên lọc sau khi fetch.
func buildStoreFilter(filter *complaintdto.ComplaintFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Machine != "" {
		query["manufacturingMachine"] = filter.Machine
	}
	if filter.Status != "" {
		query["productStatus"] = filter.Status
	}

	dateRange := bson.M{}
	if start := CoerceDateString(filter.StartDate); len(start) == 8 {
		dateRange["$gte"] = start
	}
	if end := CoerceDateString(filter.EndDate); len(end) == 8 {
		dateRange["$lte"] = end
	}
	if from, to, ok := yearMonthRange(filter.YearMonth); ok {
		dateRange["$gte"] = from
		dateRange["$lte"] = to
	}
	if len(dateRange) > 0 {
		query["reactionTime"] = dateRange
	}

	return query
}

// yearMonthRange chuyển filter "YYYY-MM" hoặc "YYYY-MM~YYYY-MM" thành khoảng
// [đầu tháng đầu, cuối tháng cuối] dạng YYYYMMDD
func yearMonthRange(yearMonth string) (string, string, bool) {
	yearMonth = strings.TrimSpace(yearMonth)
	if yearMonth == "" {
		return "", "", false
	}

	from, to, isRange := strings.Cut(yearMonth, "~")
	if !isRange {
		to = from
	}

	fromDigits := CoerceDateString(from + "01")
	toDigits := CoerceDateString(to + "31")
	if len(fromDigits) != 8 || len(toDigits) != 8 {
		return "", "", false
	}
	return fromDigits, toDigits, true
}

// FetchFiltered đọc tối đa maxRead document raw từ store theo filter store,
// normalize từng document rồi áp các điều kiện lọc post-fetch.
func (s *ComplaintService) FetchFiltered(ctx context.Context, filter *complaintdto.ComplaintFilter, maxRead int64) ([]complaintmodels.Complaint, error) {
	opts := options.Find().SetLimit(maxRead)
	rawDocs, err := s.FindRaw(ctx, buildStoreFilter(filter), opts)
	if err != nil {
		return nil, err
	}

	records := make([]complaintmodels.Complaint, 0, len(rawDocs))
	for _, raw := range rawDocs {
		records = append(records, NormalizeRawComplaint(raw))
	}

	return ApplyPostFetchFilters(records, filter), nil
}

// sortRecords sắp xếp in-memory theo sortBy/sortOrder. Field không nhận
// diện được rơi về createdAt; mặc định giảm dần (mới nhất trước).
func sortRecords(records []complaintmodels.Complaint, sortBy, sortOrder string) {
	asc := strings.EqualFold(sortOrder, "asc")

	var less func(a, b complaintmodels.Complaint) bool
	switch sortBy {
	case "reactionTime":
		less = func(a, b complaintmodels.Complaint) bool { return a.ReactionTime < b.ReactionTime }
	case "expiryDate":
		less = func(a, b complaintmodels.Complaint) bool { return a.ExpiryDate < b.ExpiryDate }
	case "complaintNumber":
		less = func(a, b complaintmodels.Complaint) bool { return a.ComplaintNumber < b.ComplaintNumber }
	case "city":
		less = func(a, b complaintmodels.Complaint) bool { return a.City < b.City }
	default:
		less = func(a, b complaintmodels.Complaint) bool { return a.CreatedAt < b.CreatedAt }
	}

	sort.SliceStable(records, func(i, j int) bool {
		if asc {
			return less(records[i], records[j])
		}
		return less(records[j], records[i])
	})
}

// millis2ISO format epoch millis về ISO-8601 UTC, rỗng khi chưa có timestamp
func millis2ISO(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

// toResponse chuyển model sang DTO trả về cho client
func toResponse(record complaintmodels.Complaint) complaintdto.ComplaintResponse {
	return complaintdto.ComplaintResponse{
		ID:                    record.ID.Hex(),
		ComplaintNumber:       record.ComplaintNumber,
		ProductItem:           record.ProductItem,
		ManufacturingMachine:  record.ManufacturingMachine,
		ExpiryDate:            record.ExpiryDate,
		ConsumerReactionPoint: record.ConsumerReactionPoint,
		ReactionTime:          record.ReactionTime,
		ProductStatus:         record.ProductStatus,
		StoragePeriodMonths:   record.StoragePeriodMonths,
		DepartmentReply:       record.DepartmentReply,
		CauseAnalysis:         record.CauseAnalysis,
		Distributor:           record.Distributor,
		RegionAddress:         record.RegionAddress,
		City:                  record.City,
		Consumer:              record.Consumer,
		PurchaseChannel:       record.PurchaseChannel,
		TrackNumber:           record.TrackNumber,
		Quantity:              record.Quantity,
		Percentage:            record.Percentage,
		TotalQuantity:         record.TotalQuantity,
		StorageMonths:         record.StorageMonths,
		ComplaintQuantity:     record.ComplaintQuantity,
		ComplaintPercentage:   record.ComplaintPercentage,
		CumulativePercentage:  record.CumulativePercentage,
		CreatedAt:             millis2ISO(record.CreatedAt),
		UpdatedAt:             millis2ISO(record.UpdatedAt),
	}
}

// List trả về danh sách khiếu nại theo filter, sắp xếp và phân trang
// in-memory trên tập đã lọc (trần đọc store áp dụng trước khi lọc).
func (s *ComplaintService) List(ctx context.Context, filter *complaintdto.ComplaintFilter) (*complaintdto.ComplaintListResult, error) {
	records, err := s.FetchFiltered(ctx, filter, int64(global.ServerConfig.MaxStoreRead_List))
	if err != nil {
		return nil, err
	}

	page := 1
	limit := 100
	sortBy := ""
	sortOrder := ""
	if filter != nil {
		if filter.Page > 0 {
			page = filter.Page
		}
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		sortBy = filter.SortBy
		sortOrder = filter.SortOrder
	}

	sortRecords(records, sortBy, sortOrder)

	total := len(records)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]complaintdto.ComplaintResponse, 0, end-start)
	for _, record := range records[start:end] {
		out = append(out, toResponse(record))
	}

	return &complaintdto.ComplaintListResult{
		Complaints: out,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetStats tính thống kê tổng hợp trên tập record đã lọc
func (s *ComplaintService) GetStats(ctx context.Context, filter *complaintdto.ComplaintFilter) (*complaintdto.ComplaintStats, error) {
	records, err := s.FetchFiltered(ctx, filter, int64(global.ServerConfig.MaxStoreRead_Stats))
	if err != nil {
		return nil, err
	}
	return BuildComplaintStats(records), nil
}

// orUnknown thay chuỗi rỗng bằng sentinel 未知
func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return complaintmodels.SentinelUnknown
	}
	return strings.TrimSpace(s)
}

// Create tạo khiếu nại mới. Số khiếu nại là business key: đã tồn tại thì
// từ chối với lỗi BIZ, không ghi đè.
func (s *ComplaintService) Create(ctx context.Context, input *complaintdto.ComplaintCreateInput) (*complaintdto.ComplaintResponse, error) {
	complaintNumber := strings.TrimSpace(input.ComplaintNumber)

	exists, err := s.DocumentExists(ctx, bson.M{"complaintNumber": complaintNumber})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessOperation, "Số khiếu nại đã tồn tại", common.StatusConflict, nil)
	}

	record := complaintmodels.Complaint{
		ComplaintNumber:       complaintNumber,
		ProductItem:           strings.TrimSpace(input.ProductItem),
		ManufacturingMachine:  orUnknown(input.ManufacturingMachine),
		ExpiryDate:            CoerceDateString(input.ExpiryDate),
		ConsumerReactionPoint: strings.TrimSpace(input.ConsumerReactionPoint),
		ReactionTime:          CoerceDateString(input.ReactionTime),
		ProductStatus:         orUnknown(input.ProductStatus),
		StoragePeriodMonths:   input.StoragePeriodMonths,
		DepartmentReply:       strings.TrimSpace(input.DepartmentReply),
		CauseAnalysis:         strings.TrimSpace(input.CauseAnalysis),
		Distributor:           strings.TrimSpace(input.Distributor),
		RegionAddress:         strings.TrimSpace(input.RegionAddress),
		City:                  orUnknown(input.City),
		Consumer:              orUnknown(input.Consumer),
		PurchaseChannel:       orUnknown(input.PurchaseChannel),
		TrackNumber:           strings.TrimSpace(input.TrackNumber),
		Quantity:              input.Quantity,
		Percentage:            input.Percentage,
		TotalQuantity:         input.TotalQuantity,
		StorageMonths:         strings.TrimSpace(input.StorageMonths),
		ComplaintQuantity:     input.ComplaintQuantity,
		ComplaintPercentage:   input.ComplaintPercentage,
		CumulativePercentage:  input.CumulativePercentage,
	}
	// Khiếu nại nhập tay không có ngày phản ánh thì mặc định là hôm nay
	if record.ReactionTime == "" {
		record.ReactionTime = time.Now().Format("20060102")
	}

	created, err := s.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}

	resp := toResponse(created)
	return &resp, nil
}

// Update cập nhật partial một khiếu nại theo id: chỉ field có mặt trong
// body được ghi đè, ngày tháng được ép về YYYYMMDD trước khi ghi.
func (s *ComplaintService) Update(ctx context.Context, id primitive.ObjectID, input *complaintdto.ComplaintUpdateInput) (*complaintdto.ComplaintResponse, error) {
	update := bson.M{}

	setString := func(field string, v *string) {
		if v != nil {
			update[field] = strings.TrimSpace(*v)
		}
	}
	setDate := func(field string, v *string) {
		if v != nil {
			update[field] = CoerceDateString(*v)
		}
	}
	setFloat := func(field string, v *float64) {
		if v != nil {
			update[field] = *v
		}
	}

	setString("complaintNumber", input.ComplaintNumber)
	setString("productItem", input.ProductItem)
	setString("manufacturingMachine", input.ManufacturingMachine)
	setDate("expiryDate", input.ExpiryDate)
	setString("consumerReactionPoint", input.ConsumerReactionPoint)
	setDate("reactionTime", input.ReactionTime)
	setString("productStatus", input.ProductStatus)
	if input.StoragePeriodMonths != nil {
		update["storagePeriodMonths"] = *input.StoragePeriodMonths
	}
	setString("departmentReply", input.DepartmentReply)
	setString("causeAnalysis", input.CauseAnalysis)
	setString("distributor", input.Distributor)
	setString("regionAddress", input.RegionAddress)
	setString("city", input.City)
	setString("consumer", input.Consumer)
	setString("purchaseChannel", input.PurchaseChannel)
	setString("trackNumber", input.TrackNumber)
	setFloat("quantity", input.Quantity)
	setFloat("percentage", input.Percentage)
	setFloat("totalQuantity", input.TotalQuantity)
	setString("storageMonths", input.StorageMonths)
	setFloat("complaintQuantity", input.ComplaintQuantity)
	setFloat("complaintPercentage", input.ComplaintPercentage)
	setFloat("cumulativePercentage", input.CumulativePercentage)

	if len(update) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có field nào để cập nhật", common.StatusBadRequest, nil)
	}

	// Đổi số khiếu nại thì số mới không được đụng bản ghi khác
	if newNumber, ok := update["complaintNumber"].(string); ok {
		exists, err := s.DocumentExists(ctx, bson.M{
			"complaintNumber": newNumber,
			"_id":             bson.M{"$ne": id},
		})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.NewError(common.ErrCodeBusinessOperation, "Số khiếu nại đã tồn tại", common.StatusConflict, nil)
		}
	}

	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}

	resp := toResponse(updated)
	return &resp, nil
}

// Delete xóa một khiếu nại theo id
func (s *ComplaintService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
