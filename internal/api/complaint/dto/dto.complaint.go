// Package dto - Input/Output cho domain khiếu nại.
package dto

// ComplaintCreateInput dữ liệu tạo khiếu nại mới.
// Bắt buộc: complaintNumber, productItem, consumerReactionPoint.
// Các field phân loại absent sẽ nhận sentinel 未知, không nhận chuỗi rỗng.
type ComplaintCreateInput struct {
	ComplaintNumber       string `json:"complaintNumber" validate:"required,not_blank"`
	ProductItem           string `json:"productItem" validate:"required,not_blank"`
	ConsumerReactionPoint string `json:"consumerReactionPoint" validate:"required,not_blank"`
	ManufacturingMachine  string `json:"manufacturingMachine"`
	ExpiryDate            string `json:"expiryDate" validate:"ymd_date"`
	ReactionTime          string `json:"reactionTime" validate:"ymd_date"`
	ProductStatus         string `json:"productStatus"`
	StoragePeriodMonths   int    `json:"storagePeriodMonths" validate:"gte=0"`
	DepartmentReply       string `json:"departmentReply"`
	CauseAnalysis         string `json:"causeAnalysis"`
	Distributor           string `json:"distributor"`
	RegionAddress         string `json:"regionAddress"`
	City                  string `json:"city"`
	Consumer              string `json:"consumer"`
	PurchaseChannel       string `json:"purchaseChannel"`

	TrackNumber          string  `json:"trackNumber"`
	Quantity             float64 `json:"quantity"`
	Percentage           float64 `json:"percentage"`
	TotalQuantity        float64 `json:"totalQuantity"`
	StorageMonths        string  `json:"storageMonths"`
	ComplaintQuantity    float64 `json:"complaintQuantity"`
	ComplaintPercentage  float64 `json:"complaintPercentage"`
	CumulativePercentage float64 `json:"cumulativePercentage"`
}

// ComplaintUpdateInput dữ liệu cập nhật partial — field nil bị bỏ qua,
// chỉ field có mặt trong body mới được ghi đè (whitelist ở service).
type ComplaintUpdateInput struct {
	ComplaintNumber       *string  `json:"complaintNumber"`
	ProductItem           *string  `json:"productItem"`
	ManufacturingMachine  *string  `json:"manufacturingMachine"`
	ExpiryDate            *string  `json:"expiryDate"`
	ConsumerReactionPoint *string  `json:"consumerReactionPoint"`
	ReactionTime          *string  `json:"reactionTime"`
	ProductStatus         *string  `json:"productStatus"`
	StoragePeriodMonths   *int     `json:"storagePeriodMonths"`
	DepartmentReply       *string  `json:"departmentReply"`
	CauseAnalysis         *string  `json:"causeAnalysis"`
	Distributor           *string  `json:"distributor"`
	RegionAddress         *string  `json:"regionAddress"`
	City                  *string  `json:"city"`
	Consumer              *string  `json:"consumer"`
	PurchaseChannel       *string  `json:"purchaseChannel"`
	TrackNumber           *string  `json:"trackNumber"`
	Quantity              *float64 `json:"quantity"`
	Percentage            *float64 `json:"percentage"`
	TotalQuantity         *float64 `json:"totalQuantity"`
	StorageMonths         *string  `json:"storageMonths"`
	ComplaintQuantity     *float64 `json:"complaintQuantity"`
	ComplaintPercentage   *float64 `json:"complaintPercentage"`
	CumulativePercentage  *float64 `json:"cumulativePercentage"`
}

// ComplaintResponse bản ghi khiếu nại trả về cho client.
// Timestamps trả dạng ISO-8601 ở boundary (trong store là UnixMilli).
type ComplaintResponse struct {
	ID                    string  `json:"_id"`
	ComplaintNumber       string  `json:"complaintNumber"`
	ProductItem           string  `json:"productItem"`
	ManufacturingMachine  string  `json:"manufacturingMachine"`
	ExpiryDate            string  `json:"expiryDate"`
	ConsumerReactionPoint string  `json:"consumerReactionPoint"`
	ReactionTime          string  `json:"reactionTime"`
	ProductStatus         string  `json:"productStatus"`
	StoragePeriodMonths   int     `json:"storagePeriodMonths"`
	DepartmentReply       string  `json:"departmentReply"`
	CauseAnalysis         string  `json:"causeAnalysis"`
	Distributor           string  `json:"distributor"`
	RegionAddress         string  `json:"regionAddress"`
	City                  string  `json:"city"`
	Consumer              string  `json:"consumer"`
	PurchaseChannel       string  `json:"purchaseChannel"`
	TrackNumber           string  `json:"trackNumber,omitempty"`
	Quantity              float64 `json:"quantity,omitempty"`
	Percentage            float64 `json:"percentage,omitempty"`
	TotalQuantity         float64 `json:"totalQuantity,omitempty"`
	StorageMonths         string  `json:"storageMonths,omitempty"`
	ComplaintQuantity     float64 `json:"complaintQuantity,omitempty"`
	ComplaintPercentage   float64 `json:"complaintPercentage,omitempty"`
	CumulativePercentage  float64 `json:"cumulativePercentage,omitempty"`
	CreatedAt             string  `json:"createdAt,omitempty"`
	UpdatedAt             string  `json:"updatedAt,omitempty"`
}

// ComplaintListResult kết quả list có phân trang.
type ComplaintListResult struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}
