// Package models - Complaint thuộc domain khiếu nại (complaints).
// Bản ghi khiếu nại người tiêu dùng, đơn vị phân tích của toàn hệ thống.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Complaint lưu một khiếu nại (complaints).
//
// complaintNumber là business key hướng người dùng, khác với _id do store cấp.
// Store KHÔNG enforce unique trên complaintNumber — tính duy nhất được kiểm tra
// thủ tục ở service (existence check trước insert, reject khi trùng).
//
// reactionTime/expiryDate lưu dạng chuỗi 8 chữ số YYYYMMDD (wire format chuẩn
// của hệ thống); range filter lexicographic trên dạng này tương đương so sánh
// numeric vì fixed-width. Chuỗi rỗng nghĩa là "không có ngày".
type Complaint struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ComplaintNumber       string `json:"complaintNumber" bson:"complaintNumber"`             // Mã khiếu nại (客訴編號)
	ProductItem           string `json:"productItem" bson:"productItem"`                     // Sản phẩm (產品品項)
	ManufacturingMachine  string `json:"manufacturingMachine" bson:"manufacturingMachine"`   // Máy sản xuất (製造機台)
	ExpiryDate            string `json:"expiryDate" bson:"expiryDate"`                       // Hạn sử dụng YYYYMMDD (有效日期)
	ConsumerReactionPoint string `json:"consumerReactionPoint" bson:"consumerReactionPoint"` // Điểm phản ánh (消費者反應點)
	ReactionTime          string `json:"reactionTime" bson:"reactionTime"`                   // Ngày phản ánh YYYYMMDD (反應時間)
	ProductStatus         string `json:"productStatus" bson:"productStatus"`                 // Trạng thái sản phẩm (產品狀態)
	StoragePeriodMonths   int    `json:"storagePeriodMonths" bson:"storagePeriodMonths"`     // Số tháng đã lưu kho (已存放時間 月)
	DepartmentReply       string `json:"departmentReply" bson:"departmentReply"`             // Phản hồi đơn vị liên quan (相關單位回覆)
	CauseAnalysis         string `json:"causeAnalysis" bson:"causeAnalysis"`                 // Phân tích nguyên nhân (原因分析)
	Distributor           string `json:"distributor" bson:"distributor"`                     // Nhà phân phối (經銷商)
	RegionAddress         string `json:"regionAddress" bson:"regionAddress"`                 // Địa chỉ chi tiết (區域縣市)
	City                  string `json:"city" bson:"city"`                                   // Tỉnh/thành dạng ngắn, đã strip hậu tố 市/縣 (縣市)
	Consumer              string `json:"consumer" bson:"consumer"`                           // Người tiêu dùng (消費者)
	PurchaseChannel       string `json:"purchaseChannel" bson:"purchaseChannel"`             // Kênh mua hàng (購買通路)

	// Các field passthrough từ layout spreadsheet — hệ thống không tính toán
	TrackNumber          string  `json:"trackNumber,omitempty" bson:"trackNumber,omitempty"`
	Quantity             float64 `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Percentage           float64 `json:"percentage,omitempty" bson:"percentage,omitempty"`
	TotalQuantity        float64 `json:"totalQuantity,omitempty" bson:"totalQuantity,omitempty"`
	StorageMonths        string  `json:"storageMonths,omitempty" bson:"storageMonths,omitempty"`
	ComplaintQuantity    float64 `json:"complaintQuantity,omitempty" bson:"complaintQuantity,omitempty"`
	ComplaintPercentage  float64 `json:"complaintPercentage,omitempty" bson:"complaintPercentage,omitempty"`
	CumulativePercentage float64 `json:"cumulativePercentage,omitempty" bson:"cumulativePercentage,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // UnixMilli, store đóng dấu khi insert
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // UnixMilli, store đóng dấu khi update
}

// Các giá trị sentinel cho field dạng phân loại — không bao giờ để chuỗi rỗng
// khi tạo mới, để bucket thống kê có nghĩa.
const (
	SentinelUnknown       = "未知"  // Không rõ (city/consumer/channel/machine/status khi tạo mới)
	SentinelUncategorized = "未分類" // Chưa phân loại (giá trị rỗng khi thống kê)
)
