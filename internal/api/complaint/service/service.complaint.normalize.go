package complaintsvc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	complaintmodels "complaint_hub/internal/api/complaint/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// asString ép một giá trị raw từ store về string, trim khoảng trắng.
// Số nguyên/thực được format lại (Excel hay trả số cho cột text).
func asString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// asInt ép giá trị raw về int, giá trị không parse được trả về 0
func asInt(v interface{}) int {
	switch val := v.(type) {
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// asFloat ép giá trị raw về float64, giá trị không parse được trả về 0
func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// asInt64 ép timestamp raw (created/updated) về int64 epoch millis
func asInt64(v interface{}) int64 {
	switch val := v.(type) {
	case int32:
		return int64(val)
	case int64:
		return val
	case float64:
		return int64(val)
	case primitive.DateTime:
		return int64(val)
	default:
		return 0
	}
}

// CoerceDateString chuẩn hóa ngày về dạng YYYYMMDD 8 chữ số:
// bỏ hết ký tự không phải chữ số rồi lấy 8 chữ số đầu.
// "2024/07/15" → "20240715", "2024-7" còn thiếu chữ số → giữ nguyên phần số.
func CoerceDateString(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 8 {
				break
			}
		}
	}
	return digits.String()
}

// asDateString ép giá trị ngày từ store/spreadsheet về chuỗi YYYYMMDD.
// Excel có thể trả serial number hoặc date object thay vì text.
func asDateString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return CoerceDateString(val)
	case primitive.DateTime:
		return val.Time().UTC().Format("20060102")
	case time.Time:
		return val.UTC().Format("20060102")
	default:
		return CoerceDateString(asString(v))
	}
}

// NormalizeRawComplaint chuyển một document raw từ store về Complaint đã
// chuẩn hóa. Field thiếu nhận zero value, ngày tháng được ép về YYYYMMDD,
// reactionTime rỗng rơi về expiryDate.
func NormalizeRawComplaint(raw bson.M) complaintmodels.Complaint {
	record := complaintmodels.Complaint{
		ComplaintNumber:       asString(raw["complaintNumber"]),
		ProductItem:           asString(raw["productItem"]),
		ManufacturingMachine:  asString(raw["manufacturingMachine"]),
		ExpiryDate:            asDateString(raw["expiryDate"]),
		ConsumerReactionPoint: asString(raw["consumerReactionPoint"]),
		ReactionTime:          asDateString(raw["reactionTime"]),
		ProductStatus:         asString(raw["productStatus"]),
		StoragePeriodMonths:   asInt(raw["storagePeriodMonths"]),
		DepartmentReply:       asString(raw["departmentReply"]),
		CauseAnalysis:         asString(raw["causeAnalysis"]),
		Distributor:           asString(raw["distributor"]),
		RegionAddress:         asString(raw["regionAddress"]),
		City:                  asString(raw["city"]),
		Consumer:              asString(raw["consumer"]),
		PurchaseChannel:       asString(raw["purchaseChannel"]),
		TrackNumber:           asString(raw["trackNumber"]),
		Quantity:              asFloat(raw["quantity"]),
		Percentage:            asFloat(raw["percentage"]),
		TotalQuantity:         asFloat(raw["totalQuantity"]),
		ComplaintQuantity:     asFloat(raw["complaintQuantity"]),
		ComplaintPercentage:   asFloat(raw["complaintPercentage"]),
		CumulativePercentage:  asFloat(raw["cumulativePercentage"]),
		StorageMonths:         asString(raw["storageMonths"]),
		CreatedAt:             asInt64(raw["createdAt"]),
		UpdatedAt:             asInt64(raw["updatedAt"]),
	}

	if id, ok := raw["_id"].(primitive.ObjectID); ok {
		record.ID = id
	}

	// Thiếu thời điểm phản ánh thì dùng hạn sử dụng thay thế
	if record.ReactionTime == "" {
		record.ReactionTime = record.ExpiryDate
	}

	return record
}

// ParseYMD parse chuỗi YYYYMMDD thành time.Time UTC, false khi không hợp lệ
func ParseYMD(s string) (time.Time, bool) {
	if len(s) != 8 {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
