// Package complaintsvc - Test chuẩn hóa document raw từ store.
package complaintsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCoerceDateString(t *testing.T) {
	cases := map[string]string{
		"20240715":     "20240715",
		"2024/07/15":   "20240715",
		"2024-07-15":   "20240715",
		"2024年07月15日": "20240715",
		"20240715未知":  "20240715",
		"202407150000": "20240715", // chỉ lấy 8 chữ số đầu
		"":             "",
		"không có số":  "",
		"2024-7":       "20247", // thiếu chữ số thì giữ phần số nguyên trạng
	}
	for in, want := range cases {
		if got := CoerceDateString(in); got != want {
			t.Errorf("CoerceDateString(%q) = %q, muốn %q", in, got, want)
		}
	}
}

func TestNormalizeRawComplaint_FieldTypes(t *testing.T) {
	id := primitive.NewObjectID()
	raw := bson.M{
		"_id":                 id,
		"complaintNumber":     "C-001",
		"productItem":         "  洋芋片  ",
		"storagePeriodMonths": int32(6),
		"quantity":            float64(3),
		"expiryDate":          "2024/10/15",
		"reactionTime":        "20240715",
		"createdAt":           int64(1720000000000),
	}

	record := NormalizeRawComplaint(raw)

	if record.ID != id {
		t.Errorf("ID không được giữ nguyên: %v", record.ID)
	}
	if record.ComplaintNumber != "C-001" {
		t.Errorf("complaintNumber = %q", record.ComplaintNumber)
	}
	if record.ProductItem != "洋芋片" {
		t.Errorf("productItem phải được trim, got %q", record.ProductItem)
	}
	if record.StoragePeriodMonths != 6 {
		t.Errorf("storagePeriodMonths = %d, muốn 6", record.StoragePeriodMonths)
	}
	if record.Quantity != 3 {
		t.Errorf("quantity = %v, muốn 3", record.Quantity)
	}
	if record.ExpiryDate != "20241015" {
		t.Errorf("expiryDate phải về YYYYMMDD, got %q", record.ExpiryDate)
	}
	if record.CreatedAt != 1720000000000 {
		t.Errorf("createdAt = %d", record.CreatedAt)
	}
}

func TestNormalizeRawComplaint_MissingFieldsGetZeroValues(t *testing.T) {
	record := NormalizeRawComplaint(bson.M{"complaintNumber": "C-002"})

	if record.City != "" {
		t.Errorf("city thiếu phải là chuỗi rỗng, got %q", record.City)
	}
	if record.StoragePeriodMonths != 0 {
		t.Errorf("storagePeriodMonths thiếu phải là 0, got %d", record.StoragePeriodMonths)
	}
}

func TestNormalizeRawComplaint_ReactionTimeFallsBackToExpiry(t *testing.T) {
	record := NormalizeRawComplaint(bson.M{
		"complaintNumber": "C-003",
		"expiryDate":      "20241231",
	})
	if record.ReactionTime != "20241231" {
		t.Errorf("reactionTime rỗng phải rơi về expiryDate, got %q", record.ReactionTime)
	}
}

func TestNormalizeRawComplaint_NumericDateFromSpreadsheet(t *testing.T) {
	record := NormalizeRawComplaint(bson.M{
		"complaintNumber": "C-004",
		"expiryDate":      int32(20241015),
	})
	if record.ExpiryDate != "20241015" {
		t.Errorf("ngày dạng số phải về chuỗi YYYYMMDD, got %q", record.ExpiryDate)
	}
}

func TestParseYMD(t *testing.T) {
	if _, ok := ParseYMD("20240715"); !ok {
		t.Error("20240715 phải parse được")
	}
	if _, ok := ParseYMD("20241332"); ok {
		t.Error("tháng 13 không được parse thành công")
	}
	if _, ok := ParseYMD("2024071"); ok {
		t.Error("chuỗi 7 ký tự không được parse thành công")
	}
	if _, ok := ParseYMD(""); ok {
		t.Error("chuỗi rỗng không được parse thành công")
	}
}
