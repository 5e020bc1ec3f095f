// Package basesvc - Test chuẩn hóa update document.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeUpdateDoc_PlainMapWrappedInSet(t *testing.T) {
	doc, err := normalizeUpdateDoc(bson.M{"city": "台北", "_id": "phải bị xóa"})
	if err != nil {
		t.Fatalf("normalizeUpdateDoc lỗi: %v", err)
	}

	setMap, ok := doc["$set"].(bson.M)
	if !ok {
		t.Fatalf("map thường phải được wrap trong $set, got %v", doc)
	}
	if setMap["city"] != "台北" {
		t.Errorf("field update bị mất: %v", setMap)
	}
	if _, has := setMap["_id"]; has {
		t.Error("_id không được nằm trong update document")
	}
	if _, has := setMap["updatedAt"]; !has {
		t.Error("updatedAt phải luôn được đóng dấu")
	}
}

func TestNormalizeUpdateDoc_ExistingSetGetsTimestamp(t *testing.T) {
	doc, err := normalizeUpdateDoc(bson.M{"$set": bson.M{"city": "台中"}})
	if err != nil {
		t.Fatalf("normalizeUpdateDoc lỗi: %v", err)
	}

	setMap := doc["$set"].(bson.M)
	if setMap["city"] != "台中" {
		t.Errorf("nội dung $set bị thay đổi: %v", setMap)
	}
	if _, has := setMap["updatedAt"]; !has {
		t.Error("updatedAt phải được bổ sung vào $set có sẵn")
	}
}

func TestNormalizeUpdateDoc_OtherOperatorsStampUpdatedAt(t *testing.T) {
	doc, err := normalizeUpdateDoc(bson.M{"$inc": bson.M{"quantity": 1}})
	if err != nil {
		t.Fatalf("normalizeUpdateDoc lỗi: %v", err)
	}
	if _, has := doc["$inc"]; !has {
		t.Errorf("update có operator phải được giữ nguyên, got %v", doc)
	}
	setMap, ok := doc["$set"].(bson.M)
	if !ok {
		t.Fatalf("update chỉ có $inc vẫn phải stamp updatedAt qua $set, got %v", doc)
	}
	if _, has := setMap["updatedAt"]; !has {
		t.Errorf("$set bổ sung phải chứa updatedAt, got %v", setMap)
	}
	if len(setMap) != 1 {
		t.Errorf("$set bổ sung chỉ được chứa updatedAt, got %v", setMap)
	}
}

func TestNormalizeUpdateDoc_StructInput(t *testing.T) {
	type partial struct {
		City string `bson:"city"`
	}
	doc, err := normalizeUpdateDoc(partial{City: "高雄"})
	if err != nil {
		t.Fatalf("normalizeUpdateDoc lỗi: %v", err)
	}
	setMap, ok := doc["$set"].(bson.M)
	if !ok {
		t.Fatalf("struct phải được convert rồi wrap trong $set, got %v", doc)
	}
	if setMap["city"] != "高雄" {
		t.Errorf("field từ struct bị mất: %v", setMap)
	}
}
