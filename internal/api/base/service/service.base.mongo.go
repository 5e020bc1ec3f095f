// Package basesvc cung cấp service cơ bản cho việc tương tác với MongoDB.
// Đây là adapter duy nhất đứng giữa domain service và store: equality/range
// filter với trần số document đọc, insert theo batch, update/delete theo id,
// và existence check theo tập giá trị ($in).
package basesvc

import (
	"context"
	"time"

	basemodels "complaint_hub/internal/api/base/models"
	"complaint_hub/internal/common"
	"complaint_hub/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	// 1.1 Thao tác Insert
	InsertOne(ctx context.Context, data Model) (Model, error)
	InsertMany(ctx context.Context, data []Model) ([]Model, error)

	// 1.2 Thao tác Find
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindRaw(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]bson.M, error)

	// 1.3 Thao tác Update
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (Model, error)

	// 1.4 Thao tác Delete
	DeleteOne(ctx context.Context, filter interface{}) error

	// 1.5 Các thao tác khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)

	// 2.1 Các hàm Find mở rộng
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindByValueSet(ctx context.Context, field string, values []string) ([]Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)

	// 2.2 Các hàm Update/Delete mở rộng
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error

	// 2.3 Các hàm kiểm tra
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl triển khai BaseServiceMongo trên một collection cụ thể
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB (dùng khi domain service cần truy cập trực tiếp)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// ====================================
// NHÓM 1: CÁC HÀM CHUẨN MONGODB DRIVER
// ====================================

// InsertOne tạo mới một bản ghi trong database.
// Store tự đóng timestamp createdAt/updatedAt (UnixMilli) — caller không set trực tiếp.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	// Chuyển data thành map để thêm timestamps
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	delete(dataMap, "_id")

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Lấy lại document vừa tạo
	var created T
	err = s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return created, nil
}

// InsertMany tạo nhiều bản ghi trong một lần ghi.
// Một batch là một đơn vị: lỗi giữa chừng trả về lỗi cho cả batch,
// các batch đã commit trước đó (do caller chia) vẫn giữ nguyên.
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var documents []interface{}
	now := time.Now().UnixMilli()

	for i := range data {
		dataMap, err := utility.ToMap(data[i])
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		delete(dataMap, "_id")
		dataMap["createdAt"] = now
		dataMap["updatedAt"] = now
		documents = append(documents, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	created, err := s.Find(ctx, bson.M{"_id": bson.M{"$in": result.InsertedIDs}}, nil)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindOne tìm một bản ghi theo filter
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	if filter == nil {
		filter = bson.M{}
	}

	var result T
	err := s.collection.FindOne(ctx, filter, opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find tìm các bản ghi theo filter. Trần số document trả về do opts.SetLimit
// quyết định — caller phải luôn đặt limit khi đọc tập lớn.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindRaw tìm các bản ghi và trả về dạng bson.M (semi-structured).
// Đây là dạng duy nhất mà Record Normalizer nhận vào — các component khác
// không chạm tới raw document.
func (s *BaseServiceMongoImpl[T]) FindRaw(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// UpdateOne cập nhật một bản ghi theo filter và trả về bản ghi sau cập nhật.
// update dạng map thường sẽ được wrap trong $set; updatedAt luôn được đóng dấu lại.
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T

	updateDoc, err := normalizeUpdateDoc(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	result, err := s.collection.UpdateOne(ctx, filter, updateDoc, opts)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return zero, common.ErrNotFound
	}

	return s.FindOne(ctx, filter, nil)
}

// DeleteOne xóa một bản ghi theo filter
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// CountDocuments đếm số bản ghi theo filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// Distinct trả về các giá trị khác nhau của một field
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.M{}
	}
	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return values, nil
}

// ====================================
// NHÓM 2: CÁC HÀM TIỆN ÍCH MỞ RỘNG
// ====================================

// FindOneById tìm một bản ghi theo ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// FindByValueSet tìm các bản ghi có field nằm trong tập giá trị ($in).
// Caller chịu trách nhiệm chia values thành chunk nhỏ — store giới hạn
// kích thước tập trong một filter $in.
func (s *BaseServiceMongoImpl[T]) FindByValueSet(ctx context.Context, field string, values []string) ([]T, error) {
	if len(values) == 0 {
		return nil, nil
	}
	return s.Find(ctx, bson.M{field: bson.M{"$in": values}}, nil)
}

// FindWithPagination tìm các bản ghi theo filter với phân trang
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}
	if filter == nil {
		filter = bson.M{}
	}

	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit).SetLimit(limit)

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	totalPage := total / limit
	if total%limit != 0 {
		totalPage++
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// UpdateById cập nhật một bản ghi theo ObjectID với dữ liệu partial
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

// DeleteById xóa một bản ghi theo ObjectID
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// DocumentExists kiểm tra bản ghi có tồn tại theo filter không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// normalizeUpdateDoc chuẩn hóa update document: map thường wrap trong $set,
// map đã có operator ($set/$unset/...) giữ nguyên; updatedAt luôn được set.
func normalizeUpdateDoc(update interface{}) (bson.M, error) {
	now := time.Now().UnixMilli()

	dataMap, ok := update.(bson.M)
	if !ok {
		if m, okM := update.(map[string]interface{}); okM {
			dataMap = bson.M(m)
		} else {
			converted, err := utility.ToMap(update)
			if err != nil {
				return nil, err
			}
			dataMap = bson.M(converted)
		}
	}

	// Nếu đã có operator MongoDB, chỉ bổ sung updatedAt vào $set
	if setVal, hasSet := dataMap["$set"]; hasSet {
		if setMap, okSet := setVal.(bson.M); okSet {
			setMap["updatedAt"] = now
		} else if setMap, okSet := setVal.(map[string]interface{}); okSet {
			setMap["updatedAt"] = now
		}
		return dataMap, nil
	}
	for key := range dataMap {
		if len(key) > 0 && key[0] == '$' {
			// Update chỉ có operator khác ($inc/$unset/...) vẫn phải stamp updatedAt
			dataMap["$set"] = bson.M{"updatedAt": now}
			return dataMap, nil
		}
	}

	// Map thường: wrap trong $set
	delete(dataMap, "_id")
	dataMap["updatedAt"] = now
	return bson.M{"$set": dataMap}, nil
}
