// Package database - Index cho collection complaints.
// complaintNumber KHÔNG unique ở store: tính duy nhất của business key được
// enforce ở tầng service bằng existence check trước khi insert.
package database

import (
	"context"
	"strings"

	"complaint_hub/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateComplaintIndexes tạo các index phục vụ store-level filter của list/stats.
func CreateComplaintIndexes(ctx context.Context, db *mongo.Database) error {
	complaints := db.Collection(global.MongoDB_ColNames.Complaints)

	// complaintNumber — existence check khi create/import ($in chunk)
	if _, err := complaints.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "complaintNumber", Value: 1}},
		Options: options.Index().SetName("complaint_number"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reactionTime — range filter theo ngày (YYYYMMDD fixed-width, so sánh lexicographic)
	if _, err := complaints.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "reactionTime", Value: 1}},
		Options: options.Index().SetName("complaint_reaction_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// city — equality filter (đã normalize suffix khi ghi)
	if _, err := complaints.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "city", Value: 1}},
		Options: options.Index().SetName("complaint_city"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// manufacturingMachine — equality filter
	if _, err := complaints.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "manufacturingMachine", Value: 1}},
		Options: options.Index().SetName("complaint_machine"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// productStatus — equality filter
	if _, err := complaints.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "productStatus", Value: 1}},
		Options: options.Index().SetName("complaint_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
