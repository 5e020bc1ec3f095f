package global

import (
	"complaint_hub/config"
	"complaint_hub/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Complaints string // Tên collection cho khiếu nại người tiêu dùng
}

// Các biến toàn cục
var Validate *validator.Validate                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                          // Phiên kết nối tới MongoDB (khởi tạo một lần mỗi process)
var ServerConfig *config.Configuration                     // Cấu hình của server
var MongoDB_ColNames CollectionName = *new(CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
