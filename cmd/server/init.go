package main

import (
	"context"

	"complaint_hub/config"
	"complaint_hub/internal/database"
	"complaint_hub/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Complaints = "complaints"

	logrus.Info("Initialized collection names")
}

// initValidator đăng ký các custom validator (ymd_date, not_blank, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server từ file env
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB khởi tạo kết nối database và index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateComplaintIndexes(context.TODO(), db); err != nil {
		// Index lỗi không chặn server: query vẫn đúng, chỉ chậm hơn
		logrus.Errorf("Failed to create complaint indexes: %v", err)
	} else {
		logrus.Info("Ensured complaint indexes")
	}
}

// InitRegistry khởi tạo registry và đăng ký các collections
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký các collections MongoDB vào registry
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.Complaints,
	}
	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
