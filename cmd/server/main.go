package main

import (
	"fmt"

	"complaint_hub/internal/database"
	"complaint_hub/internal/global"
	"complaint_hub/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình (LOG_LEVEL, LOG_FORMAT, ...)
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	address := global.ServerConfig.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry collections
	InitRegistry()

	// Đóng kết nối database khi server dừng
	defer func() {
		if global.MongoDB_Session != nil {
			if err := database.CloseInstance(global.MongoDB_Session); err != nil {
				logger.GetErrorLogger().WithError(err).Error("Lỗi đóng kết nối MongoDB")
			}
		}
	}()

	// Chạy Fiber server trên main thread
	main_thread()
}
