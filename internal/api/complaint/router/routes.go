// Package router đăng ký các route thuộc domain khiếu nại.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	complainthdl "complaint_hub/internal/api/complaint/handler"
	apirouter "complaint_hub/internal/api/router"
)

// Register đăng ký tất cả route khiếu nại lên v1.
func Register(v1 fiber.Router) error {
	complaintHandler, err := complainthdl.NewComplaintHandler()
	if err != nil {
		return fmt.Errorf("tạo ComplaintHandler: %w", err)
	}
	statsHandler, err := complainthdl.NewComplaintStatsHandler()
	if err != nil {
		return fmt.Errorf("tạo ComplaintStatsHandler: %w", err)
	}
	importHandler, err := complainthdl.NewComplaintImportHandler()
	if err != nil {
		return fmt.Errorf("tạo ComplaintImportHandler: %w", err)
	}

	// Các route cố định phải đăng ký TRƯỚC route có path param :id

	// GET /complaints/stats — thống kê tổng hợp, cùng tham số lọc với list
	apirouter.RegisterRouteWithMiddleware(v1, "/complaints", "GET", "/stats", nil, statsHandler.HandleStats)

	// POST /complaints/import — nạp workbook Excel (multipart, field "file")
	apirouter.RegisterRouteWithMiddleware(v1, "/complaints", "POST", "/import", nil, importHandler.HandleImport)

	// GET /complaints — danh sách có lọc + phân trang
	apirouter.RegisterRouteWithMiddleware(v1, "/complaints", "GET", "/", nil, complaintHandler.HandleList)

	// POST /complaints — tạo khiếu nại mới
	apirouter.RegisterRouteWithMiddleware(v1, "/complaints", "POST", "/", nil, complaintHandler.HandleCreate)

	// PUT /complaints/:id — cập nhật partial
	apirouter.RegisterRouteWithMiddleware(v1, "/complaints", "PUT", "/:id", nil, complaintHandler.HandleUpdate)

	// DELETE /complaints/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/complaints", "DELETE", "/:id", nil, complaintHandler.HandleDelete)

	return nil
}
