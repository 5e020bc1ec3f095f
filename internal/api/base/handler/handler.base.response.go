// Package basehdl chứa các helper dùng chung cho handler: JSON response
// thống nhất và wrapper chống panic.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"complaint_hub/internal/common"
	"complaint_hub/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Charset bắt buộc để client hiển thị đúng dữ liệu tiếng Trung trong khiếu nại.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandlerWrapper bọc handler với recover để server luôn trả về response,
// kể cả khi có panic xảy ra trong quá trình xử lý.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()
			logger.GetErrorLogger().Errorf("Panic recovered in handler: %v", r)

			err = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				"status":  "error",
			})
		}
	}()
	return fn()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Đảm bảo format response thống nhất trong toàn bộ ứng dụng:
// {code, message, data, status}.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
		}
		// Không phải custom error: trả về internal server error
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
