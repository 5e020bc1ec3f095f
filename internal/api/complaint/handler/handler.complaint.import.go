package complainthdl

import (
	"fmt"
	"path/filepath"
	"strings"

	basehdl "complaint_hub/internal/api/base/handler"
	complaintsvc "complaint_hub/internal/api/complaint/service"
	"complaint_hub/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ComplaintImportHandler xử lý endpoint import file Excel
type ComplaintImportHandler struct {
	service *complaintsvc.ComplaintService
}

// NewComplaintImportHandler tạo mới ComplaintImportHandler
func NewComplaintImportHandler() (*ComplaintImportHandler, error) {
	service, err := complaintsvc.NewComplaintService()
	if err != nil {
		return nil, fmt.Errorf("failed to create complaint service: %v", err)
	}
	return &ComplaintImportHandler{service: service}, nil
}

// HandleImport xử lý POST /api/v1/complaints/import — nhận file xlsx qua
// multipart form (field "file") và nạp vào store
func (h *ComplaintImportHandler) HandleImport(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationInput, "Thiếu file upload (field 'file')", common.StatusBadRequest, err.Error()))
		}

		if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" && ext != ".xlsm" {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationFormat, "Chỉ hỗ trợ file Excel (.xlsx)", common.StatusBadRequest, nil))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationFormat, "Không mở được file upload", common.StatusBadRequest, err.Error()))
		}
		defer file.Close()

		report, err := h.service.ImportWorkbook(c.Context(), file)
		return basehdl.HandleResponse(c, report, err)
	})
}
