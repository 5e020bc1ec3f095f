// Package complainthdl chứa các handler HTTP cho domain khiếu nại.
package complainthdl

import (
	"fmt"

	basehdl "complaint_hub/internal/api/base/handler"
	complaintdto "complaint_hub/internal/api/complaint/dto"
	complaintsvc "complaint_hub/internal/api/complaint/service"
	"complaint_hub/internal/common"
	"complaint_hub/internal/global"
	"complaint_hub/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// ComplaintHandler xử lý CRUD cho khiếu nại người tiêu dùng
type ComplaintHandler struct {
	service *complaintsvc.ComplaintService
}

// NewComplaintHandler tạo mới ComplaintHandler
func NewComplaintHandler() (*ComplaintHandler, error) {
	service, err := complaintsvc.NewComplaintService()
	if err != nil {
		return nil, fmt.Errorf("failed to create complaint service: %v", err)
	}
	return &ComplaintHandler{service: service}, nil
}

// parseFilter parse query params thành filter, lỗi parse coi là input không hợp lệ
func parseFilter(c fiber.Ctx) (*complaintdto.ComplaintFilter, error) {
	var filter complaintdto.ComplaintFilter
	if err := c.Bind().Query(&filter); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return &filter, nil
}

// HandleList xử lý GET /api/v1/complaints — danh sách có lọc và phân trang
func (h *ComplaintHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter, err := parseFilter(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		result, err := h.service.List(c.Context(), filter)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleCreate xử lý POST /api/v1/complaints — tạo khiếu nại mới
func (h *ComplaintHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input complaintdto.ComplaintCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
		}

		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
		}

		result, err := h.service.Create(c.Context(), &input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
			"code":    common.StatusCreated,
			"message": common.MsgCreated,
			"data":    result,
			"status":  "success",
		})
	})
}

// HandleUpdate xử lý PUT /api/v1/complaints/:id — cập nhật partial
func (h *ComplaintHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		}

		var input complaintdto.ComplaintUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
		}

		result, err := h.service.Update(c.Context(), id, &input)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleDelete xử lý DELETE /api/v1/complaints/:id
func (h *ComplaintHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		}

		if err := h.service.Delete(c.Context(), id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}
