package complainthdl

import (
	"fmt"

	basehdl "complaint_hub/internal/api/base/handler"
	complaintsvc "complaint_hub/internal/api/complaint/service"

	"github.com/gofiber/fiber/v3"
)

// ComplaintStatsHandler xử lý endpoint thống kê tổng hợp
type ComplaintStatsHandler struct {
	service *complaintsvc.ComplaintService
}

// NewComplaintStatsHandler tạo mới ComplaintStatsHandler
func NewComplaintStatsHandler() (*ComplaintStatsHandler, error) {
	service, err := complaintsvc.NewComplaintService()
	if err != nil {
		return nil, fmt.Errorf("failed to create complaint service: %v", err)
	}
	return &ComplaintStatsHandler{service: service}, nil
}

// HandleStats xử lý GET /api/v1/complaints/stats — toàn bộ thống kê trên
// tập record khớp filter (cùng tham số lọc với endpoint list)
func (h *ComplaintStatsHandler) HandleStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter, err := parseFilter(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		stats, err := h.service.GetStats(c.Context(), filter)
		return basehdl.HandleResponse(c, stats, err)
	})
}
