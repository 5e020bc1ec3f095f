package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("ymd_date", validateYmdDate)
	_ = Validate.RegisterValidation("not_blank", validateNotBlank)
}

var ymdPattern = regexp.MustCompile(`^\d{8}$`)

// validateYmdDate chấp nhận chuỗi rỗng hoặc đúng 8 chữ số YYYYMMDD.
// Ngày dạng wire format của hệ thống — rỗng nghĩa là "không có", không phải lỗi.
func validateYmdDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return ymdPattern.MatchString(s)
}

// validateNotBlank yêu cầu chuỗi có ít nhất một ký tự khác whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
