package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry đã gắn context của request hiện tại
// (requestId, method, path, ip) để trace log theo request.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"requestId": requestid.FromContext(c),
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
	})
}
