package logger

import (
	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware untuk mencatat semua request. Each access line is
// forwarded to out as the "msg" value of a go-kit record.
func LoggerMiddleware(out log.Logger) fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Format:     "${locals:reqid} ${ip} ${method} ${path} ${status} ${latency}\n",
		Output:     log.NewStdlibAdapter(log.With(out, "component", "http")),
	})
}
