package middleware

import (
	"booking-portal/logger"
	"booking-portal/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger records every request/response pair through the async DB
// logger once the handler chain has finished. The entry is sanitized before
// it leaves the request: multipart bodies are summarized and credential
// fields are redacted.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		asyncLogger.Log(utils.CreateSanitizedLogEntry(c))
		return err
	}
}
