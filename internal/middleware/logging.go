package middleware

import (
	"strconv"
	"time"

	"footballfinder/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the Fiber locals key set by the requestid middleware.
const RequestIDKey = "requestid"

// LogMiddleware logs the method, path, status and duration of each request.
// m may be nil.
func LogMiddleware(logger *logrus.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// Let the error handler write the response so the status below is the real one.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		logger.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"duration":   time.Since(start),
			"remote":     c.IP(),
			"request_id": c.Locals(RequestIDKey),
		}).Info("HTTP Request")

		if m != nil {
			m.HTTPRequests.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		}
		return nil
	}
}
