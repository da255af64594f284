package handlers

import (
	"time"

	"footballfinder/internal/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HandleHealth responds 200 when the database answers a ping, 503 otherwise.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status, dbStatus, code := "healthy", "connected", fiber.StatusOK
	if err := database.Ping(h.db); err != nil {
		status, dbStatus, code = "unhealthy", "unreachable", fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"database": dbStatus,
		"time":     time.Now().Format(time.RFC3339),
	})
}
