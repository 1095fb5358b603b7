package handlers

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports service and dependency status
type HealthHandler struct {
	DB *gorm.DB
}

// Health handles GET /health
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthReport
// @Failure 503 {object} services.HealthReport
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	report := services.CheckHealth(h.DB)
	status := fiber.StatusOK
	if report.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}
