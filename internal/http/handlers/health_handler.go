package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "stridewear/internal/log"
	"stridewear/internal/services"
)

type HealthHandler struct {
	Status *services.StatusService
}

// GET /api/health — store connectivity probe. The real ping error
// goes to the log; the body carries a constant reason.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.Status.Check(c.UserContext()); err != nil {
		applog.Error(c, "health.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
	}
	return c.JSON(fiber.Map{"status": "healthy", "database": "connected"})
}
