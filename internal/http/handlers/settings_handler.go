package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stridewear/internal/apperr"
	applog "stridewear/internal/log"
	"stridewear/internal/services"
)

type SettingsHandler struct {
	Settings *services.SettingsService
}

// GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.Settings.Get(c.UserContext())
	if err != nil {
		return fail(c, "settings.get.fail", err)
	}
	return c.JSON(s)
}

// PUT /api/settings — merge-upsert; unknown keys are stored verbatim.
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || fields == nil {
		return fail(c, "settings.put.fail", apperr.Invalid("invalid request body"))
	}
	if err := h.Settings.Put(c.UserContext(), fields); err != nil {
		return fail(c, "settings.put.fail", err)
	}
	applog.Audit(c, "settings.update", map[string]any{"fields": len(fields)})
	return ok(c, "Settings updated successfully")
}
