package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stridewear/internal/apperr"
	applog "stridewear/internal/log"
)

// fail converts an error into its JSON response. Typed errors map to
// their status code with the client-safe message; anything else is
// logged and collapsed into a generic 500 so store internals never
// reach the response body.
func fail(c *fiber.Ctx, action string, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.Unavailable:
			applog.Error(c, action, err, nil)
		case apperr.Unauthorized, apperr.InvalidID, apperr.Validation:
			applog.Security(c, action, map[string]any{"reason": ae.Msg})
		}
		return c.Status(ae.StatusCode()).JSON(fiber.Map{"error": ae.Msg})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func ok(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

func created(c *fiber.Ctx, doc any) error {
	return c.Status(fiber.StatusCreated).JSON(doc)
}
