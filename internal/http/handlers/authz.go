package handlers

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"stridewear/internal/apperr"
	"stridewear/internal/config"
)

// RequireAdmin gates a route behind the shared HTTP Basic credential.
// The check is per-request; there are no sessions. Rejections never
// invoke the wrapped handler.
func RequireAdmin(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, pass, ok := basicAuth(c.Get(fiber.HeaderAuthorization))
		if !ok || !equal(user, cfg.AdminUsername) || !equal(pass, cfg.AdminPassword) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
			return fail(c, "access.denied.admin", apperr.Unauthorizedf())
		}
		return c.Next()
	}
}

func basicAuth(header string) (user, pass string, ok bool) {
	const prefix = "Basic "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	user, pass, ok = strings.Cut(string(raw), ":")
	return user, pass, ok
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
