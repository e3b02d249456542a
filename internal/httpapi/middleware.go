package httpapi

import (
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	sessionLocal  = "session_id"
	adminKeyHdr   = "X-API-Key"
	sessionMaxAge = 30 * 24 * time.Hour
)

// sessionMiddleware makes sure every request carries a session id cookie; handlers read
// it with sessionID and pass it on explicitly.
func sessionMiddleware(secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(sessionCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(sessionMaxAge.Seconds()),
				Secure:   secure,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionLocal, id)
		return c.Next()
	}
}

func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionLocal).(string)
	return id
}

// adminKeyMiddleware guards the admin routes with a static key. An empty key disables
// the admin API.
func adminKeyMiddleware(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return fiber.NewError(fiber.StatusForbidden, "admin API is disabled")
		}

		got := c.Get(adminKeyHdr)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid API key")
		}

		return c.Next()
	}
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// run the error handler here so that the logged status is the one sent
		if err := c.Next(); err != nil {
			if err := c.App().ErrorHandler(c, err); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.LogAttrs(c.UserContext(), slog.LevelInfo, "request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("duration", time.Since(start)),
		)

		return nil
	}
}
