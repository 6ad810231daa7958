package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/gbpflow/configs"
	"github.com/maheshrc27/gbpflow/internal/session"
	"github.com/maheshrc27/gbpflow/pkg/utils"
)

type AuthMiddleware struct {
	cfg   config.Config
	store session.Store
}

func NewAuthMiddleware(cfg config.Config, store session.Store) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg, store: store}
}

// AuthMiddleware resolves the session cookie into a *session.Session and
// stores it in Locals("session"). Requests without a live session never
// reach a handler.
func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})

			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		sess, found, err := m.store.Get(c.Context(), claims.SessionID)
		if err != nil {
			log.Printf("Session lookup failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong",
			})
		}
		if !found {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals("session", sess)
		return c.Next()
	}
}
