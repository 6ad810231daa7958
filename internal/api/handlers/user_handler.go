package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// GetUserInfo returns the identity half of the session; the token pair
// never leaves the server.
func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	return c.Status(fiber.StatusOK).JSON(sess)
}
