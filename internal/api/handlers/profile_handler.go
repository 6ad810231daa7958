package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/gbpflow/internal/service"
)

type ProfileHandler struct {
	s service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{s: service}
}

func (h *ProfileHandler) ListProfiles(c *fiber.Ctx) error {
	sess := GetSession(c)

	profiles, degraded, err := h.s.List(c.Context(), sess)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profiles": profiles,
		"degraded": degraded,
	})
}
