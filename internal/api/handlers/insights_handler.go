package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/gbpflow/internal/service"
)

type InsightsHandler struct {
	s service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{s: service}
}

func (h *InsightsHandler) GetInsights(c *fiber.Ctx) error {
	sess := GetSession(c)
	locationID := c.Query("locationId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	insights, degraded, err := h.s.Get(c.Context(), sess, locationID, startDate, endDate)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"insights": insights,
		"degraded": degraded,
	})
}
