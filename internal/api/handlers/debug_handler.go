package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/gbpflow/configs"
)

type DebugHandler struct {
	cfg config.Config
}

func NewDebugHandler(cfg config.Config) *DebugHandler {
	return &DebugHandler{cfg: cfg}
}

// GetConfigInfo reports which credentials are present without exposing
// their values. Useful when diagnosing a misconfigured deployment.
func (h *DebugHandler) GetConfigInfo(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Configuration Debug Info",
		"config": fiber.Map{
			"hasGoogleClientId":     h.cfg.GoogleClientID != "",
			"hasGoogleClientSecret": h.cfg.GoogleClientSecret != "",
			"hasSecretKey":          h.cfg.SecretKey != "",
			"redirectUri":           h.cfg.GoogleRedirectURI,
			"appEnv":                h.cfg.AppEnv,
			"timestamp":             time.Now().Format(time.RFC3339),
		},
		"status": "ok",
	})
}
