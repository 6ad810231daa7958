package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/gbpflow/internal/service"
	"github.com/maheshrc27/gbpflow/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

type createPostRequest struct {
	LocationID string                 `json:"locationId"`
	PostData   *transfer.PostCreation `json:"postData"`
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	sess := GetSession(c)

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	post, degraded, err := h.s.Create(c.Context(), sess, req.LocationID, req.PostData)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"post":     post,
		"degraded": degraded,
	})
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	sess := GetSession(c)
	locationID := c.Query("locationId")

	posts, degraded, err := h.s.List(c.Context(), sess, locationID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":    posts,
		"degraded": degraded,
	})
}
