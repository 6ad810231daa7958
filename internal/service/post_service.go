package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/gbpflow/internal/gbp"
	"github.com/maheshrc27/gbpflow/internal/models"
	"github.com/maheshrc27/gbpflow/internal/session"
	"github.com/maheshrc27/gbpflow/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type PostService interface {
	List(ctx context.Context, sess *session.Session, locationID string) ([]models.Post, bool, error)
	Create(ctx context.Context, sess *session.Session, locationID string, pc *transfer.PostCreation) (*models.Post, bool, error)
}

type postService struct {
	client *gbp.Client
}

func NewPostService(client *gbp.Client) PostService {
	return &postService{client: client}
}

func (s *postService) List(ctx context.Context, sess *session.Session, locationID string) ([]models.Post, bool, error) {
	if !sess.Authenticated() {
		return nil, false, ErrUnauthorized
	}
	if locationID == "" {
		return nil, false, fmt.Errorf("%w: location id is required", ErrInvalidRequest)
	}

	localPosts, err := s.client.ListLocalPosts(ctx, sess.AccessToken, locationID)
	if err != nil {
		slog.Error("listing posts failed, serving fallback", "location_id", locationID, "error", err)
		return fallbackPosts(), true, nil
	}

	posts := make([]models.Post, 0, len(localPosts))
	for _, lp := range localPosts {
		posts = append(posts, normalizeLocalPost(lp))
	}
	return posts, false, nil
}

func (s *postService) Create(ctx context.Context, sess *session.Session, locationID string, pc *transfer.PostCreation) (*models.Post, bool, error) {
	if !sess.Authenticated() {
		return nil, false, ErrUnauthorized
	}
	if locationID == "" {
		return nil, false, fmt.Errorf("%w: location id is required", ErrInvalidRequest)
	}
	if pc == nil || pc.Text() == "" {
		return nil, false, fmt.Errorf("%w: post content is required", ErrInvalidRequest)
	}

	localPost, err := pc.ToLocalPost()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	created, err := s.client.CreateLocalPost(ctx, sess.AccessToken, locationID, localPost)
	if err != nil {
		slog.Error("creating post failed, serving fallback", "location_id", locationID, "error", err)
		return fallbackCreatedPost(pc), true, nil
	}

	post := normalizeLocalPost(*created)
	if post.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return nil, false, err
		}
		post.ID = "post-" + id
	}
	return &post, false, nil
}

func normalizeLocalPost(lp transfer.LocalPost) models.Post {
	id := lp.Name
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}

	post := models.Post{
		ID:         id,
		Summary:    lp.Summary,
		Status:     normalizeState(lp.State),
		CreateTime: lp.CreateTime,
		UpdateTime: lp.UpdateTime,
	}
	if lp.CallToAction != nil {
		post.CTAType = ctaDisplayName(lp.CallToAction.ActionType)
		post.CTAURL = lp.CallToAction.URL
	}
	if len(lp.Media) > 0 {
		post.MediaURL = lp.Media[0].SourceURL
		if lp.Media[0].MediaFormat == "VIDEO" {
			post.MediaType = "video"
		} else {
			post.MediaType = "image"
		}
	}
	return post
}

func normalizeState(state string) string {
	switch state {
	case models.PostStateLive, "":
		return models.PostStatusPublished
	case "PROCESSING":
		return models.PostStatusScheduled
	case "REJECTED":
		return models.PostStatusFailed
	default:
		return models.PostStatusDraft
	}
}

func ctaDisplayName(actionType string) string {
	switch actionType {
	case "LEARN_MORE":
		return "Learn More"
	case "BOOK":
		return "Book Now"
	case "CALL":
		return "Call"
	case "GET_DIRECTIONS":
		return "Get Directions"
	default:
		return actionType
	}
}
