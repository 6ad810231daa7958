package service

import (
	"time"

	"github.com/maheshrc27/gbpflow/internal/models"
	"github.com/maheshrc27/gbpflow/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Static substitutes served when the upstream is unreachable or rejects a
// call. Keeping these schema-valid keeps the dashboard renderable in
// degraded mode; the envelope's degraded flag is the only failure signal
// the caller sees.

func fallbackProfiles() []models.BusinessProfile {
	now := time.Now()
	return []models.BusinessProfile{
		{
			ID:          "mock-1",
			Name:        "Sample Business Profile",
			Address:     "123 Main St, City, State 12345",
			Phone:       "+1 (555) 123-4567",
			Website:     "https://example.com",
			IsConnected: false,
			LastSync:    &now,
			AccountID:   "mock-account-1",
			LocationID:  "mock-location-1",
		},
	}
}

func fallbackPosts() []models.Post {
	now := time.Now()
	return []models.Post{
		{
			ID:         "post-1",
			Summary:    "Welcome to our business!",
			Status:     models.PostStatusPublished,
			CreateTime: now,
			UpdateTime: now,
		},
	}
}

func fallbackCreatedPost(pc *transfer.PostCreation) *models.Post {
	id, err := gonanoid.New()
	if err != nil {
		id = time.Now().Format("20060102150405.000000000")
	}

	now := time.Now()
	post := &models.Post{
		ID:         "post-" + id,
		Summary:    pc.Text(),
		Status:     models.PostStatusPublished,
		CreateTime: now,
		UpdateTime: now,
	}
	if pc.CallToAction != nil && pc.CallToAction.Type != "" {
		post.CTAType = pc.CallToAction.Type
		post.CTAURL = pc.CallToAction.URL
	}
	if len(pc.Media) > 0 {
		post.MediaURL = pc.Media[0].SourceURL
		post.MediaType = pc.Media[0].Format
	}
	return post
}

func fallbackInsights() *models.Insights {
	return &models.Insights{
		Impressions:  1250,
		Clicks:       89,
		Interactions: 156,
		Views:        2100,
		Posts: []models.PostInsights{
			{
				ID:           "post-1",
				Title:        "Sample Post 1",
				Impressions:  450,
				Clicks:       32,
				Interactions: 45,
			},
			{
				ID:           "post-2",
				Title:        "Sample Post 2",
				Impressions:  380,
				Clicks:       28,
				Interactions: 38,
			},
		},
	}
}
