package models

import "time"

type Post struct {
	ID            string    `json:"id"`
	Summary       string    `json:"summary"`
	MediaURL      string    `json:"media_url,omitempty"`
	MediaType     string    `json:"media_type,omitempty"` // image, video
	CTAType       string    `json:"cta_type,omitempty"`
	CTAURL        string    `json:"cta_url,omitempty"`
	ScheduledDate time.Time `json:"scheduled_date,omitempty"`
	Status        string    `json:"status"` // published, scheduled, failed, draft
	CreateTime    time.Time `json:"create_time"`
	UpdateTime    time.Time `json:"update_time"`
}

const (
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
	PostStatusDraft     = "draft"
)

// PostStateLive is the upstream's wire value for a published post.
const PostStateLive = "LIVE"
