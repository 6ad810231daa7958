package session

import (
	"context"
	"time"
)

// Session holds the authenticated user's identity and OAuth token pair.
// Created once per successful exchange, read-only afterwards, removed on
// logout. There is no refresh flow: tokens are used as-is until they fail
// upstream.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	Expiry       time.Time `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Authenticated reports whether the session can authorize upstream calls.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, bool, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
