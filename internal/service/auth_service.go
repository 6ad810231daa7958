package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	config "github.com/maheshrc27/gbpflow/configs"
	"github.com/maheshrc27/gbpflow/internal/session"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2v2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var loginScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/business.manage",
}

type AuthService interface {
	LoginCallback(ctx context.Context, code string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	cfg   config.Config
	store session.Store
}

func NewAuthService(cfg config.Config, store session.Store) AuthService {
	return &authService{
		cfg:   cfg,
		store: store,
	}
}

// LoginCallback exchanges the authorization code, looks up the user's
// identity and creates the session holding the token pair.
func (s *authService) LoginCallback(ctx context.Context, code string) (*session.Session, error) {
	if code == "" {
		err := errors.New("code is empty")
		slog.Info(err.Error())
		return nil, err
	}

	oauth2Config := s.oauthConfig()
	if oauth2Config.ClientID == "" || oauth2Config.ClientSecret == "" || oauth2Config.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return nil, err
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	client := oauth2Config.Client(ctx, token)
	oauth2Service, err := oauth2v2.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	userInfo, err := oauth2Service.Userinfo.Get().Do()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	sess := &session.Session{
		ID:           sessionID,
		UserID:       userInfo.Id,
		Email:        userInfo.Email,
		Name:         userInfo.Name,
		Picture:      userInfo.Picture,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
		CreatedAt:    time.Now(),
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *authService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       loginScopes,
		Endpoint:     google.Endpoint,
	}
}
