// Package client is a typed facade over the dashboard's HTTP surface.
// Every call requires a session token up front; nothing touches the
// network without one.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/maheshrc27/gbpflow/internal/models"
	"github.com/maheshrc27/gbpflow/internal/transfer"
)

var ErrNotAuthenticated = errors.New("Not authenticated")

type Client struct {
	baseURL      string
	cookieName   string
	sessionToken string
	httpClient   *http.Client

	mu             sync.Mutex
	profiles       []models.BusinessProfile
	profilesLoaded bool
}

func New(baseURL, cookieName string) *Client {
	return &Client{
		baseURL:    baseURL,
		cookieName: cookieName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetSessionToken establishes a session for subsequent calls and clears
// the cached profile list so it is refetched once for the new session.
func (c *Client) SetSessionToken(token string) {
	c.mu.Lock()
	c.sessionToken = token
	c.profiles = nil
	c.profilesLoaded = false
	c.mu.Unlock()
}

type UserInfo struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// ListProfiles returns the cached profile list, fetching it on first use.
func (c *Client) ListProfiles(ctx context.Context) ([]models.BusinessProfile, bool, error) {
	c.mu.Lock()
	if c.profilesLoaded {
		profiles := c.profiles
		c.mu.Unlock()
		return profiles, false, nil
	}
	c.mu.Unlock()

	return c.RefreshProfiles(ctx)
}

// RefreshProfiles refetches the profile list unconditionally.
func (c *Client) RefreshProfiles(ctx context.Context) ([]models.BusinessProfile, bool, error) {
	var result struct {
		Profiles []models.BusinessProfile `json:"profiles"`
		Degraded bool                     `json:"degraded"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/business-profiles", nil, nil, &result); err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	c.profiles = result.Profiles
	c.profilesLoaded = true
	c.mu.Unlock()

	return result.Profiles, result.Degraded, nil
}

func (c *Client) ListPosts(ctx context.Context, locationID string) ([]models.Post, bool, error) {
	query := url.Values{}
	query.Set("locationId", locationID)

	var result struct {
		Posts    []models.Post `json:"posts"`
		Degraded bool          `json:"degraded"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/posts", query, nil, &result); err != nil {
		return nil, false, err
	}
	return result.Posts, result.Degraded, nil
}

func (c *Client) CreatePost(ctx context.Context, locationID string, postData *transfer.PostCreation) (*models.Post, bool, error) {
	body := map[string]interface{}{
		"locationId": locationID,
		"postData":   postData,
	}

	var result struct {
		Post     *models.Post `json:"post"`
		Degraded bool         `json:"degraded"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/posts", nil, body, &result); err != nil {
		return nil, false, err
	}
	return result.Post, result.Degraded, nil
}

func (c *Client) GetInsights(ctx context.Context, locationID, startDate, endDate string) (*models.Insights, bool, error) {
	query := url.Values{}
	query.Set("locationId", locationID)
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}

	var result struct {
		Insights *models.Insights `json:"insights"`
		Degraded bool             `json:"degraded"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/insights", query, nil, &result); err != nil {
		return nil, false, err
	}
	return result.Insights, result.Degraded, nil
}

func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	var result UserInfo
	if err := c.do(ctx, http.MethodGet, "/api/user/info", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	c.mu.Lock()
	token := c.sessionToken
	c.mu.Unlock()
	if token == "" {
		return ErrNotAuthenticated
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("error marshalling payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return errors.New(errResp.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
