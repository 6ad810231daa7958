// Package gbp is a thin client for the Google Business Profile REST API.
// Every method issues one HTTP request with the caller's bearer token; a
// non-2xx status is an error for the caller to absorb.
package gbp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maheshrc27/gbpflow/internal/transfer"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) ListAccounts(ctx context.Context, accessToken string) ([]transfer.Account, error) {
	var result transfer.AccountList
	url := fmt.Sprintf("%s/accounts", c.baseURL)
	if err := c.do(ctx, accessToken, http.MethodGet, url, nil, &result); err != nil {
		return nil, err
	}
	return result.Accounts, nil
}

func (c *Client) ListLocations(ctx context.Context, accessToken, accountID string) ([]transfer.Location, error) {
	var result transfer.LocationList
	url := fmt.Sprintf("%s/accounts/%s/locations", c.baseURL, accountID)
	if err := c.do(ctx, accessToken, http.MethodGet, url, nil, &result); err != nil {
		return nil, err
	}
	return result.Locations, nil
}

func (c *Client) ListLocalPosts(ctx context.Context, accessToken, locationID string) ([]transfer.LocalPost, error) {
	var result transfer.LocalPostList
	url := fmt.Sprintf("%s/accounts/%s/localPosts", c.baseURL, locationID)
	if err := c.do(ctx, accessToken, http.MethodGet, url, nil, &result); err != nil {
		return nil, err
	}
	return result.LocalPosts, nil
}

func (c *Client) CreateLocalPost(ctx context.Context, accessToken, locationID string, post *transfer.LocalPost) (*transfer.LocalPost, error) {
	var result transfer.LocalPost
	url := fmt.Sprintf("%s/accounts/%s/localPosts", c.baseURL, locationID)
	if err := c.do(ctx, accessToken, http.MethodPost, url, post, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ReportInsights(ctx context.Context, accessToken, locationID string, req *transfer.ReportInsightsRequest) (*transfer.ReportInsightsResponse, error) {
	var result transfer.ReportInsightsResponse
	url := fmt.Sprintf("%s/accounts/%s/reportInsights", c.baseURL, locationID)
	if err := c.do(ctx, accessToken, http.MethodPost, url, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, accessToken, method, url string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("error marshalling payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed: %d %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
