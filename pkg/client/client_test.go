package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/maheshrc27/gbpflow/internal/transfer"
	"github.com/stretchr/testify/require"
)

func TestClientRequiresSessionToken(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	c := New(server.URL, "gbpflow_session")
	ctx := context.Background()

	_, _, err := c.ListProfiles(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, _, err = c.ListPosts(ctx, "loc-1")
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, _, err = c.CreatePost(ctx, "loc-1", &transfer.PostCreation{Content: "Hello"})
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, _, err = c.GetInsights(ctx, "loc-1", "", "")
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.GetUserInfo(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	require.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestClientCachesProfilesPerSession(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/business-profiles", r.URL.Path)
		cookie, err := r.Cookie("gbpflow_session")
		require.NoError(t, err)
		require.Equal(t, "session-token", cookie.Value)

		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{"profiles":[{"id":"loc-1","name":"Shop","locationId":"loc-1","accountId":"a1","isConnected":true,"address":"No address"}],"degraded":false}`))
	}))
	defer server.Close()

	c := New(server.URL, "gbpflow_session")
	c.SetSessionToken("session-token")
	ctx := context.Background()

	profiles, degraded, err := c.ListProfiles(ctx)
	require.NoError(t, err)
	require.False(t, degraded)
	require.Len(t, profiles, 1)
	require.EqualValues(t, 1, atomic.LoadInt64(&calls))

	// Second call is served from cache.
	_, _, err = c.ListProfiles(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt64(&calls))

	// Explicit refresh refetches.
	_, _, err = c.RefreshProfiles(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt64(&calls))

	// Re-establishing the session clears the cache.
	c.SetSessionToken("session-token")
	_, _, err = c.ListProfiles(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, atomic.LoadInt64(&calls))
}

func TestClientUnwrapsErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid request: location id is required"}`))
	}))
	defer server.Close()

	c := New(server.URL, "gbpflow_session")
	c.SetSessionToken("session-token")

	_, _, err := c.ListPosts(context.Background(), "")
	require.Error(t, err)
	require.Equal(t, "invalid request: location id is required", err.Error())
}

func TestClientCreatePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/posts", r.URL.Path)
		w.Write([]byte(`{"post":{"id":"post-abc","summary":"Hello","status":"published"},"degraded":true}`))
	}))
	defer server.Close()

	c := New(server.URL, "gbpflow_session")
	c.SetSessionToken("session-token")

	post, degraded, err := c.CreatePost(context.Background(), "loc-1", &transfer.PostCreation{Content: "Hello"})
	require.NoError(t, err)
	require.True(t, degraded)
	require.Equal(t, "post-abc", post.ID)
	require.Equal(t, "Hello", post.Summary)
}

func TestClientGetInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "loc-1", r.URL.Query().Get("locationId"))
		require.Equal(t, "2024-01-01", r.URL.Query().Get("startDate"))
		require.Equal(t, "2024-01-31", r.URL.Query().Get("endDate"))
		w.Write([]byte(`{"insights":{"impressions":1250,"clicks":89,"interactions":156,"views":2100,"posts":[]},"degraded":false}`))
	}))
	defer server.Close()

	c := New(server.URL, "gbpflow_session")
	c.SetSessionToken("session-token")

	insights, degraded, err := c.GetInsights(context.Background(), "loc-1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.False(t, degraded)
	require.EqualValues(t, 1250, insights.Impressions)
	require.EqualValues(t, 89, insights.Clicks)
}
