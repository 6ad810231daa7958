package handlers_test

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/gbpflow/configs"
	"github.com/maheshrc27/gbpflow/internal/api/handlers"
	"github.com/maheshrc27/gbpflow/internal/api/middleware"
	"github.com/maheshrc27/gbpflow/internal/gbp"
	"github.com/maheshrc27/gbpflow/internal/models"
	"github.com/maheshrc27/gbpflow/internal/service"
	"github.com/maheshrc27/gbpflow/internal/session"
	"github.com/maheshrc27/gbpflow/internal/transfer"
	"github.com/maheshrc27/gbpflow/pkg/utils"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app   *fiber.App
	store session.Store
	cfg   config.Config
}

func newFixture(t *testing.T, upstreamURL string) *fixture {
	t.Helper()

	cfg := config.Config{
		SecretKey:  "test-secret",
		CookieName: "gbpflow_session",
	}

	storeKey := sha256.Sum256([]byte(cfg.SecretKey))
	store := session.NewInMemoryStore(storeKey[:])
	gbpClient := gbp.NewClient(upstreamURL)

	app := fiber.New()

	debug := handlers.NewDebugHandler(cfg)
	app.Get("/debug", debug.GetConfigInfo)

	authMw := middleware.NewAuthMiddleware(cfg, store)
	api := app.Group("/api")
	api.Use(authMw.AuthMiddleware())

	api.Get("/user/info", handlers.NewUserHandler().GetUserInfo)
	api.Get("/business-profiles", handlers.NewProfileHandler(service.NewProfileService(gbpClient)).ListProfiles)

	post := handlers.NewPostHandler(service.NewPostService(gbpClient))
	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)

	api.Get("/insights", handlers.NewInsightsHandler(service.NewInsightsService(gbpClient)).GetInsights)

	return &fixture{app: app, store: store, cfg: cfg}
}

func (f *fixture) seedSession(t *testing.T) *http.Cookie {
	t.Helper()

	sess := &session.Session{
		ID:          "sess-1",
		UserID:      "user-1",
		Email:       "owner@example.com",
		Name:        "John Doe",
		AccessToken: "test-access-token",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, f.store.Save(context.Background(), sess))

	token, err := utils.GenerateToken(f.cfg.SecretKey, sess.ID, time.Hour)
	require.NoError(t, err)

	return &http.Cookie{Name: f.cfg.CookieName, Value: token}
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestRequestsWithoutSessionAreRejected(t *testing.T) {
	var calls int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer upstream.Close()

	f := newFixture(t, upstream.URL)

	for _, route := range []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/business-profiles"},
		{fiber.MethodGet, "/api/posts?locationId=loc-1"},
		{fiber.MethodPost, "/api/posts"},
		{fiber.MethodGet, "/api/insights?locationId=loc-1"},
		{fiber.MethodGet, "/api/user/info"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, route.path)
	}

	require.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestInvalidSessionTokenIsRejected(t *testing.T) {
	f := newFixture(t, "http://unused.invalid")

	req := httptest.NewRequest(fiber.MethodGet, "/api/business-profiles", nil)
	req.AddCookie(&http.Cookie{Name: f.cfg.CookieName, Value: "garbage"})

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListPostsRequiresLocationID(t *testing.T) {
	var calls int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer upstream.Close()

	f := newFixture(t, upstream.URL)
	cookie := f.seedSession(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/posts", nil)
	req.AddCookie(cookie)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestListProfilesEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts":
			json.NewEncoder(w).Encode(transfer.AccountList{Accounts: []transfer.Account{{Name: "accounts/a1"}}})
		case "/accounts/a1/locations":
			json.NewEncoder(w).Encode(transfer.LocationList{Locations: []transfer.Location{
				{Name: "locations/loc-1", Title: "Downtown Coffee Shop"},
			}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	f := newFixture(t, upstream.URL)
	cookie := f.seedSession(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/business-profiles", nil)
	req.AddCookie(cookie)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Profiles []models.BusinessProfile `json:"profiles"`
		Degraded bool                     `json:"degraded"`
	}
	decodeBody(t, resp, &result)
	require.False(t, result.Degraded)
	require.Len(t, result.Profiles, 1)
	require.Equal(t, "loc-1", result.Profiles[0].LocationID)
	require.Equal(t, service.NoAddress, result.Profiles[0].Address)
}

func TestCreatePostDegradedEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	f := newFixture(t, upstream.URL)
	cookie := f.seedSession(t)

	body := `{"locationId":"loc-1","postData":{"content":"Hello"}}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/posts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Post     models.Post `json:"post"`
		Degraded bool        `json:"degraded"`
	}
	decodeBody(t, resp, &result)
	require.True(t, result.Degraded)
	require.Equal(t, "Hello", result.Post.Summary)
	require.Equal(t, models.PostStatusPublished, result.Post.Status)
	require.NotEmpty(t, result.Post.ID)
}

func TestUserInfoOmitsTokens(t *testing.T) {
	f := newFixture(t, "http://unused.invalid")
	cookie := f.seedSession(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/user/info", nil)
	req.AddCookie(cookie)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "owner@example.com")
	require.NotContains(t, string(body), "test-access-token")
}

func TestDebugRoute(t *testing.T) {
	f := newFixture(t, "http://unused.invalid")

	req := httptest.NewRequest(fiber.MethodGet, "/debug", nil)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &result)
	require.Equal(t, "ok", result.Status)
}
