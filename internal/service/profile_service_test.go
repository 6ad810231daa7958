package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/maheshrc27/gbpflow/internal/gbp"
	"github.com/maheshrc27/gbpflow/internal/service"
	"github.com/maheshrc27/gbpflow/internal/session"
	"github.com/maheshrc27/gbpflow/internal/transfer"
	"github.com/stretchr/testify/require"
)

func testSession() *session.Session {
	return &session.Session{
		ID:          "sess-1",
		UserID:      "user-1",
		Email:       "owner@example.com",
		AccessToken: "test-access-token",
	}
}

func TestProfileListRequiresSession(t *testing.T) {
	var calls int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer upstream.Close()

	s := service.NewProfileService(gbp.NewClient(upstream.URL))

	_, _, err := s.List(context.Background(), nil)
	require.ErrorIs(t, err, service.ErrUnauthorized)

	_, _, err = s.List(context.Background(), &session.Session{ID: "sess-1"})
	require.ErrorIs(t, err, service.ErrUnauthorized)

	require.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestProfileListPartialFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts":
			json.NewEncoder(w).Encode(transfer.AccountList{Accounts: []transfer.Account{
				{Name: "accounts/acc-a", AccountName: "Account A"},
				{Name: "accounts/acc-b", AccountName: "Account B"},
			}})
		case "/accounts/acc-a/locations":
			w.WriteHeader(http.StatusInternalServerError)
		case "/accounts/acc-b/locations":
			json.NewEncoder(w).Encode(transfer.LocationList{Locations: []transfer.Location{
				{
					Name:  "locations/loc-b1",
					Title: "Downtown Coffee Shop",
					StorefrontAddress: &transfer.PostalAddress{
						AddressLines: []string{"123 Main St"},
						Locality:     "Downtown",
						PostalCode:   "10001",
					},
					PhoneNumbers: &transfer.PhoneNumbers{PrimaryPhone: "+1 (555) 123-4567"},
					WebsiteURI:   "https://downtowncoffee.com",
				},
				{
					Name:  "locations/loc-b2",
					Title: "Mountain View Restaurant",
				},
			}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	s := service.NewProfileService(gbp.NewClient(upstream.URL))

	profiles, degraded, err := s.List(context.Background(), testSession())
	require.NoError(t, err)
	require.False(t, degraded)
	require.Len(t, profiles, 2)

	require.Equal(t, "loc-b1", profiles[0].LocationID)
	require.Equal(t, "acc-b", profiles[0].AccountID)
	require.Equal(t, "Downtown Coffee Shop", profiles[0].Name)
	require.Equal(t, "123 Main St, Downtown, 10001", profiles[0].Address)
	require.Equal(t, "+1 (555) 123-4567", profiles[0].Phone)
	require.Equal(t, "https://downtowncoffee.com", profiles[0].Website)
	require.True(t, profiles[0].IsConnected)
	require.NotNil(t, profiles[0].LastSync)

	// Missing storefront address falls back to the sentinel.
	require.Equal(t, "loc-b2", profiles[1].LocationID)
	require.Equal(t, service.NoAddress, profiles[1].Address)
}

func TestProfileListFallbackOnAccountFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	s := service.NewProfileService(gbp.NewClient(upstream.URL))

	profiles, degraded, err := s.List(context.Background(), testSession())
	require.NoError(t, err)
	require.True(t, degraded)
	require.Len(t, profiles, 1)
	require.Equal(t, "mock-1", profiles[0].ID)
	require.Equal(t, "Sample Business Profile", profiles[0].Name)
	require.Equal(t, "mock-location-1", profiles[0].LocationID)
	require.False(t, profiles[0].IsConnected)
}

func TestProfileListEmptyAccounts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(transfer.AccountList{})
	}))
	defer upstream.Close()

	s := service.NewProfileService(gbp.NewClient(upstream.URL))

	profiles, degraded, err := s.List(context.Background(), testSession())
	require.NoError(t, err)
	require.False(t, degraded)
	require.Empty(t, profiles)
}
