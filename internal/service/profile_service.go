package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/gbpflow/internal/gbp"
	"github.com/maheshrc27/gbpflow/internal/models"
	"github.com/maheshrc27/gbpflow/internal/session"
	"github.com/maheshrc27/gbpflow/internal/transfer"
)

// NoAddress is the sentinel for a location without a storefront address.
const NoAddress = "No address"

type ProfileService interface {
	List(ctx context.Context, sess *session.Session) ([]models.BusinessProfile, bool, error)
}

type profileService struct {
	client *gbp.Client
}

func NewProfileService(client *gbp.Client) ProfileService {
	return &profileService{client: client}
}

// List fans out accounts -> per-account locations and flattens the result.
// One account's location fetch failing never aborts the others; only the
// account listing itself failing degrades to the fallback list. The second
// return value reports degraded mode.
func (s *profileService) List(ctx context.Context, sess *session.Session) ([]models.BusinessProfile, bool, error) {
	if !sess.Authenticated() {
		return nil, false, ErrUnauthorized
	}

	accounts, err := s.client.ListAccounts(ctx, sess.AccessToken)
	if err != nil {
		slog.Error("listing business accounts failed, serving fallback", "error", err)
		return fallbackProfiles(), true, nil
	}

	profiles := make([]models.BusinessProfile, 0)
	for _, acc := range accounts {
		accountID := strings.TrimPrefix(acc.Name, "accounts/")

		locations, err := s.client.ListLocations(ctx, sess.AccessToken, accountID)
		if err != nil {
			slog.Error("listing locations failed, skipping account", "account_id", accountID, "error", err)
			continue
		}

		for _, loc := range locations {
			profiles = append(profiles, normalizeLocation(accountID, loc))
		}
	}

	return profiles, false, nil
}

func normalizeLocation(accountID string, loc transfer.Location) models.BusinessProfile {
	locationID := loc.Name
	if i := strings.LastIndex(locationID, "/"); i >= 0 {
		locationID = locationID[i+1:]
	}

	now := time.Now()
	profile := models.BusinessProfile{
		ID:          locationID,
		Name:        loc.Title,
		Address:     formatAddress(loc.StorefrontAddress),
		Website:     loc.WebsiteURI,
		IsConnected: true,
		LastSync:    &now,
		AccountID:   accountID,
		LocationID:  locationID,
	}
	if loc.PhoneNumbers != nil {
		profile.Phone = loc.PhoneNumbers.PrimaryPhone
	}
	return profile
}

func formatAddress(addr *transfer.PostalAddress) string {
	if addr == nil {
		return NoAddress
	}

	parts := make([]string, 0, len(addr.AddressLines)+3)
	parts = append(parts, addr.AddressLines...)
	for _, p := range []string{addr.Locality, addr.AdministrativeArea, addr.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return NoAddress
	}
	return strings.Join(parts, ", ")
}
