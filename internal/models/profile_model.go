package models

import "time"

// BusinessProfile is one upstream location flattened into the shape the
// dashboard renders. Snapshots are immutable per fetch; LocationID is
// unique within a single listing.
type BusinessProfile struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone,omitempty"`
	Website     string     `json:"website,omitempty"`
	IsConnected bool       `json:"isConnected"`
	LastSync    *time.Time `json:"lastSync,omitempty"`
	AccountID   string     `json:"accountId"`
	LocationID  string     `json:"locationId"`
}
