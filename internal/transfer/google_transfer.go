package transfer

import "time"

// Wire shapes for the Business Profile upstream. Field names follow the
// upstream JSON exactly; nothing here leaks past the service layer.

type AccountList struct {
	Accounts []Account `json:"accounts"`
}

type Account struct {
	Name        string `json:"name"` // accounts/{accountId}
	AccountName string `json:"accountName"`
	Type        string `json:"type"`
}

type LocationList struct {
	Locations []Location `json:"locations"`
}

type Location struct {
	Name              string         `json:"name"` // locations/{locationId}
	Title             string         `json:"title"`
	StorefrontAddress *PostalAddress `json:"storefrontAddress,omitempty"`
	PhoneNumbers      *PhoneNumbers  `json:"phoneNumbers,omitempty"`
	WebsiteURI        string         `json:"websiteUri,omitempty"`
}

type PostalAddress struct {
	AddressLines       []string `json:"addressLines,omitempty"`
	Locality           string   `json:"locality,omitempty"`
	AdministrativeArea string   `json:"administrativeArea,omitempty"`
	PostalCode         string   `json:"postalCode,omitempty"`
}

type PhoneNumbers struct {
	PrimaryPhone string `json:"primaryPhone,omitempty"`
}

type LocalPostList struct {
	LocalPosts []LocalPost `json:"localPosts"`
}

type LocalPost struct {
	Name         string        `json:"name,omitempty"`
	Summary      string        `json:"summary"`
	CallToAction *CallToAction `json:"callToAction,omitempty"`
	Media        []MediaItem   `json:"media,omitempty"`
	State        string        `json:"state,omitempty"`
	CreateTime   time.Time     `json:"createTime,omitempty"`
	UpdateTime   time.Time     `json:"updateTime,omitempty"`
}

type CallToAction struct {
	ActionType string `json:"actionType"`
	URL        string `json:"url,omitempty"`
}

type MediaItem struct {
	MediaFormat string `json:"mediaFormat"` // PHOTO, VIDEO
	SourceURL   string `json:"sourceUrl"`
}

type ReportInsightsRequest struct {
	BasicRequest BasicMetricsRequest `json:"basicRequest"`
}

type BasicMetricsRequest struct {
	MetricRequests []MetricRequest `json:"metricRequests"`
	TimeRange      TimeRange       `json:"timeRange"`
}

type MetricRequest struct {
	Metric  string   `json:"metric"`
	Options []string `json:"options,omitempty"`
}

type TimeRange struct {
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
}

type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type ReportInsightsResponse struct {
	LocationMetrics []LocationMetrics `json:"locationMetrics"`
}

type LocationMetrics struct {
	LocationName string        `json:"locationName,omitempty"`
	MetricValues []MetricValue `json:"metricValues"`
}

type MetricValue struct {
	Metric     string            `json:"metric"`
	TotalValue *DimensionalValue `json:"totalValue,omitempty"`
}

// DimensionalValue carries the metric count; the upstream encodes int64
// values as JSON strings.
type DimensionalValue struct {
	Value int64 `json:"value,string"`
}
