package models

// Insights is a point-in-time aggregate over a location's metrics. Not
// persisted anywhere; the upstream report is the system of record.
type Insights struct {
	Impressions  int64          `json:"impressions"`
	Clicks       int64          `json:"clicks"`
	Interactions int64          `json:"interactions"`
	Views        int64          `json:"views"`
	Posts        []PostInsights `json:"posts"`
}

type PostInsights struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Impressions  int64  `json:"impressions"`
	Clicks       int64  `json:"clicks"`
	Interactions int64  `json:"interactions"`
}
