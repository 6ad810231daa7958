package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/gbpflow/internal/gbp"
	"github.com/maheshrc27/gbpflow/internal/models"
	"github.com/maheshrc27/gbpflow/internal/session"
	"github.com/maheshrc27/gbpflow/internal/transfer"
)

const dateLayout = "2006-01-02"

// The upstream report is always requested for this metric set, aggregated
// daily, matching what the dashboard charts.
var insightMetrics = []string{
	"QUERIES_DIRECT",
	"QUERIES_INDIRECT",
	"QUERIES_CHAIN",
	"VIEWS_MAPS",
	"VIEWS_SEARCH",
	"ACTIONS_WEBSITE",
	"ACTIONS_PHONE",
	"ACTIONS_DRIVING_DIRECTIONS",
	"PHOTOS_VIEWS_MERCHANT",
	"PHOTOS_VIEWS_CUSTOMERS",
	"PHOTOS_COUNT_MERCHANT",
	"PHOTOS_COUNT_CUSTOMERS",
}

type InsightsService interface {
	Get(ctx context.Context, sess *session.Session, locationID, startDate, endDate string) (*models.Insights, bool, error)
}

type insightsService struct {
	client *gbp.Client
}

func NewInsightsService(client *gbp.Client) InsightsService {
	return &insightsService{client: client}
}

func (s *insightsService) Get(ctx context.Context, sess *session.Session, locationID, startDate, endDate string) (*models.Insights, bool, error) {
	if !sess.Authenticated() {
		return nil, false, ErrUnauthorized
	}
	if locationID == "" {
		return nil, false, fmt.Errorf("%w: location id is required", ErrInvalidRequest)
	}

	start, end, err := resolveDateRange(startDate, endDate)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	report, err := s.client.ReportInsights(ctx, sess.AccessToken, locationID, buildReportRequest(start, end))
	if err != nil {
		slog.Error("insights report failed, serving fallback", "location_id", locationID, "error", err)
		return fallbackInsights(), true, nil
	}

	return reshapeReport(report), false, nil
}

// resolveDateRange defaults to the trailing 30 days when either bound is
// missing.
func resolveDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		end := time.Now()
		return end.AddDate(0, 0, -30), end, nil
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", endDate)
	}
	return start, end, nil
}

func buildReportRequest(start, end time.Time) *transfer.ReportInsightsRequest {
	metricRequests := make([]transfer.MetricRequest, 0, len(insightMetrics))
	for _, metric := range insightMetrics {
		metricRequests = append(metricRequests, transfer.MetricRequest{
			Metric:  metric,
			Options: []string{"AGGREGATED_DAILY"},
		})
	}

	return &transfer.ReportInsightsRequest{
		BasicRequest: transfer.BasicMetricsRequest{
			MetricRequests: metricRequests,
			TimeRange: transfer.TimeRange{
				StartDate: transfer.Date{Year: start.Year(), Month: int(start.Month()), Day: start.Day()},
				EndDate:   transfer.Date{Year: end.Year(), Month: int(end.Month()), Day: end.Day()},
			},
		},
	}
}

// reshapeReport folds the per-metric totals into the dashboard aggregate:
// search queries count as impressions, website actions as clicks, the
// remaining actions as interactions, and map/search/photo views as views.
func reshapeReport(report *transfer.ReportInsightsResponse) *models.Insights {
	insights := &models.Insights{
		Posts: make([]models.PostInsights, 0),
	}

	for _, lm := range report.LocationMetrics {
		for _, mv := range lm.MetricValues {
			if mv.TotalValue == nil {
				continue
			}
			value := mv.TotalValue.Value

			switch {
			case strings.HasPrefix(mv.Metric, "QUERIES_"):
				insights.Impressions += value
			case mv.Metric == "ACTIONS_WEBSITE":
				insights.Clicks += value
			case strings.HasPrefix(mv.Metric, "ACTIONS_"):
				insights.Interactions += value
			case strings.HasPrefix(mv.Metric, "VIEWS_"), strings.HasPrefix(mv.Metric, "PHOTOS_VIEWS_"):
				insights.Views += value
			}
		}
	}

	return insights
}
