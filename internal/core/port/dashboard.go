package port

import (
	"context"

	"campaign-hub/internal/core/domain"
)

// Periods accepted by the customer metrics dashboard.
var MetricPeriods = []string{"24h", "7d", "30d", "90d"}

// Periods accepted by the activity trend chart.
var TrendPeriods = []string{"7d", "30d", "90d"}

// DashboardSummary combines every dashboard panel for one period.
type DashboardSummary struct {
	Period          string
	Metrics         *CustomerMetrics
	Trend           *ActivityTrend
	ChurnRisk       *ChurnRiskDistribution
	Performance     *PerformanceSummary
	RecentCampaigns []domain.Campaign
}

// DashboardUseCase serves the overview screens.
type DashboardUseCase interface {
	// CustomerMetrics returns a *domain.ValidationError for unknown periods.
	CustomerMetrics(ctx context.Context, period string) (*CustomerMetrics, error)
	// ActivityTrend accepts TrendPeriods only.
	ActivityTrend(ctx context.Context, period string) (*ActivityTrend, error)
	ChurnRiskDistribution(ctx context.Context) (*ChurnRiskDistribution, error)
	// CampaignPerformance scores the newest campaigns.
	CampaignPerformance(ctx context.Context) (*PerformanceSummary, error)
	RecentCampaigns(ctx context.Context, limit int) ([]domain.Campaign, error)
	// Summary builds every panel. A 24h period charts the 7d trend.
	Summary(ctx context.Context, period string) (*DashboardSummary, error)
}
