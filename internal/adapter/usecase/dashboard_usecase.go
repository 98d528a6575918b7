package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

const (
	defaultRecentCampaigns = 5
	performanceCampaigns   = 10
)

// DashboardUseCase serves the overview screens from the Estimator and the
// campaign store.
type DashboardUseCase struct {
	campaigns port.CampaignRepository
	estimator port.Estimator
}

func NewDashboardUseCase(campaigns port.CampaignRepository, estimator port.Estimator) *DashboardUseCase {
	return &DashboardUseCase{campaigns: campaigns, estimator: estimator}
}

func checkPeriod(period string, allowed []string) error {
	if slices.Contains(allowed, period) {
		return nil
	}
	return domain.NewValidationError("period",
		fmt.Sprintf("Period must be one of %s.", strings.Join(allowed, ", ")))
}

// CustomerMetrics returns the customer base overview for period.
func (u *DashboardUseCase) CustomerMetrics(ctx context.Context, period string) (*port.CustomerMetrics, error) {
	if err := checkPeriod(period, port.MetricPeriods); err != nil {
		return nil, err
	}
	return u.estimator.CustomerMetrics(ctx, period)
}

// ActivityTrend returns the active versus dormant series for period.
func (u *DashboardUseCase) ActivityTrend(ctx context.Context, period string) (*port.ActivityTrend, error) {
	if err := checkPeriod(period, port.TrendPeriods); err != nil {
		return nil, err
	}
	return u.estimator.ActivityTrend(ctx, period)
}

func (u *DashboardUseCase) ChurnRiskDistribution(ctx context.Context) (*port.ChurnRiskDistribution, error) {
	return u.estimator.ChurnRiskDistribution(ctx)
}

// CampaignPerformance scores the newest campaigns.
func (u *DashboardUseCase) CampaignPerformance(ctx context.Context) (*port.PerformanceSummary, error) {
	campaigns, err := u.campaigns.List(ctx, port.CampaignFilter{}, performanceCampaigns, 0)
	if err != nil {
		return nil, err
	}
	return u.estimator.CampaignPerformanceSummary(ctx, campaigns)
}

// RecentCampaigns returns the newest campaigns. limit is clamped to
// [1, domain.MaxPageSize]; zero selects the default.
func (u *DashboardUseCase) RecentCampaigns(ctx context.Context, limit int) ([]domain.Campaign, error) {
	switch {
	case limit <= 0:
		limit = defaultRecentCampaigns
	case limit > domain.MaxPageSize:
		limit = domain.MaxPageSize
	}
	return u.campaigns.List(ctx, port.CampaignFilter{}, limit, 0)
}

// Summary builds every panel for period. The trend chart has no 24h view,
// so a 24h summary charts the last 7 days.
func (u *DashboardUseCase) Summary(ctx context.Context, period string) (*port.DashboardSummary, error) {
	if err := checkPeriod(period, port.MetricPeriods); err != nil {
		return nil, err
	}
	trendPeriod := period
	if period == "24h" {
		trendPeriod = "7d"
	}

	s := &port.DashboardSummary{Period: period}
	var err error
	if s.Metrics, err = u.estimator.CustomerMetrics(ctx, period); err != nil {
		return nil, fmt.Errorf("customer metrics: %w", err)
	}
	if s.Trend, err = u.estimator.ActivityTrend(ctx, trendPeriod); err != nil {
		return nil, fmt.Errorf("activity trend: %w", err)
	}
	if s.ChurnRisk, err = u.estimator.ChurnRiskDistribution(ctx); err != nil {
		return nil, fmt.Errorf("churn risk: %w", err)
	}
	if s.Performance, err = u.CampaignPerformance(ctx); err != nil {
		return nil, fmt.Errorf("campaign performance: %w", err)
	}
	if s.RecentCampaigns, err = u.RecentCampaigns(ctx, defaultRecentCampaigns); err != nil {
		return nil, fmt.Errorf("recent campaigns: %w", err)
	}
	return s, nil
}
