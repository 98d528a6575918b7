package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/port/mocks"
)

func TestDashboardCustomerMetrics(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	est := mocks.NewMockEstimator(t)
	uc := NewDashboardUseCase(campaigns, est)

	want := &port.CustomerMetrics{Period: "30d", Days: 30}
	est.EXPECT().CustomerMetrics(mock.Anything, "30d").Return(want, nil)

	got, err := uc.CustomerMetrics(context.Background(), "30d")
	require.NoError(t, err)
	assert.Same(t, want, got)

	_, err = uc.CustomerMetrics(context.Background(), "1y")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("period"))
}

func TestDashboardRecentCampaignsLimit(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	uc := NewDashboardUseCase(campaigns, mocks.NewMockEstimator(t))

	campaigns.EXPECT().List(mock.Anything, port.CampaignFilter{}, 5, 0).Return(nil, nil).Once()
	campaigns.EXPECT().List(mock.Anything, port.CampaignFilter{}, domain.MaxPageSize, 0).Return(nil, nil).Once()

	_, err := uc.RecentCampaigns(context.Background(), 0)
	require.NoError(t, err)
	_, err = uc.RecentCampaigns(context.Background(), 1000)
	require.NoError(t, err)
}

func TestDashboardActivityTrendPeriods(t *testing.T) {
	est := mocks.NewMockEstimator(t)
	uc := NewDashboardUseCase(mocks.NewMockCampaignRepository(t), est)

	want := &port.ActivityTrend{Period: "90d", Granularity: "weekly"}
	est.EXPECT().ActivityTrend(mock.Anything, "90d").Return(want, nil)

	got, err := uc.ActivityTrend(context.Background(), "90d")
	require.NoError(t, err)
	assert.Same(t, want, got)

	for _, period := range []string{"24h", "1y", ""} {
		_, err = uc.ActivityTrend(context.Background(), period)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, period)
		assert.Equal(t, []string{"Period must be one of 7d, 30d, 90d."}, verr.Fields["period"])
	}
}

func TestDashboardCampaignPerformance(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	est := mocks.NewMockEstimator(t)
	uc := NewDashboardUseCase(campaigns, est)

	listed := []domain.Campaign{{Name: "Win-back Q4"}, {Name: "Festive Bonus"}}
	campaigns.EXPECT().List(mock.Anything, port.CampaignFilter{}, performanceCampaigns, 0).Return(listed, nil)
	est.EXPECT().CampaignPerformanceSummary(mock.Anything, listed).
		Return(&port.PerformanceSummary{Scores: []port.CampaignScore{{Performance: 45_000, Target: 60_000}}}, nil)

	got, err := uc.CampaignPerformance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(45_000), got.Total())
	assert.InDelta(t, 75.0, got.AverageCompletion(), 0.001)
}

func TestDashboardSummary(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	est := mocks.NewMockEstimator(t)
	uc := NewDashboardUseCase(campaigns, est)

	est.EXPECT().CustomerMetrics(mock.Anything, "24h").Return(&port.CustomerMetrics{Period: "24h"}, nil)
	est.EXPECT().ActivityTrend(mock.Anything, "7d").Return(&port.ActivityTrend{Period: "7d"}, nil)
	est.EXPECT().ChurnRiskDistribution(mock.Anything).Return(&port.ChurnRiskDistribution{}, nil)
	campaigns.EXPECT().List(mock.Anything, port.CampaignFilter{}, performanceCampaigns, 0).Return(nil, nil)
	est.EXPECT().CampaignPerformanceSummary(mock.Anything, []domain.Campaign(nil)).Return(&port.PerformanceSummary{}, nil)
	campaigns.EXPECT().List(mock.Anything, port.CampaignFilter{}, defaultRecentCampaigns, 0).
		Return([]domain.Campaign{{Name: "Genna Alert"}}, nil)

	s, err := uc.Summary(context.Background(), "24h")
	require.NoError(t, err)
	assert.Equal(t, "24h", s.Period)
	assert.Equal(t, "7d", s.Trend.Period, "24h has no trend of its own")
	require.Len(t, s.RecentCampaigns, 1)
}

func TestDashboardSummaryStopsOnError(t *testing.T) {
	est := mocks.NewMockEstimator(t)
	uc := NewDashboardUseCase(mocks.NewMockCampaignRepository(t), est)

	est.EXPECT().CustomerMetrics(mock.Anything, "30d").Return(&port.CustomerMetrics{}, nil)
	est.EXPECT().ActivityTrend(mock.Anything, "30d").Return(nil, errors.New("analytics down"))

	_, err := uc.Summary(context.Background(), "30d")
	assert.EqualError(t, err, "activity trend: analytics down")

	_, err = uc.Summary(context.Background(), "1y")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
