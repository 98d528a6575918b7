package estimator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
)

func TestSegmentSizeIsStable(t *testing.T) {
	e := New("test")
	days := 30
	c := domain.SegmentCriteria{
		Behavioral: &domain.BehavioralCriteria{LastActivityDays: &days},
		RuleLogic:  domain.RuleAnd,
	}

	first, err := e.SegmentSize(context.Background(), c)
	require.NoError(t, err)
	second, err := e.SegmentSize(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, int64(minSegmentSize))
	assert.LessOrEqual(t, first, int64(maxSegmentSize))
}

func TestSegmentSizeDependsOnSeed(t *testing.T) {
	c := domain.SegmentCriteria{Demographic: &domain.DemographicCriteria{Region: "Addis Ababa"}}
	a, err := New("a").SegmentSize(context.Background(), c)
	require.NoError(t, err)
	b, err := New("b").SegmentSize(context.Background(), c)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSegmentSizeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New("").SegmentSize(ctx, domain.SegmentCriteria{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCampaignPerformance(t *testing.T) {
	e := New("test")
	c := &domain.Campaign{
		ID:                     uuid.MustParse("5b7c3f0e-8a3c-4b61-9b1e-1f2a3b4c5d6e"),
		Status:                 domain.StatusDraft,
		TotalTargetedCustomers: 10_000,
		RewardValue:            decimal.NewNullDecimal(decimal.NewFromInt(50)),
	}

	t.Run("not started", func(t *testing.T) {
		p, err := e.CampaignPerformance(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, int64(10_000), p.Targeted)
		assert.Zero(t, p.Sent)
		assert.True(t, p.RewardsPaid.IsZero())
		assert.Zero(t, p.DeliveryRate())
	})

	t.Run("running", func(t *testing.T) {
		c := *c
		c.Status = domain.StatusRunning
		p, err := e.CampaignPerformance(context.Background(), &c)
		require.NoError(t, err)

		assert.LessOrEqual(t, p.Sent, p.Targeted)
		assert.LessOrEqual(t, p.Delivered, p.Sent)
		assert.LessOrEqual(t, p.Opened, p.Delivered)
		assert.LessOrEqual(t, p.Converted, p.Opened)
		assert.True(t, p.RewardsPaid.Equal(decimal.NewFromInt(50*p.Converted)))

		again, err := e.CampaignPerformance(context.Background(), &c)
		require.NoError(t, err)
		assert.Equal(t, p, again)
	})
}

func TestCustomerMetrics(t *testing.T) {
	e := New("test")

	m, err := e.CustomerMetrics(context.Background(), "7d")
	require.NoError(t, err)
	assert.Equal(t, 7, m.Days)
	require.Len(t, m.Metrics, 5)
	assert.Equal(t, "total_customers", m.Metrics[0].Key)
	assert.False(t, m.Metrics[0].IsRate)
	assert.True(t, m.Metrics[3].IsRate)
	assert.GreaterOrEqual(t, m.Metrics[3].Current, 2.0)
	assert.LessOrEqual(t, m.Metrics[3].Current, 9.0)

	_, err = e.CustomerMetrics(context.Background(), "1y")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("period"))
}

func TestActivityTrend(t *testing.T) {
	e := New("test")
	tests := []struct {
		period      string
		points      int
		granularity string
	}{
		{"7d", 7, "daily"},
		{"30d", 30, "daily"},
		{"90d", 12, "weekly"},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			trend, err := e.ActivityTrend(context.Background(), tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.granularity, trend.Granularity)
			assert.Len(t, trend.Labels, tt.points)
			assert.Len(t, trend.Active, tt.points)
			assert.Len(t, trend.Dormant, tt.points)
			for i := range trend.Active {
				assert.Greater(t, trend.Active[i], trend.Dormant[i])
			}

			again, err := e.ActivityTrend(context.Background(), tt.period)
			require.NoError(t, err)
			assert.Equal(t, trend, again)
		})
	}

	_, err := e.ActivityTrend(context.Background(), "24h")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("period"))
}

func TestChurnRiskDistribution(t *testing.T) {
	d, err := New("test").ChurnRiskDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Bands, 3)
	assert.Greater(t, d.Count("low_risk"), d.Count("medium_risk"))
	assert.Greater(t, d.Count("medium_risk"), d.Count("high_risk"))
	assert.InDelta(t, 100, d.Share("low_risk")+d.Share("medium_risk")+d.Share("high_risk"), 0.001)
}

func TestCampaignPerformanceSummary(t *testing.T) {
	e := New("test")
	campaigns := []domain.Campaign{
		{ID: uuid.MustParse("5b7c3f0e-8a3c-4b61-9b1e-1f2a3b4c5d6e"), Status: domain.StatusRunning, TotalTargetedCustomers: 60_000},
		{ID: uuid.MustParse("6c8d4f1f-9b4d-4c72-8c2f-2a3b4c5d6e7f"), Status: domain.StatusDraft, TotalTargetedCustomers: 1_000},
	}

	s, err := e.CampaignPerformanceSummary(context.Background(), campaigns)
	require.NoError(t, err)
	require.Len(t, s.Scores, 2)
	assert.Equal(t, int64(60_000), s.Scores[0].Target)
	assert.Positive(t, s.Scores[0].Performance)
	assert.LessOrEqual(t, s.Scores[0].Performance, s.Scores[0].Target)
	assert.Zero(t, s.Scores[1].Performance, "drafts have reached nobody")
	assert.Equal(t, s.Scores[0].Performance, s.Total())
}
