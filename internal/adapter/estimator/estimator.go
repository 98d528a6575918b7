// Package estimator provides a deterministic stand-in for the analytics
// backend. Figures are derived from a murmur3 hash of the input, so the same
// criteria, campaign or period always yield the same numbers.
package estimator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/twmb/murmur3"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// Customer base the figures are scaled against.
const (
	minSegmentSize = 1_000
	maxSegmentSize = 150_000
	baseCustomers  = 2_400_000
)

var periodDays = map[string]int{
	"24h": 1,
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

// Estimator implements port.Estimator.
type Estimator struct {
	seed string
}

// New returns an Estimator. Different seeds produce different but equally
// stable figures.
func New(seed string) *Estimator {
	return &Estimator{seed: seed}
}

func (e *Estimator) hash(parts ...string) uint64 {
	h := murmur3.New64()
	_, _ = h.Write([]byte(e.seed))
	for _, p := range parts {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(p))
	}
	return h.Sum64()
}

// spread maps h into [lo, hi].
func spread(h uint64, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + int64(h%uint64(hi-lo+1))
}

// SegmentSize returns the number of customers matching c.
func (e *Estimator) SegmentSize(ctx context.Context, c domain.SegmentCriteria) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("encode criteria: %w", err)
	}
	size := spread(e.hash("segment", string(raw)), minSegmentSize, maxSegmentSize)
	// AND narrows, OR widens.
	if c.RuleLogic == domain.RuleOr {
		size += size / 4
	}
	return size, nil
}

// CampaignPerformance returns delivery figures for c. Campaigns that were
// never scheduled have not sent anything yet.
func (e *Estimator) CampaignPerformance(ctx context.Context, c *domain.Campaign) (*port.CampaignPerformance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := &port.CampaignPerformance{Targeted: c.TotalTargetedCustomers, RewardsPaid: decimal.Zero}
	switch c.Status {
	case domain.StatusDraft, domain.StatusPendingApproval, domain.StatusScheduled:
		return p, nil
	}

	h := e.hash("campaign", c.ID.String())
	p.Sent = p.Targeted * spread(h, 90, 100) / 100
	p.Delivered = p.Sent * spread(h>>8, 85, 99) / 100
	p.Opened = p.Delivered * spread(h>>16, 20, 60) / 100
	p.Converted = p.Opened * spread(h>>24, 5, 30) / 100
	if c.RewardValue.Valid {
		p.RewardsPaid = c.RewardValue.Decimal.Mul(decimal.NewFromInt(p.Converted))
	}
	return p, nil
}

// CustomerMetrics returns the customer base overview for period.
func (e *Estimator) CustomerMetrics(ctx context.Context, period string) (*port.CustomerMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	days, ok := periodDays[period]
	if !ok {
		return nil, domain.NewValidationError("period", fmt.Sprintf("Unknown period %q.", period))
	}

	metric := func(key string, lo, hi int64) port.Metric {
		h := e.hash("metric", key, period)
		cur := spread(h, lo, hi)
		prev := spread(h>>20, lo, hi)
		return port.Metric{Key: key, Current: float64(cur), Previous: float64(prev)}
	}
	rate := func(key string, lo, hi int64) port.Metric {
		m := metric(key, lo*10, hi*10)
		m.Current /= 10
		m.Previous /= 10
		m.IsRate = true
		return m
	}

	d := int64(days)
	return &port.CustomerMetrics{
		Period: period,
		Days:   days,
		Metrics: []port.Metric{
			metric("total_customers", baseCustomers, baseCustomers+d*1_500),
			metric("active_customers", baseCustomers/2, baseCustomers/2+d*1_200),
			metric("new_customers", d*800, d*1_600),
			rate("churn_rate", 2, 9),
			rate("engagement_rate", 30, 70),
		},
	}, nil
}

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ActivityTrend returns daily points for 7d and 30d and weekly points for
// 90d.
func (e *Estimator) ActivityTrend(ctx context.Context, period string) (*port.ActivityTrend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := &port.ActivityTrend{Period: period, Granularity: "daily"}
	var activeLo, activeHi, dormantLo, dormantHi int64 = 7_500, 10_200, 2_600, 4_500
	switch period {
	case "7d":
		t.Days = 7
		t.Labels = append([]string(nil), weekdays...)
	case "30d":
		t.Days = 30
		for i := 1; i <= 30; i++ {
			t.Labels = append(t.Labels, strconv.Itoa(i))
		}
	case "90d":
		t.Days = 90
		t.Granularity = "weekly"
		for i := 1; i <= 12; i++ {
			t.Labels = append(t.Labels, fmt.Sprintf("Week %d", i))
		}
		activeLo, activeHi, dormantLo, dormantHi = 55_000, 66_000, 9_500, 15_000
	default:
		return nil, domain.NewValidationError("period", fmt.Sprintf("Unknown period %q.", period))
	}

	t.Active = make([]int64, len(t.Labels))
	t.Dormant = make([]int64, len(t.Labels))
	for i, label := range t.Labels {
		h := e.hash("trend", period, label)
		t.Active[i] = spread(h, activeLo, activeHi)
		t.Dormant[i] = spread(h>>24, dormantLo, dormantHi)
	}
	return t, nil
}

// ChurnRiskDistribution bands the customers analyzed over the last 30 days.
func (e *Estimator) ChurnRiskDistribution(ctx context.Context) (*port.ChurnRiskDistribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h := e.hash("churn")
	return &port.ChurnRiskDistribution{
		Timeframe:     "last_30_days",
		TotalAnalyzed: baseCustomers,
		Bands: []port.RiskBand{
			{Level: port.RiskLow, Count: spread(h, 15_000, 20_000)},
			{Level: port.RiskMedium, Count: spread(h>>16, 6_000, 9_000)},
			{Level: port.RiskHigh, Count: spread(h>>32, 1_500, 3_000)},
		},
	}, nil
}

// CampaignPerformanceSummary scores each campaign by the customers reached
// against the customers targeted.
func (e *Estimator) CampaignPerformanceSummary(ctx context.Context, campaigns []domain.Campaign) (*port.PerformanceSummary, error) {
	out := &port.PerformanceSummary{Scores: make([]port.CampaignScore, 0, len(campaigns))}
	for i := range campaigns {
		p, err := e.CampaignPerformance(ctx, &campaigns[i])
		if err != nil {
			return nil, err
		}
		out.Scores = append(out.Scores, port.CampaignScore{
			Campaign:    campaigns[i],
			Performance: p.Delivered,
			Target:      p.Targeted,
		})
	}
	return out, nil
}
