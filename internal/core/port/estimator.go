package port

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-hub/internal/core/domain"
)

// Estimator computes the business figures the backend does not own:
// segment sizes, delivery performance and customer base metrics. The core
// only stores and forwards what it returns.
type Estimator interface {
	SegmentSize(ctx context.Context, c domain.SegmentCriteria) (int64, error)
	CampaignPerformance(ctx context.Context, c *domain.Campaign) (*CampaignPerformance, error)
	CustomerMetrics(ctx context.Context, period string) (*CustomerMetrics, error)
	ActivityTrend(ctx context.Context, period string) (*ActivityTrend, error)
	ChurnRiskDistribution(ctx context.Context) (*ChurnRiskDistribution, error)
	// CampaignPerformanceSummary scores each campaign against its target.
	CampaignPerformanceSummary(ctx context.Context, campaigns []domain.Campaign) (*PerformanceSummary, error)
}

// CampaignPerformance holds delivery and conversion figures of a campaign.
type CampaignPerformance struct {
	Targeted    int64
	Sent        int64
	Delivered   int64
	Opened      int64
	Converted   int64
	RewardsPaid decimal.Decimal
}

// DeliveryRate is delivered over sent, in percent.
func (p CampaignPerformance) DeliveryRate() float64 {
	return ratio(p.Delivered, p.Sent)
}

// ConversionRate is converted over delivered, in percent.
func (p CampaignPerformance) ConversionRate() float64 {
	return ratio(p.Converted, p.Delivered)
}

func ratio(a, b int64) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) * 100 / float64(b)
}

// Metric is one figure of the customer base, with its previous period.
type Metric struct {
	Key      string
	Current  float64
	Previous float64
	// IsRate marks figures already expressed in percent.
	IsRate bool
}

// Change is the relative change against the previous period, in percent.
func (m Metric) Change() float64 {
	if m.Previous == 0 {
		return 0
	}
	return (m.Current - m.Previous) * 100 / m.Previous
}

// CustomerMetrics is the customer base overview for a period.
type CustomerMetrics struct {
	Period  string
	Days    int
	Metrics []Metric
}

// ActivityTrend is the active versus dormant customer series of a period.
type ActivityTrend struct {
	Period      string
	Granularity string
	Days        int
	Labels      []string
	Active      []int64
	Dormant     []int64
}

// Totals sums both series.
func (t ActivityTrend) Totals() (active, dormant int64) {
	for _, v := range t.Active {
		active += v
	}
	for _, v := range t.Dormant {
		dormant += v
	}
	return active, dormant
}

// Churn risk levels, lowest first.
const (
	RiskLow    = "low_risk"
	RiskMedium = "medium_risk"
	RiskHigh   = "high_risk"
)

// RiskBand counts the customers of one churn risk level.
type RiskBand struct {
	Level string
	Count int64
}

// ChurnRiskDistribution splits the analyzed customers by churn risk.
type ChurnRiskDistribution struct {
	Timeframe     string
	TotalAnalyzed int64
	Bands         []RiskBand
}

// Share is the percentage of banded customers in level.
func (d ChurnRiskDistribution) Share(level string) float64 {
	var total, n int64
	for _, b := range d.Bands {
		total += b.Count
		if b.Level == level {
			n = b.Count
		}
	}
	return ratio(n, total)
}

// Count returns the customers in level.
func (d ChurnRiskDistribution) Count(level string) int64 {
	for _, b := range d.Bands {
		if b.Level == level {
			return b.Count
		}
	}
	return 0
}

// CampaignScore is the delivered reach of a campaign against its target.
type CampaignScore struct {
	Campaign    domain.Campaign
	Performance int64
	Target      int64
}

// CompletionRate is performance over target, in percent.
func (s CampaignScore) CompletionRate() float64 {
	return ratio(s.Performance, s.Target)
}

// PerformanceSummary scores a set of campaigns.
type PerformanceSummary struct {
	Scores []CampaignScore
}

// Total sums the performance of every score.
func (s PerformanceSummary) Total() int64 {
	var n int64
	for _, sc := range s.Scores {
		n += sc.Performance
	}
	return n
}

// AverageCompletion is the mean completion rate, zero when empty.
func (s PerformanceSummary) AverageCompletion() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, sc := range s.Scores {
		sum += sc.CompletionRate()
	}
	return sum / float64(len(s.Scores))
}
