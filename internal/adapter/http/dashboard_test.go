package httpadapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

func TestCustomerMetrics(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().CustomerMetrics(mock.Anything, "24h").Return(&port.CustomerMetrics{
		Period: "24h",
		Days:   1,
		Metrics: []port.Metric{
			{Key: "total_customers", Current: 125000, Previous: 100000},
			{Key: "churn_rate", Current: 4.5, Previous: 5, IsRate: true},
		},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/dashboard/customer-metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "24h", body["period"])
	metrics := body["metrics"].(map[string]any)

	total := metrics["total_customers"].(map[string]any)
	assert.Equal(t, "125K", total["formatted"])
	assert.Equal(t, "+25.0%", total["change"])
	assert.Equal(t, "increase", total["change_type"])

	churn := metrics["churn_rate"].(map[string]any)
	assert.Equal(t, "4.5%", churn["formatted"])
	assert.Equal(t, "-10.0%", churn["change"])
	assert.Equal(t, "decrease", churn["change_type"])
}

func TestCustomerMetricsUnknownPeriod(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().CustomerMetrics(mock.Anything, "1y").
		Return(nil, domain.NewValidationError("period", "Period must be one of 24h, 7d, 30d, 90d."))

	rec := serve(h, http.MethodGet, "/api/dashboard/customer-metrics?period=1y", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecentCampaigns(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().RecentCampaigns(mock.Anything, 3).Return([]domain.Campaign{
		{ID: testCampaignID, Code: "CAMP_6B1F2C3D", Name: "Holiday Cashback", Status: domain.StatusPendingApproval},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/dashboard/recent-campaigns?limit=3", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	campaigns := decodeJSON(t, rec)["campaigns"].([]any)
	require.Len(t, campaigns, 1)
	c := campaigns[0].(map[string]any)
	assert.Equal(t, "Pending Approval", c["status_display"])
	assert.Equal(t, "CAMP_6B1F2C3D", c["campaign_id"])
}

func weekTrend() *port.ActivityTrend {
	return &port.ActivityTrend{
		Period:      "7d",
		Granularity: "daily",
		Days:        7,
		Labels:      []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Active:      []int64{8000, 8000, 8000, 8000, 8000, 8000, 8000},
		Dormant:     []int64{2000, 2000, 2000, 2000, 2000, 2000, 2000},
	}
}

func churnBands() *port.ChurnRiskDistribution {
	return &port.ChurnRiskDistribution{
		Timeframe:     "last_30_days",
		TotalAnalyzed: 125000,
		Bands: []port.RiskBand{
			{Level: port.RiskLow, Count: 15000},
			{Level: port.RiskMedium, Count: 7550},
			{Level: port.RiskHigh, Count: 2450},
		},
	}
}

func TestActivityTrend(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().ActivityTrend(mock.Anything, "7d").Return(weekTrend(), nil)

	rec := serve(h, http.MethodGet, "/api/dashboard/activity-trend", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "line", body["chart_type"])
	assert.Equal(t, "daily", body["granularity"])
	assert.Len(t, body["labels"], 7)

	datasets := body["datasets"].([]any)
	require.Len(t, datasets, 2)
	assert.Equal(t, "Active Users", datasets[0].(map[string]any)["label"])
	assert.Equal(t, "#ef4444", datasets[1].(map[string]any)["borderColor"])

	totals := body["totals"].(map[string]any)
	assert.Equal(t, float64(56000), totals["total_active"])
	assert.Equal(t, float64(14000), totals["total_dormant"])
	assert.Equal(t, 80.0, totals["active_percentage"])
	assert.Equal(t, 20.0, totals["dormant_percentage"])
	assert.Contains(t, body, "date_ranges")
}

func TestActivityTrendPeriods(t *testing.T) {
	for _, period := range []string{"30d", "90d"} {
		t.Run(period, func(t *testing.T) {
			h, s := newTestHandler(t)
			s.dashboard.EXPECT().ActivityTrend(mock.Anything, period).
				Return(&port.ActivityTrend{Period: period, Granularity: "daily"}, nil)

			rec := serve(h, http.MethodGet, "/api/dashboard/activity-trend?period="+period, "", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, period, decodeJSON(t, rec)["period"])
		})
	}
}

func TestActivityTrendUnknownPeriod(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().ActivityTrend(mock.Anything, "24h").
		Return(nil, domain.NewValidationError("period", "Period must be one of 7d, 30d, 90d."))

	rec := serve(h, http.MethodGet, "/api/dashboard/activity-trend?period=24h", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChurnRiskDistribution(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().ChurnRiskDistribution(mock.Anything).Return(churnBands(), nil)

	rec := serve(h, http.MethodGet, "/api/dashboard/churn-risk-distribution", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	analysis := decodeJSON(t, rec)["analysis"].(map[string]any)
	assert.Equal(t, "last_30_days", analysis["timeframe"])
	assert.Equal(t, float64(125000), analysis["total_customers_analyzed"])

	dist := analysis["distribution"].(map[string]any)
	low := dist["low_risk"].(map[string]any)
	assert.Equal(t, float64(15000), low["count"])
	assert.Equal(t, 60.0, low["percentage"])
	assert.NotContains(t, low, "recommendation")
	high := dist["high_risk"].(map[string]any)
	assert.Equal(t, 9.8, high["percentage"])
	assert.Equal(t, "Launch win-back campaign", high["recommendation"])

	summary := analysis["summary"].(map[string]any)
	assert.Equal(t, float64(2450), summary["total_at_high_risk"])
	assert.Equal(t, "2,450 customers require immediate attention", summary["key_insight"])
}

func TestCampaignPerformanceChart(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().CampaignPerformance(mock.Anything).Return(&port.PerformanceSummary{
		Scores: []port.CampaignScore{
			{Campaign: domain.Campaign{ID: testCampaignID, Code: "CAMP_6B1F2C3D", Name: "Holiday Cashback"}, Performance: 750, Target: 1000},
			{Campaign: domain.Campaign{Code: "WINBACK_Q1", Name: "Win-back"}, Performance: 250, Target: 1000},
		},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/dashboard/campaign-performance", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, float64(1000), body["total_performance"])
	assert.Equal(t, 50.0, body["average_completion_rate"])
	campaigns := body["campaigns"].([]any)
	require.Len(t, campaigns, 2)
	first := campaigns[0].(map[string]any)
	assert.Equal(t, "CAMP_6B1F2C3D", first["campaign_id"])
	assert.Equal(t, 75.0, first["completion_rate"])
	assert.NotEqual(t, first["color"], campaigns[1].(map[string]any)["color"])
}

func TestCampaignPerformanceChartEmpty(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().CampaignPerformance(mock.Anything).Return(&port.PerformanceSummary{}, nil)

	rec := serve(h, http.MethodGet, "/api/dashboard/campaign-performance", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Empty(t, body["campaigns"])
	assert.Equal(t, 0.0, body["average_completion_rate"])
}

func TestDashboardSummary(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().Summary(mock.Anything, "30d").Return(&port.DashboardSummary{
		Period:          "30d",
		Metrics:         &port.CustomerMetrics{Period: "30d", Metrics: []port.Metric{{Key: "total_customers", Current: 125000}}},
		Trend:           weekTrend(),
		ChurnRisk:       churnBands(),
		Performance:     &port.PerformanceSummary{},
		RecentCampaigns: []domain.Campaign{{ID: testCampaignID, Code: "CAMP_6B1F2C3D", Status: domain.StatusDraft}},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/dashboard/summary", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "30d", body["period"])
	assert.Contains(t, body, "timestamp")
	data := body["data"].(map[string]any)
	for _, key := range []string{"customer_metrics", "activity_trend", "churn_risk_distribution", "campaign_performance", "recent_campaigns"} {
		assert.Contains(t, data, key)
	}
	metrics := data["customer_metrics"].(map[string]any)["metrics"].(map[string]any)
	assert.Equal(t, "125K", metrics["total_customers"].(map[string]any)["formatted"])
	recent := data["recent_campaigns"].(map[string]any)["campaigns"].([]any)
	assert.Len(t, recent, 1)
}

func TestDashboardSummaryUnknownPeriod(t *testing.T) {
	h, s := newTestHandler(t)
	s.dashboard.EXPECT().Summary(mock.Anything, "1y").
		Return(nil, domain.NewValidationError("period", "Period must be one of 24h, 7d, 30d, 90d."))

	rec := serve(h, http.MethodGet, "/api/dashboard/summary?period=1y", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
