package httpadapter

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/format"
	"campaign-hub/internal/core/port"
)

const (
	defaultMetricPeriod  = "24h"
	defaultTrendPeriod   = "7d"
	defaultSummaryPeriod = "30d"
)

// Chart colors handed to the dashboard front end.
var (
	activeColor  = [2]string{"#3b82f6", "rgba(59, 130, 246, 0.1)"}
	dormantColor = [2]string{"#ef4444", "rgba(239, 68, 68, 0.1)"}
	barColors    = []string{"#8b5cf6", "#3b82f6", "#10b981", "#f59e0b", "#ec4899", "#14b8a6"}
)

var riskDescriptions = map[string]string{
	port.RiskLow:    "Customers with low probability of churning",
	port.RiskMedium: "Customers showing some risk indicators",
	port.RiskHigh:   "Customers at high risk of churning",
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func queryPeriod(r *http.Request, def string) string {
	if p := r.URL.Query().Get("period"); p != "" {
		return p
	}
	return def
}

func metricDTO(m port.Metric) envelope {
	formatted := format.Count(int64(math.Round(m.Current)))
	if m.IsRate {
		formatted = format.Percent(m.Current)
	}
	change := m.Change()
	changeType := "increase"
	if change < 0 {
		changeType = "decrease"
	}
	return envelope{
		"current":         m.Current,
		"formatted":       formatted,
		"previous_period": m.Previous,
		"change":          fmt.Sprintf("%+.1f%%", change),
		"change_type":     changeType,
	}
}

func metricsBody(cm *port.CustomerMetrics, now time.Time) envelope {
	metrics := make(envelope, len(cm.Metrics))
	for _, m := range cm.Metrics {
		metrics[m.Key] = metricDTO(m)
	}
	return envelope{
		"period":     cm.Period,
		"metrics":    metrics,
		"updated_at": now,
	}
}

func dataset(label string, data []int64, color [2]string) envelope {
	return envelope{
		"label":           label,
		"data":            data,
		"borderColor":     color[0],
		"backgroundColor": color[1],
		"fill":            true,
		"tension":         0.4,
	}
}

func trendBody(t *port.ActivityTrend, now time.Time) envelope {
	active, dormant := t.Totals()
	var activePct, dormantPct float64
	if total := active + dormant; total > 0 {
		activePct = round1(float64(active) * 100 / float64(total))
		dormantPct = round1(float64(dormant) * 100 / float64(total))
	}
	return envelope{
		"period":      t.Period,
		"chart_type":  "line",
		"granularity": t.Granularity,
		"labels":      t.Labels,
		"datasets": []envelope{
			dataset("Active Users", t.Active, activeColor),
			dataset("Dormant Users", t.Dormant, dormantColor),
		},
		"totals": envelope{
			"total_active":       active,
			"total_dormant":      dormant,
			"active_percentage":  activePct,
			"dormant_percentage": dormantPct,
		},
		"date_ranges": envelope{
			"start_date": now.AddDate(0, 0, -t.Days),
			"end_date":   now,
		},
		"updated_at": now,
	}
}

func churnBody(d *port.ChurnRiskDistribution, now time.Time) envelope {
	dist := make(envelope, len(d.Bands))
	for _, b := range d.Bands {
		band := envelope{
			"count":       b.Count,
			"percentage":  round1(d.Share(b.Level)),
			"description": riskDescriptions[b.Level],
		}
		if b.Level == port.RiskHigh {
			band["recommendation"] = "Launch win-back campaign"
		}
		dist[b.Level] = band
	}
	high := d.Count(port.RiskHigh)
	return envelope{
		"analysis": envelope{
			"timestamp":                now,
			"timeframe":                d.Timeframe,
			"total_customers_analyzed": d.TotalAnalyzed,
			"distribution":             dist,
			"summary": envelope{
				"total_at_high_risk":   high,
				"high_risk_percentage": round1(d.Share(port.RiskHigh)),
				"key_insight":          format.Grouped(high) + " customers require immediate attention",
			},
		},
	}
}

func performanceBody(s *port.PerformanceSummary, now time.Time) envelope {
	campaigns := make([]envelope, len(s.Scores))
	for i, sc := range s.Scores {
		campaigns[i] = envelope{
			"id":              sc.Campaign.ID,
			"campaign_id":     sc.Campaign.Code,
			"name":            sc.Campaign.Name,
			"status":          sc.Campaign.Status,
			"performance":     sc.Performance,
			"target":          sc.Target,
			"completion_rate": round1(sc.CompletionRate()),
			"color":           barColors[i%len(barColors)],
		}
	}
	return envelope{
		"campaigns":               campaigns,
		"total_performance":       s.Total(),
		"average_completion_rate": math.Round(s.AverageCompletion()*100) / 100,
		"updated_at":              now,
	}
}

func recentBody(campaigns []domain.Campaign) envelope {
	out := make([]envelope, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		out[i] = envelope{
			"id":             c.ID,
			"campaign_id":    c.Code,
			"name":           c.Name,
			"type":           c.Type,
			"status":         c.Status,
			"status_display": format.Label(string(c.Status)),
			"target":         c.TotalTargetedCustomers,
			"start_date":     c.StartDate,
			"end_date":       c.EndDate,
		}
	}
	return envelope{"campaigns": out}
}

func (h *Handler) handleCustomerMetrics(w http.ResponseWriter, r *http.Request) {
	cm, err := h.svc.Dashboard.CustomerMetrics(r.Context(), queryPeriod(r, defaultMetricPeriod))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, metricsBody(cm, time.Now().UTC()))
}

func (h *Handler) handleActivityTrend(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Dashboard.ActivityTrend(r.Context(), queryPeriod(r, defaultTrendPeriod))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, trendBody(t, time.Now().UTC()))
}

func (h *Handler) handleChurnRisk(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard.ChurnRiskDistribution(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, churnBody(d, time.Now().UTC()))
}

func (h *Handler) handleCampaignPerformanceChart(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Dashboard.CampaignPerformance(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, performanceBody(s, time.Now().UTC()))
}

func (h *Handler) handleRecentCampaigns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	campaigns, err := h.svc.Dashboard.RecentCampaigns(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, recentBody(campaigns))
}

func (h *Handler) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Dashboard.Summary(r.Context(), queryPeriod(r, defaultSummaryPeriod))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	now := time.Now().UTC()
	h.success(w, http.StatusOK, envelope{
		"period": s.Period,
		"data": envelope{
			"customer_metrics":        metricsBody(s.Metrics, now),
			"activity_trend":          trendBody(s.Trend, now),
			"churn_risk_distribution": churnBody(s.ChurnRisk, now),
			"campaign_performance":    performanceBody(s.Performance, now),
			"recent_campaigns":        recentBody(s.RecentCampaigns),
		},
		"timestamp": now,
	})
}
