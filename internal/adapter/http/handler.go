package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"campaign-hub/internal/config/configs"
	"campaign-hub/internal/core/port"
)

// Services bundles the usecases served over HTTP.
type Services struct {
	Segments       port.SegmentUseCase
	RewardAccounts port.RewardAccountUseCase
	Campaigns      port.CampaignUseCase
	Reports        port.ReportUseCase
	Dashboard      port.DashboardUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router; trailing slashes are
// optional on every path.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, corsCfg configs.CORS, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", userHeader},
		MaxAge:         corsCfg.MaxAge,
	}))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(identify)

		r.Route("/segments", func(r chi.Router) {
			r.Get("/", h.handleListSegments)
			r.Post("/create", h.handleCreateSegment)
			r.Get("/{id}", h.handleGetSegment)
			r.Put("/{id}", h.handleUpdateSegment)
			r.Delete("/{id}/delete", h.handleDeleteSegment)
			r.Post("/{id}/refresh", h.handleRefreshSegment)
		})

		r.Route("/reward-accounts", func(r chi.Router) {
			r.Get("/", h.handleListRewardAccounts)
			r.Post("/create", h.handleCreateRewardAccount)
			r.Get("/{id}", h.handleGetRewardAccount)
			r.Put("/{id}", h.handleUpdateRewardAccount)
			r.Delete("/{id}/delete", h.handleDeleteRewardAccount)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/create", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}/delete", h.handleDeleteCampaign)
			r.Post("/{id}/submit", h.handleSubmitCampaign)
			r.Post("/{id}/approve", h.handleApproveCampaign)
			r.Get("/{id}/approval-trails", h.handleCampaignTrails)
			r.Get("/{id}/audience", h.handleCampaignAudience)
			r.Get("/{id}/channels", h.handleCampaignChannels)
			r.Get("/{id}/rewards", h.handleCampaignRewards)
			r.Get("/{id}/performance", h.handleCampaignPerformance)
			r.Get("/{id}/logs", h.handleCampaignLogs)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.handleListReports)
			r.Post("/create", h.handleCreateReport)
			r.Get("/{id}", h.handleGetReport)
			r.Put("/{id}", h.handleUpdateReport)
			r.Delete("/{id}/delete", h.handleDeleteReport)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/customer-metrics", h.handleCustomerMetrics)
			r.Get("/activity-trend", h.handleActivityTrend)
			r.Get("/churn-risk-distribution", h.handleChurnRisk)
			r.Get("/campaign-performance", h.handleCampaignPerformanceChart)
			r.Get("/recent-campaigns", h.handleRecentCampaigns)
			r.Get("/summary", h.handleDashboardSummary)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, envelope{"status": "ok"})
}

// logRequests logs one line per request after it completes.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
