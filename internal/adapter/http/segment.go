package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/format"
	"campaign-hub/internal/core/port"
)

// segmentConfig is the "config" section of the segment payloads.
type segmentConfig struct {
	AutoRefresh     *bool                   `json:"autoRefresh"`
	RefreshInterval *domain.RefreshInterval `json:"refreshInterval"`
	RuleLogic       *string                 `json:"ruleLogic"`
	// Status is accepted for compatibility; new segments are always active.
	Status string `json:"status"`
}

type segmentRequest struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	SegmentType domain.SegmentType      `json:"segment_type"`
	IsSystem    bool                    `json:"is_system"`
	Config      segmentConfig           `json:"config"`
	Filters     *domain.SegmentCriteria `json:"filters"`
	Metadata    map[string]any          `json:"metadata"`
}

type segmentDTO struct {
	ID                     string                 `json:"id"`
	Name                   string                 `json:"name"`
	Description            string                 `json:"description"`
	SegmentType            domain.SegmentType     `json:"segment_type"`
	SegmentTypeDisplay     string                 `json:"segment_type_display"`
	CustomerCount          int64                  `json:"customer_count"`
	FormattedCustomerCount string                 `json:"formatted_customer_count"`
	LastRefresh            time.Time              `json:"last_refresh"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
	AutoRefresh            bool                   `json:"auto_refresh"`
	RefreshInterval        domain.RefreshInterval `json:"refresh_interval"`
	Criteria               domain.SegmentCriteria `json:"criteria"`
	Metadata               map[string]any         `json:"metadata"`
	IsActive               bool                   `json:"is_active"`
	IsSystem               bool                   `json:"is_system"`
}

func toSegmentDTO(s *domain.Segment) segmentDTO {
	metadata := s.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return segmentDTO{
		ID:                     s.ID,
		Name:                   s.Name,
		Description:            s.Description,
		SegmentType:            s.Type,
		SegmentTypeDisplay:     format.Label(string(s.Type)),
		CustomerCount:          s.CustomerCount,
		FormattedCustomerCount: format.Grouped(s.CustomerCount),
		LastRefresh:            s.LastRefresh,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
		AutoRefresh:            s.AutoRefresh,
		RefreshInterval:        s.RefreshInterval,
		Criteria:               s.Criteria,
		Metadata:               metadata,
		IsActive:               s.IsActive,
		IsSystem:               s.IsSystem,
	}
}

func (h *Handler) handleListSegments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.SegmentFilter{Type: domain.SegmentType(q.Get("segment_type")), Search: q.Get("search")}
	page, err := h.svc.Segments.List(r.Context(), f, pageRequest(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	segments := make([]segmentDTO, len(page.Segments))
	for i := range page.Segments {
		segments[i] = toSegmentDTO(&page.Segments[i])
	}
	h.success(w, http.StatusOK, envelope{
		"segments":   segments,
		"pagination": toPagination(page.Pagination),
		"summary": envelope{
			"total_segments":              page.Summary.TotalSegments,
			"total_customers_in_segments": page.Summary.TotalCustomers,
			"last_updated":                page.Summary.LastUpdated,
		},
	})
}

func (h *Handler) handleCreateSegment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	in := port.SegmentInput{
		Type:      req.SegmentType,
		IsSystem:  req.IsSystem,
		Metadata:  req.Metadata,
		CreatedBy: callerRef(r.Context()),
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Filters != nil {
		in.Criteria = *req.Filters
	}
	if req.Config.AutoRefresh != nil {
		in.AutoRefresh = *req.Config.AutoRefresh
	}
	if req.Config.RefreshInterval != nil {
		in.RefreshInterval = *req.Config.RefreshInterval
	}
	if req.Config.RuleLogic != nil {
		in.Criteria.RuleLogic = *req.Config.RuleLogic
	}

	s, err := h.svc.Segments.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusCreated, envelope{
		"message": "Segment created successfully",
		"segment": toSegmentDTO(s),
	})
}

func (h *Handler) handleGetSegment(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Segments.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{"segment": toSegmentDTO(s)})
}

func (h *Handler) handleUpdateSegment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	p := port.SegmentPatch{
		Name:            req.Name,
		Description:     req.Description,
		Criteria:        req.Filters,
		RuleLogic:       req.Config.RuleLogic,
		AutoRefresh:     req.Config.AutoRefresh,
		RefreshInterval: req.Config.RefreshInterval,
		Metadata:        req.Metadata,
	}
	if req.SegmentType != "" {
		p.Type = &req.SegmentType
	}
	s, err := h.svc.Segments.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{
		"message": "Segment updated successfully",
		"segment": toSegmentDTO(s),
	})
}

func (h *Handler) handleDeleteSegment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Segments.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{"message": "Segment deleted successfully"})
}

func (h *Handler) handleRefreshSegment(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Segments.Refresh(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{
		"message": "Segment refreshed successfully",
		"segment": toSegmentDTO(s),
	})
}
