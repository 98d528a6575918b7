package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// Report endpoints answer with {"success", "message", "data"} instead of
// the status envelope used elsewhere.

func (h *Handler) reportOK(w http.ResponseWriter, status int, message string, data any) {
	body := envelope{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	h.writeJSON(w, status, body)
}

func (h *Handler) reportFail(w http.ResponseWriter, r *http.Request, err error) {
	p := h.classify(r, err)
	body := envelope{"success": false, "message": p.message}
	if len(p.fields) > 0 {
		body["errors"] = p.fields
	}
	h.writeJSON(w, p.status, body)
}

func reportID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.NotFoundError{Entity: "Report", ID: raw}
	}
	return id, nil
}

type schedulingJSON struct {
	Enabled    bool                   `json:"enabled"`
	Frequency  domain.ReportFrequency `json:"frequency,omitempty"`
	Recipients []string               `json:"recipients"`
}

func (s schedulingJSON) toDomain() domain.ReportScheduling {
	return domain.ReportScheduling{Enabled: s.Enabled, Frequency: s.Frequency, Recipients: s.Recipients}
}

type reportRequest struct {
	Name         *string                  `json:"name"`
	Description  *string                  `json:"description"`
	SourceType   *domain.ReportSourceType `json:"source_type"`
	SourceConfig *domain.ReportSource     `json:"source_config"`
	ExportFormat *domain.ExportFormat     `json:"export_format"`
	Scheduling   *schedulingJSON          `json:"scheduling"`
}

type reportDTO struct {
	ID                   uuid.UUID               `json:"id"`
	Name                 string                  `json:"name"`
	Description          string                  `json:"description"`
	SourceType           domain.ReportSourceType `json:"source_type"`
	ExportFormat         domain.ExportFormat     `json:"export_format"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
	Configuration        domain.ReportSource     `json:"configuration"`
	Scheduling           schedulingJSON          `json:"scheduling"`
	ConfigurationSummary string                  `json:"configuration_summary"`
	SchedulingSummary    string                  `json:"scheduling_summary"`
	// History lists past generations; nothing generates reports yet.
	History []any `json:"history"`
}

func toReportDTO(rc *domain.ReportConfiguration) reportDTO {
	recipients := rc.Scheduling.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	return reportDTO{
		ID:            rc.ID,
		Name:          rc.Name,
		Description:   rc.Description,
		SourceType:    rc.SourceType,
		ExportFormat:  rc.ExportFormat,
		CreatedAt:     rc.CreatedAt,
		UpdatedAt:     rc.UpdatedAt,
		Configuration: rc.Configuration,
		Scheduling: schedulingJSON{
			Enabled:    rc.Scheduling.Enabled,
			Frequency:  rc.Scheduling.Frequency,
			Recipients: recipients,
		},
		ConfigurationSummary: rc.ConfigurationSummary(),
		SchedulingSummary:    rc.SchedulingSummary(),
		History:              []any{},
	}
}

func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.ReportFilter{SourceType: domain.ReportSourceType(q.Get("source_type")), Search: q.Get("search")}
	page, err := h.svc.Reports.List(r.Context(), f, pageRequest(r))
	if err != nil {
		h.reportFail(w, r, err)
		return
	}
	reports := make([]reportDTO, len(page.Reports))
	for i := range page.Reports {
		reports[i] = toReportDTO(&page.Reports[i])
	}
	h.writeJSON(w, http.StatusOK, envelope{
		"success":    true,
		"data":       reports,
		"pagination": toPagination(page.Pagination),
	})
}

func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := decode(r, &req); err != nil {
		h.reportFail(w, r, err)
		return
	}
	in := port.ReportInput{CreatedBy: callerRef(r.Context())}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.SourceType != nil {
		in.SourceType = *req.SourceType
	}
	if req.SourceConfig != nil {
		in.Configuration = *req.SourceConfig
	}
	if req.ExportFormat != nil {
		in.ExportFormat = *req.ExportFormat
	}
	if req.Scheduling != nil {
		in.Scheduling = req.Scheduling.toDomain()
	}
	rc, err := h.svc.Reports.Create(r.Context(), in)
	if err != nil {
		h.reportFail(w, r, err)
		return
	}
	h.reportOK(w, http.StatusCreated, "Report created successfully.", toReportDTO(rc))
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportID(r)
	if err != nil {
		h.reportFail(w, r, err)
		return
	}
	rc, err := h.svc.Reports.Get(r.Context(), id)
	if err != nil {
		h.reportFail(w, r, err)
		return
	}
	h.reportOK(w, http.StatusOK, "", toReportDTO(rc))
}

func (h *Handler) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportID(r)
	if err != nil {
		h.reportFail(w, r, err)
		return
	}
	var req reportRequest
	if err = decode(r, &req); err != nil {
		h.reportFail(w, r, err)
		return
	}
	p := port.ReportPatch{
		Name:          req.Name,
		Description:   req.Description,
		SourceType:    req.SourceType,
		Configuration: req.SourceConfig,
		ExportFormat:  req.ExportFormat,
	}
	if req.Scheduling != nil {
		s := req.Scheduling.toDomain()
		p.Scheduling = &s
	}
	rc, err := h.svc.Reports.Update(r.Context(), id, p)
	if err != nil {
		h.reportFail(w, r, err)
		return
	}
	h.reportOK(w, http.StatusOK, "Report updated successfully.", toReportDTO(rc))
}

func (h *Handler) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := reportID(r)
	if err != nil {
		h.reportFail(w, r, err)
		return
	}
	if err = h.svc.Reports.Delete(r.Context(), id); err != nil {
		h.reportFail(w, r, err)
		return
	}
	h.reportOK(w, http.StatusOK, "Report deleted successfully.", nil)
}
