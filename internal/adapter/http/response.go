package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// envelope is a JSON object response.
type envelope map[string]any

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// success writes {"status":"success", ...body}.
func (h *Handler) success(w http.ResponseWriter, status int, body envelope) {
	if body == nil {
		body = envelope{}
	}
	body["status"] = "success"
	h.writeJSON(w, status, body)
}

// problem is the client facing shape of an error.
type problem struct {
	status  int
	message string
	fields  map[string][]string
}

// classify maps domain errors to HTTP. Unknown errors are logged and
// reported as 500 without details.
func (h *Handler) classify(r *http.Request, err error) problem {
	var (
		verr     *domain.ValidationError
		conflict *domain.ConflictError
		nf       *domain.NotFoundError
		terr     *domain.InvalidTransitionError
	)
	switch {
	case errors.As(err, &verr):
		return problem{status: http.StatusBadRequest, message: "Validation failed.", fields: verr.Fields}
	case errors.As(err, &conflict):
		return problem{status: http.StatusBadRequest, message: "Validation failed.", fields: conflict.AsValidation().Fields}
	case errors.As(err, &nf):
		return problem{status: http.StatusNotFound, message: nf.Error()}
	case errors.As(err, &terr):
		return problem{status: http.StatusBadRequest, message: terr.Error()}
	}
	h.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	return problem{status: http.StatusInternalServerError, message: "Internal server error."}
}

// fail writes {"status":"error","message":...,"errors"?:...}.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	p := h.classify(r, err)
	body := envelope{"status": "error", "message": p.message}
	if len(p.fields) > 0 {
		body["errors"] = p.fields
	}
	h.writeJSON(w, p.status, body)
}

// errInvalidBody is returned for request bodies that are not valid JSON
// for the endpoint.
func errInvalidBody(err error) error {
	return domain.NewValidationError("non_field_errors", "Invalid JSON body: "+err.Error())
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody(err)
	}
	return nil
}

// nullable tells an absent field apart from an explicit null. json calls
// UnmarshalJSON only for keys present in the body.
type nullable[T any] struct {
	port.Optional[T]
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// pageRequest reads page and page_size. Malformed values fall back to the
// defaults; range clamping happens in domain.Paginate.
func pageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("page_size"))
	return domain.PageRequest{Page: page, PageSize: size}
}

type paginationDTO struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func toPagination(p domain.Pagination) paginationDTO {
	return paginationDTO{Total: p.Total, Page: p.Page, PageSize: p.PageSize, TotalPages: p.TotalPages}
}
