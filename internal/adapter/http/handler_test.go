package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/config/configs"
	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/port/mocks"
)

type testServices struct {
	segments  *mocks.MockSegmentUseCase
	accounts  *mocks.MockRewardAccountUseCase
	campaigns *mocks.MockCampaignUseCase
	reports   *mocks.MockReportUseCase
	dashboard *mocks.MockDashboardUseCase
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	s := testServices{
		segments:  mocks.NewMockSegmentUseCase(t),
		accounts:  mocks.NewMockRewardAccountUseCase(t),
		campaigns: mocks.NewMockCampaignUseCase(t),
		reports:   mocks.NewMockReportUseCase(t),
		dashboard: mocks.NewMockDashboardUseCase(t),
	}
	h := NewHandler(Services{
		Segments:       s.segments,
		RewardAccounts: s.accounts,
		Campaigns:      s.campaigns,
		Reports:        s.reports,
		Dashboard:      s.dashboard,
	}, configs.CORS{AllowedOrigins: []string{"*"}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, s
}

// serve runs one request through the router. user, when not empty, is
// sent as the caller identity.
func serve(h *Handler, method, path, body, user string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(userHeader, user)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeJSON(t, rec)["status"])
}

func TestIdentify(t *testing.T) {
	t.Run("malformed header", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(h, http.MethodGet, "/api/segments", "", "admin")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error", decodeJSON(t, rec)["status"])
	})

	t.Run("caller stored in context", func(t *testing.T) {
		h, s := newTestHandler(t)
		s.segments.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(_ context.Context, in port.SegmentInput) {
				require.NotNil(t, in.CreatedBy)
				assert.Equal(t, int64(42), *in.CreatedBy)
			}).
			Return(&domain.Segment{ID: "seg_1", Name: "x"}, nil)

		rec := serve(h, http.MethodPost, "/api/segments/create", `{"name":"x"}`, "42")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestTrailingSlashIsOptional(t *testing.T) {
	h, s := newTestHandler(t)
	s.segments.EXPECT().List(mock.Anything, port.SegmentFilter{}, domain.PageRequest{}).
		Return(&port.SegmentPage{Pagination: domain.Pagination{Page: 1, PageSize: 10, TotalPages: 1}}, nil).
		Times(2)

	for _, path := range []string{"/api/segments", "/api/segments/"} {
		rec := serve(h, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", domain.NewValidationError("name", "This field is required."), http.StatusBadRequest, "Validation failed."},
		{"conflict", &domain.ConflictError{Field: "account_id", Message: "Account ID must be unique."}, http.StatusBadRequest, "Validation failed."},
		{"not found", &domain.NotFoundError{Entity: "Segment", ID: "seg_x"}, http.StatusNotFound, "Segment not found"},
		{"transition", &domain.InvalidTransitionError{Action: "submit", From: domain.StatusScheduled}, http.StatusBadRequest, `cannot submit a campaign in status "scheduled"`},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "Internal server error."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			s.segments.EXPECT().Get(mock.Anything, "seg_x").Return(nil, tt.err)

			rec := serve(h, http.MethodGet, "/api/segments/seg_x", "", "")

			assert.Equal(t, tt.code, rec.Code)
			body := decodeJSON(t, rec)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestInvalidJSONBody(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/reward-accounts/create", `{"account_id":`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decodeJSON(t, rec)["errors"].(map[string]any)
	assert.Contains(t, errs, "non_field_errors")
}
