package httpadapter

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

var testReportID = uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")

func TestCreateReportSQLWithoutQuery(t *testing.T) {
	h, s := newTestHandler(t)
	s.reports.EXPECT().Create(mock.Anything, port.ReportInput{
		Name:          "Revenue",
		SourceType:    domain.SourceCustom,
		Configuration: domain.ReportSource{CustomMode: domain.ModeSQL},
	}).Return(nil, domain.NewValidationError("configuration", "sql_query is required when custom_mode is 'sql'."))

	rec := serve(h, http.MethodPost, "/api/reports/create",
		`{"name":"Revenue","source_type":"custom","source_config":{"custom_mode":"sql"}}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["errors"].(map[string]any), "configuration")
}

func TestGetReport(t *testing.T) {
	h, s := newTestHandler(t)
	s.reports.EXPECT().Get(mock.Anything, testReportID).Return(&domain.ReportConfiguration{
		ID:         testReportID,
		Name:       "Weekly churn",
		SourceType: domain.SourceCustom,
		Configuration: domain.ReportSource{
			CustomMode: domain.ModeFilter,
			Filters:    []domain.ReportFilter{{Field: "churn_risk", Operator: "equals", Value: "high"}},
		},
		ExportFormat: domain.ExportCSV,
		Scheduling: domain.ReportScheduling{
			Enabled:    true,
			Frequency:  domain.FrequencyWeekly,
			Recipients: []string{"a@example.com", "b@example.com", "c@example.com"},
		},
		IsActive: true,
	}, nil)

	rec := serve(h, http.MethodGet, "/api/reports/"+testReportID.String()+"/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Custom Filter (1 filters)", data["configuration_summary"])
	assert.Equal(t, "Weekly to 3 recipients", data["scheduling_summary"])
	assert.Equal(t, []any{}, data["history"])
	cfg := data["configuration"].(map[string]any)
	assert.Equal(t, "filter", cfg["custom_mode"])
	assert.Len(t, cfg["filters"], 1)
}

func TestUpdateReportScheduling(t *testing.T) {
	h, s := newTestHandler(t)
	s.reports.EXPECT().Update(mock.Anything, testReportID, mock.MatchedBy(func(p port.ReportPatch) bool {
		return p.Name == nil && p.Scheduling != nil && !p.Scheduling.Enabled
	})).Return(&domain.ReportConfiguration{ID: testReportID, SourceType: domain.SourceCampaign}, nil)

	rec := serve(h, http.MethodPut, "/api/reports/"+testReportID.String(), `{"scheduling":{"enabled":false}}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "Report updated successfully.", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Not scheduled", data["scheduling_summary"])
	assert.Equal(t, "Campaign Report: N/A", data["configuration_summary"])
}

func TestDeleteReportNotFound(t *testing.T) {
	h, s := newTestHandler(t)
	s.reports.EXPECT().Delete(mock.Anything, testReportID).
		Return(&domain.NotFoundError{Entity: "Report", ID: testReportID.String()})

	rec := serve(h, http.MethodDelete, "/api/reports/"+testReportID.String()+"/delete", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Report not found", body["message"])
}
