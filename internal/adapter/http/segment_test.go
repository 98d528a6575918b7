package httpadapter

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

const createSegmentBody = `{
	"name": "Dormant high value",
	"description": "No activity for 30 days",
	"config": {"autoRefresh": true, "refreshInterval": "weekly", "ruleLogic": "OR", "status": "active"},
	"filters": {
		"behavioral": {"lastActivityDays": 30},
		"value": {"tier": "gold"}
	}
}`

func TestCreateSegment(t *testing.T) {
	h, s := newTestHandler(t)
	refreshed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s.segments.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in port.SegmentInput) (*domain.Segment, error) {
			assert.Equal(t, "Dormant high value", in.Name)
			assert.True(t, in.AutoRefresh)
			assert.Equal(t, domain.RefreshWeekly, in.RefreshInterval)
			assert.Equal(t, domain.RuleOr, in.Criteria.RuleLogic)
			require.NotNil(t, in.Criteria.Behavioral)
			require.NotNil(t, in.Criteria.Value)
			assert.Equal(t, "gold", in.Criteria.Value.Tier)
			assert.Empty(t, in.Type)
			return &domain.Segment{
				ID:              "seg_20250314093000",
				Name:            in.Name,
				Type:            in.Criteria.DerivedType(),
				Criteria:        in.Criteria,
				AutoRefresh:     in.AutoRefresh,
				RefreshInterval: in.RefreshInterval,
				CustomerCount:   125000,
				LastRefresh:     refreshed,
				IsActive:        true,
			}, nil
		})

	rec := serve(h, http.MethodPost, "/api/segments/create/", createSegmentBody, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	seg := decodeJSON(t, rec)["segment"].(map[string]any)
	assert.Equal(t, "seg_20250314093000", seg["id"])
	assert.Equal(t, "behavioral", seg["segment_type"])
	assert.Equal(t, "Behavioral", seg["segment_type_display"])
	assert.Equal(t, "125,000", seg["formatted_customer_count"])
	assert.Equal(t, map[string]any{}, seg["metadata"])
	assert.Equal(t, "OR", seg["criteria"].(map[string]any)["rule_logic"])
}

func TestUpdateSegmentPassesOnlyPresentFields(t *testing.T) {
	h, s := newTestHandler(t)
	s.segments.EXPECT().Update(mock.Anything, "seg_1", mock.MatchedBy(func(p port.SegmentPatch) bool {
		return p.Name != nil && *p.Name == "Renamed" &&
			p.Criteria == nil && p.RuleLogic == nil && p.AutoRefresh == nil && p.Type == nil
	})).Return(&domain.Segment{ID: "seg_1", Name: "Renamed"}, nil)

	rec := serve(h, http.MethodPut, "/api/segments/seg_1", `{"name":"Renamed"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateSegmentPassesExplicitType(t *testing.T) {
	h, s := newTestHandler(t)
	s.segments.EXPECT().Update(mock.Anything, "seg_1", mock.MatchedBy(func(p port.SegmentPatch) bool {
		return p.Type != nil && *p.Type == domain.SegmentRisk
	})).Return(&domain.Segment{ID: "seg_1", Type: domain.SegmentRisk}, nil)

	rec := serve(h, http.MethodPut, "/api/segments/seg_1", `{"segment_type":"risk"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSegments(t *testing.T) {
	h, s := newTestHandler(t)
	updated := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s.segments.EXPECT().List(mock.Anything, port.SegmentFilter{Type: domain.SegmentValue, Search: "gold"}, domain.PageRequest{Page: 1}).
		Return(&port.SegmentPage{
			Segments:   []domain.Segment{{ID: "seg_1", Type: domain.SegmentValue, CustomerCount: 1500}},
			Pagination: domain.Pagination{Total: 1, Page: 1, PageSize: 10, TotalPages: 1},
			Summary:    port.SegmentSummary{TotalSegments: 1, TotalCustomers: 1500, LastUpdated: &updated},
		}, nil)

	rec := serve(h, http.MethodGet, "/api/segments?segment_type=value&search=gold&page=1", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(1500), summary["total_customers_in_segments"])
	assert.Equal(t, "2025-03-14T09:30:00Z", summary["last_updated"])
	assert.Equal(t, float64(10), body["pagination"].(map[string]any)["page_size"])
}

func TestRefreshAndDeleteSegment(t *testing.T) {
	h, s := newTestHandler(t)
	s.segments.EXPECT().Refresh(mock.Anything, "seg_1").Return(&domain.Segment{ID: "seg_1", CustomerCount: 42}, nil)
	s.segments.EXPECT().Delete(mock.Anything, "seg_1").Return(nil)

	rec := serve(h, http.MethodPost, "/api/segments/seg_1/refresh", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(42), decodeJSON(t, rec)["segment"].(map[string]any)["customer_count"])

	rec = serve(h, http.MethodDelete, "/api/segments/seg_1/delete/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Segment deleted successfully", decodeJSON(t, rec)["message"])
}
