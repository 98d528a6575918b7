package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDerivedType(t *testing.T) {
	tests := []struct {
		name     string
		criteria SegmentCriteria
		want     SegmentType
	}{
		{"empty", SegmentCriteria{}, SegmentCustom},
		{"behavioral wins", SegmentCriteria{Behavioral: &BehavioralCriteria{}, Demographic: &DemographicCriteria{}, Value: &ValueCriteria{}}, SegmentBehavioral},
		{"demographic over value", SegmentCriteria{Demographic: &DemographicCriteria{}, Value: &ValueCriteria{}}, SegmentDemographic},
		{"value", SegmentCriteria{Value: &ValueCriteria{Tier: "gold"}}, SegmentValue},
		{"activity", SegmentCriteria{Activity: &ActivityCriteria{}}, SegmentActivity},
		{"risk", SegmentCriteria{Risk: &RiskCriteria{ChurnRisk: "high"}}, SegmentRisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.DerivedType())
		})
	}
}

func TestNewSegmentID(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 30, 5, 0, time.FixedZone("EAT", 3*60*60))
	assert.Equal(t, "seg_20250314093005", NewSegmentID(now, false))
	assert.Equal(t, "sys_seg_20250314093005", NewSegmentID(now, true))
}

func TestGenerateCampaignCode(t *testing.T) {
	id := uuid.MustParse("0f8e5b1c-2d3a-4e5f-8a9b-0c1d2e3f4a5b")
	assert.Equal(t, "CAMP_0F8E5B1C", GenerateCampaignCode(id))
}

func TestReportSummaries(t *testing.T) {
	r := ReportConfiguration{SourceType: SourceCampaign, Configuration: ReportSource{CampaignID: "CAMP_1"}}
	assert.Equal(t, "Campaign Report: CAMP_1", r.ConfigurationSummary())
	assert.Equal(t, "Not scheduled", r.SchedulingSummary())

	r = ReportConfiguration{
		SourceType:    SourceCustom,
		Configuration: ReportSource{CustomMode: ModeSQL, SQLQuery: "SELECT 1"},
		Scheduling:    ReportScheduling{Enabled: true, Frequency: FrequencyMonthly, Recipients: []string{"a@example.com"}},
	}
	assert.Equal(t, "Custom SQL Query", r.ConfigurationSummary())
	assert.Equal(t, "Monthly to 1 recipients", r.SchedulingSummary())

	r.Configuration = ReportSource{CustomMode: ModeFilter, Filters: make([]ReportFilter, 2)}
	assert.Equal(t, "Custom Filter (2 filters)", r.ConfigurationSummary())
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		req        PageRequest
		total      int
		want       Pagination
		wantOffset int
	}{
		{"defaults", PageRequest{}, 25, Pagination{Total: 25, Page: 1, PageSize: 10, TotalPages: 3}, 0},
		{"last page", PageRequest{Page: 3, PageSize: 10}, 25, Pagination{Total: 25, Page: 3, PageSize: 10, TotalPages: 3}, 20},
		{"page past the end snaps back", PageRequest{Page: 9, PageSize: 10}, 25, Pagination{Total: 25, Page: 3, PageSize: 10, TotalPages: 3}, 20},
		{"size clamped", PageRequest{Page: 1, PageSize: 500}, 25, Pagination{Total: 25, Page: 1, PageSize: MaxPageSize, TotalPages: 1}, 0},
		{"empty", PageRequest{Page: 2}, 0, Pagination{Total: 0, Page: 1, PageSize: 10, TotalPages: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, offset := Paginate(tt.req, tt.total)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
