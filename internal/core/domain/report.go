package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportSourceType selects where a report pulls its data from.
type ReportSourceType string

const (
	SourceCampaign ReportSourceType = "campaign"
	SourceCustom   ReportSourceType = "custom"
)

// CustomMode selects how a custom report is defined.
type CustomMode string

const (
	ModeSQL    CustomMode = "sql"
	ModeFilter CustomMode = "filter"
)

// ExportFormat is the file format of a generated report.
type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportExcel ExportFormat = "excel"
	ExportCSV   ExportFormat = "csv"
)

// Valid reports whether f is a known export format.
func (f ExportFormat) Valid() bool {
	return f == ExportPDF || f == ExportExcel || f == ExportCSV
}

// ReportFrequency is how often a scheduled report is generated.
type ReportFrequency string

const (
	FrequencyDaily   ReportFrequency = "daily"
	FrequencyWeekly  ReportFrequency = "weekly"
	FrequencyMonthly ReportFrequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f ReportFrequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// Filter operators accepted by custom filter reports.
var filterOperators = map[string]bool{
	"equals":       true,
	"not_equals":   true,
	"greater_than": true,
	"less_than":    true,
	"contains":     true,
}

// ReportFilter is one condition of a filter-builder report.
type ReportFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// ReportSource is the configuration variant selected by the source type:
// CampaignID for campaign reports, CustomMode with SQLQuery or Filters for
// custom ones.
type ReportSource struct {
	CampaignID string         `json:"campaign_id,omitempty"`
	CustomMode CustomMode     `json:"custom_mode,omitempty"`
	SQLQuery   string         `json:"sql_query,omitempty"`
	Filters    []ReportFilter `json:"filters,omitempty"`
}

// ReportScheduling controls automated delivery.
type ReportScheduling struct {
	Enabled    bool
	Frequency  ReportFrequency
	Recipients []string
}

// ReportConfiguration is a saved export definition.
type ReportConfiguration struct {
	ID            uuid.UUID
	Name          string
	Description   string
	SourceType    ReportSourceType
	Configuration ReportSource
	ExportFormat  ExportFormat
	Scheduling    ReportScheduling
	IsActive      bool
	CreatedBy     *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ConfigurationSummary is a one-line description of the data source.
func (r ReportConfiguration) ConfigurationSummary() string {
	if r.SourceType == SourceCampaign {
		id := r.Configuration.CampaignID
		if id == "" {
			id = "N/A"
		}
		return "Campaign Report: " + id
	}
	if r.Configuration.CustomMode == ModeSQL {
		return "Custom SQL Query"
	}
	return fmt.Sprintf("Custom Filter (%d filters)", len(r.Configuration.Filters))
}

// SchedulingSummary describes the delivery schedule.
func (r ReportConfiguration) SchedulingSummary() string {
	if !r.Scheduling.Enabled {
		return "Not scheduled"
	}
	freq := string(r.Scheduling.Frequency)
	if freq != "" {
		freq = strings.ToUpper(freq[:1]) + freq[1:]
	}
	return fmt.Sprintf("%s to %d recipients", freq, len(r.Scheduling.Recipients))
}
