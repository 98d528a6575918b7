package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// The Validate* functions are pure: they inspect a fully merged entity and
// report every violated invariant at once. Uniqueness needs the store and
// is checked by the use cases, which merge their findings into the same
// ValidationError.

// Column limits of the relational schema.
const (
	maxAccountIDLen    = 100
	maxNameLen         = 255
	maxSegmentNameLen  = 200
	maxCampaignCodeLen = 50
)

// ValidateRewardAccount checks the invariants of a reward account.
func ValidateRewardAccount(a *RewardAccount) *ValidationError {
	v := &ValidationError{}
	required(v, "account_id", a.AccountID, maxAccountIDLen)
	required(v, "account_name", a.AccountName, maxNameLen)
	if a.Balance.IsNegative() {
		v.Add("balance", "Balance cannot be negative.")
	}
	checkNumeric(v, "balance", a.Balance, 15, 2)
	if !isCurrencyCode(a.Currency) {
		v.Add("currency", "Currency must be a 3-letter ISO 4217 code.")
	}
	if !a.Status.Valid() {
		v.Add("status", fmt.Sprintf("%q is not a valid choice.", a.Status))
	}
	return v
}

// ValidateCampaign checks the invariants of a campaign.
func ValidateCampaign(c *Campaign) *ValidationError {
	v := &ValidationError{}
	required(v, "name", c.Name, maxNameLen)
	maxLength(v, "campaign_id", c.Code, maxCampaignCodeLen)
	if !c.Type.Valid() {
		v.Add("campaign_type", fmt.Sprintf("%q is not a valid choice.", c.Type))
	}
	if c.OwnerID == 0 {
		v.Add("owner", "An owner is required.")
	}
	if c.SegmentID == "" {
		v.Add("segment", "A segment is required.")
	}
	if !c.Status.Valid() {
		v.Add("status", fmt.Sprintf("%q is not a valid choice.", c.Status))
	}
	if c.RewardType != nil && !c.RewardType.Valid() {
		v.Add("reward_type", fmt.Sprintf("%q is not a valid choice.", *c.RewardType))
	}
	if c.RewardValue.Valid {
		if c.RewardValue.Decimal.IsNegative() {
			v.Add("reward_value", "Reward value cannot be negative.")
		}
		checkNumeric(v, "reward_value", c.RewardValue.Decimal, 10, 2)
	}
	if c.EstimatedCost.Valid {
		if c.EstimatedCost.Decimal.IsNegative() {
			v.Add("estimated_cost", "Estimated cost cannot be negative.")
		}
		checkNumeric(v, "estimated_cost", c.EstimatedCost.Decimal, 15, 2)
	}
	if !c.ScheduleType.Valid() {
		v.Add("schedule_type", fmt.Sprintf("%q is not a valid choice.", c.ScheduleType))
	}
	if c.ScheduleType == ScheduleScheduled && c.StartDate == nil {
		v.Add("start_date", "A start date is required for scheduled campaigns.")
	}
	if c.StartDate != nil && c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		v.Add("end_date", "Start date cannot be after end date.")
	}
	if !c.FrequencyCap.Valid() {
		v.Add("frequency_cap", fmt.Sprintf("%q is not a valid choice.", c.FrequencyCap))
	}
	if c.ApprovalLevel < 1 {
		v.Add("approval_level", "Approval level must be a positive integer.")
	}
	if c.TotalTargetedCustomers < 0 {
		v.Add("total_targeted_customers", "Ensure this value is greater than or equal to 0.")
	}
	return v
}

// ValidateSegment checks the invariants of a segment.
func ValidateSegment(s *Segment) *ValidationError {
	v := &ValidationError{}
	required(v, "name", s.Name, maxSegmentNameLen)
	if !s.Type.Valid() {
		v.Add("segment_type", fmt.Sprintf("%q is not a valid choice.", s.Type))
	}
	if !s.RefreshInterval.Valid() {
		v.Add("refresh_interval", fmt.Sprintf("%q is not a valid choice.", s.RefreshInterval))
	}
	switch s.Criteria.RuleLogic {
	case "", RuleAnd, RuleOr:
	default:
		v.Add("criteria", "rule_logic must be AND or OR.")
	}
	if s.CustomerCount < 0 {
		v.Add("customer_count", "Ensure this value is greater than or equal to 0.")
	}
	return v
}

// ValidateReport checks the conditional requirements of a report
// configuration. All configuration problems are reported under the
// "configuration" key and scheduling problems under "scheduling".
func ValidateReport(r *ReportConfiguration) *ValidationError {
	v := &ValidationError{}
	required(v, "name", r.Name, maxNameLen)
	if !r.ExportFormat.Valid() {
		v.Add("export_format", fmt.Sprintf("%q is not a valid choice.", r.ExportFormat))
	}

	cfg := r.Configuration
	switch r.SourceType {
	case SourceCampaign:
		if strings.TrimSpace(cfg.CampaignID) == "" {
			v.Add("configuration", "campaign_id is required when source_type is 'campaign'.")
		}
	case SourceCustom:
		switch cfg.CustomMode {
		case ModeSQL:
			if strings.TrimSpace(cfg.SQLQuery) == "" {
				v.Add("configuration", "sql_query is required when custom_mode is 'sql'.")
			}
		case ModeFilter:
			if len(cfg.Filters) == 0 {
				v.Add("configuration", "At least one filter is required when custom_mode is 'filter'.")
			}
			for i, f := range cfg.Filters {
				if f.Field == "" || f.Value == "" {
					v.Add("configuration", fmt.Sprintf("filters[%d] requires field and value.", i))
				}
				if !filterOperators[f.Operator] {
					v.Add("configuration", fmt.Sprintf("filters[%d] has an invalid operator %q.", i, f.Operator))
				}
			}
		default:
			v.Add("configuration", "custom_mode must be 'sql' or 'filter' when source_type is 'custom'.")
		}
	default:
		v.Add("source_type", fmt.Sprintf("%q is not a valid choice.", r.SourceType))
	}

	s := r.Scheduling
	if s.Enabled {
		if s.Frequency == "" {
			v.Add("scheduling", "frequency is required when scheduling is enabled.")
		} else if !s.Frequency.Valid() {
			v.Add("scheduling", fmt.Sprintf("%q is not a valid frequency.", s.Frequency))
		}
		if len(s.Recipients) == 0 {
			v.Add("scheduling", "At least one recipient is required when scheduling is enabled.")
		}
		for _, rcpt := range s.Recipients {
			if _, err := mail.ParseAddress(rcpt); err != nil {
				v.Add("scheduling", fmt.Sprintf("%q is not a valid email address.", rcpt))
			}
		}
	}
	return v
}

// required rejects a blank value or one longer than max characters.
func required(v *ValidationError, field, s string, max int) {
	if strings.TrimSpace(s) == "" {
		v.Add(field, "This field is required.")
		return
	}
	maxLength(v, field, s, max)
}

// maxLength counts characters, not bytes, as VARCHAR(n) does.
func maxLength(v *ValidationError, field, s string, max int) {
	if utf8.RuneCountInString(s) > max {
		v.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
	}
}

// checkNumeric enforces the bounds of a NUMERIC(digits, places) column.
func checkNumeric(v *ValidationError, field string, d decimal.Decimal, digits, places int32) {
	if !d.Equal(d.Round(places)) {
		v.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", places))
	}
	whole := digits - places
	if d.Abs().Round(places).GreaterThanOrEqual(decimal.New(1, whole)) {
		v.Add(field, fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", whole))
	}
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
