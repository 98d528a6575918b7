package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccount() *RewardAccount {
	return &RewardAccount{
		AccountID:   "ACC_100",
		AccountName: "Main",
		Balance:     decimal.RequireFromString("100"),
		Currency:    "ETB",
		Status:      AccountActive,
	}
}

func TestValidateRewardAccount(t *testing.T) {
	require.NoError(t, ValidateRewardAccount(validAccount()).Err())

	a := validAccount()
	a.Balance = decimal.RequireFromString("-0.01")
	a.Currency = "etb"
	a.Status = "closed"
	v := ValidateRewardAccount(a)
	assert.True(t, v.Has("balance"))
	assert.True(t, v.Has("currency"))
	assert.True(t, v.Has("status"))
	assert.False(t, v.Has("account_id"))

	a = validAccount()
	a.Balance = decimal.RequireFromString("1.005")
	assert.Equal(t, []string{"Ensure that there are no more than 2 decimal places."},
		ValidateRewardAccount(a).Fields["balance"])
}

func TestValidateRewardAccountCountsCharacters(t *testing.T) {
	a := validAccount()
	a.AccountName = strings.Repeat("ሀ", 255)
	assert.NoError(t, ValidateRewardAccount(a).Err(), "255 Ethiopic characters fit the column")

	a.AccountName = strings.Repeat("ሀ", 256)
	assert.Equal(t, []string{"Ensure this field has no more than 255 characters."},
		ValidateRewardAccount(a).Fields["account_name"])
}

func TestValidateRewardAccountBalanceDigits(t *testing.T) {
	a := validAccount()
	a.Balance = decimal.RequireFromString("9999999999999.99")
	assert.NoError(t, ValidateRewardAccount(a).Err())

	a.Balance = decimal.RequireFromString("100000000000000.00")
	assert.Equal(t, []string{"Ensure that there are no more than 13 digits before the decimal point."},
		ValidateRewardAccount(a).Fields["balance"])
}

func validCampaign() *Campaign {
	return &Campaign{
		Name:          "Holiday Cashback",
		Type:          CampaignIncentive,
		OwnerID:       1,
		Status:        StatusDraft,
		ScheduleType:  ScheduleImmediate,
		FrequencyCap:  CapUnlimited,
		SegmentID:     "seg_1",
		ApprovalLevel: 1,
	}
}

func TestValidateCampaign(t *testing.T) {
	require.NoError(t, ValidateCampaign(validCampaign()).Err())

	t.Run("dates", func(t *testing.T) {
		c := validCampaign()
		start := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		c.StartDate, c.EndDate = &start, &end
		assert.Equal(t, []string{"Start date cannot be after end date."}, ValidateCampaign(c).Fields["end_date"])

		c.EndDate = &start
		assert.NoError(t, ValidateCampaign(c).Err(), "equal dates are allowed")
	})

	t.Run("scheduled needs a start", func(t *testing.T) {
		c := validCampaign()
		c.ScheduleType = ScheduleScheduled
		assert.True(t, ValidateCampaign(c).Has("start_date"))
	})

	t.Run("required references", func(t *testing.T) {
		c := validCampaign()
		c.OwnerID = 0
		c.SegmentID = ""
		c.ApprovalLevel = 0
		v := ValidateCampaign(c)
		assert.True(t, v.Has("owner"))
		assert.True(t, v.Has("segment"))
		assert.True(t, v.Has("approval_level"))
	})

	t.Run("column bounds", func(t *testing.T) {
		c := validCampaign()
		c.Code = strings.Repeat("C", 80)
		c.Name = strings.Repeat("n", 400)
		c.RewardValue = decimal.NewNullDecimal(decimal.RequireFromString("123456789.00"))
		c.EstimatedCost = decimal.NewNullDecimal(decimal.RequireFromString("10000000000000"))
		v := ValidateCampaign(c)
		assert.Equal(t, []string{"Ensure this field has no more than 50 characters."}, v.Fields["campaign_id"])
		assert.Equal(t, []string{"Ensure this field has no more than 255 characters."}, v.Fields["name"])
		assert.Equal(t, []string{"Ensure that there are no more than 8 digits before the decimal point."}, v.Fields["reward_value"])
		assert.True(t, v.Has("estimated_cost"))

		c = validCampaign()
		c.Name = strings.Repeat("ዘ", 255)
		c.RewardValue = decimal.NewNullDecimal(decimal.RequireFromString("99999999.99"))
		assert.NoError(t, ValidateCampaign(c).Err())
	})

	t.Run("enums", func(t *testing.T) {
		c := validCampaign()
		rt := RewardType("points")
		c.Type = "flash"
		c.RewardType = &rt
		c.FrequencyCap = "hourly"
		v := ValidateCampaign(c)
		assert.True(t, v.Has("campaign_type"))
		assert.True(t, v.Has("reward_type"))
		assert.True(t, v.Has("frequency_cap"))
	})
}

func TestValidateReport(t *testing.T) {
	base := func() *ReportConfiguration {
		return &ReportConfiguration{Name: "r", ExportFormat: ExportPDF}
	}
	tests := []struct {
		name   string
		mutate func(r *ReportConfiguration)
		field  string
	}{
		{"campaign without id", func(r *ReportConfiguration) { r.SourceType = SourceCampaign }, "configuration"},
		{"custom without mode", func(r *ReportConfiguration) { r.SourceType = SourceCustom }, "configuration"},
		{"sql without query", func(r *ReportConfiguration) {
			r.SourceType = SourceCustom
			r.Configuration.CustomMode = ModeSQL
		}, "configuration"},
		{"filter without filters", func(r *ReportConfiguration) {
			r.SourceType = SourceCustom
			r.Configuration.CustomMode = ModeFilter
		}, "configuration"},
		{"bad operator", func(r *ReportConfiguration) {
			r.SourceType = SourceCustom
			r.Configuration.CustomMode = ModeFilter
			r.Configuration.Filters = []ReportFilter{{Field: "tier", Operator: "like", Value: "gold"}}
		}, "configuration"},
		{"unknown source", func(r *ReportConfiguration) { r.SourceType = "warehouse" }, "source_type"},
		{"name too long", func(r *ReportConfiguration) {
			r.Name = strings.Repeat("r", 256)
			r.SourceType = SourceCampaign
			r.Configuration.CampaignID = "CAMP_1"
		}, "name"},
		{"schedule without frequency", func(r *ReportConfiguration) {
			r.SourceType = SourceCampaign
			r.Configuration.CampaignID = "CAMP_1"
			r.Scheduling = ReportScheduling{Enabled: true, Recipients: []string{"ops@example.com"}}
		}, "scheduling"},
		{"schedule without recipients", func(r *ReportConfiguration) {
			r.SourceType = SourceCampaign
			r.Configuration.CampaignID = "CAMP_1"
			r.Scheduling = ReportScheduling{Enabled: true, Frequency: FrequencyDaily}
		}, "scheduling"},
		{"bad recipient", func(r *ReportConfiguration) {
			r.SourceType = SourceCampaign
			r.Configuration.CampaignID = "CAMP_1"
			r.Scheduling = ReportScheduling{Enabled: true, Frequency: FrequencyDaily, Recipients: []string{"nobody"}}
		}, "scheduling"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.mutate(r)
			assert.True(t, ValidateReport(r).Has(tt.field), ValidateReport(r).Error())
		})
	}

	ok := base()
	ok.SourceType = SourceCustom
	ok.Configuration = ReportSource{CustomMode: ModeSQL, SQLQuery: "SELECT 1"}
	ok.Scheduling = ReportScheduling{Enabled: true, Frequency: FrequencyWeekly, Recipients: []string{"ops@example.com"}}
	assert.NoError(t, ValidateReport(ok).Err())
}

func TestValidateSegment(t *testing.T) {
	s := &Segment{Name: "x", Type: SegmentCustom, RefreshInterval: RefreshDaily}
	require.NoError(t, ValidateSegment(s).Err())

	s.Criteria.RuleLogic = "XOR"
	s.RefreshInterval = "yearly"
	v := ValidateSegment(s)
	assert.True(t, v.Has("criteria"))
	assert.True(t, v.Has("refresh_interval"))
}

func TestValidationErrorErr(t *testing.T) {
	var v *ValidationError
	assert.NoError(t, v.Err())
	assert.NoError(t, (&ValidationError{}).Err())

	v = NewValidationError("b", "second")
	v.Add("a", "first")
	assert.EqualError(t, v.Err(), "validation failed: a: first, b: second")
}
