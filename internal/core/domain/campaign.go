package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignType describes the intent of a campaign.
type CampaignType string

const (
	CampaignIncentive     CampaignType = "incentive"
	CampaignInformational CampaignType = "informational"
	CampaignWinBack       CampaignType = "win_back"
	CampaignInfo          CampaignType = "info"
)

// Valid reports whether t is a known campaign type.
func (t CampaignType) Valid() bool {
	switch t {
	case CampaignIncentive, CampaignInformational, CampaignWinBack, CampaignInfo:
		return true
	}
	return false
}

// CampaignStatus is a state of the campaign lifecycle.
type CampaignStatus string

const (
	StatusDraft           CampaignStatus = "draft"
	StatusPendingApproval CampaignStatus = "pending_approval"
	StatusScheduled       CampaignStatus = "scheduled"
	StatusRunning         CampaignStatus = "running"
	StatusPaused          CampaignStatus = "paused"
	StatusCompleted       CampaignStatus = "completed"
	StatusFailed          CampaignStatus = "failed"
	StatusCancelled       CampaignStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusScheduled, StatusRunning,
		StatusPaused, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// ScheduleType tells whether a campaign starts on approval or at StartDate.
type ScheduleType string

const (
	ScheduleImmediate ScheduleType = "immediate"
	ScheduleScheduled ScheduleType = "scheduled"
)

// Valid reports whether s is a known schedule type.
func (s ScheduleType) Valid() bool {
	return s == ScheduleImmediate || s == ScheduleScheduled
}

// RewardType is the kind of payout a campaign grants.
type RewardType string

const (
	RewardCashback RewardType = "cashback"
	RewardBonus    RewardType = "bonus"
	RewardOther    RewardType = "other"
)

// Valid reports whether r is a known reward type.
func (r RewardType) Valid() bool {
	switch r {
	case RewardCashback, RewardBonus, RewardOther:
		return true
	}
	return false
}

// FrequencyCap limits how often a customer is contacted.
type FrequencyCap string

const (
	CapDaily      FrequencyCap = "daily"
	CapWeekly     FrequencyCap = "weekly"
	CapMonthly    FrequencyCap = "monthly"
	CapUnlimited  FrequencyCap = "unlimited"
	CapOncePerDay FrequencyCap = "once_per_day"
)

// Valid reports whether f is a known cap.
func (f FrequencyCap) Valid() bool {
	switch f {
	case CapDaily, CapWeekly, CapMonthly, CapUnlimited, CapOncePerDay:
		return true
	}
	return false
}

// UploadedFile describes a customer list uploaded for custom targeting.
type UploadedFile struct {
	Name        string `json:"name"`
	Size        int64  `json:"size,omitempty"`
	RecordCount int64  `json:"record_count,omitempty"`
	URL         string `json:"url,omitempty"`
}

// EmailConfig holds email specific sender settings.
type EmailConfig struct {
	Subject    string `json:"subject,omitempty"`
	SenderName string `json:"sender_name,omitempty"`
	ReplyTo    string `json:"reply_to,omitempty"`
}

// RewardCaps bounds the payouts of a campaign.
type RewardCaps struct {
	PerCustomer *decimal.Decimal `json:"per_customer,omitempty"`
	Daily       *decimal.Decimal `json:"daily,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
}

// Campaign is a multi-channel outreach targeting exactly one segment.
// Cross-entity links (segment, reward account, users) are identifiers only.
type Campaign struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Type        CampaignType
	Objective   string
	Description string
	Channels    []string
	OwnerID     int64
	Status      CampaignStatus
	SubmittedOn *time.Time

	RewardType      *RewardType
	RewardValue     decimal.NullDecimal
	RewardAccountID *int64
	EstimatedCost   decimal.NullDecimal
	RewardCaps      RewardCaps

	ScheduleType ScheduleType
	StartDate    *time.Time
	EndDate      *time.Time
	FrequencyCap FrequencyCap

	SegmentID              string
	SelectedSegmentIDs     []string
	UploadedFile           *UploadedFile
	TotalTargetedCustomers int64

	// Messages maps channel -> language -> body.
	Messages        map[string]map[string]string
	EmailConfig     *EmailConfig
	ChannelSettings map[string]map[string]any

	CurrentApproverID *int64
	ApprovalLevel     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CampaignCodePrefix starts every generated campaign code.
const CampaignCodePrefix = "CAMP_"

// GenerateCampaignCode derives the short human code of a campaign from its
// identifier.
func GenerateCampaignCode(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return CampaignCodePrefix + strings.ToUpper(hex[:8])
}
