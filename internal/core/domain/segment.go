package domain

import (
	"time"
)

// SegmentType classifies a segment by the kind of filter it applies.
type SegmentType string

const (
	SegmentBehavioral  SegmentType = "behavioral"
	SegmentDemographic SegmentType = "demographic"
	SegmentActivity    SegmentType = "activity"
	SegmentRisk        SegmentType = "risk"
	SegmentValue       SegmentType = "value"
	SegmentCustom      SegmentType = "custom"
)

var segmentTypes = []SegmentType{
	SegmentBehavioral, SegmentDemographic, SegmentActivity,
	SegmentRisk, SegmentValue, SegmentCustom,
}

// Valid reports whether t is a known segment type.
func (t SegmentType) Valid() bool {
	for _, v := range segmentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// RefreshInterval controls how often an auto-refreshing segment is
// recounted.
type RefreshInterval string

const (
	RefreshHourly  RefreshInterval = "hourly"
	RefreshDaily   RefreshInterval = "daily"
	RefreshWeekly  RefreshInterval = "weekly"
	RefreshMonthly RefreshInterval = "monthly"
)

// Valid reports whether r is a known interval.
func (r RefreshInterval) Valid() bool {
	switch r {
	case RefreshHourly, RefreshDaily, RefreshWeekly, RefreshMonthly:
		return true
	}
	return false
}

// Rule logic joining criteria sections.
const (
	RuleAnd = "AND"
	RuleOr  = "OR"
)

// Range is an inclusive numeric interval; either bound may be open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// BehavioralCriteria filters on what customers did.
type BehavioralCriteria struct {
	LastActivityDays *int   `json:"lastActivityDays,omitempty"`
	TransactionCount *Range `json:"transactionCount,omitempty"`
	TransactionValue *Range `json:"transactionValue,omitempty"`
	RewardReceived   string `json:"rewardReceived,omitempty"`
	ChurnRisk        string `json:"churnRisk,omitempty"`
}

// DemographicCriteria filters on who customers are.
type DemographicCriteria struct {
	Region     string `json:"region,omitempty"`
	City       string `json:"city,omitempty"`
	Gender     string `json:"gender,omitempty"`
	AgeGroup   string `json:"ageGroup,omitempty"`
	KYCLevel   string `json:"kycLevel,omitempty"`
	DeviceType string `json:"deviceType,omitempty"`
}

// ActivityCriteria filters on account activity windows.
type ActivityCriteria struct {
	Status            []string `json:"status,omitempty"`
	LastActiveDaysMin *int     `json:"lastActiveDaysMin,omitempty"`
	LastActiveDaysMax *int     `json:"lastActiveDaysMax,omitempty"`
}

// RiskCriteria filters on churn prediction.
type RiskCriteria struct {
	ChurnRisk      string `json:"churnRisk,omitempty"`
	ProbabilityMin *int   `json:"probabilityMin,omitempty"`
	ProbabilityMax *int   `json:"probabilityMax,omitempty"`
}

// ValueCriteria filters on customer value tiers.
type ValueCriteria struct {
	Tier          string `json:"tier,omitempty"`
	LifetimeValue *Range `json:"lifetimeValue,omitempty"`
}

// SegmentCriteria is the tagged filter expression of a segment. Every
// section is optional; RuleLogic joins the present ones.
type SegmentCriteria struct {
	Behavioral  *BehavioralCriteria  `json:"behavioral,omitempty"`
	Demographic *DemographicCriteria `json:"demographic,omitempty"`
	Activity    *ActivityCriteria    `json:"activity,omitempty"`
	Risk        *RiskCriteria        `json:"risk,omitempty"`
	Value       *ValueCriteria       `json:"value,omitempty"`
	RuleLogic   string               `json:"rule_logic,omitempty"`
}

// DerivedType picks the segment type from the criteria sections present.
// Behavioral wins over demographic, which wins over value.
func (c SegmentCriteria) DerivedType() SegmentType {
	switch {
	case c.Behavioral != nil:
		return SegmentBehavioral
	case c.Demographic != nil:
		return SegmentDemographic
	case c.Value != nil:
		return SegmentValue
	case c.Activity != nil:
		return SegmentActivity
	case c.Risk != nil:
		return SegmentRisk
	default:
		return SegmentCustom
	}
}

// Segment is a reusable customer filter with a cached matching count.
type Segment struct {
	ID              string
	Name            string
	Description     string
	Type            SegmentType
	Criteria        SegmentCriteria
	AutoRefresh     bool
	RefreshInterval RefreshInterval
	CustomerCount   int64
	LastRefresh     time.Time
	Metadata        map[string]any
	IsActive        bool
	IsSystem        bool
	CreatedBy       *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const segmentIDLayout = "20060102150405"

// NewSegmentID returns the timestamp derived identifier for a segment
// created at now. System segments carry a distinct prefix.
func NewSegmentID(now time.Time, system bool) string {
	prefix := "seg_"
	if system {
		prefix = "sys_seg_"
	}
	return prefix + now.UTC().Format(segmentIDLayout)
}
