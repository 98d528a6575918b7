package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campaign-hub/internal/core/domain"
)

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Status domain.CampaignStatus
	Type   domain.CampaignType
	Search string
}

// CampaignRepository persists campaigns and their approval trails.
type CampaignRepository interface {
	// Create inserts c. A duplicate code yields a *domain.ConflictError.
	Create(ctx context.Context, c *domain.Campaign) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CodeTaken reports whether code belongs to a campaign other than
	// exclude. Pass uuid.Nil to check against every campaign.
	CodeTaken(ctx context.Context, code string, exclude uuid.UUID) (bool, error)
	// Update writes the editable fields. Status, submission and approver
	// fields are only changed through Transition.
	Update(ctx context.Context, c *domain.Campaign) error
	// Delete removes the campaign together with its approval trails.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, f CampaignFilter) (int, error)
	// List returns campaigns newest first.
	List(ctx context.Context, f CampaignFilter, limit, offset int) ([]domain.Campaign, error)
	// Transition persists c.Status, c.SubmittedOn and c.CurrentApproverID
	// if the stored status still equals from, and appends trail when not
	// nil, in a single transaction. A concurrent change of status yields a
	// *domain.InvalidTransitionError.
	Transition(ctx context.Context, c *domain.Campaign, from domain.CampaignStatus, trail *domain.ApprovalTrail) error
	// Trails returns the approval trail of a campaign, newest first.
	Trails(ctx context.Context, id uuid.UUID) ([]domain.ApprovalTrail, error)
}

// UserRepository resolves user references.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
}

// CampaignInput is the flattened form of the nested create payload.
type CampaignInput struct {
	Code        string
	Name        string
	Type        domain.CampaignType
	Objective   string
	Description string
	Channels    []string
	// OwnerID is the explicit owner or, failing that, the caller identity.
	// Zero is rejected.
	OwnerID int64

	SelectedSegmentIDs     []string
	UploadedFile           *domain.UploadedFile
	TotalTargetedCustomers int64

	Messages        map[string]map[string]string
	EmailConfig     *domain.EmailConfig
	ChannelSettings map[string]map[string]any

	RewardType          *domain.RewardType
	RewardValue         *decimal.Decimal
	DisbursementAccount string
	EstimatedCost       *decimal.Decimal
	RewardCaps          domain.RewardCaps

	ScheduleType domain.ScheduleType
	StartDate    *time.Time
	EndDate      *time.Time
	FrequencyCap domain.FrequencyCap

	CurrentApproverID *int64
	ApprovalLevel     int
}

// CampaignPatch is a partial update of a draft campaign.
type CampaignPatch struct {
	Code                   *string // empty regenerates the code
	Name                   *string
	Type                   *domain.CampaignType
	Objective              *string
	Description            *string
	Channels               *[]string
	SelectedSegmentIDs     *[]string
	TotalTargetedCustomers *int64
	Messages               map[string]map[string]string
	ChannelSettings        map[string]map[string]any
	RewardType             *domain.RewardType
	RewardValue            *decimal.Decimal
	DisbursementAccount    *string
	EstimatedCost          *decimal.Decimal
	RewardCaps             *domain.RewardCaps
	ScheduleType           *domain.ScheduleType
	StartDate              Optional[time.Time]
	EndDate                Optional[time.Time]
	FrequencyCap           *domain.FrequencyCap
	UploadedFile           Optional[domain.UploadedFile]
	EmailConfig            Optional[domain.EmailConfig]
	CurrentApproverID      *int64
	ApprovalLevel          *int
}

// Optional is a patch field that can clear a value. Set with a nil Value
// is an explicit null; the zero Optional leaves the field alone.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Apply stores the value in *dst when the field was sent.
func (o Optional[T]) Apply(dst **T) {
	if o.Set {
		*dst = o.Value
	}
}

// DecisionInput is an approve/reject request.
type DecisionInput struct {
	Decision   domain.Decision
	ApproverID int64
	Comment    string
}

// CampaignPage is one page of a campaign listing.
type CampaignPage struct {
	Campaigns  []domain.Campaign
	Pagination domain.Pagination
}

// CampaignUseCase manages campaigns and drives their lifecycle.
type CampaignUseCase interface {
	Create(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Update(ctx context.Context, id uuid.UUID, p CampaignPatch) (*domain.Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f CampaignFilter, page domain.PageRequest) (*CampaignPage, error)

	// Submit sends a draft campaign for approval.
	Submit(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// Decide records an approval decision and moves the campaign to
	// scheduled (approved) or back to draft (rejected).
	Decide(ctx context.Context, id uuid.UUID, in DecisionInput) (*domain.Campaign, *domain.ApprovalTrail, error)
	Trails(ctx context.Context, id uuid.UUID) ([]domain.ApprovalTrail, error)
	// Logs returns the activity log of a campaign, newest first.
	Logs(ctx context.Context, id uuid.UUID) ([]domain.LogEntry, error)

	// Performance returns delivery figures from the Estimator.
	Performance(ctx context.Context, id uuid.UUID) (*CampaignPerformance, error)
	// RewardAccount returns the account funding the campaign, or nil.
	RewardAccount(ctx context.Context, c *domain.Campaign) (*domain.RewardAccount, error)
}
