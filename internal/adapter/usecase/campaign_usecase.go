package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// CampaignUseCase manages campaigns and drives their approval lifecycle.
// References to owners, segments, reward accounts and approvers are
// resolved here and only their identifiers are stored.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	segments  port.SegmentRepository
	accounts  port.RewardAccountRepository
	users     port.UserRepository
	estimator port.Estimator
	lifecycle domain.Lifecycle
	logger    *slog.Logger
	now       func() time.Time
}

// NewCampaignUseCase creates a campaign usecase.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	segments port.SegmentRepository,
	accounts port.RewardAccountRepository,
	users port.UserRepository,
	estimator port.Estimator,
	lifecycle domain.Lifecycle,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns: campaigns,
		segments:  segments,
		accounts:  accounts,
		users:     users,
		estimator: estimator,
		lifecycle: lifecycle,
		logger:    logger,
		now:       time.Now,
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func isNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}

// Create stores a new draft campaign. The segment is the first selected
// segment; the reward account is looked up from the disbursement account
// reference. Unresolvable references are reported as field errors
// together with every other violation.
func (u *CampaignUseCase) Create(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	id := uuid.New()
	c := &domain.Campaign{
		ID:                     id,
		Code:                   strings.TrimSpace(in.Code),
		Name:                   strings.TrimSpace(in.Name),
		Type:                   in.Type,
		Objective:              in.Objective,
		Description:            in.Description,
		Channels:               in.Channels,
		OwnerID:                in.OwnerID,
		Status:                 domain.StatusDraft,
		RewardType:             in.RewardType,
		RewardValue:            nullDecimal(in.RewardValue),
		EstimatedCost:          nullDecimal(in.EstimatedCost),
		RewardCaps:             in.RewardCaps,
		ScheduleType:           in.ScheduleType,
		StartDate:              in.StartDate,
		EndDate:                in.EndDate,
		FrequencyCap:           in.FrequencyCap,
		SelectedSegmentIDs:     in.SelectedSegmentIDs,
		UploadedFile:           in.UploadedFile,
		TotalTargetedCustomers: in.TotalTargetedCustomers,
		Messages:               in.Messages,
		EmailConfig:            in.EmailConfig,
		ChannelSettings:        in.ChannelSettings,
		CurrentApproverID:      in.CurrentApproverID,
		ApprovalLevel:          in.ApprovalLevel,
	}
	if c.Code == "" {
		c.Code = domain.GenerateCampaignCode(id)
	}
	if c.ScheduleType == "" {
		c.ScheduleType = domain.ScheduleImmediate
	}
	if c.FrequencyCap == "" {
		c.FrequencyCap = domain.CapUnlimited
	}
	if c.ApprovalLevel == 0 {
		c.ApprovalLevel = 1
	}

	v := &domain.ValidationError{}
	if err := u.resolveOwner(ctx, c, v); err != nil {
		return nil, err
	}
	if err := u.resolveSegment(ctx, c, v); err != nil {
		return nil, err
	}
	if err := u.resolveAccount(ctx, c, in.DisbursementAccount, v); err != nil {
		return nil, err
	}
	if err := u.resolveApprover(ctx, c, v); err != nil {
		return nil, err
	}
	if err := u.checkCode(ctx, c, v); err != nil {
		return nil, err
	}
	v.Merge(domain.ValidateCampaign(c))
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := u.campaigns.Create(ctx, c); err != nil {
		return nil, conflictAsValidation(err)
	}
	u.logger.Info("campaign created",
		slog.String("id", c.ID.String()),
		slog.String("code", c.Code),
		slog.Int64("owner", c.OwnerID),
		slog.String("segment", c.SegmentID))
	return c, nil
}

func (u *CampaignUseCase) resolveOwner(ctx context.Context, c *domain.Campaign, v *domain.ValidationError) error {
	if c.OwnerID == 0 {
		return nil // reported by ValidateCampaign
	}
	_, err := u.users.Get(ctx, c.OwnerID)
	if isNotFound(err) {
		v.Add("owner", fmt.Sprintf("User %d does not exist.", c.OwnerID))
		return nil
	}
	return err
}

// resolveSegment points the campaign at the first selected segment and
// falls back to its cached count when no target size was given.
func (u *CampaignUseCase) resolveSegment(ctx context.Context, c *domain.Campaign, v *domain.ValidationError) error {
	c.SegmentID = ""
	if len(c.SelectedSegmentIDs) == 0 {
		return nil // reported by ValidateCampaign
	}
	s, err := u.segments.Get(ctx, c.SelectedSegmentIDs[0])
	if isNotFound(err) {
		v.Add("segment", fmt.Sprintf("Segment %q does not exist.", c.SelectedSegmentIDs[0]))
		return nil
	}
	if err != nil {
		return err
	}
	c.SegmentID = s.ID
	if c.TotalTargetedCustomers == 0 {
		c.TotalTargetedCustomers = s.CustomerCount
	}
	return nil
}

// resolveAccount sets RewardAccountID from ref. An empty ref clears it.
func (u *CampaignUseCase) resolveAccount(ctx context.Context, c *domain.Campaign, ref string, v *domain.ValidationError) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		c.RewardAccountID = nil
		return nil
	}
	a, err := u.accounts.Resolve(ctx, ref)
	if err != nil {
		return err
	}
	if a == nil {
		v.Add("reward_account", fmt.Sprintf("Reward account %q not found.", ref))
		return nil
	}
	c.RewardAccountID = &a.ID
	return nil
}

func (u *CampaignUseCase) resolveApprover(ctx context.Context, c *domain.Campaign, v *domain.ValidationError) error {
	if c.CurrentApproverID == nil {
		return nil
	}
	_, err := u.users.Get(ctx, *c.CurrentApproverID)
	if isNotFound(err) {
		v.Add("current_approver", fmt.Sprintf("User %d does not exist.", *c.CurrentApproverID))
		return nil
	}
	return err
}

func (u *CampaignUseCase) checkCode(ctx context.Context, c *domain.Campaign, v *domain.ValidationError) error {
	taken, err := u.campaigns.CodeTaken(ctx, c.Code, c.ID)
	if err != nil {
		return err
	}
	if taken {
		v.Add("campaign_id", "Campaign ID must be unique.")
	}
	return nil
}

// Get returns a campaign.
func (u *CampaignUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.campaigns.Get(ctx, id)
}

// Update applies p to a draft campaign. Campaigns past draft are frozen.
func (u *CampaignUseCase) Update(ctx context.Context, id uuid.UUID, p port.CampaignPatch) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = u.lifecycle.CanEdit(c); err != nil {
		return nil, err
	}

	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Objective != nil {
		c.Objective = *p.Objective
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Channels != nil {
		c.Channels = *p.Channels
	}
	if p.TotalTargetedCustomers != nil {
		c.TotalTargetedCustomers = *p.TotalTargetedCustomers
	}
	if p.Messages != nil {
		c.Messages = p.Messages
	}
	if p.ChannelSettings != nil {
		c.ChannelSettings = p.ChannelSettings
	}
	if p.RewardType != nil {
		c.RewardType = p.RewardType
	}
	if p.RewardValue != nil {
		c.RewardValue = nullDecimal(p.RewardValue)
	}
	if p.EstimatedCost != nil {
		c.EstimatedCost = nullDecimal(p.EstimatedCost)
	}
	if p.ScheduleType != nil {
		c.ScheduleType = *p.ScheduleType
	}
	if p.RewardCaps != nil {
		c.RewardCaps = *p.RewardCaps
	}
	p.StartDate.Apply(&c.StartDate)
	p.EndDate.Apply(&c.EndDate)
	p.UploadedFile.Apply(&c.UploadedFile)
	p.EmailConfig.Apply(&c.EmailConfig)
	if p.FrequencyCap != nil {
		c.FrequencyCap = *p.FrequencyCap
	}
	if p.ApprovalLevel != nil {
		c.ApprovalLevel = *p.ApprovalLevel
	}

	v := &domain.ValidationError{}
	if p.SelectedSegmentIDs != nil {
		c.SelectedSegmentIDs = *p.SelectedSegmentIDs
		if err = u.resolveSegment(ctx, c, v); err != nil {
			return nil, err
		}
	}
	if p.DisbursementAccount != nil {
		if err = u.resolveAccount(ctx, c, *p.DisbursementAccount, v); err != nil {
			return nil, err
		}
	}
	if p.CurrentApproverID != nil {
		c.CurrentApproverID = p.CurrentApproverID
		if err = u.resolveApprover(ctx, c, v); err != nil {
			return nil, err
		}
	}
	if p.Code != nil {
		c.Code = strings.TrimSpace(*p.Code)
		if c.Code == "" {
			c.Code = domain.GenerateCampaignCode(c.ID)
		}
		if err = u.checkCode(ctx, c, v); err != nil {
			return nil, err
		}
	}
	v.Merge(domain.ValidateCampaign(c))
	if err = v.Err(); err != nil {
		return nil, err
	}
	if err = u.campaigns.Update(ctx, c); err != nil {
		return nil, conflictAsValidation(err)
	}
	return c, nil
}

// Delete removes the campaign together with its approval trail.
func (u *CampaignUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.campaigns.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("campaign deleted", slog.String("id", id.String()))
	return nil
}

// List returns a page of campaigns, newest first.
func (u *CampaignUseCase) List(ctx context.Context, f port.CampaignFilter, page domain.PageRequest) (*port.CampaignPage, error) {
	total, err := u.campaigns.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	pg, offset := domain.Paginate(page, total)
	campaigns, err := u.campaigns.List(ctx, f, pg.PageSize, offset)
	if err != nil {
		return nil, err
	}
	return &port.CampaignPage{Campaigns: campaigns, Pagination: pg}, nil
}

// Submit sends a draft for approval.
func (u *CampaignUseCase) Submit(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	from := c.Status
	if err = u.lifecycle.Submit(c, u.now()); err != nil {
		return nil, err
	}
	if err = u.campaigns.Transition(ctx, c, from, nil); err != nil {
		return nil, err
	}
	u.logger.Info("campaign submitted", slog.String("id", c.ID.String()))
	return c, nil
}

// Decide records an approval decision. The status change and the trail
// row are stored atomically.
func (u *CampaignUseCase) Decide(ctx context.Context, id uuid.UUID, in port.DecisionInput) (*domain.Campaign, *domain.ApprovalTrail, error) {
	if in.ApproverID == 0 {
		return nil, nil, domain.NewValidationError("approver_id", "An approver is required.")
	}
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if _, err = u.users.Get(ctx, in.ApproverID); err != nil {
		if isNotFound(err) {
			return nil, nil, domain.NewValidationError("approver_id", fmt.Sprintf("User %d does not exist.", in.ApproverID))
		}
		return nil, nil, err
	}

	from := c.Status
	trail, err := u.lifecycle.Decide(c, in.Decision, in.ApproverID, strings.TrimSpace(in.Comment), u.now())
	if err != nil {
		return nil, nil, err
	}
	if err = u.campaigns.Transition(ctx, c, from, trail); err != nil {
		return nil, nil, err
	}
	u.logger.Info("campaign decision recorded",
		slog.String("id", c.ID.String()),
		slog.String("decision", string(trail.Decision)),
		slog.Int64("approver", trail.ApproverID),
		slog.String("status", string(c.Status)))
	return c, trail, nil
}

// Trails returns the approval history of a campaign, newest first.
func (u *CampaignUseCase) Trails(ctx context.Context, id uuid.UUID) ([]domain.ApprovalTrail, error) {
	if _, err := u.campaigns.Get(ctx, id); err != nil {
		return nil, err
	}
	return u.campaigns.Trails(ctx, id)
}

// Logs returns the activity log of a campaign.
func (u *CampaignUseCase) Logs(ctx context.Context, id uuid.UUID) ([]domain.LogEntry, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	trails, err := u.campaigns.Trails(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.ActivityLog(c, trails), nil
}

// Performance returns the delivery figures reported by the Estimator.
func (u *CampaignUseCase) Performance(ctx context.Context, id uuid.UUID) (*port.CampaignPerformance, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := u.estimator.CampaignPerformance(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("campaign performance: %w", err)
	}
	return p, nil
}

// RewardAccount returns the account funding c, or nil if it has none.
func (u *CampaignUseCase) RewardAccount(ctx context.Context, c *domain.Campaign) (*domain.RewardAccount, error) {
	if c.RewardAccountID == nil {
		return nil, nil
	}
	a, err := u.accounts.Get(ctx, *c.RewardAccountID)
	if isNotFound(err) {
		return nil, nil
	}
	return a, err
}
