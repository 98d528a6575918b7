package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Approval trails live in their own table and are deleted with the campaign.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, campaign_id, name, campaign_type, objective, description, channels, owner_id,
    status, submitted_on, reward_type, reward_value, reward_account_id, estimated_cost, reward_caps,
    schedule_type, start_date, end_date, frequency_cap, segment_id, selected_segment_ids, uploaded_file,
    total_targeted_customers, messages, email_config, channel_settings, current_approver_id,
    approval_level, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c    domain.Campaign
		code *string
	)
	err := row.Scan(
		&c.ID,
		&code,
		&c.Name,
		&c.Type,
		&c.Objective,
		&c.Description,
		&c.Channels,
		&c.OwnerID,
		&c.Status,
		&c.SubmittedOn,
		&c.RewardType,
		&c.RewardValue,
		&c.RewardAccountID,
		&c.EstimatedCost,
		&c.RewardCaps,
		&c.ScheduleType,
		&c.StartDate,
		&c.EndDate,
		&c.FrequencyCap,
		&c.SegmentID,
		&c.SelectedSegmentIDs,
		&c.UploadedFile,
		&c.TotalTargetedCustomers,
		&c.Messages,
		&c.EmailConfig,
		&c.ChannelSettings,
		&c.CurrentApproverID,
		&c.ApprovalLevel,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if code != nil {
		c.Code = *code
	}
	return c, err
}

func nullableCode(code string) *string {
	if code == "" {
		return nil
	}
	return &code
}

// jsonDefaults replaces nil collections so NOT NULL jsonb columns get
// empty values instead of JSON null.
func jsonDefaults(c *domain.Campaign) {
	if c.Channels == nil {
		c.Channels = []string{}
	}
	if c.SelectedSegmentIDs == nil {
		c.SelectedSegmentIDs = []string{}
	}
	if c.Messages == nil {
		c.Messages = map[string]map[string]string{}
	}
	if c.ChannelSettings == nil {
		c.ChannelSettings = map[string]map[string]any{}
	}
}

func campaignWriteErr(op string, err error) error {
	code, constraint := pgCode(err)
	switch code {
	case codeUniqueViolation:
		return &domain.ConflictError{Field: "campaign_id", Message: "Campaign ID must be unique."}
	case codeForeignKeyViolation:
		v := &domain.ValidationError{}
		switch constraint {
		case "campaigns_owner_id_fkey":
			v.Add("owner", "Owner does not exist.")
		case "campaigns_segment_id_fkey":
			v.Add("segment", "Segment does not exist.")
		case "campaigns_reward_account_id_fkey":
			v.Add("reward_account", "Reward account does not exist.")
		case "campaigns_current_approver_id_fkey":
			v.Add("current_approver", "Approver does not exist.")
		default:
			v.Add("non_field_errors", "A referenced record does not exist.")
		}
		return v
	case codeCheckViolation:
		if constraint == "campaigns_date_order" {
			return domain.NewValidationError("end_date", "Start date cannot be after end date.")
		}
		return domain.NewValidationError("non_field_errors", "Campaign violates a constraint: "+constraint)
	}
	if verr := dataErr(err, ""); verr != nil {
		return verr
	}
	return fmt.Errorf("%s campaign: %w", op, err)
}

// Create inserts c and fills its timestamps.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	jsonDefaults(c)
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (
            id, campaign_id, name, campaign_type, objective, description, channels, owner_id,
            status, submitted_on, reward_type, reward_value, reward_account_id, estimated_cost, reward_caps,
            schedule_type, start_date, end_date, frequency_cap, segment_id, selected_segment_ids, uploaded_file,
            total_targeted_customers, messages, email_config, channel_settings, current_approver_id, approval_level)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28)
        RETURNING created_at, updated_at`,
		c.ID, nullableCode(c.Code), c.Name, c.Type, c.Objective, c.Description, c.Channels, c.OwnerID,
		c.Status, c.SubmittedOn, c.RewardType, c.RewardValue, c.RewardAccountID, c.EstimatedCost, c.RewardCaps,
		c.ScheduleType, c.StartDate, c.EndDate, c.FrequencyCap, c.SegmentID, c.SelectedSegmentIDs, c.UploadedFile,
		c.TotalTargetedCustomers, c.Messages, c.EmailConfig, c.ChannelSettings, c.CurrentApproverID, c.ApprovalLevel,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return campaignWriteErr("create", err)
	}
	return nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "Campaign", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// CodeTaken reports whether code belongs to a campaign other than exclude.
func (r *CampaignRepository) CodeTaken(ctx context.Context, code string, exclude uuid.UUID) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE campaign_id = $1 AND id <> $2)`,
		code, exclude).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check campaign code: %w", err)
	}
	return taken, nil
}

// Update writes the editable columns of c.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	jsonDefaults(c)
	err := r.pool.QueryRow(ctx, `
        UPDATE campaigns SET
            name = $2, campaign_type = $3, objective = $4, description = $5, channels = $6,
            reward_type = $7, reward_value = $8, reward_account_id = $9, estimated_cost = $10, reward_caps = $11,
            schedule_type = $12, start_date = $13, end_date = $14, frequency_cap = $15,
            segment_id = $16, selected_segment_ids = $17, uploaded_file = $18, total_targeted_customers = $19,
            messages = $20, email_config = $21, channel_settings = $22, current_approver_id = $23,
            approval_level = $24, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		c.ID, c.Name, c.Type, c.Objective, c.Description, c.Channels,
		c.RewardType, c.RewardValue, c.RewardAccountID, c.EstimatedCost, c.RewardCaps,
		c.ScheduleType, c.StartDate, c.EndDate, c.FrequencyCap,
		c.SegmentID, c.SelectedSegmentIDs, c.UploadedFile, c.TotalTargetedCustomers,
		c.Messages, c.EmailConfig, c.ChannelSettings, c.CurrentApproverID, c.ApprovalLevel,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Entity: "Campaign", ID: c.ID.String()}
	}
	if err != nil {
		return campaignWriteErr("update", err)
	}
	return nil
}

// Delete removes the campaign; approval_trails rows cascade.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Campaign", ID: id.String()}
	}
	return nil
}

func campaignWhere(f port.CampaignFilter) *where {
	w := &where{}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Type != "" {
		w.add("campaign_type = ?", f.Type)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add("(name ILIKE ? OR campaign_id ILIKE ?)", p, p)
	}
	return w
}

// Count returns the number of campaigns matching f.
func (r *CampaignRepository) Count(ctx context.Context, f port.CampaignFilter) (int, error) {
	w := campaignWhere(f)
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return n, nil
}

// List returns a page of campaigns, newest first.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter, limit, offset int) ([]domain.Campaign, error) {
	w := campaignWhere(f)
	pageSQL, args := w.page(limit, offset)
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns`+w.sql()+
		` ORDER BY created_at DESC, id`+pageSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// Transition locks the campaign row, checks that its status is still from,
// writes the lifecycle columns and appends trail. Both writes commit or
// roll back together.
func (r *CampaignRepository) Transition(ctx context.Context, c *domain.Campaign, from domain.CampaignStatus, trail *domain.ApprovalTrail) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock campaign
	var current domain.CampaignStatus
	err = tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1 FOR UPDATE`, c.ID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		err = &domain.NotFoundError{Entity: "Campaign", ID: c.ID.String()}
		return err
	}
	if err != nil {
		return fmt.Errorf("lock campaign: %w", err)
	}
	if current != from {
		err = &domain.InvalidTransitionError{Action: transitionAction(trail), From: current}
		return err
	}

	err = tx.QueryRow(ctx, `
        UPDATE campaigns SET status = $2, submitted_on = $3, current_approver_id = $4, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		c.ID, c.Status, c.SubmittedOn, c.CurrentApproverID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}

	if trail != nil {
		err = tx.QueryRow(ctx, `
            INSERT INTO approval_trails (campaign_id, approver_id, decision, comment, created_at)
            VALUES ($1,$2,$3,$4,$5)
            RETURNING id`,
			trail.CampaignID, trail.ApproverID, trail.Decision, trail.Comment, trail.CreatedAt,
		).Scan(&trail.ID)
		if code, _ := pgCode(err); code == codeForeignKeyViolation {
			err = domain.NewValidationError("approver", "Approver does not exist.")
			return err
		}
		if err != nil {
			return fmt.Errorf("insert approval trail: %w", err)
		}
	}
	return nil
}

func transitionAction(trail *domain.ApprovalTrail) string {
	if trail != nil {
		return domain.ActionDecide
	}
	return domain.ActionSubmit
}

// Trails returns the approval history of a campaign, newest first.
func (r *CampaignRepository) Trails(ctx context.Context, id uuid.UUID) ([]domain.ApprovalTrail, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, approver_id, decision, comment, created_at
        FROM approval_trails WHERE campaign_id = $1
        ORDER BY created_at DESC, id DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("list approval trails: %w", err)
	}
	trails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApprovalTrail, error) {
		var t domain.ApprovalTrail
		err := row.Scan(&t.ID, &t.CampaignID, &t.ApproverID, &t.Decision, &t.Comment, &t.CreatedAt)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("list approval trails: %w", err)
	}
	return trails, nil
}
