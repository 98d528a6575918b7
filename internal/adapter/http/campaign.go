package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/format"
	"campaign-hub/internal/core/port"
)

const campaignEntity = "Campaign"

func campaignID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.NotFoundError{Entity: campaignEntity, ID: raw}
	}
	return id, nil
}

// createCampaignRequest is the nested payload of the campaign wizard.
type createCampaignRequest struct {
	Code string `json:"campaign_id"`

	Basics struct {
		Name         string              `json:"name"`
		CampaignType domain.CampaignType `json:"campaign_type"`
		Objective    string              `json:"objective"`
		Description  string              `json:"description"`
		Channels     []string            `json:"channels"`
		OwnerID      int64               `json:"owner_id"`
	} `json:"basics"`
	Audience struct {
		SelectedSegments       []string             `json:"selected_segments"`
		UploadedFile           *domain.UploadedFile `json:"uploaded_file"`
		TotalTargetedCustomers int64                `json:"total_targeted_customers"`
	} `json:"audience"`
	Communication struct {
		Messages        map[string]map[string]string `json:"messages"`
		EmailConfig     *domain.EmailConfig          `json:"email_config"`
		ChannelSettings map[string]map[string]any    `json:"channel_settings"`
	} `json:"communication"`
	Rewards struct {
		RewardType          *domain.RewardType `json:"reward_type"`
		RewardValue         *decimal.Decimal   `json:"reward_value"`
		DisbursementAccount string             `json:"disbursement_account"`
		EstimatedCost       *decimal.Decimal   `json:"estimated_cost"`
		RewardCaps          domain.RewardCaps  `json:"reward_caps"`
	} `json:"rewards"`
	Scheduling struct {
		ScheduleType domain.ScheduleType `json:"schedule_type"`
		StartDate    *time.Time          `json:"start_date"`
		EndDate      *time.Time          `json:"end_date"`
		FrequencyCap domain.FrequencyCap `json:"frequency_cap"`
	} `json:"scheduling"`
	Approval struct {
		CurrentApproverID *int64 `json:"current_approver_id"`
		ApprovalLevel     int    `json:"approval_level"`
	} `json:"approval"`
}

// input flattens the sections. The owner falls back to the caller.
func (req *createCampaignRequest) input(caller int64) port.CampaignInput {
	owner := req.Basics.OwnerID
	if owner == 0 {
		owner = caller
	}
	return port.CampaignInput{
		Code:                   req.Code,
		Name:                   req.Basics.Name,
		Type:                   req.Basics.CampaignType,
		Objective:              req.Basics.Objective,
		Description:            req.Basics.Description,
		Channels:               req.Basics.Channels,
		OwnerID:                owner,
		SelectedSegmentIDs:     req.Audience.SelectedSegments,
		UploadedFile:           req.Audience.UploadedFile,
		TotalTargetedCustomers: req.Audience.TotalTargetedCustomers,
		Messages:               req.Communication.Messages,
		EmailConfig:            req.Communication.EmailConfig,
		ChannelSettings:        req.Communication.ChannelSettings,
		RewardType:             req.Rewards.RewardType,
		RewardValue:            req.Rewards.RewardValue,
		DisbursementAccount:    req.Rewards.DisbursementAccount,
		EstimatedCost:          req.Rewards.EstimatedCost,
		RewardCaps:             req.Rewards.RewardCaps,
		ScheduleType:           req.Scheduling.ScheduleType,
		StartDate:              req.Scheduling.StartDate,
		EndDate:                req.Scheduling.EndDate,
		FrequencyCap:           req.Scheduling.FrequencyCap,
		CurrentApproverID:      req.Approval.CurrentApproverID,
		ApprovalLevel:          req.Approval.ApprovalLevel,
	}
}

// updateCampaignRequest is a flat partial update; absent fields are kept.
// start_date, end_date, uploaded_file and email_config are cleared by an
// explicit null.
type updateCampaignRequest struct {
	Code                   *string                       `json:"campaign_id"`
	Name                   *string                       `json:"name"`
	CampaignType           *domain.CampaignType          `json:"campaign_type"`
	Objective              *string                       `json:"objective"`
	Description            *string                       `json:"description"`
	Channels               *[]string                     `json:"channels"`
	SelectedSegments       *[]string                     `json:"selected_segments"`
	TotalTargetedCustomers *int64                        `json:"total_targeted_customers"`
	Messages               map[string]map[string]string  `json:"messages"`
	ChannelSettings        map[string]map[string]any     `json:"channel_settings"`
	RewardType             *domain.RewardType            `json:"reward_type"`
	RewardValue            *decimal.Decimal              `json:"reward_value"`
	DisbursementAccount    *string                       `json:"disbursement_account"`
	EstimatedCost          *decimal.Decimal              `json:"estimated_cost"`
	RewardCaps             *domain.RewardCaps            `json:"reward_caps"`
	ScheduleType           *domain.ScheduleType          `json:"schedule_type"`
	StartDate              nullable[time.Time]           `json:"start_date"`
	EndDate                nullable[time.Time]           `json:"end_date"`
	FrequencyCap           *domain.FrequencyCap          `json:"frequency_cap"`
	UploadedFile           nullable[domain.UploadedFile] `json:"uploaded_file"`
	EmailConfig            nullable[domain.EmailConfig]  `json:"email_config"`
	CurrentApproverID      *int64                        `json:"current_approver_id"`
	ApprovalLevel          *int                          `json:"approval_level"`
}

func (req *updateCampaignRequest) patch() port.CampaignPatch {
	return port.CampaignPatch{
		Code:                   req.Code,
		Name:                   req.Name,
		Type:                   req.CampaignType,
		Objective:              req.Objective,
		Description:            req.Description,
		Channels:               req.Channels,
		SelectedSegmentIDs:     req.SelectedSegments,
		TotalTargetedCustomers: req.TotalTargetedCustomers,
		Messages:               req.Messages,
		ChannelSettings:        req.ChannelSettings,
		RewardType:             req.RewardType,
		RewardValue:            req.RewardValue,
		DisbursementAccount:    req.DisbursementAccount,
		EstimatedCost:          req.EstimatedCost,
		RewardCaps:             req.RewardCaps,
		ScheduleType:           req.ScheduleType,
		StartDate:              req.StartDate.Optional,
		EndDate:                req.EndDate.Optional,
		FrequencyCap:           req.FrequencyCap,
		UploadedFile:           req.UploadedFile.Optional,
		EmailConfig:            req.EmailConfig.Optional,
		CurrentApproverID:      req.CurrentApproverID,
		ApprovalLevel:          req.ApprovalLevel,
	}
}

type campaignDTO struct {
	ID                     uuid.UUID                    `json:"id"`
	Code                   string                       `json:"campaign_id"`
	Name                   string                       `json:"name"`
	CampaignType           domain.CampaignType          `json:"campaign_type"`
	CampaignTypeDisplay    string                       `json:"campaign_type_display"`
	Objective              string                       `json:"objective"`
	Description            string                       `json:"description"`
	Channels               []string                     `json:"channels"`
	OwnerID                int64                        `json:"owner_id"`
	Status                 domain.CampaignStatus        `json:"status"`
	StatusDisplay          string                       `json:"status_display"`
	SubmittedOn            *time.Time                   `json:"submitted_on"`
	RewardType             *domain.RewardType           `json:"reward_type"`
	RewardValue            decimal.NullDecimal          `json:"reward_value"`
	RewardAccountID        *int64                       `json:"reward_account_id"`
	EstimatedCost          decimal.NullDecimal          `json:"estimated_cost"`
	RewardCaps             domain.RewardCaps            `json:"reward_caps"`
	ScheduleType           domain.ScheduleType          `json:"schedule_type"`
	StartDate              *time.Time                   `json:"start_date"`
	EndDate                *time.Time                   `json:"end_date"`
	FrequencyCap           domain.FrequencyCap          `json:"frequency_cap"`
	SegmentID              string                       `json:"segment_id"`
	SelectedSegments       []string                     `json:"selected_segments"`
	UploadedFile           *domain.UploadedFile         `json:"uploaded_file"`
	TotalTargetedCustomers int64                        `json:"total_targeted_customers"`
	Messages               map[string]map[string]string `json:"messages"`
	EmailConfig            *domain.EmailConfig          `json:"email_config"`
	ChannelSettings        map[string]map[string]any    `json:"channel_settings"`
	CurrentApproverID      *int64                       `json:"current_approver_id"`
	ApprovalLevel          int                          `json:"approval_level"`
	CreatedAt              time.Time                    `json:"created_at"`
	UpdatedAt              time.Time                    `json:"updated_at"`
}

func toCampaignDTO(c *domain.Campaign) campaignDTO {
	return campaignDTO{
		ID:                     c.ID,
		Code:                   c.Code,
		Name:                   c.Name,
		CampaignType:           c.Type,
		CampaignTypeDisplay:    format.Label(string(c.Type)),
		Objective:              c.Objective,
		Description:            c.Description,
		Channels:               nonNil(c.Channels),
		OwnerID:                c.OwnerID,
		Status:                 c.Status,
		StatusDisplay:          format.Label(string(c.Status)),
		SubmittedOn:            c.SubmittedOn,
		RewardType:             c.RewardType,
		RewardValue:            c.RewardValue,
		RewardAccountID:        c.RewardAccountID,
		EstimatedCost:          c.EstimatedCost,
		RewardCaps:             c.RewardCaps,
		ScheduleType:           c.ScheduleType,
		StartDate:              c.StartDate,
		EndDate:                c.EndDate,
		FrequencyCap:           c.FrequencyCap,
		SegmentID:              c.SegmentID,
		SelectedSegments:       nonNil(c.SelectedSegmentIDs),
		UploadedFile:           c.UploadedFile,
		TotalTargetedCustomers: c.TotalTargetedCustomers,
		Messages:               c.Messages,
		EmailConfig:            c.EmailConfig,
		ChannelSettings:        c.ChannelSettings,
		CurrentApproverID:      c.CurrentApproverID,
		ApprovalLevel:          c.ApprovalLevel,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type trailDTO struct {
	ID              int64           `json:"id"`
	CampaignID      uuid.UUID       `json:"campaign_id"`
	ApproverID      int64           `json:"approver_id"`
	Decision        domain.Decision `json:"decision"`
	DecisionDisplay string          `json:"decision_display"`
	Comment         string          `json:"comment"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toTrailDTO(t *domain.ApprovalTrail) trailDTO {
	return trailDTO{
		ID:              t.ID,
		CampaignID:      t.CampaignID,
		ApproverID:      t.ApproverID,
		Decision:        t.Decision,
		DecisionDisplay: format.Label(string(t.Decision)),
		Comment:         t.Comment,
		CreatedAt:       t.CreatedAt,
	}
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.CampaignFilter{
		Status: domain.CampaignStatus(q.Get("status")),
		Type:   domain.CampaignType(q.Get("type")),
		Search: q.Get("search"),
	}
	page, err := h.svc.Campaigns.List(r.Context(), f, pageRequest(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	campaigns := make([]campaignDTO, len(page.Campaigns))
	for i := range page.Campaigns {
		campaigns[i] = toCampaignDTO(&page.Campaigns[i])
	}
	h.success(w, http.StatusOK, envelope{
		"campaigns":  campaigns,
		"pagination": toPagination(page.Pagination),
	})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Create(r.Context(), req.input(callerID(r.Context())))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusCreated, envelope{
		"message":  "Campaign created successfully",
		"campaign": toCampaignDTO(c),
	})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{"campaign": toCampaignDTO(c)})
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateCampaignRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Update(r.Context(), id, req.patch())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{
		"message":  "Campaign updated successfully",
		"campaign": toCampaignDTO(c),
	})
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.Campaigns.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{"message": "Campaign deleted successfully"})
}

func (h *Handler) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Submit(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{
		"message":  "Campaign submitted for approval",
		"campaign": toCampaignDTO(c),
	})
}

type decisionRequest struct {
	Decision   domain.Decision `json:"decision"`
	Comment    string          `json:"comment"`
	ApproverID int64           `json:"approver_id"`
}

func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req decisionRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	in := port.DecisionInput{Decision: req.Decision, ApproverID: req.ApproverID, Comment: req.Comment}
	if in.ApproverID == 0 {
		in.ApproverID = callerID(r.Context())
	}
	c, trail, err := h.svc.Campaigns.Decide(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{
		"message":  "Campaign " + string(trail.Decision),
		"campaign": toCampaignDTO(c),
		"trail":    toTrailDTO(trail),
	})
}

func (h *Handler) handleCampaignTrails(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	trails, err := h.svc.Campaigns.Trails(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]trailDTO, len(trails))
	for i := range trails {
		out[i] = toTrailDTO(&trails[i])
	}
	h.success(w, http.StatusOK, envelope{"approval_trails": out})
}

func (h *Handler) handleCampaignLogs(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	entries, err := h.svc.Campaigns.Logs(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]envelope, len(entries))
	for i, e := range entries {
		out[i] = envelope{
			"at":            e.At,
			"event":         e.Event,
			"event_display": format.Label(e.Event),
			"actor_id":      e.ActorID,
			"message":       e.Message,
		}
	}
	h.success(w, http.StatusOK, envelope{"campaign_id": id, "logs": out})
}

// loadCampaign parses the id and fetches the campaign, writing the error
// response itself on failure.
func (h *Handler) loadCampaign(w http.ResponseWriter, r *http.Request) (*domain.Campaign, bool) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	c, err := h.svc.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return c, true
}

func (h *Handler) handleCampaignAudience(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadCampaign(w, r)
	if !ok {
		return
	}
	h.success(w, http.StatusOK, envelope{
		"campaign_id": c.Code,
		"audience": envelope{
			"segment_id":                   c.SegmentID,
			"selected_segments":            nonNil(c.SelectedSegmentIDs),
			"uploaded_file":                c.UploadedFile,
			"total_targeted_customers":     c.TotalTargetedCustomers,
			"formatted_targeted_customers": format.Count(c.TotalTargetedCustomers),
		},
	})
}

func (h *Handler) handleCampaignChannels(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadCampaign(w, r)
	if !ok {
		return
	}
	channels := make([]envelope, 0, len(c.Channels))
	for _, ch := range c.Channels {
		channels = append(channels, envelope{
			"channel":  ch,
			"messages": c.Messages[ch],
			"settings": c.ChannelSettings[ch],
		})
	}
	h.success(w, http.StatusOK, envelope{
		"campaign_id":  c.Code,
		"channels":     channels,
		"email_config": c.EmailConfig,
	})
}

func (h *Handler) handleCampaignRewards(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadCampaign(w, r)
	if !ok {
		return
	}
	account, err := h.svc.Campaigns.RewardAccount(r.Context(), c)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	currency := domain.DefaultCurrency
	var accountBody any
	if account != nil {
		currency = account.Currency
		accountBody = envelope{
			"id":                account.ID,
			"account_id":        account.AccountID,
			"account_name":      account.AccountName,
			"formatted_balance": format.Money(account.Balance, account.Currency),
			"is_available":      account.IsAvailable(),
		}
	}
	rewards := envelope{
		"reward_type":    c.RewardType,
		"reward_value":   c.RewardValue,
		"estimated_cost": c.EstimatedCost,
		"reward_caps":    c.RewardCaps,
		"reward_account": accountBody,
	}
	if c.RewardType != nil {
		rewards["reward_type_display"] = format.Label(string(*c.RewardType))
	}
	if c.RewardValue.Valid {
		rewards["formatted_reward_value"] = format.Money(c.RewardValue.Decimal, currency)
	}
	if c.EstimatedCost.Valid {
		rewards["formatted_estimated_cost"] = format.Money(c.EstimatedCost.Decimal, currency)
	}
	h.success(w, http.StatusOK, envelope{"campaign_id": c.Code, "rewards": rewards})
}

func (h *Handler) handleCampaignPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.svc.Campaigns.Performance(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{
		"performance": envelope{
			"targeted":               p.Targeted,
			"sent":                   p.Sent,
			"delivered":              p.Delivered,
			"opened":                 p.Opened,
			"converted":              p.Converted,
			"formatted_targeted":     format.Count(p.Targeted),
			"formatted_delivered":    format.Count(p.Delivered),
			"delivery_rate":          format.Percent(p.DeliveryRate()),
			"conversion_rate":        format.Percent(p.ConversionRate()),
			"rewards_paid":           p.RewardsPaid,
			"formatted_rewards_paid": format.Money(p.RewardsPaid, domain.DefaultCurrency),
		},
	})
}
