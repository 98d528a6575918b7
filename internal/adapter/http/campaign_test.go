package httpadapter

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

var testCampaignID = uuid.MustParse("6b1f2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")

const createCampaignBody = `{
	"basics": {
		"name": "Holiday Cashback",
		"campaign_type": "incentive",
		"objective": "Drive December top-ups",
		"channels": ["sms", "email"]
	},
	"audience": {"selected_segments": ["seg_20250101120000", "seg_20250102120000"]},
	"communication": {"messages": {"sms": {"en": "Get 5% back"}}},
	"rewards": {"reward_type": "cashback", "reward_value": "25.50", "disbursement_account": "ACC_100"},
	"scheduling": {
		"schedule_type": "scheduled",
		"start_date": "2025-12-01T00:00:00Z",
		"end_date": "2025-12-31T23:59:59Z",
		"frequency_cap": "weekly"
	}
}`

// campaignFromInput mimics the store: the flattened input comes back as
// the persisted campaign.
func campaignFromInput(in port.CampaignInput) *domain.Campaign {
	c := &domain.Campaign{
		ID:                 testCampaignID,
		Code:               domain.GenerateCampaignCode(testCampaignID),
		Name:               in.Name,
		Type:               in.Type,
		Objective:          in.Objective,
		Channels:           in.Channels,
		OwnerID:            in.OwnerID,
		Status:             domain.StatusDraft,
		RewardType:         in.RewardType,
		ScheduleType:       in.ScheduleType,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		FrequencyCap:       in.FrequencyCap,
		SegmentID:          in.SelectedSegmentIDs[0],
		SelectedSegmentIDs: in.SelectedSegmentIDs,
		Messages:           in.Messages,
		ApprovalLevel:      1,
	}
	if in.RewardValue != nil {
		c.RewardValue = decimal.NewNullDecimal(*in.RewardValue)
	}
	return c
}

func TestCreateCampaignRoundTrip(t *testing.T) {
	h, s := newTestHandler(t)

	var stored *domain.Campaign
	s.campaigns.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in port.CampaignInput) (*domain.Campaign, error) {
			assert.Equal(t, int64(7), in.OwnerID, "owner falls back to the caller")
			assert.Equal(t, "ACC_100", in.DisbursementAccount)
			assert.Equal(t, []string{"seg_20250101120000", "seg_20250102120000"}, in.SelectedSegmentIDs)
			require.NotNil(t, in.RewardValue)
			assert.Equal(t, "25.5", in.RewardValue.String())
			stored = campaignFromInput(in)
			return stored, nil
		})
	s.campaigns.EXPECT().Get(mock.Anything, testCampaignID).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.Campaign, error) { return stored, nil })

	rec := serve(h, http.MethodPost, "/api/campaigns/create/", createCampaignBody, "7")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeJSON(t, rec)
	assert.Equal(t, "success", created["status"])

	rec = serve(h, http.MethodGet, "/api/campaigns/"+testCampaignID.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeJSON(t, rec)["campaign"].(map[string]any)

	assert.Equal(t, created["campaign"], got)
	assert.Equal(t, "Holiday Cashback", got["name"])
	assert.Equal(t, "incentive", got["campaign_type"])
	assert.Equal(t, "Drive December top-ups", got["objective"])
	assert.Equal(t, []any{"sms", "email"}, got["channels"])
	assert.Equal(t, "cashback", got["reward_type"])
	assert.Equal(t, "25.5", got["reward_value"])
	assert.Equal(t, "scheduled", got["schedule_type"])
	assert.Equal(t, "2025-12-01T00:00:00Z", got["start_date"])
	assert.Equal(t, "weekly", got["frequency_cap"])
	assert.Equal(t, "seg_20250101120000", got["segment_id"])
	assert.Equal(t, "CAMP_6B1F2C3D", got["campaign_id"])
	assert.Equal(t, "Draft", got["status_display"])
}

func TestCreateCampaignExplicitOwner(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in port.CampaignInput) bool {
		return in.OwnerID == 3
	})).Return(&domain.Campaign{ID: testCampaignID}, nil)

	rec := serve(h, http.MethodPost, "/api/campaigns/create", `{"basics":{"name":"x","owner_id":3}}`, "7")

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCampaignValidation(t *testing.T) {
	h, s := newTestHandler(t)
	verr := &domain.ValidationError{}
	verr.Add("owner", "An owner is required.")
	verr.Add("segment", "A segment is required.")
	s.campaigns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, verr)

	rec := serve(h, http.MethodPost, "/api/campaigns/create", `{"basics":{"name":"x"}}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decodeJSON(t, rec)["errors"].(map[string]any)
	assert.Equal(t, []any{"An owner is required."}, errs["owner"])
	assert.Equal(t, []any{"A segment is required."}, errs["segment"])
}

func TestSubmitCampaignTwice(t *testing.T) {
	h, s := newTestHandler(t)
	submitted := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s.campaigns.EXPECT().Submit(mock.Anything, testCampaignID).
		Return(&domain.Campaign{ID: testCampaignID, Status: domain.StatusPendingApproval, SubmittedOn: &submitted}, nil).
		Once()
	s.campaigns.EXPECT().Submit(mock.Anything, testCampaignID).
		Return(nil, &domain.InvalidTransitionError{Action: domain.ActionSubmit, From: domain.StatusPendingApproval}).
		Once()

	path := "/api/campaigns/" + testCampaignID.String() + "/submit/"
	rec := serve(h, http.MethodPost, path, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	c := decodeJSON(t, rec)["campaign"].(map[string]any)
	assert.Equal(t, "pending_approval", c["status"])
	assert.Equal(t, "2025-03-14T09:30:00Z", c["submitted_on"])

	rec = serve(h, http.MethodPost, path, "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `cannot submit a campaign in status "pending_approval"`, decodeJSON(t, rec)["message"])
}

func TestApproveCampaign(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Decide(mock.Anything, testCampaignID, port.DecisionInput{
		Decision:   domain.DecisionApproved,
		ApproverID: 9,
		Comment:    "looks good",
	}).Return(
		&domain.Campaign{ID: testCampaignID, Status: domain.StatusScheduled},
		&domain.ApprovalTrail{ID: 1, CampaignID: testCampaignID, ApproverID: 9, Decision: domain.DecisionApproved, Comment: "looks good"},
		nil,
	)
	s.campaigns.EXPECT().Trails(mock.Anything, testCampaignID).Return([]domain.ApprovalTrail{
		{ID: 1, CampaignID: testCampaignID, ApproverID: 9, Decision: domain.DecisionApproved},
	}, nil)

	base := "/api/campaigns/" + testCampaignID.String()
	rec := serve(h, http.MethodPost, base+"/approve", `{"decision":"approved","comment":"looks good"}`, "9")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	assert.Equal(t, "Campaign approved", body["message"])
	c := body["campaign"].(map[string]any)
	assert.Equal(t, "scheduled", c["status"])
	assert.Nil(t, c["current_approver_id"])

	rec = serve(h, http.MethodGet, base+"/approval-trails", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	trails := decodeJSON(t, rec)["approval_trails"].([]any)
	require.Len(t, trails, 1)
	assert.Equal(t, "approved", trails[0].(map[string]any)["decision"])
}

func TestApproveCampaignExplicitApprover(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Decide(mock.Anything, testCampaignID, port.DecisionInput{
		Decision:   domain.DecisionRejected,
		ApproverID: 4,
	}).Return(
		&domain.Campaign{ID: testCampaignID, Status: domain.StatusDraft},
		&domain.ApprovalTrail{ID: 2, Decision: domain.DecisionRejected},
		nil,
	)

	rec := serve(h, http.MethodPost, "/api/campaigns/"+testCampaignID.String()+"/approve",
		`{"decision":"rejected","approver_id":4}`, "9")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "draft", decodeJSON(t, rec)["campaign"].(map[string]any)["status"])
}

func TestCampaignMalformedID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/api/campaigns/not-a-uuid", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Campaign not found", decodeJSON(t, rec)["message"])
}

func TestCampaignRewards(t *testing.T) {
	h, s := newTestHandler(t)
	accountID := int64(5)
	rt := domain.RewardCashback
	c := &domain.Campaign{
		ID:              testCampaignID,
		Code:            "CAMP_6B1F2C3D",
		RewardType:      &rt,
		RewardValue:     decimal.NewNullDecimal(decimal.RequireFromString("1500")),
		RewardAccountID: &accountID,
	}
	s.campaigns.EXPECT().Get(mock.Anything, testCampaignID).Return(c, nil)
	s.campaigns.EXPECT().RewardAccount(mock.Anything, c).Return(&domain.RewardAccount{
		ID:        5,
		AccountID: "ACC_100",
		Balance:   decimal.RequireFromString("50000"),
		Currency:  "ETB",
		Status:    domain.AccountActive,
	}, nil)

	rec := serve(h, http.MethodGet, "/api/campaigns/"+testCampaignID.String()+"/rewards", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	rewards := decodeJSON(t, rec)["rewards"].(map[string]any)
	assert.Equal(t, "1,500.00 ETB", rewards["formatted_reward_value"])
	assert.Equal(t, "Cashback", rewards["reward_type_display"])
	account := rewards["reward_account"].(map[string]any)
	assert.Equal(t, "50,000.00 ETB", account["formatted_balance"])
	assert.Equal(t, true, account["is_available"])
}

func TestCampaignPerformance(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Performance(mock.Anything, testCampaignID).Return(&port.CampaignPerformance{
		Targeted:  1_200_000,
		Sent:      1000,
		Delivered: 850,
		Converted: 85,
	}, nil)

	rec := serve(h, http.MethodGet, "/api/campaigns/"+testCampaignID.String()+"/performance", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeJSON(t, rec)["performance"].(map[string]any)
	assert.Equal(t, "1.2M", p["formatted_targeted"])
	assert.Equal(t, "85.0%", p["delivery_rate"])
	assert.Equal(t, "10.0%", p["conversion_rate"])
}

func TestListCampaignsFilters(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().List(mock.Anything,
		port.CampaignFilter{Status: domain.StatusDraft, Type: domain.CampaignWinBack, Search: "holiday"},
		domain.PageRequest{Page: 2, PageSize: 5},
	).Return(&port.CampaignPage{Pagination: domain.Pagination{Total: 6, Page: 2, PageSize: 5, TotalPages: 2}}, nil)

	rec := serve(h, http.MethodGet, "/api/campaigns?status=draft&type=win_back&search=holiday&page=2&page_size=5", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, []any{}, body["campaigns"])
	assert.Equal(t, float64(2), body["pagination"].(map[string]any)["total_pages"])
}

func TestUpdateCampaignNullClears(t *testing.T) {
	h, s := newTestHandler(t)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	s.campaigns.EXPECT().Update(mock.Anything, testCampaignID, mock.MatchedBy(func(p port.CampaignPatch) bool {
		return p.StartDate.Set && p.StartDate.Value == nil &&
			p.EndDate.Set && p.EndDate.Value != nil && p.EndDate.Value.Equal(end) &&
			p.EmailConfig.Set && p.EmailConfig.Value == nil &&
			!p.UploadedFile.Set &&
			p.Code != nil && *p.Code == "HOLIDAY_25" &&
			p.RewardCaps != nil && p.RewardCaps.Daily != nil
	})).Return(&domain.Campaign{ID: testCampaignID, Code: "HOLIDAY_25", Status: domain.StatusDraft}, nil)

	rec := serve(h, http.MethodPut, "/api/campaigns/"+testCampaignID.String(), `{
		"campaign_id": "HOLIDAY_25",
		"start_date": null,
		"end_date": "2026-01-31T00:00:00Z",
		"email_config": null,
		"reward_caps": {"daily": "1000.00"}
	}`, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	assert.Equal(t, "HOLIDAY_25", body["campaign"].(map[string]any)["campaign_id"])
}

func TestUpdateCampaignAbsentDatesUntouched(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Update(mock.Anything, testCampaignID, mock.MatchedBy(func(p port.CampaignPatch) bool {
		return !p.StartDate.Set && !p.EndDate.Set && p.Code == nil && p.Name != nil
	})).Return(&domain.Campaign{ID: testCampaignID, Status: domain.StatusDraft}, nil)

	rec := serve(h, http.MethodPut, "/api/campaigns/"+testCampaignID.String(), `{"name":"Renamed"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCampaignLogs(t *testing.T) {
	h, s := newTestHandler(t)
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s.campaigns.EXPECT().Logs(mock.Anything, testCampaignID).Return([]domain.LogEntry{
		{At: created.Add(time.Hour), Event: domain.EventSubmitted, ActorID: 2, Message: "Submitted for approval."},
		{At: created, Event: domain.EventCreated, ActorID: 2, Message: "Campaign created as draft."},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/campaigns/"+testCampaignID.String()+"/logs", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, testCampaignID.String(), body["campaign_id"])
	logs := body["logs"].([]any)
	require.Len(t, logs, 2)
	first := logs[0].(map[string]any)
	assert.Equal(t, "submitted", first["event"])
	assert.Equal(t, "Submitted", first["event_display"])
	assert.Equal(t, float64(2), first["actor_id"])
}

func TestCampaignLogsNotFound(t *testing.T) {
	h, s := newTestHandler(t)
	s.campaigns.EXPECT().Logs(mock.Anything, testCampaignID).
		Return(nil, &domain.NotFoundError{Entity: "Campaign", ID: testCampaignID.String()})

	rec := serve(h, http.MethodGet, "/api/campaigns/"+testCampaignID.String()+"/logs", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
