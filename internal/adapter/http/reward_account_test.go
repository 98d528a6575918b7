package httpadapter

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

func TestCreateRewardAccount(t *testing.T) {
	h, s := newTestHandler(t)
	s.accounts.EXPECT().Create(mock.Anything, port.RewardAccountInput{
		AccountID:   "ACC_100",
		AccountName: "Main",
		Balance:     decimal.RequireFromString("100"),
	}).Return(&port.RewardAccountView{Account: domain.RewardAccount{
		ID:          1,
		AccountID:   "ACC_100",
		AccountName: "Main",
		Balance:     decimal.RequireFromString("100"),
		Currency:    "ETB",
		Status:      domain.AccountActive,
	}}, nil)

	rec := serve(h, http.MethodPost, "/api/reward-accounts/create/",
		`{"account_id":"ACC_100","account_name":"Main","balance":100}`, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeJSON(t, rec)
	assert.Equal(t, "Reward account created successfully", body["message"])
	a := body["account"].(map[string]any)
	assert.Equal(t, "100.00 ETB", a["formatted_balance"])
	assert.Equal(t, float64(100), a["balance"])
	assert.Equal(t, true, a["is_available"])
	assert.Equal(t, "Active", a["status_display"])
	assert.Equal(t, float64(0), a["assigned_campaigns_count"])
}

func TestCreateRewardAccountNegativeBalance(t *testing.T) {
	h, s := newTestHandler(t)
	s.accounts.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("balance", "Balance cannot be negative."))

	rec := serve(h, http.MethodPost, "/api/reward-accounts/create",
		`{"account_id":"ACC_101","account_name":"Main","balance":-1}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decodeJSON(t, rec)["errors"].(map[string]any)
	assert.Equal(t, []any{"Balance cannot be negative."}, errs["balance"])
}

func TestRewardAccountNotFound(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		h, s := newTestHandler(t)
		s.accounts.EXPECT().Get(mock.Anything, int64(99)).
			Return(nil, &domain.NotFoundError{Entity: "Reward account", ID: "99"})

		rec := serve(h, http.MethodGet, "/api/reward-accounts/99", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Reward account not found", decodeJSON(t, rec)["message"])
	})

	t.Run("non numeric id", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(h, http.MethodDelete, "/api/reward-accounts/abc/delete", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateRewardAccountPartial(t *testing.T) {
	h, s := newTestHandler(t)
	frozen := domain.AccountFrozen
	s.accounts.EXPECT().Update(mock.Anything, int64(1), port.RewardAccountPatch{Status: &frozen}).
		Return(&port.RewardAccountView{
			Account:           domain.RewardAccount{ID: 1, AccountID: "ACC_100", Currency: "ETB", Status: frozen},
			AssignedCampaigns: 2,
		}, nil)

	rec := serve(h, http.MethodPut, "/api/reward-accounts/1", `{"status":"frozen"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	a := decodeJSON(t, rec)["account"].(map[string]any)
	assert.Equal(t, false, a["is_available"])
	assert.Equal(t, float64(2), a["assigned_campaigns_count"])
}

func TestListRewardAccounts(t *testing.T) {
	h, s := newTestHandler(t)
	s.accounts.EXPECT().List(mock.Anything, port.RewardAccountFilter{Status: domain.AccountActive}, domain.PageRequest{}).
		Return(&port.RewardAccountPage{
			Accounts: []port.RewardAccountView{{Account: domain.RewardAccount{ID: 1, Currency: "ETB", Status: domain.AccountActive}}},
			Summary: port.RewardAccountSummary{
				TotalAccounts:  3,
				ActiveAccounts: 2,
				TotalBalance:   decimal.RequireFromString("125000.5"),
			},
		}, nil)

	rec := serve(h, http.MethodGet, "/api/reward-accounts?status=active", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, "125,000.50 ETB", summary["formatted_total_balance"])
	assert.Equal(t, float64(2), summary["active_accounts"])
	assert.Len(t, body["accounts"], 1)
}
