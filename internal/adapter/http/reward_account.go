package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/format"
	"campaign-hub/internal/core/port"
)

const rewardAccountEntity = "Reward account"

type rewardAccountRequest struct {
	AccountID   *string               `json:"account_id"`
	AccountName *string               `json:"account_name"`
	Balance     *decimal.Decimal      `json:"balance"`
	Currency    *string               `json:"currency"`
	Status      *domain.AccountStatus `json:"status"`
}

type rewardAccountDTO struct {
	ID                     int64                `json:"id"`
	AccountID              string               `json:"account_id"`
	AccountName            string               `json:"account_name"`
	Balance                float64              `json:"balance"`
	FormattedBalance       string               `json:"formatted_balance"`
	Currency               string               `json:"currency"`
	Status                 domain.AccountStatus `json:"status"`
	StatusDisplay          string               `json:"status_display"`
	IsAvailable            bool                 `json:"is_available"`
	AssignedCampaignsCount int                  `json:"assigned_campaigns_count"`
	CreatedAt              time.Time            `json:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at"`
}

func toRewardAccountDTO(v *port.RewardAccountView) rewardAccountDTO {
	a := v.Account
	return rewardAccountDTO{
		ID:                     a.ID,
		AccountID:              a.AccountID,
		AccountName:            a.AccountName,
		Balance:                a.Balance.InexactFloat64(),
		FormattedBalance:       format.Money(a.Balance, a.Currency),
		Currency:               a.Currency,
		Status:                 a.Status,
		StatusDisplay:          format.Label(string(a.Status)),
		IsAvailable:            a.IsAvailable(),
		AssignedCampaignsCount: v.AssignedCampaigns,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

func (h *Handler) handleListRewardAccounts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.RewardAccountFilter{Status: domain.AccountStatus(q.Get("status")), Search: q.Get("search")}
	page, err := h.svc.RewardAccounts.List(r.Context(), f, pageRequest(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	accounts := make([]rewardAccountDTO, len(page.Accounts))
	for i := range page.Accounts {
		accounts[i] = toRewardAccountDTO(&page.Accounts[i])
	}
	h.success(w, http.StatusOK, envelope{
		"accounts":   accounts,
		"pagination": toPagination(page.Pagination),
		"summary": envelope{
			"total_accounts":          page.Summary.TotalAccounts,
			"active_accounts":         page.Summary.ActiveAccounts,
			"total_balance":           page.Summary.TotalBalance.InexactFloat64(),
			"formatted_total_balance": format.Money(page.Summary.TotalBalance, domain.DefaultCurrency),
		},
	})
}

func (h *Handler) handleCreateRewardAccount(w http.ResponseWriter, r *http.Request) {
	var req rewardAccountRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	var in port.RewardAccountInput
	if req.AccountID != nil {
		in.AccountID = *req.AccountID
	}
	if req.AccountName != nil {
		in.AccountName = *req.AccountName
	}
	if req.Balance != nil {
		in.Balance = *req.Balance
	}
	if req.Currency != nil {
		in.Currency = *req.Currency
	}
	if req.Status != nil {
		in.Status = *req.Status
	}
	v, err := h.svc.RewardAccounts.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusCreated, envelope{
		"message": "Reward account created successfully",
		"account": toRewardAccountDTO(v),
	})
}

func (h *Handler) handleGetRewardAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(chi.URLParam(r, "id"), rewardAccountEntity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.RewardAccounts.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{"account": toRewardAccountDTO(v)})
}

func (h *Handler) handleUpdateRewardAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(chi.URLParam(r, "id"), rewardAccountEntity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req rewardAccountRequest
	if err = decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.svc.RewardAccounts.Update(r.Context(), id, port.RewardAccountPatch{
		AccountID:   req.AccountID,
		AccountName: req.AccountName,
		Balance:     req.Balance,
		Currency:    req.Currency,
		Status:      req.Status,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{
		"message": "Reward account updated successfully",
		"account": toRewardAccountDTO(v),
	})
}

func (h *Handler) handleDeleteRewardAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(chi.URLParam(r, "id"), rewardAccountEntity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err = h.svc.RewardAccounts.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.success(w, http.StatusOK, envelope{"message": "Reward account deleted successfully"})
}
