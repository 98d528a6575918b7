package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

const msgAccountIDTaken = "Account ID must be unique."

// RewardAccountUseCase manages reward accounts.
type RewardAccountUseCase struct {
	repo   port.RewardAccountRepository
	logger *slog.Logger
}

// NewRewardAccountUseCase creates a reward account usecase.
func NewRewardAccountUseCase(repo port.RewardAccountRepository, logger *slog.Logger) *RewardAccountUseCase {
	return &RewardAccountUseCase{repo: repo, logger: logger}
}

// validate runs the pure checks and the uniqueness check against every
// record except excludeID, and reports them together.
func (u *RewardAccountUseCase) validate(ctx context.Context, a *domain.RewardAccount, excludeID int64) error {
	v := domain.ValidateRewardAccount(a)
	if !v.Has("account_id") {
		taken, err := u.repo.AccountIDTaken(ctx, a.AccountID, excludeID)
		if err != nil {
			return err
		}
		if taken {
			v.Add("account_id", msgAccountIDTaken)
		}
	}
	return v.Err()
}

// Create stores a new account. Currency defaults to ETB and status to
// active.
func (u *RewardAccountUseCase) Create(ctx context.Context, in port.RewardAccountInput) (*port.RewardAccountView, error) {
	a := &domain.RewardAccount{
		AccountID:   strings.TrimSpace(in.AccountID),
		AccountName: strings.TrimSpace(in.AccountName),
		Balance:     in.Balance,
		Currency:    in.Currency,
		Status:      in.Status,
	}
	if a.Currency == "" {
		a.Currency = domain.DefaultCurrency
	}
	if a.Status == "" {
		a.Status = domain.AccountActive
	}
	if err := u.validate(ctx, a, 0); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, conflictAsValidation(err)
	}
	u.logger.Info("reward account created",
		slog.Int64("id", a.ID),
		slog.String("account_id", a.AccountID),
		slog.String("balance", a.Balance.StringFixed(2)))
	return &port.RewardAccountView{Account: *a}, nil
}

// Get returns the account with its number of funded campaigns.
func (u *RewardAccountUseCase) Get(ctx context.Context, id int64) (*port.RewardAccountView, error) {
	a, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.view(ctx, a)
}

func (u *RewardAccountUseCase) view(ctx context.Context, a *domain.RewardAccount) (*port.RewardAccountView, error) {
	counts, err := u.repo.CampaignCounts(ctx, []int64{a.ID})
	if err != nil {
		return nil, err
	}
	return &port.RewardAccountView{Account: *a, AssignedCampaigns: counts[a.ID]}, nil
}

// Update applies p and re-validates the merged account.
func (u *RewardAccountUseCase) Update(ctx context.Context, id int64, p port.RewardAccountPatch) (*port.RewardAccountView, error) {
	a, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.AccountID != nil {
		a.AccountID = strings.TrimSpace(*p.AccountID)
	}
	if p.AccountName != nil {
		a.AccountName = strings.TrimSpace(*p.AccountName)
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if p.Currency != nil {
		a.Currency = *p.Currency
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if err = u.validate(ctx, a, a.ID); err != nil {
		return nil, err
	}
	if err = u.repo.Update(ctx, a); err != nil {
		return nil, conflictAsValidation(err)
	}
	return u.view(ctx, a)
}

// Delete removes the account. Campaigns funded by it keep existing
// without an account.
func (u *RewardAccountUseCase) Delete(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("reward account deleted", slog.Int64("id", id))
	return nil
}

// List returns a page of accounts with campaign counts and the summary.
func (u *RewardAccountUseCase) List(ctx context.Context, f port.RewardAccountFilter, page domain.PageRequest) (*port.RewardAccountPage, error) {
	total, err := u.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	pg, offset := domain.Paginate(page, total)
	accounts, err := u.repo.List(ctx, f, pg.PageSize, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(accounts))
	for i, a := range accounts {
		ids[i] = a.ID
	}
	counts, err := u.repo.CampaignCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	summary, err := u.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]port.RewardAccountView, len(accounts))
	for i, a := range accounts {
		views[i] = port.RewardAccountView{Account: a, AssignedCampaigns: counts[a.ID]}
	}
	return &port.RewardAccountPage{Accounts: views, Pagination: pg, Summary: summary}, nil
}

// conflictAsValidation turns a store level uniqueness violation into the
// field error clients expect. Other errors pass through.
func conflictAsValidation(err error) error {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return conflict.AsValidation()
	}
	return err
}
