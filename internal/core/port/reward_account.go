package port

import (
	"context"

	"github.com/shopspring/decimal"

	"campaign-hub/internal/core/domain"
)

// RewardAccountFilter narrows account listings.
type RewardAccountFilter struct {
	Status domain.AccountStatus
	Search string
}

// RewardAccountSummary aggregates all reward accounts.
type RewardAccountSummary struct {
	TotalAccounts  int
	ActiveAccounts int
	TotalBalance   decimal.Decimal
}

// RewardAccountRepository persists reward accounts. Deletion is physical;
// campaigns referencing a deleted account lose the reference.
type RewardAccountRepository interface {
	Create(ctx context.Context, a *domain.RewardAccount) error
	Get(ctx context.Context, id int64) (*domain.RewardAccount, error)
	Update(ctx context.Context, a *domain.RewardAccount) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, f RewardAccountFilter) (int, error)
	// List returns accounts ordered by name.
	List(ctx context.Context, f RewardAccountFilter, limit, offset int) ([]domain.RewardAccount, error)
	// AccountIDTaken reports whether accountID belongs to a record other
	// than excludeID. Pass 0 to check against every record.
	AccountIDTaken(ctx context.Context, accountID string, excludeID int64) (bool, error)
	// Resolve finds the account referenced by ref: exact account_id, exact
	// name, then a case-insensitive partial match. It returns nil when
	// nothing matches.
	Resolve(ctx context.Context, ref string) (*domain.RewardAccount, error)
	// CampaignCounts returns the number of campaigns funded by each id.
	CampaignCounts(ctx context.Context, ids []int64) (map[int64]int, error)
	Summary(ctx context.Context) (RewardAccountSummary, error)
}

// RewardAccountInput is a create request.
type RewardAccountInput struct {
	AccountID   string
	AccountName string
	Balance     decimal.Decimal
	Currency    string
	Status      domain.AccountStatus
}

// RewardAccountPatch is a partial update; nil means unchanged.
type RewardAccountPatch struct {
	AccountID   *string
	AccountName *string
	Balance     *decimal.Decimal
	Currency    *string
	Status      *domain.AccountStatus
}

// RewardAccountView is an account with the number of campaigns it funds.
type RewardAccountView struct {
	Account           domain.RewardAccount
	AssignedCampaigns int
}

// RewardAccountPage is one page of an account listing.
type RewardAccountPage struct {
	Accounts   []RewardAccountView
	Pagination domain.Pagination
	Summary    RewardAccountSummary
}

// RewardAccountUseCase manages reward accounts.
type RewardAccountUseCase interface {
	Create(ctx context.Context, in RewardAccountInput) (*RewardAccountView, error)
	Get(ctx context.Context, id int64) (*RewardAccountView, error)
	Update(ctx context.Context, id int64, p RewardAccountPatch) (*RewardAccountView, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f RewardAccountFilter, page domain.PageRequest) (*RewardAccountPage, error)
}
