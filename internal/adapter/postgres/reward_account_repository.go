package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// RewardAccountRepository implements port.RewardAccountRepository. Rows are
// physically deleted; campaigns.reward_account_id is set to NULL by the
// foreign key.
type RewardAccountRepository struct {
	pool *pgxpool.Pool
}

// NewRewardAccountRepository returns a new repository instance.
func NewRewardAccountRepository(pool *pgxpool.Pool) *RewardAccountRepository {
	return &RewardAccountRepository{pool: pool}
}

const accountColumns = `id, account_id, account_name, balance, currency, status, created_at, updated_at`

func scanAccount(row pgx.CollectableRow) (domain.RewardAccount, error) {
	var a domain.RewardAccount
	err := row.Scan(&a.ID, &a.AccountID, &a.AccountName, &a.Balance, &a.Currency, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func accountWriteErr(op string, err error) error {
	switch code, _ := pgCode(err); code {
	case codeUniqueViolation:
		return &domain.ConflictError{Field: "account_id", Message: "Account ID must be unique."}
	case codeCheckViolation:
		return domain.NewValidationError("balance", "Balance cannot be negative.")
	}
	if verr := dataErr(err, "balance"); verr != nil {
		return verr
	}
	return fmt.Errorf("%s reward account: %w", op, err)
}

// Create inserts a and fills its id and timestamps.
func (r *RewardAccountRepository) Create(ctx context.Context, a *domain.RewardAccount) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO reward_accounts (account_id, account_name, balance, currency, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`,
		a.AccountID, a.AccountName, a.Balance, a.Currency, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return accountWriteErr("create", err)
	}
	return nil
}

// Get returns an account by its numeric id.
func (r *RewardAccountRepository) Get(ctx context.Context, id int64) (*domain.RewardAccount, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+accountColumns+` FROM reward_accounts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get reward account: %w", err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanAccount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "Reward account", ID: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("get reward account: %w", err)
	}
	return &a, nil
}

// Update overwrites every mutable column.
func (r *RewardAccountRepository) Update(ctx context.Context, a *domain.RewardAccount) error {
	err := r.pool.QueryRow(ctx, `
        UPDATE reward_accounts SET
            account_id = $2, account_name = $3, balance = $4, currency = $5, status = $6, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		a.ID, a.AccountID, a.AccountName, a.Balance, a.Currency, a.Status,
	).Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Entity: "Reward account", ID: strconv.FormatInt(a.ID, 10)}
	}
	if err != nil {
		return accountWriteErr("update", err)
	}
	return nil
}

// Delete removes the account.
func (r *RewardAccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reward_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reward account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Reward account", ID: strconv.FormatInt(id, 10)}
	}
	return nil
}

func accountWhere(f port.RewardAccountFilter) *where {
	w := &where{}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add("(account_id ILIKE ? OR account_name ILIKE ?)", p, p)
	}
	return w
}

// Count returns the number of accounts matching f.
func (r *RewardAccountRepository) Count(ctx context.Context, f port.RewardAccountFilter) (int, error) {
	w := accountWhere(f)
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reward_accounts`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reward accounts: %w", err)
	}
	return n, nil
}

// List returns a page of accounts ordered by name.
func (r *RewardAccountRepository) List(ctx context.Context, f port.RewardAccountFilter, limit, offset int) ([]domain.RewardAccount, error) {
	w := accountWhere(f)
	pageSQL, args := w.page(limit, offset)
	rows, err := r.pool.Query(ctx, `SELECT `+accountColumns+` FROM reward_accounts`+w.sql()+
		` ORDER BY account_name, id`+pageSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list reward accounts: %w", err)
	}
	accounts, err := pgx.CollectRows(rows, scanAccount)
	if err != nil {
		return nil, fmt.Errorf("list reward accounts: %w", err)
	}
	return accounts, nil
}

// AccountIDTaken reports whether accountID is used by another record.
func (r *RewardAccountRepository) AccountIDTaken(ctx context.Context, accountID string, excludeID int64) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reward_accounts WHERE account_id = $1 AND id <> $2)`,
		accountID, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check account id: %w", err)
	}
	return taken, nil
}

// Resolve looks an account up by account_id, then name, then a partial
// case-insensitive match on either, preferring the oldest account.
func (r *RewardAccountRepository) Resolve(ctx context.Context, ref string) (*domain.RewardAccount, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+accountColumns+` FROM reward_accounts
        WHERE account_id = $1 OR account_name = $1 OR account_id ILIKE $2 OR account_name ILIKE $2
        ORDER BY (account_id = $1) DESC, (account_name = $1) DESC, id
        LIMIT 1`, ref, likePattern(ref))
	if err != nil {
		return nil, fmt.Errorf("resolve reward account: %w", err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, scanAccount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve reward account: %w", err)
	}
	return &a, nil
}

// CampaignCounts returns how many campaigns reference each account.
func (r *RewardAccountRepository) CampaignCounts(ctx context.Context, ids []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	rows, err := r.pool.Query(ctx, `
        SELECT reward_account_id, count(*) FROM campaigns
        WHERE reward_account_id = ANY($1)
        GROUP BY reward_account_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("count account campaigns: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var n int
		if err = rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("count account campaigns: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// Summary aggregates every account.
func (r *RewardAccountRepository) Summary(ctx context.Context) (port.RewardAccountSummary, error) {
	var s port.RewardAccountSummary
	err := r.pool.QueryRow(ctx, `
        SELECT count(*), count(*) FILTER (WHERE status = 'active'), COALESCE(sum(balance), 0)
        FROM reward_accounts`).Scan(&s.TotalAccounts, &s.ActiveAccounts, &s.TotalBalance)
	if err != nil {
		return s, fmt.Errorf("reward account summary: %w", err)
	}
	return s, nil
}
