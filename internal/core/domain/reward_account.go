package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the state of a reward account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
	AccountFrozen   AccountStatus = "frozen"
)

// Valid reports whether s is a known account status.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountActive, AccountInactive, AccountFrozen:
		return true
	}
	return false
}

// DefaultCurrency is used when a reward account is created without one.
const DefaultCurrency = "ETB"

// RewardAccount is a wallet funding incentive campaigns. Balance is kept
// with two decimal places and never goes negative.
type RewardAccount struct {
	ID          int64
	AccountID   string
	AccountName string
	Balance     decimal.Decimal
	Currency    string
	Status      AccountStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAvailable reports whether the account can fund campaigns.
func (a RewardAccount) IsAvailable() bool {
	return a.Status == AccountActive
}
