package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/port/mocks"
)

func TestRewardAccountCreate(t *testing.T) {
	repo := mocks.NewMockRewardAccountRepository(t)
	uc := NewRewardAccountUseCase(repo, discardLogger())

	repo.EXPECT().AccountIDTaken(mock.Anything, "ACC_100", int64(0)).Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.RewardAccount")).
		Run(func(_ context.Context, a *domain.RewardAccount) { a.ID = 1 }).
		Return(nil)

	v, err := uc.Create(context.Background(), port.RewardAccountInput{
		AccountID:   "ACC_100",
		AccountName: "Test",
		Balance:     decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Account.ID)
	assert.Equal(t, "ETB", v.Account.Currency)
	assert.Equal(t, domain.AccountActive, v.Account.Status)
	assert.True(t, v.Account.IsAvailable())
	assert.Zero(t, v.AssignedCampaigns)
}

func TestRewardAccountCreateNegativeBalance(t *testing.T) {
	repo := mocks.NewMockRewardAccountRepository(t)
	uc := NewRewardAccountUseCase(repo, discardLogger())

	repo.EXPECT().AccountIDTaken(mock.Anything, "ACC_1", int64(0)).Return(true, nil)

	_, err := uc.Create(context.Background(), port.RewardAccountInput{
		AccountID:   "ACC_1",
		AccountName: "Negative",
		Balance:     decimal.RequireFromString("-0.01"),
		Currency:    "etb",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Balance cannot be negative."}, verr.Fields["balance"])
	assert.Equal(t, []string{"Account ID must be unique."}, verr.Fields["account_id"])
	assert.True(t, verr.Has("currency"))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRewardAccountUpdate(t *testing.T) {
	repo := mocks.NewMockRewardAccountRepository(t)
	uc := NewRewardAccountUseCase(repo, discardLogger())
	stored := &domain.RewardAccount{
		ID: 4, AccountID: "ACC_4", AccountName: "Four",
		Balance: decimal.NewFromInt(10), Currency: "ETB", Status: domain.AccountActive,
	}

	repo.EXPECT().Get(mock.Anything, int64(4)).Return(stored, nil)
	repo.EXPECT().AccountIDTaken(mock.Anything, "ACC_4", int64(4)).Return(false, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)
	repo.EXPECT().CampaignCounts(mock.Anything, []int64{4}).Return(map[int64]int{4: 3}, nil)

	v, err := uc.Update(context.Background(), 4, port.RewardAccountPatch{Status: ptr(domain.AccountFrozen)})
	require.NoError(t, err)
	assert.False(t, v.Account.IsAvailable())
	assert.Equal(t, 3, v.AssignedCampaigns)
}

func TestRewardAccountUpdateRejectsNegative(t *testing.T) {
	repo := mocks.NewMockRewardAccountRepository(t)
	uc := NewRewardAccountUseCase(repo, discardLogger())
	stored := &domain.RewardAccount{
		ID: 4, AccountID: "ACC_4", AccountName: "Four",
		Balance: decimal.NewFromInt(10), Currency: "ETB", Status: domain.AccountActive,
	}
	repo.EXPECT().Get(mock.Anything, int64(4)).Return(stored, nil)
	repo.EXPECT().AccountIDTaken(mock.Anything, "ACC_4", int64(4)).Return(false, nil)

	_, err := uc.Update(context.Background(), 4, port.RewardAccountPatch{Balance: ptr(decimal.NewFromInt(-5))})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("balance"))
}

func TestRewardAccountList(t *testing.T) {
	repo := mocks.NewMockRewardAccountRepository(t)
	uc := NewRewardAccountUseCase(repo, discardLogger())
	f := port.RewardAccountFilter{Status: domain.AccountActive}

	repo.EXPECT().Count(mock.Anything, f).Return(2, nil)
	repo.EXPECT().List(mock.Anything, f, 10, 0).Return([]domain.RewardAccount{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().CampaignCounts(mock.Anything, []int64{1, 2}).Return(map[int64]int{2: 5}, nil)
	repo.EXPECT().Summary(mock.Anything).Return(port.RewardAccountSummary{TotalAccounts: 2, ActiveAccounts: 2}, nil)

	page, err := uc.List(context.Background(), f, domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Accounts, 2)
	assert.Zero(t, page.Accounts[0].AssignedCampaigns)
	assert.Equal(t, 5, page.Accounts[1].AssignedCampaigns)
	assert.Equal(t, 2, page.Summary.ActiveAccounts)
}
