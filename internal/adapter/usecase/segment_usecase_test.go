package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/core/port/mocks"
)

func newSegmentUseCase(t *testing.T) (*SegmentUseCase, *mocks.MockSegmentRepository, *mocks.MockEstimator) {
	repo := mocks.NewMockSegmentRepository(t)
	est := mocks.NewMockEstimator(t)
	uc := NewSegmentUseCase(repo, est, discardLogger())
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, est
}

func TestSegmentCreate(t *testing.T) {
	uc, repo, est := newSegmentUseCase(t)
	days := 30
	criteria := domain.SegmentCriteria{
		Demographic: &domain.DemographicCriteria{Region: "Oromia"},
		Behavioral:  &domain.BehavioralCriteria{LastActivityDays: &days},
	}

	est.EXPECT().SegmentSize(mock.Anything, mock.AnythingOfType("domain.SegmentCriteria")).Return(int64(5120), nil)
	repo.EXPECT().Exists(mock.Anything, "seg_20250314093000").Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Segment")).Return(nil)

	s, err := uc.Create(context.Background(), port.SegmentInput{Name: "Active Oromia", Criteria: criteria})
	require.NoError(t, err)
	assert.Equal(t, "seg_20250314093000", s.ID)
	assert.Equal(t, domain.SegmentBehavioral, s.Type)
	assert.Equal(t, domain.RefreshDaily, s.RefreshInterval)
	assert.Equal(t, domain.RuleAnd, s.Criteria.RuleLogic)
	assert.Equal(t, int64(5120), s.CustomerCount)
}

func TestSegmentCreateIDCollision(t *testing.T) {
	uc, repo, est := newSegmentUseCase(t)

	est.EXPECT().SegmentSize(mock.Anything, mock.Anything).Return(int64(10), nil)
	repo.EXPECT().Exists(mock.Anything, "sys_seg_20250314093000").Return(true, nil)
	repo.EXPECT().Exists(mock.Anything, "sys_seg_20250314093000_1").Return(true, nil)
	repo.EXPECT().Exists(mock.Anything, "sys_seg_20250314093000_2").Return(false, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	s, err := uc.Create(context.Background(), port.SegmentInput{Name: "System", IsSystem: true})
	require.NoError(t, err)
	assert.Equal(t, "sys_seg_20250314093000_2", s.ID)
	assert.Equal(t, domain.SegmentCustom, s.Type)
}

func TestSegmentCreateInvalid(t *testing.T) {
	uc, _, _ := newSegmentUseCase(t)

	_, err := uc.Create(context.Background(), port.SegmentInput{
		Type:     "psychographic",
		Criteria: domain.SegmentCriteria{RuleLogic: "XOR"},
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("name"))
	assert.True(t, verr.Has("segment_type"))
	assert.True(t, verr.Has("criteria"))
}

func TestSegmentUpdateRecounts(t *testing.T) {
	uc, repo, est := newSegmentUseCase(t)
	stored := &domain.Segment{
		ID:              "seg_1",
		Name:            "Old",
		Type:            domain.SegmentCustom,
		RefreshInterval: domain.RefreshDaily,
		Criteria:        domain.SegmentCriteria{RuleLogic: domain.RuleAnd},
		CustomerCount:   1,
	}
	repo.EXPECT().Get(mock.Anything, "seg_1").Return(stored, nil)
	est.EXPECT().SegmentSize(mock.Anything, mock.Anything).Return(int64(900), nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	s, err := uc.Update(context.Background(), "seg_1", port.SegmentPatch{
		Name:      ptr("New"),
		Criteria:  &domain.SegmentCriteria{Risk: &domain.RiskCriteria{ChurnRisk: "high"}},
		RuleLogic: ptr(domain.RuleOr),
	})
	require.NoError(t, err)
	assert.Equal(t, "New", s.Name)
	assert.Equal(t, domain.SegmentRisk, s.Type)
	assert.Equal(t, domain.RuleOr, s.Criteria.RuleLogic)
	assert.Equal(t, int64(900), s.CustomerCount)
	assert.Equal(t, fixedNow, s.LastRefresh)
}

func TestSegmentUpdateKeepsExplicitType(t *testing.T) {
	uc, repo, est := newSegmentUseCase(t)
	stored := &domain.Segment{
		ID:              "seg_1",
		Name:            "Gold churners",
		Type:            domain.SegmentValue,
		RefreshInterval: domain.RefreshDaily,
		Criteria:        domain.SegmentCriteria{RuleLogic: domain.RuleAnd, Risk: &domain.RiskCriteria{ChurnRisk: "high"}},
	}
	repo.EXPECT().Get(mock.Anything, "seg_1").Return(stored, nil)
	est.EXPECT().SegmentSize(mock.Anything, mock.Anything).Return(int64(40), nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	s, err := uc.Update(context.Background(), "seg_1", port.SegmentPatch{
		Criteria: &domain.SegmentCriteria{Behavioral: &domain.BehavioralCriteria{}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SegmentValue, s.Type)
	assert.Equal(t, int64(40), s.CustomerCount)
}

func TestSegmentUpdateExplicitTypeWins(t *testing.T) {
	uc, repo, est := newSegmentUseCase(t)
	stored := &domain.Segment{
		ID: "seg_1", Name: "Old", Type: domain.SegmentCustom,
		RefreshInterval: domain.RefreshDaily,
		Criteria:        domain.SegmentCriteria{RuleLogic: domain.RuleAnd},
	}
	repo.EXPECT().Get(mock.Anything, "seg_1").Return(stored, nil)
	est.EXPECT().SegmentSize(mock.Anything, mock.Anything).Return(int64(5), nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	risk := domain.SegmentRisk
	s, err := uc.Update(context.Background(), "seg_1", port.SegmentPatch{
		Type:     &risk,
		Criteria: &domain.SegmentCriteria{Behavioral: &domain.BehavioralCriteria{}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SegmentRisk, s.Type)
}

func TestSegmentUpdateWithoutCriteriaKeepsCount(t *testing.T) {
	uc, repo, _ := newSegmentUseCase(t)
	stored := &domain.Segment{
		ID: "seg_1", Name: "Old", Type: domain.SegmentCustom,
		RefreshInterval: domain.RefreshDaily, CustomerCount: 77,
	}
	repo.EXPECT().Get(mock.Anything, "seg_1").Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	s, err := uc.Update(context.Background(), "seg_1", port.SegmentPatch{AutoRefresh: ptr(true)})
	require.NoError(t, err)
	assert.True(t, s.AutoRefresh)
	assert.Equal(t, int64(77), s.CustomerCount)
}

func TestSegmentDeleteThenGet(t *testing.T) {
	uc, repo, _ := newSegmentUseCase(t)
	repo.EXPECT().Deactivate(mock.Anything, "seg_1").Return(nil)
	repo.EXPECT().Get(mock.Anything, "seg_1").Return(nil, &domain.NotFoundError{Entity: "Segment", ID: "seg_1"})

	require.NoError(t, uc.Delete(context.Background(), "seg_1"))
	_, err := uc.Get(context.Background(), "seg_1")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Segment not found", nf.Error())
}

func TestSegmentListClampsPage(t *testing.T) {
	uc, repo, _ := newSegmentUseCase(t)
	f := port.SegmentFilter{Type: domain.SegmentValue}
	repo.EXPECT().Count(mock.Anything, f).Return(25, nil)
	repo.EXPECT().List(mock.Anything, f, 10, 20).Return([]domain.Segment{{ID: "seg_x"}}, nil)
	repo.EXPECT().Summary(mock.Anything).Return(port.SegmentSummary{TotalSegments: 25, TotalCustomers: 1000}, nil)

	page, err := uc.List(context.Background(), f, domain.PageRequest{Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.Page)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Len(t, page.Segments, 1)
	assert.Equal(t, int64(1000), page.Summary.TotalCustomers)
}

func TestSegmentRefresh(t *testing.T) {
	uc, repo, est := newSegmentUseCase(t)
	stored := &domain.Segment{ID: "seg_1", CustomerCount: 5}
	repo.EXPECT().Get(mock.Anything, "seg_1").Return(stored, nil)
	est.EXPECT().SegmentSize(mock.Anything, stored.Criteria).Return(int64(6), nil)
	repo.EXPECT().Update(mock.Anything, stored).Return(nil)

	s, err := uc.Refresh(context.Background(), "seg_1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), s.CustomerCount)
	assert.Equal(t, fixedNow, s.LastRefresh)
}
