package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// maxIDAttempts bounds the suffix search for a free segment id.
const maxIDAttempts = 100

// SegmentUseCase manages customer segments. Customer counts are never
// computed here; they come from the Estimator.
type SegmentUseCase struct {
	repo      port.SegmentRepository
	estimator port.Estimator
	logger    *slog.Logger
	now       func() time.Time
}

// NewSegmentUseCase creates a segment usecase.
func NewSegmentUseCase(repo port.SegmentRepository, estimator port.Estimator, logger *slog.Logger) *SegmentUseCase {
	return &SegmentUseCase{repo: repo, estimator: estimator, logger: logger, now: time.Now}
}

// Create stores a new segment under a timestamp derived id. A missing type
// is derived from the criteria sections present.
func (u *SegmentUseCase) Create(ctx context.Context, in port.SegmentInput) (*domain.Segment, error) {
	s := &domain.Segment{
		Name:            in.Name,
		Description:     in.Description,
		Type:            in.Type,
		Criteria:        in.Criteria,
		AutoRefresh:     in.AutoRefresh,
		RefreshInterval: in.RefreshInterval,
		Metadata:        in.Metadata,
		IsSystem:        in.IsSystem,
		CreatedBy:       in.CreatedBy,
	}
	if s.Type == "" {
		s.Type = s.Criteria.DerivedType()
	}
	if s.RefreshInterval == "" {
		s.RefreshInterval = domain.RefreshDaily
	}
	if s.Criteria.RuleLogic == "" {
		s.Criteria.RuleLogic = domain.RuleAnd
	}
	if err := domain.ValidateSegment(s).Err(); err != nil {
		return nil, err
	}

	count, err := u.estimator.SegmentSize(ctx, s.Criteria)
	if err != nil {
		return nil, fmt.Errorf("estimate segment size: %w", err)
	}
	s.CustomerCount = count

	if s.ID, err = u.newID(ctx, in.IsSystem); err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, s); err != nil {
		return nil, conflictAsValidation(err)
	}
	u.logger.Info("segment created",
		slog.String("id", s.ID),
		slog.String("type", string(s.Type)),
		slog.Int64("customers", s.CustomerCount))
	return s, nil
}

// newID returns the first free id among base, base_1, base_2, ...
func (u *SegmentUseCase) newID(ctx context.Context, system bool) (string, error) {
	base := domain.NewSegmentID(u.now(), system)
	id := base
	for n := 1; n <= maxIDAttempts; n++ {
		used, err := u.repo.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !used {
			return id, nil
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return "", fmt.Errorf("no free segment id for %s", base)
}

// Get returns an active segment.
func (u *SegmentUseCase) Get(ctx context.Context, id string) (*domain.Segment, error) {
	return u.repo.Get(ctx, id)
}

// Update applies p. Changing the criteria recounts the segment and
// re-derives its type when the stored type was itself derived.
func (u *SegmentUseCase) Update(ctx context.Context, id string, p port.SegmentPatch) (*domain.Segment, error) {
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.AutoRefresh != nil {
		s.AutoRefresh = *p.AutoRefresh
	}
	if p.RefreshInterval != nil {
		s.RefreshInterval = *p.RefreshInterval
	}
	if p.Metadata != nil {
		s.Metadata = p.Metadata
	}
	recount := false
	if p.Criteria != nil {
		derived := s.Type == s.Criteria.DerivedType()
		logic := s.Criteria.RuleLogic
		s.Criteria = *p.Criteria
		if s.Criteria.RuleLogic == "" {
			s.Criteria.RuleLogic = logic
		}
		if derived {
			s.Type = s.Criteria.DerivedType()
		}
		recount = true
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.RuleLogic != nil && *p.RuleLogic != s.Criteria.RuleLogic {
		s.Criteria.RuleLogic = *p.RuleLogic
		recount = true
	}
	if err = domain.ValidateSegment(s).Err(); err != nil {
		return nil, err
	}
	if recount {
		if err = u.recount(ctx, s); err != nil {
			return nil, err
		}
	}
	if err = u.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *SegmentUseCase) recount(ctx context.Context, s *domain.Segment) error {
	count, err := u.estimator.SegmentSize(ctx, s.Criteria)
	if err != nil {
		return fmt.Errorf("estimate segment size: %w", err)
	}
	s.CustomerCount = count
	s.LastRefresh = u.now()
	return nil
}

// Delete tombstones the segment. It disappears from Get and List but the
// row, and campaigns pointing at it, are kept.
func (u *SegmentUseCase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	u.logger.Info("segment deactivated", slog.String("id", id))
	return nil
}

// List returns a page of active segments with the overall summary.
func (u *SegmentUseCase) List(ctx context.Context, f port.SegmentFilter, page domain.PageRequest) (*port.SegmentPage, error) {
	total, err := u.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	pg, offset := domain.Paginate(page, total)
	segments, err := u.repo.List(ctx, f, pg.PageSize, offset)
	if err != nil {
		return nil, err
	}
	summary, err := u.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &port.SegmentPage{Segments: segments, Pagination: pg, Summary: summary}, nil
}

// Refresh recounts the segment and stamps last_refresh.
func (u *SegmentUseCase) Refresh(ctx context.Context, id string) (*domain.Segment, error) {
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = u.recount(ctx, s); err != nil {
		return nil, err
	}
	if err = u.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	u.logger.Debug("segment refreshed", slog.String("id", s.ID), slog.Int64("customers", s.CustomerCount))
	return s, nil
}
