package port

import (
	"context"
	"time"

	"campaign-hub/internal/core/domain"
)

// SegmentFilter narrows segment listings.
type SegmentFilter struct {
	Type   domain.SegmentType
	Search string
}

// SegmentSummary aggregates the active segments.
type SegmentSummary struct {
	TotalSegments  int
	TotalCustomers int64
	LastUpdated    *time.Time
}

// SegmentRepository persists segments. Get and List never return
// tombstoned rows.
type SegmentRepository interface {
	// Create inserts s. It returns a *domain.ConflictError if the id is taken.
	Create(ctx context.Context, s *domain.Segment) error
	// Get returns an active segment or a *domain.NotFoundError.
	Get(ctx context.Context, id string) (*domain.Segment, error)
	// Exists reports whether id is used by any row, tombstoned or not.
	Exists(ctx context.Context, id string) (bool, error)
	// Update overwrites the mutable fields of an active segment.
	Update(ctx context.Context, s *domain.Segment) error
	// Deactivate tombstones the segment; the row is kept.
	Deactivate(ctx context.Context, id string) error
	// Count returns the number of active segments matching f.
	Count(ctx context.Context, f SegmentFilter) (int, error)
	// List returns a page of active segments ordered by last_refresh and
	// created_at, newest first.
	List(ctx context.Context, f SegmentFilter, limit, offset int) ([]domain.Segment, error)
	// Summary aggregates all active segments.
	Summary(ctx context.Context) (SegmentSummary, error)
}

// SegmentInput is the flattened create request of a segment.
type SegmentInput struct {
	Name            string
	Description     string
	Type            domain.SegmentType // empty derives the type from Criteria
	Criteria        domain.SegmentCriteria
	AutoRefresh     bool
	RefreshInterval domain.RefreshInterval
	Metadata        map[string]any
	IsSystem        bool
	CreatedBy       *int64
}

// SegmentPatch holds the fields of a partial update; nil means unchanged.
type SegmentPatch struct {
	Name            *string
	Description     *string
	// Type pins the segment type. Without it a criteria change re-derives
	// the type, unless the stored type was chosen explicitly.
	Type            *domain.SegmentType
	Criteria        *domain.SegmentCriteria
	RuleLogic       *string
	AutoRefresh     *bool
	RefreshInterval *domain.RefreshInterval
	Metadata        map[string]any
}

// SegmentPage is one page of a segment listing.
type SegmentPage struct {
	Segments   []domain.Segment
	Pagination domain.Pagination
	Summary    SegmentSummary
}

// SegmentUseCase manages customer segments.
type SegmentUseCase interface {
	Create(ctx context.Context, in SegmentInput) (*domain.Segment, error)
	Get(ctx context.Context, id string) (*domain.Segment, error)
	Update(ctx context.Context, id string, p SegmentPatch) (*domain.Segment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f SegmentFilter, page domain.PageRequest) (*SegmentPage, error)
	// Refresh recomputes the cached customer count through the Estimator.
	Refresh(ctx context.Context, id string) (*domain.Segment, error)
}
