package port

import (
	"context"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

// ReportFilter narrows report listings.
type ReportFilter struct {
	SourceType domain.ReportSourceType
	Search     string
}

// ReportRepository persists report configurations. Deletion tombstones.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.ReportConfiguration) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ReportConfiguration, error)
	Update(ctx context.Context, r *domain.ReportConfiguration) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, f ReportFilter) (int, error)
	List(ctx context.Context, f ReportFilter, limit, offset int) ([]domain.ReportConfiguration, error)
}

// ReportInput is a create request.
type ReportInput struct {
	Name          string
	Description   string
	SourceType    domain.ReportSourceType
	Configuration domain.ReportSource
	ExportFormat  domain.ExportFormat
	Scheduling    domain.ReportScheduling
	CreatedBy     *int64
}

// ReportPatch is a partial update; nil means unchanged.
type ReportPatch struct {
	Name          *string
	Description   *string
	SourceType    *domain.ReportSourceType
	Configuration *domain.ReportSource
	ExportFormat  *domain.ExportFormat
	Scheduling    *domain.ReportScheduling
}

// ReportPage is one page of a report listing.
type ReportPage struct {
	Reports    []domain.ReportConfiguration
	Pagination domain.Pagination
}

// ReportUseCase manages report configurations.
type ReportUseCase interface {
	Create(ctx context.Context, in ReportInput) (*domain.ReportConfiguration, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ReportConfiguration, error)
	Update(ctx context.Context, id uuid.UUID, p ReportPatch) (*domain.ReportConfiguration, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f ReportFilter, page domain.PageRequest) (*ReportPage, error)
}
