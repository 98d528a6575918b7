package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// ReportUseCase manages saved report configurations. Generating and
// exporting reports is out of its scope.
type ReportUseCase struct {
	repo   port.ReportRepository
	logger *slog.Logger
}

// NewReportUseCase creates a report usecase.
func NewReportUseCase(repo port.ReportRepository, logger *slog.Logger) *ReportUseCase {
	return &ReportUseCase{repo: repo, logger: logger}
}

// Create stores a new configuration. Export format defaults to PDF.
func (u *ReportUseCase) Create(ctx context.Context, in port.ReportInput) (*domain.ReportConfiguration, error) {
	r := &domain.ReportConfiguration{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		SourceType:    in.SourceType,
		Configuration: in.Configuration,
		ExportFormat:  in.ExportFormat,
		Scheduling:    in.Scheduling,
		CreatedBy:     in.CreatedBy,
	}
	if r.ExportFormat == "" {
		r.ExportFormat = domain.ExportPDF
	}
	if err := domain.ValidateReport(r).Err(); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	u.logger.Info("report configuration created",
		slog.String("id", r.ID.String()),
		slog.String("source_type", string(r.SourceType)))
	return r, nil
}

// Get returns an active configuration.
func (u *ReportUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.ReportConfiguration, error) {
	return u.repo.Get(ctx, id)
}

// Update applies p and re-validates the merged configuration.
func (u *ReportUseCase) Update(ctx context.Context, id uuid.UUID, p port.ReportPatch) (*domain.ReportConfiguration, error) {
	r, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		r.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.SourceType != nil {
		r.SourceType = *p.SourceType
	}
	if p.Configuration != nil {
		r.Configuration = *p.Configuration
	}
	if p.ExportFormat != nil {
		r.ExportFormat = *p.ExportFormat
	}
	if p.Scheduling != nil {
		r.Scheduling = *p.Scheduling
	}
	if err = domain.ValidateReport(r).Err(); err != nil {
		return nil, err
	}
	if err = u.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete tombstones the configuration.
func (u *ReportUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	u.logger.Info("report configuration deactivated", slog.String("id", id.String()))
	return nil
}

// List returns a page of active configurations.
func (u *ReportUseCase) List(ctx context.Context, f port.ReportFilter, page domain.PageRequest) (*port.ReportPage, error) {
	total, err := u.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	pg, offset := domain.Paginate(page, total)
	reports, err := u.repo.List(ctx, f, pg.PageSize, offset)
	if err != nil {
		return nil, err
	}
	return &port.ReportPage{Reports: reports, Pagination: pg}, nil
}
