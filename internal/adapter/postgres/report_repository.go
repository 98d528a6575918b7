package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// ReportRepository implements port.ReportRepository on report_configurations.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a new repository instance.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

const reportColumns = `id, name, description, source_type, configuration, export_format,
    scheduling_enabled, frequency, recipients, is_active, created_by, created_at, updated_at`

func scanReport(row pgx.CollectableRow) (domain.ReportConfiguration, error) {
	var r domain.ReportConfiguration
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Description,
		&r.SourceType,
		&r.Configuration,
		&r.ExportFormat,
		&r.Scheduling.Enabled,
		&r.Scheduling.Frequency,
		&r.Scheduling.Recipients,
		&r.IsActive,
		&r.CreatedBy,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func recipients(r *domain.ReportConfiguration) []string {
	if r.Scheduling.Recipients == nil {
		return []string{}
	}
	return r.Scheduling.Recipients
}

// Create inserts r as an active configuration.
func (r *ReportRepository) Create(ctx context.Context, rep *domain.ReportConfiguration) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO report_configurations
            (id, name, description, source_type, configuration, export_format,
             scheduling_enabled, frequency, recipients, is_active, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,true,$10)
        RETURNING is_active, created_at, updated_at`,
		rep.ID, rep.Name, rep.Description, rep.SourceType, rep.Configuration, rep.ExportFormat,
		rep.Scheduling.Enabled, rep.Scheduling.Frequency, recipients(rep), rep.CreatedBy,
	).Scan(&rep.IsActive, &rep.CreatedAt, &rep.UpdatedAt)
	if verr := dataErr(err, ""); verr != nil {
		return verr
	}
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// Get returns an active configuration by id.
func (r *ReportRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ReportConfiguration, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+reportColumns+` FROM report_configurations WHERE id = $1 AND is_active`, id)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	rep, err := pgx.CollectExactlyOneRow(rows, scanReport)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "Report", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

// Update overwrites the mutable columns.
func (r *ReportRepository) Update(ctx context.Context, rep *domain.ReportConfiguration) error {
	err := r.pool.QueryRow(ctx, `
        UPDATE report_configurations SET
            name = $2, description = $3, source_type = $4, configuration = $5, export_format = $6,
            scheduling_enabled = $7, frequency = $8, recipients = $9, updated_at = now()
        WHERE id = $1 AND is_active
        RETURNING updated_at`,
		rep.ID, rep.Name, rep.Description, rep.SourceType, rep.Configuration, rep.ExportFormat,
		rep.Scheduling.Enabled, rep.Scheduling.Frequency, recipients(rep),
	).Scan(&rep.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Entity: "Report", ID: rep.ID.String()}
	}
	if verr := dataErr(err, ""); verr != nil {
		return verr
	}
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

// Deactivate tombstones the configuration.
func (r *ReportRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE report_configurations SET is_active = false, updated_at = now() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("deactivate report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Report", ID: id.String()}
	}
	return nil
}

func reportWhere(f port.ReportFilter) *where {
	w := &where{}
	w.add("is_active")
	if f.SourceType != "" {
		w.add("source_type = ?", f.SourceType)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add("(name ILIKE ? OR description ILIKE ?)", p, p)
	}
	return w
}

// Count returns the number of active configurations matching f.
func (r *ReportRepository) Count(ctx context.Context, f port.ReportFilter) (int, error) {
	w := reportWhere(f)
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM report_configurations`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

// List returns a page of active configurations, newest first.
func (r *ReportRepository) List(ctx context.Context, f port.ReportFilter, limit, offset int) ([]domain.ReportConfiguration, error) {
	w := reportWhere(f)
	pageSQL, args := w.page(limit, offset)
	rows, err := r.pool.Query(ctx, `SELECT `+reportColumns+` FROM report_configurations`+w.sql()+
		` ORDER BY created_at DESC, id`+pageSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	reports, err := pgx.CollectRows(rows, scanReport)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}
