package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

// SegmentRepository implements port.SegmentRepository on customer_segments.
// Deleting a segment only clears is_active.
type SegmentRepository struct {
	pool *pgxpool.Pool
}

// NewSegmentRepository returns a new repository instance.
func NewSegmentRepository(pool *pgxpool.Pool) *SegmentRepository {
	return &SegmentRepository{pool: pool}
}

const segmentColumns = `id, name, description, segment_type, criteria, auto_refresh, refresh_interval,
    customer_count, last_refresh, metadata, is_active, is_system, created_by, created_at, updated_at`

func scanSegment(row pgx.CollectableRow) (domain.Segment, error) {
	var s domain.Segment
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Type,
		&s.Criteria,
		&s.AutoRefresh,
		&s.RefreshInterval,
		&s.CustomerCount,
		&s.LastRefresh,
		&s.Metadata,
		&s.IsActive,
		&s.IsSystem,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create inserts a segment; timestamps are assigned by the database.
func (r *SegmentRepository) Create(ctx context.Context, s *domain.Segment) error {
	if s.Metadata == nil {
		s.Metadata = map[string]any{}
	}
	err := r.pool.QueryRow(ctx, `
        INSERT INTO customer_segments
            (id, name, description, segment_type, criteria, auto_refresh, refresh_interval,
             customer_count, last_refresh, metadata, is_active, is_system, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),$9,true,$10,$11)
        RETURNING last_refresh, is_active, created_at, updated_at`,
		s.ID, s.Name, s.Description, s.Type, s.Criteria, s.AutoRefresh, s.RefreshInterval,
		s.CustomerCount, s.Metadata, s.IsSystem, s.CreatedBy,
	).Scan(&s.LastRefresh, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if code, _ := pgCode(err); code == codeUniqueViolation {
		return &domain.ConflictError{Field: "id", Message: "Segment ID already exists."}
	}
	if verr := dataErr(err, ""); verr != nil {
		return verr
	}
	if err != nil {
		return fmt.Errorf("create segment: %w", err)
	}
	return nil
}

// Get returns an active segment by id.
func (r *SegmentRepository) Get(ctx context.Context, id string) (*domain.Segment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+segmentColumns+` FROM customer_segments WHERE id = $1 AND is_active`, id)
	if err != nil {
		return nil, fmt.Errorf("get segment: %w", err)
	}
	s, err := pgx.CollectExactlyOneRow(rows, scanSegment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "Segment", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get segment: %w", err)
	}
	return &s, nil
}

// Exists reports whether id is used, including tombstoned segments.
func (r *SegmentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customer_segments WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("segment exists: %w", err)
	}
	return ok, nil
}

// Update overwrites the mutable fields and bumps updated_at.
func (r *SegmentRepository) Update(ctx context.Context, s *domain.Segment) error {
	if s.Metadata == nil {
		s.Metadata = map[string]any{}
	}
	err := r.pool.QueryRow(ctx, `
        UPDATE customer_segments SET
            name = $2, description = $3, segment_type = $4, criteria = $5,
            auto_refresh = $6, refresh_interval = $7, customer_count = $8,
            last_refresh = $9, metadata = $10, updated_at = now()
        WHERE id = $1 AND is_active
        RETURNING updated_at`,
		s.ID, s.Name, s.Description, s.Type, s.Criteria,
		s.AutoRefresh, s.RefreshInterval, s.CustomerCount,
		s.LastRefresh, s.Metadata,
	).Scan(&s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Entity: "Segment", ID: s.ID}
	}
	if verr := dataErr(err, ""); verr != nil {
		return verr
	}
	if err != nil {
		return fmt.Errorf("update segment: %w", err)
	}
	return nil
}

// Deactivate tombstones the segment.
func (r *SegmentRepository) Deactivate(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE customer_segments SET is_active = false, updated_at = now() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("deactivate segment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "Segment", ID: id}
	}
	return nil
}

func segmentWhere(f port.SegmentFilter) *where {
	w := &where{}
	w.add("is_active")
	if f.Type != "" {
		w.add("segment_type = ?", f.Type)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add("(name ILIKE ? OR description ILIKE ?)", p, p)
	}
	return w
}

// Count returns the number of active segments matching f.
func (r *SegmentRepository) Count(ctx context.Context, f port.SegmentFilter) (int, error) {
	w := segmentWhere(f)
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM customer_segments`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count segments: %w", err)
	}
	return n, nil
}

// List returns a page of active segments.
func (r *SegmentRepository) List(ctx context.Context, f port.SegmentFilter, limit, offset int) ([]domain.Segment, error) {
	w := segmentWhere(f)
	pageSQL, args := w.page(limit, offset)
	rows, err := r.pool.Query(ctx, `SELECT `+segmentColumns+` FROM customer_segments`+w.sql()+
		` ORDER BY last_refresh DESC, created_at DESC, id`+pageSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	segments, err := pgx.CollectRows(rows, scanSegment)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	return segments, nil
}

// Summary aggregates the active segments.
func (r *SegmentRepository) Summary(ctx context.Context) (port.SegmentSummary, error) {
	var s port.SegmentSummary
	err := r.pool.QueryRow(ctx, `
        SELECT count(*), COALESCE(sum(customer_count), 0), max(last_refresh)
        FROM customer_segments WHERE is_active`).Scan(&s.TotalSegments, &s.TotalCustomers, &s.LastUpdated)
	if err != nil {
		return s, fmt.Errorf("segment summary: %w", err)
	}
	return s, nil
}
