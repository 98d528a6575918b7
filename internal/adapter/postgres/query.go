package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"campaign-hub/internal/core/domain"
)

// Postgres error codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
	codeNumericOverflow     = "22003"
)

func pgCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// dataErr maps a value that does not fit its column to a validation error.
// Postgres rarely names the column for these, so numericField keys an
// overflow and "non_field_errors" keys everything else. It returns nil for
// any other error.
func dataErr(err error, numericField string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	field := pgErr.ColumnName
	switch pgErr.Code {
	case codeStringTooLong:
		if field == "" {
			field = "non_field_errors"
		}
		return domain.NewValidationError(field, "A value is too long for its field.")
	case codeNumericOverflow:
		if field == "" {
			field = numericField
		}
		if field == "" {
			field = "non_field_errors"
		}
		return domain.NewValidationError(field, "A numeric value is out of range.")
	}
	return nil
}

// where accumulates AND-joined conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends cond, replacing each "?" with the next placeholder.
func (w *where) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the clause and args.
func (w *where) page(limit, offset int) (string, []any) {
	args := append(append([]any(nil), w.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
