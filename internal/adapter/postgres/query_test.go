package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-hub/internal/core/domain"
)

func TestWhereBuilder(t *testing.T) {
	var w where
	assert.Equal(t, "", w.sql())

	w.add("is_active")
	w.add("status = ?", "draft")
	w.add("(name ILIKE ? OR campaign_id ILIKE ?)", "%a%", "%a%")

	assert.Equal(t, " WHERE is_active AND status = $1 AND (name ILIKE $2 OR campaign_id ILIKE $3)", w.sql())
	assert.Equal(t, []any{"draft", "%a%", "%a%"}, w.args)

	clause, args := w.page(10, 20)
	assert.Equal(t, " LIMIT $4 OFFSET $5", clause)
	assert.Equal(t, []any{"draft", "%a%", "%a%", 10, 20}, args)
	assert.Len(t, w.args, 3, "page must not grow the filter args")
}

func TestLikePatternEscapes(t *testing.T) {
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}

func TestDataErr(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		numericField string
		wantField    string
	}{
		{"string too long", &pgconn.PgError{Code: codeStringTooLong}, "balance", "non_field_errors"},
		{"overflow keyed by caller", &pgconn.PgError{Code: codeNumericOverflow}, "balance", "balance"},
		{"overflow without field", &pgconn.PgError{Code: codeNumericOverflow}, "", "non_field_errors"},
		{"column named by server", &pgconn.PgError{Code: codeStringTooLong, ColumnName: "name"}, "", "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dataErr(fmt.Errorf("exec: %w", tt.err), tt.numericField)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.wantField), verr.Error())
		})
	}

	assert.NoError(t, dataErr(errors.New("boom"), "balance"))
	assert.NoError(t, dataErr(&pgconn.PgError{Code: codeUniqueViolation}, "balance"))
}

func TestWriteErrMapsOutOfRangeValues(t *testing.T) {
	var verr *domain.ValidationError

	err := accountWriteErr("create", &pgconn.PgError{Code: codeNumericOverflow})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("balance"))

	err = campaignWriteErr("update", &pgconn.PgError{Code: codeStringTooLong})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("non_field_errors"))

	err = campaignWriteErr("update", errors.New("conn reset"))
	assert.False(t, errors.As(err, &verr))
	assert.EqualError(t, err, "update campaign: conn reset")
}
