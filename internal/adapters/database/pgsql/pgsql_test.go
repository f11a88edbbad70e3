package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperrors.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"}, apperrors.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.err, "op"), tt.want)
		})
	}

	assert.NoError(t, mapError(nil, "op"))

	other := errors.New("syntax error")
	got := mapError(other, "failed to list")
	assert.ErrorIs(t, got, other)
	assert.NotErrorIs(t, got, apperrors.ErrStoreUnavailable)
	assert.Contains(t, got.Error(), "failed to list")
}

func TestFilterClause(t *testing.T) {
	where, args := filterClause(portsrepo.RecordFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = filterClause(portsrepo.RecordFilter{Month: "2024-03", CreatedByName: "Sara"})
	assert.Equal(t, " WHERE to_char(record_date, 'YYYY-MM') = $1 AND created_by_name = $2", where)
	assert.Equal(t, []any{"2024-03", "Sara"}, args)
}

func TestExpectOne(t *testing.T) {
	assert.ErrorIs(t, expectOne(pgconn.NewCommandTag("DELETE 0")), apperrors.ErrNotFound)
	assert.NoError(t, expectOne(pgconn.NewCommandTag("UPDATE 1")))
}
