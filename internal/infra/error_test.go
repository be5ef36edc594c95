//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		wantMark error
	}{
		{
			name:     "no rows is not found",
			err:      pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
			wantMark: errs.ErrNotFound,
		},
		{
			name:     "unique violation is a duplicate key",
			err:      &pgconn.PgError{Code: "23505"},
			wantKind: infra.KindDuplicateKey,
			wantMark: errs.ErrConflict,
		},
		{
			name:     "exclusion violation is a conflict",
			err:      &pgconn.PgError{Code: "23P01", ConstraintName: "reservation_rooms_no_overlap"},
			wantKind: infra.KindConflict,
			wantMark: errs.ErrConflict,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
			wantMark: errs.ErrValidation,
		},
		{
			name:     "anything else is a db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "explicit kind wins over classification",
			err:      errors.New("zero rows affected"),
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
			wantMark: errs.ErrNotFound,
		},
		{
			name:     "nil cause with explicit kind",
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
			wantMark: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to load payment", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind %s, got %v", tc.wantKind, err)
			assert.Contains(t, err.Error(), "failed to load payment")
			if tc.wantMark != nil {
				assert.True(t, errs.Is(err, tc.wantMark))
			} else {
				assert.Nil(t, errs.KindOf(err))
			}
		})
	}
}

func TestIsKind_OtherErrors(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
