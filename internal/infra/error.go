package infra

import (
	"errors"

	"staybook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its Postgres code unless kind is given. The
// result also carries the matching errs kind so use cases never import pgx.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	var wrapped error
	if err != nil {
		wrapped = errs.Wrap(err, msg)
	} else {
		wrapped = errs.New(msg)
	}
	if marker := kindMarker(k); marker != nil {
		wrapped = errs.Mark(wrapped, marker)
	}

	return RepositoryError{Kind: k, msg: msg, err: wrapped}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeExclusionViolation  = "23P01"
)

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUniqueViolation:
			return KindDuplicateKey
		case pgCodeExclusionViolation:
			return KindConflict
		case pgCodeForeignKeyViolation:
			return KindForeignKeyViolated
		}
	}
	return KindDBFailure
}

func kindMarker(k RepositoryErrorKind) error {
	switch k {
	case KindNotFound:
		return errs.ErrNotFound
	case KindDuplicateKey, KindConflict:
		return errs.ErrConflict
	case KindForeignKeyViolated:
		return errs.ErrValidation
	default:
		return nil
	}
}
