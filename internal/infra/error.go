package infra

import (
	"context"
	"errors"
	"log/slog"

	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/pgconv"

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

// WrapRepoErr defaults to KindDBFailure when no kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelError
	if k == KindNotFound {
		level = slog.LevelDebug
	}
	logArgs := []any{slog.String("kind", string(k))}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	slog.Log(context.Background(), level, "Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

// ClassifyPgErr picks the kind from the driver error: no rows, unique and foreign key violations.
func ClassifyPgErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return WrapRepoErr(msg, err, KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return WrapRepoErr(msg, err, KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return WrapRepoErr(msg, err, KindForeignKeyViolated)
		}
	}
	return WrapRepoErr(msg, err, KindDBFailure)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)
