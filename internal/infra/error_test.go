//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.ClassifyPgErr("find order", tt.err)

			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWrapRepoErr_DefaultsToDBFailure(t *testing.T) {
	err := infra.WrapRepoErr("failed to create order", assert.AnError)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Contains(t, err.Error(), "DB_FAILURE: failed to create order")
	assert.False(t, infra.IsKind(assert.AnError, infra.KindDBFailure))
}
