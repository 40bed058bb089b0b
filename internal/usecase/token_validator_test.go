//go:build unit

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/jwt"
	"github.com/java-saeng/jwp-shopping-order/tests/common/builder"
	"github.com/java-saeng/jwp-shopping-order/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret", "")
	store := memstore.New()
	store.AddMember(builder.NewMemberBuilder().WithID(1).BuildDomain())
	validator := NewTokenValidator(svc, store)

	t.Run("known member", func(t *testing.T) {
		token, err := svc.GenerateToken(1, time.Minute)
		require.NoError(t, err)

		m, err := validator.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), m.ID())
	})

	t.Run("unknown member", func(t *testing.T) {
		token, err := svc.GenerateToken(9, time.Minute)
		require.NoError(t, err)

		_, err = validator.ValidateToken(context.Background(), token)
		assert.True(t, errors.Is(err, errs.ErrNotFoundMember))
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := validator.ValidateToken(context.Background(), "nope")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
