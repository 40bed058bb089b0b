//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/java-saeng/jwp-shopping-order/internal/pkg/config"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID int64) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(memberID, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID int64) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(memberID, -time.Minute)
	require.NoError(t, err)
	return token
}
