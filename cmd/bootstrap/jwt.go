package bootstrap

import (
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/config"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
}
