package bootstrap

import (
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
