package components

import (
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/clock"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/commands"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		commands.NewOrderItemProjection,
		fx.As(new(commands.OrderItemProjector)),
	),
	fx.Annotate(
		commands.NewMemberCouponLedger,
		fx.As(new(commands.CouponLedger)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewMemberCouponQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
