package components

import (
	"github.com/java-saeng/jwp-shopping-order/internal/handler"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/api"
	"github.com/java-saeng/jwp-shopping-order/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewMemberCouponHandler,
		middleware.NewAuthMiddleware,
		func(order *api.OrderHandler, memberCoupon *api.MemberCouponHandler) handler.Handlers {
			return handler.Handlers{
				Order:        order,
				MemberCoupon: memberCoupon,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
