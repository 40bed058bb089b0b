package components

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/readstore"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/uow"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// MemberCoupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MemberCouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewMemberCouponReadStore,
			fx.As(new(queries.MemberCouponReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
		NewCouponLookup,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgq.Queries {
	return pgq.New()
}

func NewDBTX(pool *pgxpool.Pool) pgq.DBTX {
	return pool
}

// NewCouponLookup exposes the pool-backed coupon reads to the query side.
// CommandReads is resolved per call so concurrent requests share no reader state.
func NewCouponLookup(u shared.UnitOfWork) shared.CouponLookup {
	return shared.CouponLookupFunc(func(ctx context.Context, id int64) (*coupon.Coupon, error) {
		return u.CommandReads().CouponByID(ctx, id)
	})
}
