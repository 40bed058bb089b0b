package readstore

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/pgconv"
)

type CouponReadQueries interface {
	FindCouponByID(ctx context.Context, db pgq.DBTX, id int64) (pgq.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      pgq.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db pgq.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id int64) (*coupon.Coupon, error) {
	row, err := r.queries.FindCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}

	c, err := coupon.NewCoupon(row.ID, row.Name,
		pgconv.DecimalPtrFromNull(row.DiscountAmount),
		pgconv.Int32PtrFromPgtype(row.DiscountPercent))
	if err != nil {
		return nil, errs.Wrapf(err, "corrupt coupon row %d", row.ID)
	}
	return c, nil
}
