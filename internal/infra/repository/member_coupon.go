package repository

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

type MemberCouponWriteQueries interface {
	FindMemberCoupon(ctx context.Context, db pgq.DBTX, arg pgq.FindMemberCouponParams) (pgq.MemberCoupons, error)
	UpdateMemberCouponUsedYn(ctx context.Context, db pgq.DBTX, arg pgq.UpdateMemberCouponUsedYnParams) (int64, error)
}

type MemberCouponRepository struct {
	queries MemberCouponWriteQueries
}

func NewMemberCouponRepository(queries MemberCouponWriteQueries) *MemberCouponRepository {
	return &MemberCouponRepository{queries: queries}
}

func (r *MemberCouponRepository) FindByMemberAndCoupon(ctx context.Context, tx pgq.DBTX, memberID, couponID int64) (*shared.MemberCouponSnapshot, error) {
	row, err := r.queries.FindMemberCoupon(ctx, tx, pgq.FindMemberCouponParams{
		MemberID:  memberID,
		CouponID:  couponID,
		ForUpdate: true,
	})
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find member coupon", err)
	}
	return &shared.MemberCouponSnapshot{
		MemberID: row.MemberID,
		CouponID: row.CouponID,
		UsedYn:   row.UsedYn,
	}, nil
}

func (r *MemberCouponRepository) UpdateUsedStatus(ctx context.Context, tx pgq.DBTX, memberID, couponID int64, from, to membercoupon.UsedStatus) error {
	n, err := r.queries.UpdateMemberCouponUsedYn(ctx, tx, pgq.UpdateMemberCouponUsedYnParams{
		MemberID:   memberID,
		CouponID:   couponID,
		FromUsedYn: from.Code(),
		ToUsedYn:   to.Code(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update member coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("member coupon not found in expected state", nil, infra.KindNotFound)
	}
	return nil
}
