package commands

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

type CouponLedger interface {
	FindUsable(ctx context.Context, tx shared.Tx, memberID, couponID int64) (*membercoupon.MemberCoupon, error)
	MarkUsed(ctx context.Context, tx shared.Tx, memberID, couponID int64) error
}

// MemberCouponLedger tracks which coupons a member holds and whether they were spent.
type MemberCouponLedger struct{}

func NewMemberCouponLedger() *MemberCouponLedger {
	return &MemberCouponLedger{}
}

// FindUsable locks the association row and returns it only while it is UNUSED.
func (l *MemberCouponLedger) FindUsable(ctx context.Context, tx shared.Tx, memberID, couponID int64) (*membercoupon.MemberCoupon, error) {
	locked := shared.MemberCouponLookupFunc(func(ctx context.Context, memberID, couponID int64) (*shared.MemberCouponSnapshot, error) {
		return tx.MemberCoupons().FindByMemberAndCoupon(ctx, tx.DB(), memberID, couponID)
	})

	mc, err := shared.AssembleMemberCoupon(ctx, memberID, couponID, locked, tx.Reads(), tx.Reads())
	if err != nil {
		return nil, err
	}
	if mc.IsUsed() {
		return nil, errs.Wrapf(errs.ErrNotFoundCoupon, "coupon %d already used by member %d", couponID, memberID)
	}
	return mc, nil
}

func (l *MemberCouponLedger) MarkUsed(ctx context.Context, tx shared.Tx, memberID, couponID int64) error {
	err := tx.MemberCoupons().UpdateUsedStatus(ctx, tx.DB(), memberID, couponID, membercoupon.Unused, membercoupon.Used)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(errs.ErrNotFoundCoupon, "coupon %d is no longer usable by member %d", couponID, memberID)
		}
		return err
	}
	return nil
}
