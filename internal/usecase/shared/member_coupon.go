package shared

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
)

// AssembleMemberCoupon rebuilds a MemberCoupon from three independent lookups.
// A missing association or a missing coupon both surface as errs.ErrNotFoundCoupon.
func AssembleMemberCoupon(
	ctx context.Context,
	memberID, couponID int64,
	associations MemberCouponLookup,
	members MemberLookup,
	coupons CouponLookup,
) (*membercoupon.MemberCoupon, error) {
	assoc, err := associations.MemberCouponByIDs(ctx, memberID, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFoundCoupon, "member %d has no coupon %d", memberID, couponID)
		}
		return nil, err
	}

	status, err := membercoupon.MapToUsedStatus(assoc.UsedYn)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt member coupon row")
	}

	m, err := members.MemberByID(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFoundMember, "member %d", memberID)
		}
		return nil, err
	}

	c, err := coupons.CouponByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFoundCoupon, "coupon %d", couponID)
		}
		return nil, err
	}

	return membercoupon.ReconstructMemberCoupon(m, c, status), nil
}
