package queries

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

//go:generate mockgen -source=member_coupon.go -destination=../../../tests/mock/queries/member_coupon_mock.go -package=queriesmock

type MemberCouponReadStore interface {
	// ListByMember filters on the persisted used code when usedYn is non-nil.
	ListByMember(ctx context.Context, memberID int64, usedYn *string) ([]shared.MemberCouponSnapshot, error)
}

type MemberCouponQueries interface {
	ListByMember(ctx context.Context, m *member.Member, status *membercoupon.UsedStatus) ([]*MemberCouponView, error)
}

type memberCouponQueriesImpl struct {
	store   MemberCouponReadStore
	coupons shared.CouponLookup
}

func NewMemberCouponQueries(store MemberCouponReadStore, coupons shared.CouponLookup) MemberCouponQueries {
	return &memberCouponQueriesImpl{store: store, coupons: coupons}
}

func (q *memberCouponQueriesImpl) ListByMember(ctx context.Context, m *member.Member, status *membercoupon.UsedStatus) ([]*MemberCouponView, error) {
	var usedYn *string
	if status != nil {
		code := status.Code()
		usedYn = &code
	}

	rows, err := q.store.ListByMember(ctx, m.ID(), usedYn)
	if err != nil {
		return nil, err
	}

	// the acting member is already loaded, so only the coupon side hits storage
	members := shared.MemberLookupFunc(func(context.Context, int64) (*member.Member, error) {
		return m, nil
	})

	views := make([]*MemberCouponView, 0, len(rows))
	for _, row := range rows {
		snapshot := row
		associations := shared.MemberCouponLookupFunc(func(context.Context, int64, int64) (*shared.MemberCouponSnapshot, error) {
			return &snapshot, nil
		})

		mc, err := shared.AssembleMemberCoupon(ctx, row.MemberID, row.CouponID, associations, members, q.coupons)
		if err != nil {
			return nil, err
		}
		views = append(views, toMemberCouponView(mc))
	}
	return views, nil
}

func toMemberCouponView(mc *membercoupon.MemberCoupon) *MemberCouponView {
	c := mc.Coupon()
	v := &MemberCouponView{
		CouponID:   c.ID(),
		Name:       c.Name(),
		UsedStatus: mc.UsedStatus().String(),
	}
	d := c.Discount()
	if d.IsFixed() {
		amount := d.AmountOff()
		v.DiscountAmount = &amount
	}
	if d.IsPercentage() {
		percent := d.PercentOff()
		v.DiscountPercent = &percent
	}
	return v
}
