package membercoupon

import (
	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
)

// MemberCoupon records whether a member has spent one of their coupons.
// At most one exists per (member, coupon) pair and it only moves UNUSED -> USED.
type MemberCoupon struct {
	member     *member.Member
	coupon     *coupon.Coupon
	usedStatus UsedStatus
}

func NewMemberCoupon(m *member.Member, c *coupon.Coupon) *MemberCoupon {
	return &MemberCoupon{member: m, coupon: c, usedStatus: Unused}
}

func ReconstructMemberCoupon(m *member.Member, c *coupon.Coupon, status UsedStatus) *MemberCoupon {
	return &MemberCoupon{member: m, coupon: c, usedStatus: status}
}

func (mc *MemberCoupon) IsUsed() bool {
	return mc.usedStatus == Used
}

// Use flips the status to USED. A used coupon cannot be used again.
func (mc *MemberCoupon) Use() error {
	if mc.IsUsed() {
		return ErrCouponAlreadyUsed
	}
	mc.usedStatus = Used
	return nil
}

func (mc *MemberCoupon) Member() *member.Member { return mc.member }
func (mc *MemberCoupon) Coupon() *coupon.Coupon { return mc.coupon }
func (mc *MemberCoupon) UsedStatus() UsedStatus { return mc.usedStatus }
func (mc *MemberCoupon) MemberID() int64        { return mc.member.ID() }
func (mc *MemberCoupon) CouponID() int64        { return mc.coupon.ID() }
