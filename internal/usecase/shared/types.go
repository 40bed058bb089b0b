package shared

import (
	"context"
	"time"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"

	"github.com/shopspring/decimal"
)

// Minimal snapshots for command read operations
type CartItemSnapshot struct {
	ID       int64
	MemberID int64
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Quantity int32
}

type OrderSnapshot struct {
	ID          int64
	MemberID    int64
	DeliveryFee decimal.Decimal
	CouponID    *int64
	OrderedAt   time.Time
}

type MemberCouponSnapshot struct {
	MemberID int64
	CouponID int64
	UsedYn   string
}

// Function adapters so a single lookup can be swapped without a full CommandReads.

type MemberLookupFunc func(ctx context.Context, id int64) (*member.Member, error)

func (f MemberLookupFunc) MemberByID(ctx context.Context, id int64) (*member.Member, error) {
	return f(ctx, id)
}

type CouponLookupFunc func(ctx context.Context, id int64) (*coupon.Coupon, error)

func (f CouponLookupFunc) CouponByID(ctx context.Context, id int64) (*coupon.Coupon, error) {
	return f(ctx, id)
}

type MemberCouponLookupFunc func(ctx context.Context, memberID, couponID int64) (*MemberCouponSnapshot, error)

func (f MemberCouponLookupFunc) MemberCouponByIDs(ctx context.Context, memberID, couponID int64) (*MemberCouponSnapshot, error) {
	return f(ctx, memberID, couponID)
}
