package order

import (
	"errors"
	"time"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/money"
)

var (
	ErrInvalidMemberID     = errors.New("order member id must be positive")
	ErrNegativeDeliveryFee = errors.New("delivery fee cannot be negative")
	ErrDeliveryFeeScale    = errors.New("delivery fee cannot have more than two decimal places")
)

// deliveryFeeScale matches orders.delivery_fee NUMERIC(19, 2).
const deliveryFeeScale = 2

// Order is a placed purchase. It is created once and never edited;
// the id is zero until the order has been stored.
type Order struct {
	id          int64
	memberID    int64
	deliveryFee money.Money
	coupon      CouponChoice
	orderedAt   time.Time
}

func NewOrder(memberID int64, deliveryFee money.Money, coupon CouponChoice, orderedAt time.Time) (*Order, error) {
	if memberID <= 0 {
		return nil, ErrInvalidMemberID
	}
	if deliveryFee.Amount().IsNegative() {
		return nil, ErrNegativeDeliveryFee
	}
	if fee := deliveryFee.Amount(); !fee.Equal(fee.Round(deliveryFeeScale)) {
		return nil, ErrDeliveryFeeScale
	}
	if coupon == nil {
		coupon = NoCoupon{}
	}
	return &Order{
		memberID:    memberID,
		deliveryFee: deliveryFee,
		coupon:      coupon,
		orderedAt:   orderedAt,
	}, nil
}

func ReconstructOrder(id, memberID int64, deliveryFee money.Money, coupon CouponChoice, orderedAt time.Time) *Order {
	if coupon == nil {
		coupon = NoCoupon{}
	}
	return &Order{
		id:          id,
		memberID:    memberID,
		deliveryFee: deliveryFee,
		coupon:      coupon,
		orderedAt:   orderedAt,
	}
}

// WithID returns a copy carrying the id assigned by storage.
func (o *Order) WithID(id int64) *Order {
	cp := *o
	cp.id = id
	return &cp
}

func (o *Order) IsNotMyOrder(m *member.Member) bool {
	return !m.IsMe(o.memberID)
}

func (o *Order) ID() int64                { return o.id }
func (o *Order) MemberID() int64          { return o.memberID }
func (o *Order) DeliveryFee() money.Money { return o.deliveryFee }
func (o *Order) Coupon() CouponChoice     { return o.coupon }
func (o *Order) OrderedAt() time.Time     { return o.orderedAt }
