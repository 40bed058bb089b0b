package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemView is one persisted order line.
type OrderItemView struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Quantity int32           `json:"quantity"`
}

// OrderView represents read-optimized order data with its lines
type OrderView struct {
	ID          int64           `json:"id"`
	MemberID    int64           `json:"member_id"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	CouponID    *int64          `json:"coupon_id,omitempty"`
	OrderedAt   time.Time       `json:"ordered_at"`
	Items       []OrderItemView `json:"items"`
}

// TotalItemPrice sums price x quantity over every line.
func (v *OrderView) TotalItemPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range v.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt32(it.Quantity)))
	}
	return total
}

// MemberCouponView represents a coupon held by a member together with its usage state
type MemberCouponView struct {
	CouponID        int64            `json:"coupon_id"`
	Name            string           `json:"name"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount,omitempty"`
	DiscountPercent *int32           `json:"discount_percent,omitempty"`
	UsedStatus      string           `json:"used_status"`
}
