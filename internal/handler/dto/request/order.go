package request

import (
	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// RegisterOrderRequest accepts prices as JSON numbers or decimal strings.
type RegisterOrderRequest struct {
	CartItemIDs []int64          `json:"cartItemIds" binding:"required,min=1,dive,gt=0"`
	TotalPrice  *decimal.Decimal `json:"totalPrice" binding:"required"`
	DeliveryFee *decimal.Decimal `json:"deliveryFee" binding:"required"`
	CouponID    *int64           `json:"couponId" binding:"omitempty,gt=0"`
}

func (r *RegisterOrderRequest) ToInput() commands.RegisterOrderInput {
	return commands.RegisterOrderInput{
		CartItemIDs: r.CartItemIDs,
		TotalPrice:  *r.TotalPrice,
		DeliveryFee: *r.DeliveryFee,
		Coupon:      order.CouponFromID(r.CouponID),
	}
}
