package converter

import (
	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/orderitem"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) pgq.CreateOrderParams {
	return pgq.CreateOrderParams{
		MemberID:    o.MemberID(),
		DeliveryFee: o.DeliveryFee().Amount(),
		CouponID:    pgconv.Int8PtrToPgtype(order.CouponID(o.Coupon())),
		OrderedAt:   pgconv.TimeToPgtype(o.OrderedAt()),
	}
}

func OrderItemsToCreateParams(items []*orderitem.OrderItem) []pgq.CreateOrderItemParams {
	params := make([]pgq.CreateOrderItemParams, len(items))
	for i, it := range items {
		params[i] = pgq.CreateOrderItemParams{
			OrderID:  it.OrderID(),
			Name:     it.Name(),
			Price:    it.UnitPrice(),
			ImageUrl: it.ImageURL(),
			Quantity: it.Quantity(),
		}
	}
	return params
}
