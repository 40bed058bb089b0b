package response

import (
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"
)

type RegisterOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

type OrderItemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	ImageURL string `json:"imageUrl"`
	Quantity int32  `json:"quantity"`
}

type OrderResponse struct {
	OrderID        int64                `json:"orderId"`
	OrderedAt      int64                `json:"orderedAt"`
	DeliveryFee    string               `json:"deliveryFee"`
	CouponID       *int64               `json:"couponId,omitempty"`
	TotalItemPrice string               `json:"totalItemPrice"`
	Items          []*OrderItemResponse `json:"items"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]*OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = &OrderItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price.String(),
			ImageURL: it.ImageURL,
			Quantity: it.Quantity,
		}
	}
	return &OrderResponse{
		OrderID:        v.ID,
		OrderedAt:      v.OrderedAt.Unix(),
		DeliveryFee:    v.DeliveryFee.String(),
		CouponID:       v.CouponID,
		TotalItemPrice: v.TotalItemPrice().String(),
		Items:          items,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}
