package commands

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/orderitem"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

type OrderItemProjector interface {
	Project(ctx context.Context, tx shared.Tx, orderID int64, cartItemIDs []int64, m *member.Member) (orderitem.OrderedItems, error)
}

// OrderItemProjection snapshots cart lines into order items at order time.
type OrderItemProjection struct{}

func NewOrderItemProjection() *OrderItemProjection {
	return &OrderItemProjection{}
}

// Project resolves every requested id against the member's cart, persists one
// order item per cart line and returns the lines in request order.
// Any id that is unknown, foreign or repeated fails with ErrCanNotOrderNotInCart.
func (p *OrderItemProjection) Project(ctx context.Context, tx shared.Tx, orderID int64, cartItemIDs []int64, m *member.Member) (orderitem.OrderedItems, error) {
	cartItems, err := tx.Reads().CartItemsByIDs(ctx, cartItemIDs, m.ID())
	if err != nil {
		return orderitem.OrderedItems{}, err
	}
	if len(cartItems) != len(cartItemIDs) {
		return orderitem.OrderedItems{}, errs.Wrapf(errs.ErrCanNotOrderNotInCart,
			"requested %d cart items, member %d owns %d of them", len(cartItemIDs), m.ID(), len(cartItems))
	}

	byID := make(map[int64]shared.CartItemSnapshot, len(cartItems))
	for _, ci := range cartItems {
		byID[ci.ID] = ci
	}

	items := make([]*orderitem.OrderItem, 0, len(cartItemIDs))
	for _, id := range cartItemIDs {
		ci, ok := byID[id]
		if !ok {
			return orderitem.OrderedItems{}, errs.Wrapf(errs.ErrCanNotOrderNotInCart, "cart item %d", id)
		}
		item, err := orderitem.NewOrderItem(orderID, ci.Name, ci.Price, ci.ImageURL, ci.Quantity)
		if err != nil {
			return orderitem.OrderedItems{}, errs.Wrap(err, "invalid cart line")
		}
		items = append(items, item)
	}

	if err := tx.OrderItems().CreateBatch(ctx, tx.DB(), items); err != nil {
		return orderitem.OrderedItems{}, err
	}
	return orderitem.NewOrderedItems(items), nil
}
