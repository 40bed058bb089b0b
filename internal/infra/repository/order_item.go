package repository

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/orderitem"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/repository/converter"
)

type OrderItemWriteQueries interface {
	CreateOrderItems(ctx context.Context, db pgq.DBTX, arg []pgq.CreateOrderItemParams) (int64, error)
}

type OrderItemRepository struct {
	queries OrderItemWriteQueries
}

func NewOrderItemRepository(queries OrderItemWriteQueries) *OrderItemRepository {
	return &OrderItemRepository{queries: queries}
}

func (r *OrderItemRepository) CreateBatch(ctx context.Context, tx pgq.DBTX, items []*orderitem.OrderItem) error {
	n, err := r.queries.CreateOrderItems(ctx, tx, converter.OrderItemsToCreateParams(items))
	if err != nil {
		return infra.ClassifyPgErr("failed to create order items", err)
	}
	if n != int64(len(items)) {
		return infra.WrapRepoErr("order item insert count mismatch", nil)
	}
	return nil
}
