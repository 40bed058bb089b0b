package repository

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/repository/converter"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db pgq.DBTX, arg pgq.CreateOrderParams) (int64, error)
	DeleteOrder(ctx context.Context, db pgq.DBTX, id int64) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx pgq.DBTX, o *order.Order) (int64, error) {
	id, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o))
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to create order", err)
	}
	return id, nil
}

func (r *OrderRepository) Delete(ctx context.Context, tx pgq.DBTX, orderID int64) error {
	n, err := r.queries.DeleteOrder(ctx, tx, orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
