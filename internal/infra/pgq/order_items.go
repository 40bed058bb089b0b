package pgq

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type CreateOrderItemParams struct {
	OrderID  int64
	Name     string
	Price    decimal.Decimal
	ImageUrl string
	Quantity int32
}

// CreateOrderItems inserts all lines in one multi-row INSERT.
func (q *Queries) CreateOrderItems(ctx context.Context, db DBTX, arg []CreateOrderItemParams) (int64, error) {
	if len(arg) == 0 {
		return 0, nil
	}

	b := q.sb.Insert("order_items").Columns("order_id", "name", "price", "image_url", "quantity")
	for _, it := range arg {
		b = b.Values(it.OrderID, it.Name, it.Price, it.ImageUrl, it.Quantity)
	}
	return q.exec(ctx, db, b)
}

func (q *Queries) ListOrderItemsByOrderIDs(ctx context.Context, db DBTX, orderIDs []int64) ([]OrderItems, error) {
	b := q.sb.Select("id", "order_id", "name", "price", "image_url", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "id")

	rows, err := q.query(ctx, db, b)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (OrderItems, error) {
		var it OrderItems
		err := row.Scan(&it.ID, &it.OrderID, &it.Name, &it.Price, &it.ImageUrl, &it.Quantity)
		return it, err
	})
}
