package pgq

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{"id", "member_id", "delivery_fee", "coupon_id", "ordered_at"}

type CreateOrderParams struct {
	MemberID    int64
	DeliveryFee decimal.Decimal
	CouponID    pgtype.Int8
	OrderedAt   pgtype.Timestamptz
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) (int64, error) {
	b := q.sb.Insert("orders").
		Columns("member_id", "delivery_fee", "coupon_id", "ordered_at").
		Values(arg.MemberID, arg.DeliveryFee, arg.CouponID, arg.OrderedAt).
		Suffix("RETURNING id")

	var id int64
	err := q.queryRow(ctx, db, b, &id)
	return id, err
}

// DeleteOrder returns the number of deleted rows. Order items go with it via ON DELETE CASCADE.
func (q *Queries) DeleteOrder(ctx context.Context, db DBTX, id int64) (int64, error) {
	b := q.sb.Delete("orders").Where(sq.Eq{"id": id})
	return q.exec(ctx, db, b)
}

func (q *Queries) FindOrderByID(ctx context.Context, db DBTX, id int64) (Orders, error) {
	b := q.sb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id})

	var o Orders
	err := q.queryRow(ctx, db, b, &o.ID, &o.MemberID, &o.DeliveryFee, &o.CouponID, &o.OrderedAt)
	return o, err
}

func (q *Queries) ListOrdersByMember(ctx context.Context, db DBTX, memberID int64) ([]Orders, error) {
	b := q.sb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("ordered_at DESC", "id DESC")

	rows, err := q.query(ctx, db, b)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Orders, error) {
		var o Orders
		err := row.Scan(&o.ID, &o.MemberID, &o.DeliveryFee, &o.CouponID, &o.OrderedAt)
		return o, err
	})
}
