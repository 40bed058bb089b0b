package pgq

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

func (q *Queries) FindCouponByID(ctx context.Context, db DBTX, id int64) (Coupons, error) {
	b := q.sb.Select("id", "name", "discount_amount", "discount_percent").From("coupons").Where(sq.Eq{"id": id})

	var c Coupons
	err := q.queryRow(ctx, db, b, &c.ID, &c.Name, &c.DiscountAmount, &c.DiscountPercent)
	return c, err
}
