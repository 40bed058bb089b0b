package pgq

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// FindCartItemsByIDsAndMember only returns rows owned by memberID; foreign and
// unknown ids are silently dropped.
func (q *Queries) FindCartItemsByIDsAndMember(ctx context.Context, db DBTX, ids []int64, memberID int64) ([]CartItemRow, error) {
	b := q.sb.Select("ci.id", "ci.member_id", "ci.product_id", "p.name", "p.price", "p.image_url", "ci.quantity").
		From("cart_items ci").
		Join("products p ON p.id = ci.product_id").
		Where(sq.Eq{"ci.id": ids, "ci.member_id": memberID}).
		OrderBy("ci.id")

	rows, err := q.query(ctx, db, b)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (CartItemRow, error) {
		var c CartItemRow
		err := row.Scan(&c.ID, &c.MemberID, &c.ProductID, &c.Name, &c.Price, &c.ImageUrl, &c.Quantity)
		return c, err
	})
}
