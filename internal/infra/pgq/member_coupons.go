package pgq

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type FindMemberCouponParams struct {
	MemberID  int64
	CouponID  int64
	ForUpdate bool
}

func (q *Queries) FindMemberCoupon(ctx context.Context, db DBTX, arg FindMemberCouponParams) (MemberCoupons, error) {
	b := q.sb.Select("member_id", "coupon_id", "used_yn").
		From("member_coupons").
		Where(sq.Eq{"member_id": arg.MemberID, "coupon_id": arg.CouponID})
	if arg.ForUpdate {
		b = b.Suffix("FOR UPDATE")
	}

	var mc MemberCoupons
	err := q.queryRow(ctx, db, b, &mc.MemberID, &mc.CouponID, &mc.UsedYn)
	return mc, err
}

// ListMemberCouponsByMember filters on used_yn when usedYn is non-nil.
func (q *Queries) ListMemberCouponsByMember(ctx context.Context, db DBTX, memberID int64, usedYn *string) ([]MemberCoupons, error) {
	cond := sq.Eq{"member_id": memberID}
	if usedYn != nil {
		cond["used_yn"] = *usedYn
	}
	b := q.sb.Select("member_id", "coupon_id", "used_yn").
		From("member_coupons").
		Where(cond).
		OrderBy("coupon_id")

	rows, err := q.query(ctx, db, b)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (MemberCoupons, error) {
		var mc MemberCoupons
		err := row.Scan(&mc.MemberID, &mc.CouponID, &mc.UsedYn)
		return mc, err
	})
}

type UpdateMemberCouponUsedYnParams struct {
	MemberID   int64
	CouponID   int64
	FromUsedYn string
	ToUsedYn   string
}

// UpdateMemberCouponUsedYn only touches the row while it still holds FromUsedYn,
// so a concurrent consumer sees zero affected rows.
func (q *Queries) UpdateMemberCouponUsedYn(ctx context.Context, db DBTX, arg UpdateMemberCouponUsedYnParams) (int64, error) {
	b := q.sb.Update("member_coupons").
		Set("used_yn", arg.ToUsedYn).
		Where(sq.Eq{"member_id": arg.MemberID, "coupon_id": arg.CouponID, "used_yn": arg.FromUsedYn})
	return q.exec(ctx, db, b)
}
