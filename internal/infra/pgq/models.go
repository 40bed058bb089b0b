package pgq

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Members struct {
	ID       int64
	Email    string
	Nickname string
}

type Coupons struct {
	ID              int64
	Name            string
	DiscountAmount  decimal.NullDecimal
	DiscountPercent pgtype.Int4
}

type CartItemRow struct {
	ID        int64
	MemberID  int64
	ProductID int64
	Name      string
	Price     decimal.Decimal
	ImageUrl  string
	Quantity  int32
}

type Orders struct {
	ID          int64
	MemberID    int64
	DeliveryFee decimal.Decimal
	CouponID    pgtype.Int8
	OrderedAt   pgtype.Timestamptz
}

type OrderItems struct {
	ID       int64
	OrderID  int64
	Name     string
	Price    decimal.Decimal
	ImageUrl string
	Quantity int32
}

type MemberCoupons struct {
	MemberID int64
	CouponID int64
	UsedYn   string
}
