//go:build unit || e2e

package builder

import (
	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/ptr"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID         int64
	Name       string
	AmountOff  *decimal.Decimal
	PercentOff *int32
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:        1,
		Name:      "welcome 5000",
		AmountOff: ptr.Of(decimal.NewFromInt(5000)),
	}
}

// Build methods
func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	c, err := coupon.NewCoupon(b.ID, b.Name, b.AmountOff, b.PercentOff)
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CouponBuilder) BuildInfra() pgq.Coupons {
	row := pgq.Coupons{ID: b.ID, Name: b.Name}
	if b.AmountOff != nil {
		row.DiscountAmount = decimal.NullDecimal{Decimal: *b.AmountOff, Valid: true}
	}
	if b.PercentOff != nil {
		row.DiscountPercent = pgtype.Int4{Int32: *b.PercentOff, Valid: true}
	}
	return row
}

// Fluent builder methods
func (b *CouponBuilder) WithID(id int64) *CouponBuilder {
	b.ID = id
	return b
}

func (b *CouponBuilder) WithName(name string) *CouponBuilder {
	b.Name = name
	return b
}

func (b *CouponBuilder) AsPercentage(percent int32) *CouponBuilder {
	b.AmountOff = nil
	b.PercentOff = &percent
	return b
}
