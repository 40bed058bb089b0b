//go:build unit

package coupon_test

import (
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func i32(v int32) *int32 { return &v }

func TestNewCoupon(t *testing.T) {
	tests := []struct {
		name       string
		couponName string
		amountOff  *decimal.Decimal
		percentOff *int32
		errIs      error
	}{
		{name: "fixed discount", couponName: "welcome", amountOff: dec("3000")},
		{name: "percentage discount", couponName: "ten percent", percentOff: i32(10)},
		{name: "both set", couponName: "x", amountOff: dec("1"), percentOff: i32(1), errIs: coupon.ErrAmbiguousDiscount},
		{name: "neither set", couponName: "x", errIs: coupon.ErrMissingDiscount},
		{name: "negative amount", couponName: "x", amountOff: dec("-1"), errIs: coupon.ErrInvalidDiscountAmount},
		{name: "percent above 100", couponName: "x", percentOff: i32(101), errIs: coupon.ErrInvalidDiscountPercent},
		{name: "blank name", couponName: "  ", amountOff: dec("1"), errIs: coupon.ErrInvalidCouponName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(1, tt.couponName, tt.amountOff, tt.percentOff)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), c.ID())
		})
	}
}

func TestDiscount_Apply(t *testing.T) {
	fixed, err := coupon.NewFixedDiscount(decimal.NewFromInt(3000))
	require.NoError(t, err)
	percent, err := coupon.NewPercentageDiscount(10)
	require.NoError(t, err)

	assert.True(t, fixed.Apply(decimal.NewFromInt(10000)).Equal(decimal.NewFromInt(7000)))
	assert.True(t, fixed.Apply(decimal.NewFromInt(1000)).IsZero(), "fixed discount is capped at the price")
	assert.True(t, percent.Apply(decimal.NewFromInt(380400)).Equal(decimal.NewFromInt(342360)))
	assert.True(t, percent.IsPercentage())
	assert.False(t, percent.IsFixed())
}
