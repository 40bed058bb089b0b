//go:build unit

package order_test

import (
	"testing"
	"time"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/money"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil coupon defaults to NoCoupon", func(t *testing.T) {
		o, err := order.NewOrder(1, money.NewFromInt(3000), nil, now)
		require.NoError(t, err)
		assert.Equal(t, order.NoCoupon{}, o.Coupon())
		assert.Zero(t, o.ID())
		assert.Equal(t, now, o.OrderedAt())
	})

	t.Run("invalid member id", func(t *testing.T) {
		_, err := order.NewOrder(0, money.NewFromInt(3000), order.NoCoupon{}, now)
		assert.ErrorIs(t, err, order.ErrInvalidMemberID)
	})

	t.Run("negative delivery fee", func(t *testing.T) {
		_, err := order.NewOrder(1, money.NewFromInt(-1), order.NoCoupon{}, now)
		assert.ErrorIs(t, err, order.ErrNegativeDeliveryFee)
	})

	t.Run("delivery fee with more than two decimal places", func(t *testing.T) {
		_, err := order.NewOrder(1, money.New(decimal.RequireFromString("3000.555")), order.NoCoupon{}, now)
		assert.ErrorIs(t, err, order.ErrDeliveryFeeScale)
	})

	t.Run("trailing zeros beyond two decimal places are accepted", func(t *testing.T) {
		o, err := order.NewOrder(1, money.New(decimal.RequireFromString("3000.500")), order.NoCoupon{}, now)
		require.NoError(t, err)
		assert.True(t, o.DeliveryFee().IsSame(money.New(decimal.RequireFromString("3000.5"))))
	})

	t.Run("WithID keeps the original untouched", func(t *testing.T) {
		o, err := order.NewOrder(1, money.NewFromInt(3000), order.AppliedCoupon{ID: 2}, now)
		require.NoError(t, err)

		stored := o.WithID(5)
		assert.Equal(t, int64(5), stored.ID())
		assert.Zero(t, o.ID())
		assert.Equal(t, order.AppliedCoupon{ID: 2}, stored.Coupon())
	})
}

func TestOrder_IsNotMyOrder(t *testing.T) {
	o := order.ReconstructOrder(4, 2, money.NewFromInt(3000), order.NoCoupon{}, time.Time{})

	assert.True(t, o.IsNotMyOrder(member.ReconstructMember(1, "a@a.com", "a")))
	assert.False(t, o.IsNotMyOrder(member.ReconstructMember(2, "b@b.com", "b")))
}

func TestCouponChoice(t *testing.T) {
	id := int64(3)

	assert.Equal(t, order.NoCoupon{}, order.CouponFromID(nil))
	assert.Equal(t, order.AppliedCoupon{ID: 3}, order.CouponFromID(&id))
	assert.Nil(t, order.CouponID(order.NoCoupon{}))

	got := order.CouponID(order.AppliedCoupon{ID: 3})
	if diff := cmp.Diff(&id, got); diff != "" {
		t.Errorf("coupon id mismatch (-want +got):\n%s", diff)
	}
}
