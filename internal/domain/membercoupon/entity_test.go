//go:build unit

package membercoupon_test

import (
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoupon(t *testing.T) *coupon.Coupon {
	t.Helper()
	amount := decimal.NewFromInt(3000)
	c, err := coupon.NewCoupon(7, "welcome", &amount, nil)
	require.NoError(t, err)
	return c
}

func TestMapToUsedStatus(t *testing.T) {
	tests := []struct {
		code  string
		want  membercoupon.UsedStatus
		errIs error
	}{
		{code: "N", want: membercoupon.Unused},
		{code: "Y", want: membercoupon.Used},
		{code: "n", errIs: membercoupon.ErrInvalidUsedStatus},
		{code: "", errIs: membercoupon.ErrInvalidUsedStatus},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			got, err := membercoupon.MapToUsedStatus(tt.code)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.Code())
		})
	}
}

func TestParseUsedStatus(t *testing.T) {
	s, err := membercoupon.ParseUsedStatus("unused")
	require.NoError(t, err)
	assert.Equal(t, membercoupon.Unused, s)

	s, err = membercoupon.ParseUsedStatus("USED")
	require.NoError(t, err)
	assert.Equal(t, membercoupon.Used, s)

	_, err = membercoupon.ParseUsedStatus("expired")
	assert.ErrorIs(t, err, membercoupon.ErrInvalidUsedStatus)
}

func TestMemberCoupon_Use(t *testing.T) {
	m := member.ReconstructMember(1, "a@a.com", "a")
	mc := membercoupon.NewMemberCoupon(m, newCoupon(t))

	assert.False(t, mc.IsUsed())
	assert.Equal(t, int64(1), mc.MemberID())
	assert.Equal(t, int64(7), mc.CouponID())

	require.NoError(t, mc.Use())
	assert.True(t, mc.IsUsed())
	assert.Equal(t, "Y", mc.UsedStatus().Code())

	assert.ErrorIs(t, mc.Use(), membercoupon.ErrCouponAlreadyUsed)
}
