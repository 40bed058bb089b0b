//go:build unit

package money_test

import (
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney_IsNotSame(t *testing.T) {
	tests := []struct {
		name    string
		left    string
		right   string
		notSame bool
	}{
		{name: "same value same scale", left: "380400", right: "380400", notSame: false},
		{name: "same value different scale", left: "100", right: "100.00", notSame: false},
		{name: "trailing fraction zeros", left: "0.5", right: "0.500", notSame: false},
		{name: "different value", left: "380400", right: "200000", notSame: true},
		{name: "sub-unit difference", left: "100", right: "100.01", notSame: true},
		{name: "zero vs negative zero", left: "0", right: "-0.00", notSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := money.New(decimal.RequireFromString(tt.left))
			right := money.New(decimal.RequireFromString(tt.right))

			assert.Equal(t, tt.notSame, left.IsNotSame(right))
			assert.Equal(t, tt.notSame, right.IsNotSame(left))
			assert.Equal(t, !tt.notSame, left.IsSame(right))
		})
	}
}

func TestMoney_Constructors(t *testing.T) {
	assert.True(t, money.NewFromInt(3000).IsSame(money.New(decimal.RequireFromString("3000.0"))))
	assert.True(t, money.Zero().Amount().IsZero())
	assert.Equal(t, "180400", money.NewFromInt(180400).String())
}
