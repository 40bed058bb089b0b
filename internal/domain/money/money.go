package money

import "github.com/shopspring/decimal"

// Money is an exact decimal amount. Equality ignores scale, so 100 and 100.00 are the same.
type Money struct {
	amount decimal.Decimal
}

func New(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func NewFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) IsSame(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsNotSame(other Money) bool {
	return !m.IsSame(other)
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) String() string          { return m.amount.String() }
