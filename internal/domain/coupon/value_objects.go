package coupon

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount can only be either fixed amount or percentage, not both")
	ErrMissingDiscount        = errors.New("discount must have either fixed amount or percentage")
)

var hundred = decimal.NewFromInt(100)

// Discount is either a fixed amount or a percentage, never both.
type Discount struct {
	amountOff  *decimal.Decimal
	percentOff *int32
}

func NewFixedDiscount(amountOff decimal.Decimal) (Discount, error) {
	if amountOff.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOff: &amountOff}, nil
}

func NewPercentageDiscount(percentOff int32) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOff *decimal.Decimal, percentOff *int32) (Discount, error) {
	if amountOff != nil && percentOff != nil {
		return Discount{}, ErrAmbiguousDiscount
	}
	if amountOff == nil && percentOff == nil {
		return Discount{}, ErrMissingDiscount
	}
	if amountOff != nil {
		return NewFixedDiscount(*amountOff)
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFixed() bool {
	return d.amountOff != nil
}

func (d Discount) AmountOff() decimal.Decimal {
	if d.amountOff != nil {
		return *d.amountOff
	}
	return decimal.Zero
}

func (d Discount) PercentOff() int32 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// Apply returns the discounted price, floored at zero.
func (d Discount) Apply(price decimal.Decimal) decimal.Decimal {
	result := price.Sub(d.CalculateDiscountAmount(price))
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

func (d Discount) CalculateDiscountAmount(price decimal.Decimal) decimal.Decimal {
	if d.IsPercentage() {
		return price.Mul(decimal.NewFromInt32(d.PercentOff())).Div(hundred).Floor()
	}
	// Cannot discount more than the original price
	if d.AmountOff().GreaterThan(price) {
		return price
	}
	return d.AmountOff()
}
