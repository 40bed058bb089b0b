package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCouponName = errors.New("coupon name must not be empty")

// Coupon is a catalog entry. Which member owns it and whether it was used
// lives in the membercoupon package.
type Coupon struct {
	id       int64
	name     string
	discount Discount
}

func NewCoupon(id int64, name string, amountOff *decimal.Decimal, percentOff *int32) (*Coupon, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCouponName
	}

	discount, err := NewDiscount(amountOff, percentOff)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:       id,
		name:     name,
		discount: discount,
	}, nil
}

func (c *Coupon) ApplyDiscount(price decimal.Decimal) decimal.Decimal {
	return c.discount.Apply(price)
}

func (c *Coupon) ID() int64          { return c.id }
func (c *Coupon) Name() string       { return c.name }
func (c *Coupon) Discount() Discount { return c.discount }
