package order

// CouponChoice is either NoCoupon or AppliedCoupon. Switch on it with a type switch;
// the unexported marker keeps the set closed.
type CouponChoice interface {
	isCouponChoice()
}

type NoCoupon struct{}

type AppliedCoupon struct {
	ID int64
}

func (NoCoupon) isCouponChoice()      {}
func (AppliedCoupon) isCouponChoice() {}

// CouponFromID maps a nullable stored coupon id onto a CouponChoice.
func CouponFromID(id *int64) CouponChoice {
	if id == nil {
		return NoCoupon{}
	}
	return AppliedCoupon{ID: *id}
}

// CouponID is the inverse of CouponFromID.
func CouponID(c CouponChoice) *int64 {
	switch v := c.(type) {
	case AppliedCoupon:
		id := v.ID
		return &id
	default:
		return nil
	}
}
