package response

import (
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"
)

type MemberCouponResponse struct {
	CouponID        int64   `json:"couponId"`
	Name            string  `json:"name"`
	DiscountAmount  *string `json:"discountAmount,omitempty"`
	DiscountPercent *int32  `json:"discountPercent,omitempty"`
	Status          string  `json:"status"`
}

func FromMemberCouponViews(views []*queries.MemberCouponView) []*MemberCouponResponse {
	res := make([]*MemberCouponResponse, len(views))
	for i, v := range views {
		r := &MemberCouponResponse{
			CouponID:        v.CouponID,
			Name:            v.Name,
			DiscountPercent: v.DiscountPercent,
			Status:          v.UsedStatus,
		}
		if v.DiscountAmount != nil {
			amount := v.DiscountAmount.String()
			r.DiscountAmount = &amount
		}
		res[i] = r
	}
	return res
}
