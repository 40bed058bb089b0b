//go:build unit

package shared_test

import (
	"context"
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notFound = infra.RepositoryError{Kind: infra.KindNotFound}

func associationOf(usedYn string) shared.MemberCouponLookupFunc {
	return func(_ context.Context, memberID, couponID int64) (*shared.MemberCouponSnapshot, error) {
		return &shared.MemberCouponSnapshot{MemberID: memberID, CouponID: couponID, UsedYn: usedYn}, nil
	}
}

func missingAssociation() shared.MemberCouponLookupFunc {
	return func(context.Context, int64, int64) (*shared.MemberCouponSnapshot, error) {
		return nil, notFound
	}
}

func memberFound() shared.MemberLookupFunc {
	return func(_ context.Context, id int64) (*member.Member, error) {
		return member.ReconstructMember(id, "a@a.com", "a"), nil
	}
}

func couponFound() shared.CouponLookupFunc {
	return func(_ context.Context, id int64) (*coupon.Coupon, error) {
		amount := decimal.NewFromInt(3000)
		return coupon.NewCoupon(id, "welcome", &amount, nil)
	}
}

func couponMissing() shared.CouponLookupFunc {
	return func(context.Context, int64) (*coupon.Coupon, error) {
		return nil, notFound
	}
}

func TestAssembleMemberCoupon(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		associations shared.MemberCouponLookup
		members      shared.MemberLookup
		coupons      shared.CouponLookup
		wantStatus   membercoupon.UsedStatus
		errIs        error
		errKind      infra.RepositoryErrorKind
	}{
		{
			name:         "unused association",
			associations: associationOf("N"),
			members:      memberFound(),
			coupons:      couponFound(),
			wantStatus:   membercoupon.Unused,
		},
		{
			name:         "used association",
			associations: associationOf("Y"),
			members:      memberFound(),
			coupons:      couponFound(),
			wantStatus:   membercoupon.Used,
		},
		{
			name:         "no association row",
			associations: missingAssociation(),
			members:      memberFound(),
			coupons:      couponFound(),
			errIs:        errs.ErrNotFoundCoupon,
		},
		{
			name:         "coupon entity gone",
			associations: associationOf("N"),
			members:      memberFound(),
			coupons:      couponMissing(),
			errIs:        errs.ErrNotFoundCoupon,
		},
		{
			name:         "member gone",
			associations: associationOf("N"),
			members: shared.MemberLookupFunc(func(context.Context, int64) (*member.Member, error) {
				return nil, notFound
			}),
			coupons: couponFound(),
			errIs:   errs.ErrNotFoundMember,
		},
		{
			name:         "invalid stored code",
			associations: associationOf("X"),
			members:      memberFound(),
			coupons:      couponFound(),
			errIs:        membercoupon.ErrInvalidUsedStatus,
		},
		{
			name:         "infrastructure failure is passed through",
			associations: associationOf("N"),
			members:      memberFound(),
			coupons: shared.CouponLookupFunc(func(context.Context, int64) (*coupon.Coupon, error) {
				return nil, infra.RepositoryError{Kind: infra.KindDBFailure}
			}),
			errKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, err := shared.AssembleMemberCoupon(ctx, 1, 2, tt.associations, tt.members, tt.coupons)

			if tt.errKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.errKind))
				return
			}
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, mc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, mc.UsedStatus())
			assert.Equal(t, int64(1), mc.MemberID())
			assert.Equal(t, int64(2), mc.CouponID())
		})
	}
}
