//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/ptr"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
	"github.com/java-saeng/jwp-shopping-order/tests/common/builder"
	queriesmock "github.com/java-saeng/jwp-shopping-order/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func couponCatalog(cs ...*coupon.Coupon) shared.CouponLookup {
	byID := make(map[int64]*coupon.Coupon, len(cs))
	for _, c := range cs {
		byID[c.ID()] = c
	}
	return shared.CouponLookupFunc(func(_ context.Context, id int64) (*coupon.Coupon, error) {
		c, ok := byID[id]
		if !ok {
			return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
		}
		return c, nil
	})
}

func TestMemberCouponQueries_ListByMember(t *testing.T) {
	me := builder.NewMemberBuilder().WithID(1).BuildDomain()
	fixed := builder.NewCouponBuilder().WithID(1).WithName("welcome 5000").BuildDomain()
	percent := builder.NewCouponBuilder().WithID(2).WithName("ten percent").AsPercentage(10).BuildDomain()

	t.Run("maps both discount kinds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMemberCouponReadStore(ctrl)
		store.EXPECT().ListByMember(gomock.Any(), int64(1), gomock.Nil()).Return([]shared.MemberCouponSnapshot{
			{MemberID: 1, CouponID: 1, UsedYn: "N"},
			{MemberID: 1, CouponID: 2, UsedYn: "Y"},
		}, nil)

		got, err := queries.NewMemberCouponQueries(store, couponCatalog(fixed, percent)).
			ListByMember(context.Background(), me, nil)
		require.NoError(t, err)

		want := []*queries.MemberCouponView{
			{CouponID: 1, Name: "welcome 5000", DiscountAmount: ptr.Of(decimal.NewFromInt(5000)), UsedStatus: "UNUSED"},
			{CouponID: 2, Name: "ten percent", DiscountPercent: ptr.Of(int32(10)), UsedStatus: "USED"},
		}
		diff := cmp.Diff(want, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }))
		assert.Empty(t, diff)
	})

	t.Run("status filter is sent as the stored code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMemberCouponReadStore(ctrl)
		status := membercoupon.Used
		store.EXPECT().ListByMember(gomock.Any(), int64(1), ptr.Of("Y")).Return(nil, nil)

		got, err := queries.NewMemberCouponQueries(store, couponCatalog()).
			ListByMember(context.Background(), me, &status)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("dangling coupon reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMemberCouponReadStore(ctrl)
		store.EXPECT().ListByMember(gomock.Any(), int64(1), gomock.Nil()).Return([]shared.MemberCouponSnapshot{
			{MemberID: 1, CouponID: 9, UsedYn: "N"},
		}, nil)

		_, err := queries.NewMemberCouponQueries(store, couponCatalog()).
			ListByMember(context.Background(), me, nil)
		assert.True(t, errors.Is(err, errs.ErrNotFoundCoupon))
	})
}
