//go:build unit

package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/clock"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
	"github.com/java-saeng/jwp-shopping-order/tests/common/builder"
	"github.com/java-saeng/jwp-shopping-order/tests/common/memstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var orderedAt = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

type OrderCommandsTestSuite struct {
	suite.Suite
	store    *memstore.Store
	commands OrderCommands
	memberA  *member.Member
	memberB  *member.Member
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.store = memstore.New()
	s.commands = NewOrderCommands(s.store, clock.NewFixedClock(orderedAt), NewOrderItemProjection(), NewMemberCouponLedger())

	s.memberA = builder.NewMemberBuilder().WithID(1).BuildDomain()
	s.memberB = builder.NewMemberBuilder().WithID(2).WithEmail("b@b.com").BuildDomain()
	s.store.AddMember(s.memberA)
	s.store.AddMember(s.memberB)

	s.store.AddCartItem(builder.NewCartItemBuilder().WithID(1).WithName("chicken").WithPrice(200000).BuildSnapshot())
	s.store.AddCartItem(builder.NewCartItemBuilder().WithID(2).WithName("pizza").WithPrice(180400).BuildSnapshot())
	s.store.AddCartItem(builder.NewCartItemBuilder().WithID(3).WithMemberID(2).WithName("salad").WithPrice(9000).BuildSnapshot())

	s.store.AddCoupon(builder.NewCouponBuilder().WithID(1).BuildDomain())
	s.store.AddCoupon(builder.NewCouponBuilder().WithID(2).WithName("ten percent").AsPercentage(10).BuildDomain())
	s.store.GrantCoupon(1, 1, "N")
	s.store.GrantCoupon(1, 2, "Y")
}

func TestOrderCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) input(total int64, coupon order.CouponChoice, ids ...int64) RegisterOrderInput {
	return RegisterOrderInput{
		CartItemIDs: ids,
		TotalPrice:  decimal.NewFromInt(total),
		DeliveryFee: decimal.NewFromInt(3000),
		Coupon:      coupon,
	}
}

func (s *OrderCommandsTestSuite) assertNothingCommitted() {
	s.Equal(0, s.store.OrderCount())
	s.Equal(0, s.store.OrderItemCount())
	code, _ := s.store.UsedYn(1, 1)
	s.Equal("N", code)
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_Success() {
	id, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(380400, order.NoCoupon{}, 1, 2))
	s.Require().NoError(err)
	s.Positive(id)

	stored, ok := s.store.Order(id)
	s.Require().True(ok)
	s.Equal(int64(1), stored.MemberID)
	s.Nil(stored.CouponID)
	s.True(stored.DeliveryFee.Equal(decimal.NewFromInt(3000)))
	s.Equal(orderedAt, stored.OrderedAt)

	items := s.store.OrderItems(id)
	s.Require().Len(items, 2)
	s.Equal("chicken", items[0].Name)
	s.Equal("pizza", items[1].Name)

	code, _ := s.store.UsedYn(1, 1)
	s.Equal("N", code, "no coupon must leave the ledger untouched")
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_TotalWithDifferentScale() {
	input := s.input(0, order.NoCoupon{}, 1, 2)
	input.TotalPrice = decimal.RequireFromString("380400.00")

	_, err := s.commands.RegisterOrder(context.Background(), s.memberA, input)
	s.NoError(err)
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_TotalMismatchRollsBack() {
	_, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(200000, order.NoCoupon{}, 1, 2))

	s.True(errors.Is(err, errs.ErrNotSameTotalPrice))
	s.assertNothingCommitted()
	s.Equal(1, s.store.Rollbacks)
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_NotInCart() {
	tests := []struct {
		name string
		ids  []int64
	}{
		{name: "missing and foreign ids", ids: []int64{1, 2, 3, 4, 8}},
		{name: "foreign id only", ids: []int64{3}},
		{name: "duplicated id", ids: []int64{1, 1}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(380400, order.NoCoupon{}, tt.ids...))

			s.True(errors.Is(err, errs.ErrCanNotOrderNotInCart), "got %v", err)
			s.assertNothingCommitted()
		})
	}
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_EmptyCartItems() {
	_, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(0, order.NoCoupon{}))

	s.True(errors.Is(err, errs.ErrDomainValidation))
	s.Equal(0, s.store.Commits+s.store.Rollbacks, "validation happens before the transaction")
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_DeliveryFeeBeyondStoredScale() {
	in := s.input(380400, order.NoCoupon{}, 1, 2)
	in.DeliveryFee = decimal.RequireFromString("3000.555")

	_, err := s.commands.RegisterOrder(context.Background(), s.memberA, in)

	s.True(errors.Is(err, errs.ErrDomainValidation))
	s.Equal(0, s.store.Commits+s.store.Rollbacks)
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_WithCoupon() {
	id, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(380400, order.AppliedCoupon{ID: 1}, 1, 2))
	s.Require().NoError(err)

	stored, _ := s.store.Order(id)
	s.Require().NotNil(stored.CouponID)
	s.Equal(int64(1), *stored.CouponID)

	code, _ := s.store.UsedYn(1, 1)
	s.Equal("Y", code)
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_CouponSingleUse() {
	_, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(200000, order.AppliedCoupon{ID: 1}, 1))
	s.Require().NoError(err)

	_, err = s.commands.RegisterOrder(context.Background(), s.memberA, s.input(180400, order.AppliedCoupon{ID: 1}, 2))
	s.True(errors.Is(err, errs.ErrNotFoundCoupon))
	s.Equal(1, s.store.OrderCount())
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_CouponErrors() {
	tests := []struct {
		name     string
		memberID int64
		couponID int64
	}{
		{name: "already used", memberID: 1, couponID: 2},
		{name: "not owned", memberID: 2, couponID: 1},
		{name: "unknown coupon", memberID: 1, couponID: 99},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			m := s.memberA
			ids := []int64{1}
			total := int64(200000)
			if tt.memberID == 2 {
				m = s.memberB
				ids = []int64{3}
				total = 9000
			}

			_, err := s.commands.RegisterOrder(context.Background(), m, s.input(total, order.AppliedCoupon{ID: tt.couponID}, ids...))

			s.True(errors.Is(err, errs.ErrNotFoundCoupon), "got %v", err)
			s.Equal(0, s.store.OrderCount())
		})
	}
}

func (s *OrderCommandsTestSuite) TestRegisterOrder_CouponRowWithoutCouponEntity() {
	s.store.GrantCoupon(1, 42, "N")

	_, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(200000, order.AppliedCoupon{ID: 42}, 1))

	s.True(errors.Is(err, errs.ErrNotFoundCoupon))
	code, _ := s.store.UsedYn(1, 42)
	s.Equal("N", code)
}

func (s *OrderCommandsTestSuite) TestDeleteOrder() {
	s.store.AddOrder(shared.OrderSnapshot{ID: 4, MemberID: 2, DeliveryFee: decimal.NewFromInt(3000), OrderedAt: orderedAt})

	s.Run("other member's order", func() {
		err := s.commands.DeleteOrder(context.Background(), s.memberA, 4)

		s.True(errors.Is(err, errs.ErrCanNotDeleteNotMyOrder))
		_, ok := s.store.Order(4)
		s.True(ok)
	})

	s.Run("missing order", func() {
		err := s.commands.DeleteOrder(context.Background(), s.memberA, 404)
		s.True(errors.Is(err, errs.ErrNotFoundOrder))
	})

	s.Run("owner deletes", func() {
		err := s.commands.DeleteOrder(context.Background(), s.memberB, 4)
		s.Require().NoError(err)

		_, ok := s.store.Order(4)
		s.False(ok)
	})
}

func (s *OrderCommandsTestSuite) TestDeleteOrder_RemovesItemsKeepsCouponUsed() {
	id, err := s.commands.RegisterOrder(context.Background(), s.memberA, s.input(380400, order.AppliedCoupon{ID: 1}, 1, 2))
	s.Require().NoError(err)

	s.Require().NoError(s.commands.DeleteOrder(context.Background(), s.memberA, id))

	s.Empty(s.store.OrderItems(id))
	code, _ := s.store.UsedYn(1, 1)
	s.Equal("Y", code)
}

func TestOrderItemProjection_KeepsRequestOrder(t *testing.T) {
	store := memstore.New()
	m := builder.NewMemberBuilder().BuildDomain()
	store.AddMember(m)
	store.AddCartItem(builder.NewCartItemBuilder().WithID(1).WithName("first").WithPrice(100).WithQuantity(2).BuildSnapshot())
	store.AddCartItem(builder.NewCartItemBuilder().WithID(2).WithName("second").WithPrice(50).BuildSnapshot())
	store.AddOrder(shared.OrderSnapshot{ID: 10, MemberID: 1})

	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		items, err := NewOrderItemProjection().Project(ctx, tx, 10, []int64{2, 1}, m)
		require.NoError(t, err)

		require.Equal(t, 2, items.Len())
		assert.Equal(t, "second", items.Items()[0].Name())
		assert.Equal(t, "first", items.Items()[1].Name())
		assert.True(t, items.CalculateAllItemPrice().Amount().Equal(decimal.NewFromInt(250)))
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, store.OrderItems(10), 2)
}
