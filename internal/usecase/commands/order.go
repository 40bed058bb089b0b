package commands

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/money"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/clock"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order_mock.go -package=commandsmock

type RegisterOrderInput struct {
	CartItemIDs []int64
	TotalPrice  decimal.Decimal
	DeliveryFee decimal.Decimal
	Coupon      order.CouponChoice
}

type OrderCommands interface {
	RegisterOrder(ctx context.Context, m *member.Member, input RegisterOrderInput) (int64, error)
	DeleteOrder(ctx context.Context, m *member.Member, orderID int64) error
}

type orderUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	projection OrderItemProjector
	ledger     CouponLedger
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock, projection OrderItemProjector, ledger CouponLedger) OrderCommands {
	return &orderUseCaseImpl{
		uow:        uow,
		clock:      clk,
		projection: projection,
		ledger:     ledger,
	}
}

// RegisterOrder persists the order, its lines and the coupon transition in one transaction.
// The order row is written first to obtain an id for the lines; any later failure rolls it back.
func (uc *orderUseCaseImpl) RegisterOrder(ctx context.Context, m *member.Member, input RegisterOrderInput) (int64, error) {
	if len(input.CartItemIDs) == 0 {
		return 0, errs.Wrap(errs.ErrDomainValidation, "at least one cart item is required")
	}

	draft, err := order.NewOrder(m.ID(), money.New(input.DeliveryFee), input.Coupon, uc.clock.Now())
	if err != nil {
		return 0, errs.Wrap(errs.ErrDomainValidation, err.Error())
	}

	var orderID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Orders().Create(ctx, tx.DB(), draft)
		if derr != nil {
			return derr
		}
		placed := draft.WithID(id)

		orderedItems, derr := uc.projection.Project(ctx, tx, placed.ID(), input.CartItemIDs, m)
		if derr != nil {
			return derr
		}

		totalPrice := orderedItems.CalculateAllItemPrice()
		if totalPrice.IsNotSame(money.New(input.TotalPrice)) {
			return errs.Wrapf(errs.ErrNotSameTotalPrice, "declared %s, items sum to %s", input.TotalPrice, totalPrice)
		}

		if applied, ok := placed.Coupon().(order.AppliedCoupon); ok {
			if derr = uc.useCoupon(ctx, tx, m, applied.ID); derr != nil {
				return derr
			}
		}

		orderID = placed.ID()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func (uc *orderUseCaseImpl) useCoupon(ctx context.Context, tx shared.Tx, m *member.Member, couponID int64) error {
	mc, err := uc.ledger.FindUsable(ctx, tx, m.ID(), couponID)
	if err != nil {
		return err
	}
	if err := mc.Use(); err != nil {
		return errs.Wrapf(errs.ErrNotFoundCoupon, "coupon %d: %v", couponID, err)
	}
	return uc.ledger.MarkUsed(ctx, tx, mc.MemberID(), mc.CouponID())
}

// DeleteOrder removes an order owned by m; its lines go with it. The coupon stays USED.
func (uc *orderUseCaseImpl) DeleteOrder(ctx context.Context, m *member.Member, orderID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().OrderByID(ctx, orderID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrNotFoundOrder, "order %d", orderID)
			}
			return derr
		}

		stored := order.ReconstructOrder(snap.ID, snap.MemberID, money.New(snap.DeliveryFee), order.CouponFromID(snap.CouponID), snap.OrderedAt)
		if stored.IsNotMyOrder(m) {
			return errs.Wrapf(errs.ErrCanNotDeleteNotMyOrder, "order %d belongs to member %d", orderID, stored.MemberID())
		}

		if derr = tx.Orders().Delete(ctx, tx.DB(), stored.ID()); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrNotFoundOrder, "order %d", orderID)
			}
			return derr
		}
		return nil
	})
}
