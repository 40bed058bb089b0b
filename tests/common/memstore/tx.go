//go:build unit || e2e

package memstore

import (
	"context"
	"errors"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/orderitem"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

var errMissing = errors.New("no rows in memstore")

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errMissing, infra.KindNotFound)
}

type memTx struct {
	st *state
}

func (t *memTx) Orders() shared.OrderRepository               { return orderRepo{st: t.st} }
func (t *memTx) OrderItems() shared.OrderItemRepository       { return orderItemRepo{st: t.st} }
func (t *memTx) MemberCoupons() shared.MemberCouponRepository { return memberCouponRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads                   { return &reads{st: t.st} }
func (t *memTx) DB() pgq.DBTX                                 { return nil }

type orderRepo struct{ st *state }

func (r orderRepo) Create(_ context.Context, _ pgq.DBTX, o *order.Order) (int64, error) {
	id := r.st.nextOrderID
	r.st.nextOrderID++
	r.st.orders[id] = shared.OrderSnapshot{
		ID:          id,
		MemberID:    o.MemberID(),
		DeliveryFee: o.DeliveryFee().Amount(),
		CouponID:    order.CouponID(o.Coupon()),
		OrderedAt:   o.OrderedAt(),
	}
	return id, nil
}

func (r orderRepo) Delete(_ context.Context, _ pgq.DBTX, orderID int64) error {
	if _, ok := r.st.orders[orderID]; !ok {
		return notFound("order not found")
	}
	delete(r.st.orders, orderID)
	for id, it := range r.st.orderItems {
		if it.OrderID == orderID {
			delete(r.st.orderItems, id)
		}
	}
	return nil
}

type orderItemRepo struct{ st *state }

func (r orderItemRepo) CreateBatch(_ context.Context, _ pgq.DBTX, items []*orderitem.OrderItem) error {
	for _, it := range items {
		if _, ok := r.st.orders[it.OrderID()]; !ok {
			return infra.WrapRepoErr("order item references missing order", errMissing, infra.KindForeignKeyViolated)
		}
		id := r.st.nextOrderItemID
		r.st.nextOrderItemID++
		r.st.orderItems[id] = OrderItemRow{
			ID:       id,
			OrderID:  it.OrderID(),
			Name:     it.Name(),
			Price:    it.UnitPrice(),
			ImageURL: it.ImageURL(),
			Quantity: it.Quantity(),
		}
	}
	return nil
}

type memberCouponRepo struct{ st *state }

func (r memberCouponRepo) FindByMemberAndCoupon(_ context.Context, _ pgq.DBTX, memberID, couponID int64) (*shared.MemberCouponSnapshot, error) {
	code, ok := r.st.memberCoupons[memberCouponKey{memberID, couponID}]
	if !ok {
		return nil, notFound("member coupon not found")
	}
	return &shared.MemberCouponSnapshot{MemberID: memberID, CouponID: couponID, UsedYn: code}, nil
}

func (r memberCouponRepo) UpdateUsedStatus(_ context.Context, _ pgq.DBTX, memberID, couponID int64, from, to membercoupon.UsedStatus) error {
	key := memberCouponKey{memberID, couponID}
	if code, ok := r.st.memberCoupons[key]; !ok || code != from.Code() {
		return notFound("member coupon not found in expected state")
	}
	r.st.memberCoupons[key] = to.Code()
	return nil
}

type reads struct{ st *state }

func (r *reads) MemberByID(_ context.Context, id int64) (*member.Member, error) {
	m, ok := r.st.members[id]
	if !ok {
		return nil, notFound("member not found")
	}
	return m, nil
}

func (r *reads) CouponByID(_ context.Context, id int64) (*coupon.Coupon, error) {
	c, ok := r.st.coupons[id]
	if !ok {
		return nil, notFound("coupon not found")
	}
	return c, nil
}

func (r *reads) MemberCouponByIDs(ctx context.Context, memberID, couponID int64) (*shared.MemberCouponSnapshot, error) {
	return memberCouponRepo{st: r.st}.FindByMemberAndCoupon(ctx, nil, memberID, couponID)
}

func (r *reads) CartItemsByIDs(_ context.Context, ids []int64, memberID int64) ([]shared.CartItemSnapshot, error) {
	seen := map[int64]bool{}
	var items []shared.CartItemSnapshot
	for _, id := range ids {
		ci, ok := r.st.cartItems[id]
		if !ok || ci.MemberID != memberID || seen[id] {
			continue
		}
		seen[id] = true
		items = append(items, ci)
	}
	return items, nil
}

func (r *reads) OrderByID(_ context.Context, id int64) (*shared.OrderSnapshot, error) {
	o, ok := r.st.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	return &o, nil
}
