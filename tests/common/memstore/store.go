//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Each Within call works on a
// copy of the committed state and only publishes it when fn returns nil, so tests
// can assert rollback behaviour without a database.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type memberCouponKey struct {
	memberID int64
	couponID int64
}

// OrderItemRow is a persisted order line as seen by tests.
type OrderItemRow struct {
	ID       int64
	OrderID  int64
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Quantity int32
}

type state struct {
	members       map[int64]*member.Member
	coupons       map[int64]*coupon.Coupon
	cartItems     map[int64]shared.CartItemSnapshot
	orders        map[int64]shared.OrderSnapshot
	orderItems    map[int64]OrderItemRow
	memberCoupons map[memberCouponKey]string

	nextOrderID     int64
	nextOrderItemID int64
}

func (s *state) clone() *state {
	return &state{
		members:         maps.Clone(s.members),
		coupons:         maps.Clone(s.coupons),
		cartItems:       maps.Clone(s.cartItems),
		orders:          maps.Clone(s.orders),
		orderItems:      maps.Clone(s.orderItems),
		memberCoupons:   maps.Clone(s.memberCoupons),
		nextOrderID:     s.nextOrderID,
		nextOrderItemID: s.nextOrderItemID,
	}
}

type Store struct {
	mu        sync.Mutex
	committed *state

	// Commits counts successful Within calls, Rollbacks the failed ones.
	Commits   int
	Rollbacks int
}

func New() *Store {
	return &Store{
		committed: &state{
			members:         map[int64]*member.Member{},
			coupons:         map[int64]*coupon.Coupon{},
			cartItems:       map[int64]shared.CartItemSnapshot{},
			orders:          map[int64]shared.OrderSnapshot{},
			orderItems:      map[int64]OrderItemRow{},
			memberCoupons:   map[memberCouponKey]string{},
			nextOrderID:     1,
			nextOrderItemID: 1,
		},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.committed.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		s.Rollbacks++
		return err
	}
	s.committed = work
	s.Commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &reads{st: s.committed.clone()}
}

// Seeding

func (s *Store) AddMember(m *member.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed.members[m.ID()] = m
}

func (s *Store) AddCoupon(c *coupon.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed.coupons[c.ID()] = c
}

func (s *Store) AddCartItem(ci shared.CartItemSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed.cartItems[ci.ID] = ci
}

// GrantCoupon gives the coupon to the member with the persisted used code ("N" or "Y").
func (s *Store) GrantCoupon(memberID, couponID int64, usedYn string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed.memberCoupons[memberCouponKey{memberID, couponID}] = usedYn
}

func (s *Store) AddOrder(o shared.OrderSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed.orders[o.ID] = o
	if o.ID >= s.committed.nextOrderID {
		s.committed.nextOrderID = o.ID + 1
	}
}

// Inspection

func (s *Store) Order(id int64) (shared.OrderSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.committed.orders[id]
	return o, ok
}

func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.committed.orders)
}

// OrderItems returns the lines of orderID sorted by id.
func (s *Store) OrderItems(orderID int64) []OrderItemRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []OrderItemRow
	for _, it := range s.committed.orderItems {
		if it.OrderID == orderID {
			rows = append(rows, it)
		}
	}
	slices.SortFunc(rows, func(a, b OrderItemRow) int { return int(a.ID - b.ID) })
	return rows
}

func (s *Store) OrderItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.committed.orderItems)
}

// UsedYn returns the persisted used code and whether the association exists.
func (s *Store) UsedYn(memberID, couponID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.committed.memberCoupons[memberCouponKey{memberID, couponID}]
	return code, ok
}
