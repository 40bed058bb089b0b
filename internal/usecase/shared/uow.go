package shared

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/membercoupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/order"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/orderitem"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic; any returned error rolls back
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	MemberCoupons() MemberCouponRepository
	Reads() CommandReads
	DB() pgq.DBTX
}

type CommandReads interface {
	MemberLookup
	CouponLookup
	MemberCouponLookup
	// CartItemsByIDs returns only the items owned by memberID.
	CartItemsByIDs(ctx context.Context, ids []int64, memberID int64) ([]CartItemSnapshot, error)
	OrderByID(ctx context.Context, id int64) (*OrderSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx pgq.DBTX, o *order.Order) (int64, error)
	Delete(ctx context.Context, tx pgq.DBTX, orderID int64) error
}

type OrderItemRepository interface {
	CreateBatch(ctx context.Context, tx pgq.DBTX, items []*orderitem.OrderItem) error
}

type MemberCouponRepository interface {
	// FindByMemberAndCoupon locks the association row for the rest of the transaction.
	FindByMemberAndCoupon(ctx context.Context, tx pgq.DBTX, memberID, couponID int64) (*MemberCouponSnapshot, error)
	// UpdateUsedStatus moves the row from -> to; a row not in state from is reported as not found.
	UpdateUsedStatus(ctx context.Context, tx pgq.DBTX, memberID, couponID int64, from, to membercoupon.UsedStatus) error
}

type MemberLookup interface {
	MemberByID(ctx context.Context, id int64) (*member.Member, error)
}

type CouponLookup interface {
	CouponByID(ctx context.Context, id int64) (*coupon.Coupon, error)
}

type MemberCouponLookup interface {
	MemberCouponByIDs(ctx context.Context, memberID, couponID int64) (*MemberCouponSnapshot, error)
}
