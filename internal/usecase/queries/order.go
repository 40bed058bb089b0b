package queries

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order_mock.go -package=queriesmock

type OrderReadStore interface {
	FindDetailByID(ctx context.Context, id int64) (*OrderView, error)
	ListByMember(ctx context.Context, memberID int64) ([]*OrderView, error)
}

type OrderQueries interface {
	ListByMember(ctx context.Context, m *member.Member) ([]*OrderView, error)
	// GetByID hides foreign orders behind the same not found error as missing ones.
	GetByID(ctx context.Context, m *member.Member, orderID int64) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ListByMember(ctx context.Context, m *member.Member) ([]*OrderView, error) {
	return q.store.ListByMember(ctx, m.ID())
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, m *member.Member, orderID int64) (*OrderView, error) {
	ov, err := q.store.FindDetailByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFoundOrder, "order %d", orderID)
		}
		return nil, err
	}
	if !m.IsMe(ov.MemberID) {
		return nil, errs.Wrapf(errs.ErrNotFoundOrder, "order %d", orderID)
	}
	return ov, nil
}
