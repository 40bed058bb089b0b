package readstore

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/pgconv"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/queries"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

type OrderReadQueries interface {
	FindOrderByID(ctx context.Context, db pgq.DBTX, id int64) (pgq.Orders, error)
	ListOrdersByMember(ctx context.Context, db pgq.DBTX, memberID int64) ([]pgq.Orders, error)
	ListOrderItemsByOrderIDs(ctx context.Context, db pgq.DBTX, orderIDs []int64) ([]pgq.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgq.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db pgq.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns the bare order row used by the command side.
func (r *OrderReadStore) FindByID(ctx context.Context, id int64) (*shared.OrderSnapshot, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.OrderSnapshot{
		ID:          row.ID,
		MemberID:    row.MemberID,
		DeliveryFee: row.DeliveryFee,
		CouponID:    pgconv.Int8PtrFromPgtype(row.CouponID),
		OrderedAt:   pgconv.TimeFromPgtype(row.OrderedAt),
	}, nil
}

func (r *OrderReadStore) FindDetailByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := r.withItems(ctx, []pgq.Orders{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *OrderReadStore) ListByMember(ctx context.Context, memberID int64) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByMember(ctx, r.db, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by member", err)
	}
	return r.withItems(ctx, rows)
}

func (r *OrderReadStore) findRow(ctx context.Context, id int64) (pgq.Orders, error) {
	row, err := r.queries.FindOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pgq.Orders{}, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return pgq.Orders{}, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return row, nil
}

// withItems loads the lines of every order in one query and keeps the input order.
func (r *OrderReadStore) withItems(ctx context.Context, rows []pgq.Orders) ([]*queries.OrderView, error) {
	views := make([]*queries.OrderView, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	byID := make(map[int64]*queries.OrderView, len(rows))
	ids := make([]int64, len(rows))
	for i, row := range rows {
		v := toOrderView(row)
		views[i] = v
		byID[row.ID] = v
		ids[i] = row.ID
	}

	items, err := r.queries.ListOrderItemsByOrderIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	for _, it := range items {
		v, ok := byID[it.OrderID]
		if !ok {
			continue
		}
		v.Items = append(v.Items, queries.OrderItemView{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			ImageURL: it.ImageUrl,
			Quantity: it.Quantity,
		})
	}
	return views, nil
}

func toOrderView(row pgq.Orders) *queries.OrderView {
	return &queries.OrderView{
		ID:          row.ID,
		MemberID:    row.MemberID,
		DeliveryFee: row.DeliveryFee,
		CouponID:    pgconv.Int8PtrFromPgtype(row.CouponID),
		OrderedAt:   pgconv.TimeFromPgtype(row.OrderedAt),
		Items:       []queries.OrderItemView{},
	}
}
