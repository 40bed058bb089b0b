package readstore

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

type CartItemReadQueries interface {
	FindCartItemsByIDsAndMember(ctx context.Context, db pgq.DBTX, ids []int64, memberID int64) ([]pgq.CartItemRow, error)
}

type CartItemReadStore struct {
	queries CartItemReadQueries
	db      pgq.DBTX
}

func NewCartItemReadStore(queries CartItemReadQueries, db pgq.DBTX) *CartItemReadStore {
	return &CartItemReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByIDsAndMember drops ids that are unknown or owned by another member.
func (r *CartItemReadStore) FindByIDsAndMember(ctx context.Context, ids []int64, memberID int64) ([]shared.CartItemSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.queries.FindCartItemsByIDsAndMember(ctx, r.db, ids, memberID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cart items", err)
	}

	items := make([]shared.CartItemSnapshot, len(rows))
	for i, row := range rows {
		items[i] = shared.CartItemSnapshot{
			ID:       row.ID,
			MemberID: row.MemberID,
			Name:     row.Name,
			Price:    row.Price,
			ImageURL: row.ImageUrl,
			Quantity: row.Quantity,
		}
	}
	return items, nil
}
