package readstore

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/pgconv"
)

type MemberReadQueries interface {
	FindMemberByID(ctx context.Context, db pgq.DBTX, id int64) (pgq.Members, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      pgq.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db pgq.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberReadStore) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	row, err := r.queries.FindMemberByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by ID", err)
	}
	return member.ReconstructMember(row.ID, row.Email, row.Nickname), nil
}
