package readstore

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/pgconv"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

type MemberCouponReadQueries interface {
	FindMemberCoupon(ctx context.Context, db pgq.DBTX, arg pgq.FindMemberCouponParams) (pgq.MemberCoupons, error)
	ListMemberCouponsByMember(ctx context.Context, db pgq.DBTX, memberID int64, usedYn *string) ([]pgq.MemberCoupons, error)
}

type MemberCouponReadStore struct {
	queries MemberCouponReadQueries
	db      pgq.DBTX
}

func NewMemberCouponReadStore(queries MemberCouponReadQueries, db pgq.DBTX) *MemberCouponReadStore {
	return &MemberCouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberCouponReadStore) FindByIDs(ctx context.Context, memberID, couponID int64) (*shared.MemberCouponSnapshot, error) {
	row, err := r.queries.FindMemberCoupon(ctx, r.db, pgq.FindMemberCouponParams{
		MemberID: memberID,
		CouponID: couponID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member coupon", err)
	}
	return toMemberCouponSnapshot(row), nil
}

func (r *MemberCouponReadStore) ListByMember(ctx context.Context, memberID int64, usedYn *string) ([]shared.MemberCouponSnapshot, error) {
	rows, err := r.queries.ListMemberCouponsByMember(ctx, r.db, memberID, usedYn)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list member coupons", err)
	}

	snapshots := make([]shared.MemberCouponSnapshot, len(rows))
	for i, row := range rows {
		snapshots[i] = *toMemberCouponSnapshot(row)
	}
	return snapshots, nil
}

func toMemberCouponSnapshot(row pgq.MemberCoupons) *shared.MemberCouponSnapshot {
	return &shared.MemberCouponSnapshot{
		MemberID: row.MemberID,
		CouponID: row.CouponID,
		UsedYn:   row.UsedYn,
	}
}
