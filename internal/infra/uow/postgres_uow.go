package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/coupon"
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/readstore"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/repository"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgq.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgq.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db pgq.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgq.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	orderRepo        shared.OrderRepository
	orderItemRepo    shared.OrderItemRepository
	memberCouponRepo shared.MemberCouponRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() pgq.DBTX {
	return t.dbtx
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.uow.q)
	}
	return t.orderRepo
}

func (t *pgTx) OrderItems() shared.OrderItemRepository {
	if t.orderItemRepo == nil {
		t.orderItemRepo = repository.NewOrderItemRepository(t.uow.q)
	}
	return t.orderItemRepo
}

func (t *pgTx) MemberCoupons() shared.MemberCouponRepository {
	if t.memberCouponRepo == nil {
		t.memberCouponRepo = repository.NewMemberCouponRepository(t.uow.q)
	}
	return t.memberCouponRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	memberStore       *readstore.MemberReadStore
	couponStore       *readstore.CouponReadStore
	memberCouponStore *readstore.MemberCouponReadStore
	cartItemStore     *readstore.CartItemReadStore
	orderStore        *readstore.OrderReadStore
}

func newCommandReads(q *pgq.Queries, dbtx pgq.DBTX) *commandReads {
	return &commandReads{
		memberStore:       readstore.NewMemberReadStore(q, dbtx),
		couponStore:       readstore.NewCouponReadStore(q, dbtx),
		memberCouponStore: readstore.NewMemberCouponReadStore(q, dbtx),
		cartItemStore:     readstore.NewCartItemReadStore(q, dbtx),
		orderStore:        readstore.NewOrderReadStore(q, dbtx),
	}
}

func (r *commandReads) MemberByID(ctx context.Context, id int64) (*member.Member, error) {
	return r.memberStore.FindByID(ctx, id)
}

func (r *commandReads) CouponByID(ctx context.Context, id int64) (*coupon.Coupon, error) {
	return r.couponStore.FindByID(ctx, id)
}

func (r *commandReads) MemberCouponByIDs(ctx context.Context, memberID, couponID int64) (*shared.MemberCouponSnapshot, error) {
	return r.memberCouponStore.FindByIDs(ctx, memberID, couponID)
}

func (r *commandReads) CartItemsByIDs(ctx context.Context, ids []int64, memberID int64) ([]shared.CartItemSnapshot, error) {
	return r.cartItemStore.FindByIDsAndMember(ctx, ids, memberID)
}

func (r *commandReads) OrderByID(ctx context.Context, id int64) (*shared.OrderSnapshot, error) {
	return r.orderStore.FindByID(ctx, id)
}
