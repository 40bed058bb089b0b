// Package pgq holds the hand-written SQL layer. Statements are built with squirrel
// and executed against either the pool or an open transaction through DBTX.
package pgq

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	sb sq.StatementBuilderType
}

func New() *Queries {
	return &Queries{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (q *Queries) queryRow(ctx context.Context, db DBTX, b sq.Sqlizer, dest ...any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return db.QueryRow(ctx, query, args...).Scan(dest...)
}

func (q *Queries) exec(ctx context.Context, db DBTX, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) query(ctx context.Context, db DBTX, b sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return db.Query(ctx, query, args...)
}
