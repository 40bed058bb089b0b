package pgq

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

func (q *Queries) FindMemberByID(ctx context.Context, db DBTX, id int64) (Members, error) {
	b := q.sb.Select("id", "email", "nickname").From("members").Where(sq.Eq{"id": id})

	var m Members
	err := q.queryRow(ctx, db, b, &m.ID, &m.Email, &m.Nickname)
	return m, err
}
