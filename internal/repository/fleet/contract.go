package fleet

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	ExecBuilder(ctx context.Context, builder sq.Sqlizer) (pgconn.CommandTag, error)
	QueryBuilder(ctx context.Context, builder sq.Sqlizer) (pgx.Rows, error)
	QueryRowBuilder(ctx context.Context, builder sq.Sqlizer) pgx.Row
}
