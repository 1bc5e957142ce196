package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// RepoExtension is the executor a repository method runs against. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so a service can pass its open
// transaction to group several statements into one atomic unit; passing
// nil makes the method fall back to the repository's own pool.
type RepoExtension interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
