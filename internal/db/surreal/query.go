package surreal

import (
	"context"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/jacobhenn/unistellar/internal/db"
)

// Query runs a single SurrealQL statement and returns its rows decoded as T.
// Untrusted values go in vars, never in sql; the one sanctioned exception is
// filter text built by ContainsAny from a validated Token.
func Query[T any](ctx context.Context, s *Store, sql string, vars map[string]any) ([]T, error) {
	res, err := surrealdb.Query[[]T](ctx, s.conn, sql, vars)
	if err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: err}
	}
	if res == nil || len(*res) == 0 {
		return nil, nil
	}
	return (*res)[0].Result, nil
}

// QueryOne runs a statement expected to yield at most one row. A miss is
// (nil, nil), not an error; callers decide whether absence matters.
func QueryOne[T any](ctx context.Context, s *Store, sql string, vars map[string]any) (*T, error) {
	rows, err := Query[T](ctx, s, sql, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Exec runs one or more statements for their side effects, discarding rows.
func Exec(ctx context.Context, s *Store, sql string, vars map[string]any) error {
	if _, err := surrealdb.Query[any](ctx, s.conn, sql, vars); err != nil {
		return &db.Error{Op: db.OpQuery, Err: err}
	}
	return nil
}
