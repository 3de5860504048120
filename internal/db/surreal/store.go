// Package surreal manages the WebSocket connection to SurrealDB and exposes
// typed query helpers over it.
package surreal

import (
	"context"
	"fmt"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/jacobhenn/unistellar/internal/db"
)

// Config holds connection parameters for a SurrealDB store.
type Config struct {
	URL       string // e.g. ws://localhost:8000/rpc
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Store owns one connection to SurrealDB. The underlying client multiplexes
// concurrent requests over the socket, so a single Store is shared by every
// request handler; nothing here holds per-request state.
type Store struct {
	conn *surrealdb.DB
}

// Connect dials SurrealDB, signs in, and selects the namespace and database.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("url is required")
	}
	if cfg.Namespace == "" || cfg.Database == "" {
		return nil, fmt.Errorf("namespace and database are required")
	}

	conn, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, &db.Error{Op: db.OpConnect, Err: err}
	}

	if _, err := conn.SignIn(ctx, surrealdb.Auth{
		Username: cfg.Username,
		Password: cfg.Password,
	}); err != nil {
		_ = conn.Close(ctx)
		return nil, &db.Error{Op: db.OpSignIn, Err: err}
	}

	if err := conn.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = conn.Close(ctx)
		return nil, &db.Error{Op: db.OpUse, Err: err}
	}

	return &Store{conn: conn}, nil
}

// Ping checks connectivity with a trivial statement.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := surrealdb.Query[int](ctx, s.conn, "RETURN 1", nil); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// WaitForReady polls Ping until the store responds or the timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Close shuts down the connection.
func (s *Store) Close(ctx context.Context) error {
	if err := s.conn.Close(ctx); err != nil {
		return &db.Error{Op: db.OpClose, Err: err}
	}
	return nil
}
