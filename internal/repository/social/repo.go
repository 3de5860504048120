// Package social reads users and follow edges from the store.
package social

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/jacobhenn/unistellar/internal/db/surreal"
	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// userSearchFields are the user columns the search pre-filter inspects.
var userSearchFields = []string{"username", "name.first", "name.last"}

// Repo implements user reads over SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a social repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// User fetches one user by id.
func (r *Repo) User(ctx context.Context, userID id.ID) (domain.User, error) {
	row, err := surreal.QueryOne[userRow](ctx, r.store,
		"SELECT * FROM type::thing('user', $id)",
		map[string]any{"id": userID.String()},
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: select user: %w", domain.ErrSourceUnavailable, err)
	}
	if row == nil {
		return domain.User{}, domain.ErrNotFound
	}
	return row.toDomain()
}

// Followers lists ids of users who follow the given user, in store order.
func (r *Repo) Followers(ctx context.Context, userID id.ID) ([]id.ID, error) {
	return r.edgeIDs(ctx, "SELECT VALUE in FROM follows WHERE out == type::thing('user', $id)", userID)
}

// Following lists ids of users the given user follows, in store order.
func (r *Repo) Following(ctx context.Context, userID id.ID) ([]id.ID, error) {
	return r.edgeIDs(ctx, "SELECT VALUE out FROM follows WHERE in == type::thing('user', $id)", userID)
}

// Students lists ids of users attending the given university.
func (r *Repo) Students(ctx context.Context, universityID id.ID) ([]id.ID, error) {
	rows, err := surreal.Query[models.RecordID](ctx, r.store,
		"SELECT VALUE id FROM user WHERE university == type::thing('university', $id)",
		map[string]any{"id": universityID.String()},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: select students: %w", domain.ErrSourceUnavailable, err)
	}
	return idsFromRecords(rows)
}

// SearchUsers returns the coarse candidate set for a user search: every user
// whose username or name contains any query word, in store order. Ranking is
// the caller's job.
func (r *Repo) SearchUsers(ctx context.Context, query token.Token) ([]domain.User, error) {
	sql := "SELECT * FROM user WHERE " + surreal.ContainsAny(userSearchFields, query)

	rows, err := surreal.Query[userRow](ctx, r.store, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: search users: %w", domain.ErrSourceUnavailable, err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		users[i] = u
	}
	return users, nil
}

func (r *Repo) edgeIDs(ctx context.Context, sql string, userID id.ID) ([]id.ID, error) {
	rows, err := surreal.Query[models.RecordID](ctx, r.store, sql, map[string]any{"id": userID.String()})
	if err != nil {
		return nil, fmt.Errorf("%w: select follow edges: %w", domain.ErrSourceUnavailable, err)
	}
	return idsFromRecords(rows)
}
