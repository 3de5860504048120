// Package activity reads users' activity logs and aggregates.
package activity

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/jacobhenn/unistellar/internal/db/surreal"
	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
)

// Repo implements activity reads over SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates an activity repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// activityRow is the store shape of an activity record.
type activityRow struct {
	ID           models.RecordID     `json:"id"`
	User         models.RecordID     `json:"user"`
	Assignment   models.RecordID     `json:"assignment"`
	Kind         domain.ActivityKind `json:"kind"`
	DurationSecs int64               `json:"duration_secs,omitempty"`
}

func (r activityRow) toDomain() (domain.Activity, error) {
	aid, err := id.FromRecord(r.ID.Table, r.ID.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity id: %w", err)
	}
	uid, err := id.FromRecord(r.User.Table, r.User.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity %s user id: %w", aid, err)
	}
	asgn, err := id.FromRecord(r.Assignment.Table, r.Assignment.ID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity %s assignment id: %w", aid, err)
	}
	return domain.Activity{
		ID:           aid,
		User:         uid,
		Assignment:   asgn,
		Kind:         r.Kind,
		DurationSecs: r.DurationSecs,
	}, nil
}

// ForUser lists a user's activity log in store order, oldest first (record
// ids are ULIDs, so store order is creation order).
func (r *Repo) ForUser(ctx context.Context, userID id.ID) ([]domain.Activity, error) {
	rows, err := surreal.Query[activityRow](ctx, r.store,
		"SELECT * FROM activity WHERE user == type::thing('user', $id)",
		map[string]any{"id": userID.String()},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: select activities: %w", domain.ErrSourceUnavailable, err)
	}

	out := make([]domain.Activity, len(rows))
	for i, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// StatsForUser aggregates a user's activity log.
func (r *Repo) StatsForUser(ctx context.Context, userID id.ID) (domain.Stats, error) {
	vars := map[string]any{"id": userID.String()}

	completed, err := surreal.QueryOne[countRow](ctx, r.store,
		"SELECT count() FROM activity WHERE user == type::thing('user', $id) AND kind == 'Completed' GROUP ALL",
		vars,
	)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("%w: count completed: %w", domain.ErrSourceUnavailable, err)
	}

	durations, err := surreal.Query[int64](ctx, r.store,
		"SELECT VALUE duration_secs FROM activity WHERE user == type::thing('user', $id) AND kind == 'WorkedOn'",
		vars,
	)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("%w: sum worked: %w", domain.ErrSourceUnavailable, err)
	}

	stats := domain.Stats{}
	if completed != nil {
		stats.AssignmentsCompleted = completed.Count
	}
	for _, d := range durations {
		stats.SecsWorked += d
	}
	return stats, nil
}

type countRow struct {
	Count int `json:"count"`
}
