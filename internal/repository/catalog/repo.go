// Package catalog reads universities, majors, courses, and assignments.
package catalog

import (
	"context"
	"fmt"

	"github.com/jacobhenn/unistellar/internal/db/surreal"
	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// Repo implements catalog reads over SurrealDB.
type Repo struct {
	store *surreal.Store
}

// New creates a catalog repository.
func New(store *surreal.Store) *Repo {
	return &Repo{store: store}
}

// University fetches one university by id.
func (r *Repo) University(ctx context.Context, uid id.ID) (domain.University, error) {
	row, err := fetch[namedRow](ctx, r.store, "university", uid)
	if err != nil {
		return domain.University{}, err
	}
	rid, err := row.recordID()
	if err != nil {
		return domain.University{}, err
	}
	return domain.University{ID: rid, Name: row.Name}, nil
}

// Major fetches one major by id.
func (r *Repo) Major(ctx context.Context, mid id.ID) (domain.Major, error) {
	row, err := fetch[namedRow](ctx, r.store, "major", mid)
	if err != nil {
		return domain.Major{}, err
	}
	rid, err := row.recordID()
	if err != nil {
		return domain.Major{}, err
	}
	return domain.Major{ID: rid, Name: row.Name}, nil
}

// Course fetches one course by id.
func (r *Repo) Course(ctx context.Context, cid id.ID) (domain.Course, error) {
	row, err := fetch[courseRow](ctx, r.store, "course", cid)
	if err != nil {
		return domain.Course{}, err
	}
	return row.toDomain()
}

// Assignment fetches one assignment by id.
func (r *Repo) Assignment(ctx context.Context, aid id.ID) (domain.Assignment, error) {
	row, err := fetch[assignmentRow](ctx, r.store, "assignment", aid)
	if err != nil {
		return domain.Assignment{}, err
	}
	return row.toDomain()
}

// SearchUniversities returns universities whose name contains any query word.
func (r *Repo) SearchUniversities(ctx context.Context, query token.Token) ([]domain.University, error) {
	rows, err := search[namedRow](ctx, r.store, "university", []string{"name"}, query)
	if err != nil {
		return nil, err
	}
	out := make([]domain.University, len(rows))
	for i, row := range rows {
		rid, err := row.recordID()
		if err != nil {
			return nil, err
		}
		out[i] = domain.University{ID: rid, Name: row.Name}
	}
	return out, nil
}

// SearchMajors returns majors whose name contains any query word.
func (r *Repo) SearchMajors(ctx context.Context, query token.Token) ([]domain.Major, error) {
	rows, err := search[namedRow](ctx, r.store, "major", []string{"name"}, query)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Major, len(rows))
	for i, row := range rows {
		rid, err := row.recordID()
		if err != nil {
			return nil, err
		}
		out[i] = domain.Major{ID: rid, Name: row.Name}
	}
	return out, nil
}

// SearchCourses returns courses whose name or code contains any query word.
func (r *Repo) SearchCourses(ctx context.Context, query token.Token) ([]domain.Course, error) {
	rows, err := search[courseRow](ctx, r.store, "course", []string{"name", "code"}, query)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Course, len(rows))
	for i, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// SearchAssignments returns assignments whose name contains any query word.
func (r *Repo) SearchAssignments(ctx context.Context, query token.Token) ([]domain.Assignment, error) {
	rows, err := search[assignmentRow](ctx, r.store, "assignment", []string{"name"}, query)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Assignment, len(rows))
	for i, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// fetch selects one record by id, mapping a miss to domain.ErrNotFound.
func fetch[T any](ctx context.Context, store *surreal.Store, table string, rid id.ID) (T, error) {
	var zero T
	row, err := surreal.QueryOne[T](ctx, store,
		"SELECT * FROM type::thing($table, $id)",
		map[string]any{"table": table, "id": rid.String()},
	)
	if err != nil {
		return zero, fmt.Errorf("%w: select %s: %w", domain.ErrSourceUnavailable, table, err)
	}
	if row == nil {
		return zero, domain.ErrNotFound
	}
	return *row, nil
}

// search runs the coarse candidate query for one table, in store order.
func search[T any](ctx context.Context, store *surreal.Store, table string, fields []string, query token.Token) ([]T, error) {
	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s", table, surreal.ContainsAny(fields, query))
	rows, err := surreal.Query[T](ctx, store, sql, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: search %s: %w", domain.ErrSourceUnavailable, table, err)
	}
	return rows, nil
}
