package profile

import (
	"context"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
)

// UserReader reads users and follow edges.
type UserReader interface {
	User(ctx context.Context, userID id.ID) (domain.User, error)
	Followers(ctx context.Context, userID id.ID) ([]id.ID, error)
	Following(ctx context.Context, userID id.ID) ([]id.ID, error)
	Students(ctx context.Context, universityID id.ID) ([]id.ID, error)
}

// CatalogReader reads catalog records.
type CatalogReader interface {
	University(ctx context.Context, uid id.ID) (domain.University, error)
	Major(ctx context.Context, mid id.ID) (domain.Major, error)
	Course(ctx context.Context, cid id.ID) (domain.Course, error)
	Assignment(ctx context.Context, aid id.ID) (domain.Assignment, error)
}

// ActivityReader reads activity logs.
type ActivityReader interface {
	ForUser(ctx context.Context, userID id.ID) ([]domain.Activity, error)
	StatsForUser(ctx context.Context, userID id.ID) (domain.Stats, error)
}
