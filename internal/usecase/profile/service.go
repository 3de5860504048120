// Package profile serves record lookups: users, catalog entities, follow
// lists, and activity logs.
package profile

import (
	"context"
	"fmt"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
)

// Service handles non-search reads.
type Service struct {
	users      UserReader
	catalog    CatalogReader
	activities ActivityReader
}

// New creates a profile service.
func New(users UserReader, catalog CatalogReader, activities ActivityReader) *Service {
	return &Service{users: users, catalog: catalog, activities: activities}
}

// User fetches one user.
func (s *Service) User(ctx context.Context, userID id.ID) (domain.User, error) {
	u, err := s.users.User(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Followers lists ids of users following the given user.
func (s *Service) Followers(ctx context.Context, userID id.ID) ([]id.ID, error) {
	ids, err := s.users.Followers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get followers: %w", err)
	}
	return ids, nil
}

// Following lists ids of users the given user follows.
func (s *Service) Following(ctx context.Context, userID id.ID) ([]id.ID, error) {
	ids, err := s.users.Following(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get following: %w", err)
	}
	return ids, nil
}

// Students lists ids of users attending a university. The university must
// exist; a miss is the caller's 404.
func (s *Service) Students(ctx context.Context, universityID id.ID) ([]id.ID, error) {
	if _, err := s.catalog.University(ctx, universityID); err != nil {
		return nil, fmt.Errorf("get university: %w", err)
	}
	ids, err := s.users.Students(ctx, universityID)
	if err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}
	return ids, nil
}

// University fetches one university.
func (s *Service) University(ctx context.Context, uid id.ID) (domain.University, error) {
	u, err := s.catalog.University(ctx, uid)
	if err != nil {
		return domain.University{}, fmt.Errorf("get university: %w", err)
	}
	return u, nil
}

// Major fetches one major.
func (s *Service) Major(ctx context.Context, mid id.ID) (domain.Major, error) {
	m, err := s.catalog.Major(ctx, mid)
	if err != nil {
		return domain.Major{}, fmt.Errorf("get major: %w", err)
	}
	return m, nil
}

// Course fetches one course.
func (s *Service) Course(ctx context.Context, cid id.ID) (domain.Course, error) {
	c, err := s.catalog.Course(ctx, cid)
	if err != nil {
		return domain.Course{}, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

// Assignment fetches one assignment.
func (s *Service) Assignment(ctx context.Context, aid id.ID) (domain.Assignment, error) {
	a, err := s.catalog.Assignment(ctx, aid)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

// Activities lists a user's activity log.
func (s *Service) Activities(ctx context.Context, userID id.ID) ([]domain.Activity, error) {
	if _, err := s.users.User(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	acts, err := s.activities.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get activities: %w", err)
	}
	return acts, nil
}

// Stats aggregates a user's activity log.
func (s *Service) Stats(ctx context.Context, userID id.ID) (domain.Stats, error) {
	if _, err := s.users.User(ctx, userID); err != nil {
		return domain.Stats{}, fmt.Errorf("get user: %w", err)
	}
	stats, err := s.activities.StatsForUser(ctx, userID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}
