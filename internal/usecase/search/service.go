// Package search orchestrates one search call: fetch candidates, score
// every searchable field, sort, return the full set reordered.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/token"
	"github.com/jacobhenn/unistellar/internal/metrics"
	"github.com/jacobhenn/unistellar/internal/rank"
)

// Service handles ranked entity search. The candidate fetch is the only
// blocking step; ranking is pure computation over the fetched rows, so a
// fetch failure aborts the call with no partial result.
type Service struct {
	users   UserSource
	catalog CatalogSource
}

// New creates a search service.
func New(users UserSource, catalog CatalogSource) *Service {
	return &Service{users: users, catalog: catalog}
}

// Users searches users by username, first name, and last name.
func (s *Service) Users(ctx context.Context, query token.Token, scorer rank.Scorer) ([]domain.User, error) {
	cands, err := s.users.SearchUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch user candidates: %w", err)
	}
	return ranked("user", cands, query, scorer, func(u domain.User) []string {
		return []string{u.Username, u.Name.First, u.Name.Last}
	}), nil
}

// Universities searches universities by name.
func (s *Service) Universities(ctx context.Context, query token.Token, scorer rank.Scorer) ([]domain.University, error) {
	cands, err := s.catalog.SearchUniversities(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch university candidates: %w", err)
	}
	return ranked("university", cands, query, scorer, func(u domain.University) []string {
		return []string{u.Name}
	}), nil
}

// Majors searches majors by name.
func (s *Service) Majors(ctx context.Context, query token.Token, scorer rank.Scorer) ([]domain.Major, error) {
	cands, err := s.catalog.SearchMajors(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch major candidates: %w", err)
	}
	return ranked("major", cands, query, scorer, func(m domain.Major) []string {
		return []string{m.Name}
	}), nil
}

// Courses searches courses by name and code.
func (s *Service) Courses(ctx context.Context, query token.Token, scorer rank.Scorer) ([]domain.Course, error) {
	cands, err := s.catalog.SearchCourses(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch course candidates: %w", err)
	}
	return ranked("course", cands, query, scorer, func(c domain.Course) []string {
		return []string{c.Name, c.Code}
	}), nil
}

// Assignments searches assignments by name.
func (s *Service) Assignments(ctx context.Context, query token.Token, scorer rank.Scorer) ([]domain.Assignment, error) {
	cands, err := s.catalog.SearchAssignments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch assignment candidates: %w", err)
	}
	return ranked("assignment", cands, query, scorer, func(a domain.Assignment) []string {
		return []string{a.Name}
	}), nil
}

// ranked runs the ranker and records search metrics.
func ranked[T any](kind string, cands []T, query token.Token, scorer rank.Scorer, fields rank.FieldSelector[T]) []T {
	start := time.Now()
	out := rank.Rank(cands, query, scorer, fields)

	metrics.SearchesTotal.WithLabelValues(kind, scorerName(scorer)).Inc()
	metrics.SearchCandidates.WithLabelValues(kind).Observe(float64(len(cands)))
	metrics.SearchRankDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	return out
}

func scorerName(s rank.Scorer) string {
	if s.Direction() == rank.LowerIsBetter {
		return rank.StrategyDistance
	}
	return rank.StrategySimilarity
}
