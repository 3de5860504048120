package search

import (
	"context"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// UserSource fetches the coarse user candidate set for a query.
type UserSource interface {
	SearchUsers(ctx context.Context, query token.Token) ([]domain.User, error)
}

// CatalogSource fetches coarse candidate sets for catalog entities.
type CatalogSource interface {
	SearchUniversities(ctx context.Context, query token.Token) ([]domain.University, error)
	SearchMajors(ctx context.Context, query token.Token) ([]domain.Major, error)
	SearchCourses(ctx context.Context, query token.Token) ([]domain.Course, error)
	SearchAssignments(ctx context.Context, query token.Token) ([]domain.Assignment, error)
}
