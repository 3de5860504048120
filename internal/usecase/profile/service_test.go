package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
)

// --- Mocks ---

type mockUsers struct {
	user      domain.User
	userErr   error
	followers []id.ID
	following []id.ID
	students  []id.ID
	edgeErr   error

	studentsCalled bool
}

func (m *mockUsers) User(_ context.Context, _ id.ID) (domain.User, error) {
	return m.user, m.userErr
}

func (m *mockUsers) Followers(_ context.Context, _ id.ID) ([]id.ID, error) {
	return m.followers, m.edgeErr
}

func (m *mockUsers) Following(_ context.Context, _ id.ID) ([]id.ID, error) {
	return m.following, m.edgeErr
}

func (m *mockUsers) Students(_ context.Context, _ id.ID) ([]id.ID, error) {
	m.studentsCalled = true
	return m.students, m.edgeErr
}

type mockCatalog struct {
	university domain.University
	course     domain.Course
	err        error
}

func (m *mockCatalog) University(_ context.Context, _ id.ID) (domain.University, error) {
	return m.university, m.err
}

func (m *mockCatalog) Major(_ context.Context, _ id.ID) (domain.Major, error) {
	return domain.Major{}, m.err
}

func (m *mockCatalog) Course(_ context.Context, _ id.ID) (domain.Course, error) {
	return m.course, m.err
}

func (m *mockCatalog) Assignment(_ context.Context, _ id.ID) (domain.Assignment, error) {
	return domain.Assignment{}, m.err
}

type mockActivities struct {
	acts      []domain.Activity
	stats     domain.Stats
	err       error
	forCalled bool
}

func (m *mockActivities) ForUser(_ context.Context, _ id.ID) ([]domain.Activity, error) {
	m.forCalled = true
	return m.acts, m.err
}

func (m *mockActivities) StatsForUser(_ context.Context, _ id.ID) (domain.Stats, error) {
	return m.stats, m.err
}

// --- Tests ---

func TestUser(t *testing.T) {
	want := domain.User{Username: "choobipanda", Name: domain.Name{First: "Amy", Last: "Nguyen"}}
	svc := New(&mockUsers{user: want}, &mockCatalog{}, &mockActivities{})

	got, err := svc.User(context.Background(), id.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != want.Username {
		t.Errorf("got %q, want %q", got.Username, want.Username)
	}
}

func TestUser_NotFound(t *testing.T) {
	svc := New(&mockUsers{userErr: domain.ErrNotFound}, &mockCatalog{}, &mockActivities{})

	if _, err := svc.User(context.Background(), id.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestFollowLists(t *testing.T) {
	a, b := id.New(), id.New()
	users := &mockUsers{followers: []id.ID{a}, following: []id.ID{a, b}}
	svc := New(users, &mockCatalog{}, &mockActivities{})
	ctx := context.Background()

	followers, err := svc.Followers(ctx, id.New())
	if err != nil {
		t.Fatalf("Followers: %v", err)
	}
	if len(followers) != 1 || followers[0] != a {
		t.Errorf("followers = %v, want [%v]", followers, a)
	}

	following, err := svc.Following(ctx, id.New())
	if err != nil {
		t.Fatalf("Following: %v", err)
	}
	if len(following) != 2 {
		t.Errorf("following = %v, want two ids", following)
	}
}

func TestStudents_MissingUniversity(t *testing.T) {
	users := &mockUsers{students: []id.ID{id.New()}}
	svc := New(users, &mockCatalog{err: domain.ErrNotFound}, &mockActivities{})

	if _, err := svc.Students(context.Background(), id.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if users.studentsCalled {
		t.Error("Students should not be queried when the university is missing")
	}
}

func TestStudents(t *testing.T) {
	member := id.New()
	users := &mockUsers{students: []id.ID{member}}
	svc := New(users, &mockCatalog{university: domain.University{Name: "Georgia Tech"}}, &mockActivities{})

	got, err := svc.Students(context.Background(), id.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != member {
		t.Errorf("students = %v, want [%v]", got, member)
	}
}

func TestActivities_MissingUser(t *testing.T) {
	acts := &mockActivities{acts: []domain.Activity{{Kind: domain.ActivityCompleted}}}
	svc := New(&mockUsers{userErr: domain.ErrNotFound}, &mockCatalog{}, acts)

	if _, err := svc.Activities(context.Background(), id.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if acts.forCalled {
		t.Error("activity log should not be queried when the user is missing")
	}
}

func TestStats(t *testing.T) {
	want := domain.Stats{AssignmentsCompleted: 3, SecsWorked: 5400}
	svc := New(&mockUsers{}, &mockCatalog{}, &mockActivities{stats: want})

	got, err := svc.Stats(context.Background(), id.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

func TestStats_SourceUnavailable(t *testing.T) {
	svc := New(&mockUsers{}, &mockCatalog{}, &mockActivities{err: domain.ErrSourceUnavailable})

	if _, err := svc.Stats(context.Background(), id.New()); !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("error = %v, want ErrSourceUnavailable", err)
	}
}
