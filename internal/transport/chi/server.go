// Package chi exposes the HTTP API over the go-chi router.
package chi

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jacobhenn/unistellar/internal/domain"
	"github.com/jacobhenn/unistellar/internal/domain/id"
	"github.com/jacobhenn/unistellar/internal/domain/token"
	"github.com/jacobhenn/unistellar/internal/metrics"
	"github.com/jacobhenn/unistellar/internal/rank"
	healthuc "github.com/jacobhenn/unistellar/internal/usecase/health"
	profileuc "github.com/jacobhenn/unistellar/internal/usecase/profile"
	searchuc "github.com/jacobhenn/unistellar/internal/usecase/search"
)

// Server implements the HTTP API.
type Server struct {
	profile       *profileuc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	defaultScorer rank.Scorer
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	profile *profileuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	defaultScorer rank.Scorer,
	logger *zap.Logger,
) *Server {
	s := &Server{
		profile:       profile,
		search:        search,
		health:        health,
		defaultScorer: defaultScorer,
		logger:        logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(token.ErrRejected, http.StatusBadRequest, codeRejectedQuery),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrSourceUnavailable, http.StatusBadGateway, codeStoreUnavailable),
	}
	return s
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users/{id}", s.getUser)
		r.Get("/users/{id}/followers", s.getFollowers)
		r.Get("/users/{id}/following", s.getFollowing)
		r.Get("/users/{id}/activities", s.getActivities)
		r.Get("/users/{id}/stats", s.getStats)

		r.Get("/universities/{id}", s.getUniversity)
		r.Get("/universities/{id}/students", s.getStudents)
		r.Get("/majors/{id}", s.getMajor)
		r.Get("/courses/{id}", s.getCourse)
		r.Get("/assignments/{id}", s.getAssignment)

		r.Get("/search/users/{query}", s.searchUsers)
		r.Get("/search/universities/{query}", s.searchUniversities)
		r.Get("/search/majors/{query}", s.searchMajors)
		r.Get("/search/courses/{query}", s.searchCourses)
		r.Get("/search/assignments/{query}", s.searchAssignments)
	})

	r.Get("/health", s.getHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// pathID parses the {id} path parameter. A string that is not a ULID cannot
// name any record, so the failure surfaces as a plain 404, mirroring an
// unmatched route.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (id.ID, bool) {
	parsed, err := id.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
		return id.ID{}, false
	}
	return parsed, true
}

// pathQuery validates the {query} path parameter into a search token. The
// router matches on the escaped path, so the raw parameter may still carry
// percent-encoding for spaces.
func (s *Server) pathQuery(w http.ResponseWriter, r *http.Request) (token.Token, bool) {
	raw, err := url.PathUnescape(chi.URLParam(r, "query"))
	if err != nil {
		raw = chi.URLParam(r, "query")
	}
	q, err := token.New(raw)
	if err != nil {
		metrics.RejectedQueriesTotal.Inc()
		s.handleDomainError(w, err)
		return token.Token{}, false
	}
	return q, true
}

// scorerParam resolves the optional ?scorer= query parameter.
func (s *Server) scorerParam(w http.ResponseWriter, r *http.Request) (rank.Scorer, bool) {
	name := r.URL.Query().Get("scorer")
	if name == "" {
		return s.defaultScorer, true
	}
	scorer, err := rank.ScorerFor(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return nil, false
	}
	return scorer, true
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	u, err := s.profile.User(r.Context(), uid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) getFollowers(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	ids, err := s.profile.Followers(r.Context(), uid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, encodeIDs(ids))
}

func (s *Server) getFollowing(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	ids, err := s.profile.Following(r.Context(), uid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, encodeIDs(ids))
}

func (s *Server) getActivities(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	acts, err := s.profile.Activities(r.Context(), uid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acts)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	stats, err := s.profile.Stats(r.Context(), uid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) getUniversity(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	u, err := s.profile.University(r.Context(), uid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) getStudents(w http.ResponseWriter, r *http.Request) {
	uid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	ids, err := s.profile.Students(r.Context(), uid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, encodeIDs(ids))
}

func (s *Server) getMajor(w http.ResponseWriter, r *http.Request) {
	mid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	m, err := s.profile.Major(r.Context(), mid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	cid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	c, err := s.profile.Course(r.Context(), cid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) getAssignment(w http.ResponseWriter, r *http.Request) {
	aid, ok := s.pathID(w, r)
	if !ok {
		return
	}
	a, err := s.profile.Assignment(r.Context(), aid)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) searchUsers(w http.ResponseWriter, r *http.Request) {
	q, ok := s.pathQuery(w, r)
	if !ok {
		return
	}
	scorer, ok := s.scorerParam(w, r)
	if !ok {
		return
	}
	users, err := s.search.Users(r.Context(), q, scorer)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) searchUniversities(w http.ResponseWriter, r *http.Request) {
	q, ok := s.pathQuery(w, r)
	if !ok {
		return
	}
	scorer, ok := s.scorerParam(w, r)
	if !ok {
		return
	}
	unis, err := s.search.Universities(r.Context(), q, scorer)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unis)
}

func (s *Server) searchMajors(w http.ResponseWriter, r *http.Request) {
	q, ok := s.pathQuery(w, r)
	if !ok {
		return
	}
	scorer, ok := s.scorerParam(w, r)
	if !ok {
		return
	}
	majors, err := s.search.Majors(r.Context(), q, scorer)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, majors)
}

func (s *Server) searchCourses(w http.ResponseWriter, r *http.Request) {
	q, ok := s.pathQuery(w, r)
	if !ok {
		return
	}
	scorer, ok := s.scorerParam(w, r)
	if !ok {
		return
	}
	courses, err := s.search.Courses(r.Context(), q, scorer)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) searchAssignments(w http.ResponseWriter, r *http.Request) {
	q, ok := s.pathQuery(w, r)
	if !ok {
		return
	}
	scorer, ok := s.scorerParam(w, r)
	if !ok {
		return
	}
	asgns, err := s.search.Assignments(r.Context(), q, scorer)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asgns)
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// encodeIDs projects ids to their flat wire form. An empty list serializes
// as [], not null.
func encodeIDs(ids []id.ID) []string {
	out := make([]string, len(ids))
	for i, v := range ids {
		out[i] = v.String()
	}
	return out
}
