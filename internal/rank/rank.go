package rank

import (
	"sort"

	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// FieldSelector returns the searchable text fields of one candidate.
type FieldSelector[T any] func(T) []string

// Rank orders candidates by how well their fields match the query.
//
// Each candidate is reduced to a single score: the best of its fields under
// the scorer (maximum when higher is better, minimum when lower is better),
// so matching well on any one field — username or full name, say — is enough.
// Candidates with no searchable fields take the worst possible score and sort
// last. The sort is stable: equal scores keep the store's original order,
// which is creation order and a meaningful fallback signal. The result always
// contains every input candidate, reordered and nothing else.
func Rank[T any](candidates []T, query token.Token, scorer Scorer, fields FieldSelector[T]) []T {
	dir := scorer.Direction()

	scores := make([]int, len(candidates))
	for i := range candidates {
		scores[i] = bestField(query, scorer, fields(candidates[i]))
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return betterThan(dir, scores[order[a]], scores[order[b]])
	})

	ranked := make([]T, len(candidates))
	for i, j := range order {
		ranked[i] = candidates[j]
	}
	return ranked
}

// bestField reduces a candidate's fields to one score.
func bestField(query token.Token, scorer Scorer, fields []string) int {
	if len(fields) == 0 {
		return worstFor(scorer.Direction())
	}
	best := scorer.Score(query, fields[0])
	for _, f := range fields[1:] {
		if s := scorer.Score(query, f); betterThan(scorer.Direction(), s, best) {
			best = s
		}
	}
	return best
}
