package rank

import (
	"math"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// NoMatch is the sentinel score for a field the query does not match at all.
const NoMatch = math.MinInt

// exactBonus lifts a case-insensitive exact match above every partial
// alignment, whose scores stay small multiples of the field length.
const exactBonus = 1 << 20

// Similarity scores fields by in-order character alignment: contiguous,
// case-matching runs of the query inside the field score higher. Higher is
// better. A field that does not contain the query as a case-insensitive
// subsequence scores NoMatch.
type Similarity struct{}

// Score implements Scorer.
func (Similarity) Score(query token.Token, field string) int {
	q := query.String()
	if strings.EqualFold(q, field) {
		return exactBonus
	}
	matches := fuzzy.Find(q, []string{field})
	if len(matches) == 0 {
		return NoMatch
	}
	return matches[0].Score
}

// Direction implements Scorer.
func (Similarity) Direction() Direction { return HigherIsBetter }
