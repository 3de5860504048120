package rank

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// EditDistance scores fields by case-insensitive Levenshtein distance; lower
// is better. The raw distance is discounted by half the length gap between
// query and field (doubled to stay integral), so a query occurring inside a
// much longer field is not charged full price for every surplus character,
// while an exact match still beats every non-identical field.
type EditDistance struct{}

// Score implements Scorer. It returns 2*distance - |len(query)-len(field)|,
// counted in runes.
func (EditDistance) Score(query token.Token, field string) int {
	q := strings.ToLower(query.String())
	f := strings.ToLower(field)

	d := levenshtein.ComputeDistance(q, f)
	gap := utf8.RuneCountInString(q) - utf8.RuneCountInString(f)
	if gap < 0 {
		gap = -gap
	}
	// d >= gap always holds, so the score is never negative.
	return 2*d - gap
}

// Direction implements Scorer.
func (EditDistance) Direction() Direction { return LowerIsBetter }
