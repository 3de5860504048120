// Package rank scores and orders search candidates fetched from the store.
package rank

import (
	"fmt"
	"math"

	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// Direction declares which way a Scorer's numbers rank.
type Direction int

// Scorer directions.
const (
	// HigherIsBetter ranks larger scores first.
	HigherIsBetter Direction = iota
	// LowerIsBetter ranks smaller scores first.
	LowerIsBetter
)

// Scorer estimates how well a query matches one text field. Scores from
// different implementations are not comparable; a single ranking operation
// must use exactly one Scorer, sorted in its declared Direction. Scoring is
// deterministic and never fails — degenerate fields score worst, not error.
type Scorer interface {
	Score(query token.Token, field string) int
	Direction() Direction
}

// Named scorer strategies accepted by ScorerFor.
const (
	StrategySimilarity = "similarity"
	StrategyDistance   = "distance"
)

// ScorerFor resolves a strategy name. The empty name means similarity.
func ScorerFor(name string) (Scorer, error) {
	switch name {
	case "", StrategySimilarity:
		return Similarity{}, nil
	case StrategyDistance:
		return EditDistance{}, nil
	default:
		return nil, fmt.Errorf("unknown scorer strategy %q", name)
	}
}

// worstFor is the score assigned to candidates with no searchable fields;
// it sorts last in either direction.
func worstFor(d Direction) int {
	if d == HigherIsBetter {
		return math.MinInt
	}
	return math.MaxInt
}

// betterThan reports whether a beats b in the given direction.
func betterThan(d Direction, a, b int) bool {
	if d == HigherIsBetter {
		return a > b
	}
	return a < b
}
