package surreal

import (
	"fmt"
	"strings"

	"github.com/jacobhenn/unistellar/internal/domain/token"
)

// ContainsAny builds a SurrealQL boolean expression matching records where
// any whitespace-separated word of the query appears, case-insensitively, in
// any of the given fields. It is the coarse pre-filter for search endpoints;
// precise ordering happens afterwards in the rank package.
//
// The words are interpolated into the expression text. That is safe solely
// because a Token admits nothing beyond ASCII alphanumerics and whitespace —
// see the token package. Field names are caller-supplied schema constants,
// never user input.
//
// A query with no words yields the expression "true": the whole table is the
// candidate set and ranking degenerates to store order.
func ContainsAny(fields []string, query token.Token) string {
	words := strings.Fields(strings.ToLower(query.String()))
	if len(words) == 0 || len(fields) == 0 {
		return "true"
	}

	var sb strings.Builder
	for i, f := range fields {
		for j, w := range words {
			if i+j > 0 {
				sb.WriteString(" OR ")
			}
			fmt.Fprintf(&sb, "string::contains(string::lowercase(%s), '%s')", f, w)
		}
	}
	return sb.String()
}
