// Package token validates raw search text before it may appear in a store query.
package token

import (
	"errors"
	"fmt"
)

// ErrRejected signals search text that failed character-class validation.
// It is always a client error, never a server fault.
var ErrRejected = errors.New("rejected search text")

// Token is search text known to contain only ASCII alphanumerics and ASCII
// whitespace. That restriction is what makes interpolating a Token into a
// SurrealQL string safe: no quote, backslash, or query operator can pass
// validation. Widening the accepted set without adding an escaping layer
// would reopen query injection.
type Token struct {
	text string
}

// New validates raw search text. Invalid input is rejected outright, never
// repaired or truncated.
func New(raw string) (Token, error) {
	for i := 0; i < len(raw); i++ {
		if !allowed(raw[i]) {
			return Token{}, fmt.Errorf("%w: byte %q at offset %d", ErrRejected, raw[i], i)
		}
	}
	return Token{text: raw}, nil
}

// String returns the validated text, byte-identical to the accepted input.
func (t Token) String() string { return t.text }

func allowed(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r':
		return true
	}
	return false
}
