// Package id normalizes SurrealDB record identifiers to plain ULIDs.
//
// SurrealDB record ids are nested: a table name wrapping an inner id value
// that is itself a tagged variant (string, number, ...). Every id in this
// system is a string-variant ULID, so the codec is asymmetric on purpose:
// decoding accepts the store's nested shape, encoding always emits the flat
// 26-character canonical form and forgets the envelope. The flat form is a
// pure projection of the ULID — it never needs the envelope back, because
// encoded ids only travel outward in API responses.
package id

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// ErrMalformed signals a record id whose inner value is not a well-formed
// ULID. The store should never produce one; treat it as a data-integrity
// fault, not a client error.
var ErrMalformed = errors.New("malformed record id")

// ID is a normalized record identifier.
type ID struct {
	u ulid.ULID
}

// FromULID wraps an existing ULID.
func FromULID(u ulid.ULID) ID { return ID{u: u} }

// New returns a fresh time-ordered ID. Used by seeding tools; the server
// itself never mints ids.
func New() ID { return ID{u: ulid.Make()} }

// Parse decodes the textual forms a record id shows up in: the flat
// 26-character ULID, a table-qualified "table:ulid", and SurrealDB's
// bracket-escaped "table:⟨ulid⟩".
func Parse(s string) (ID, error) {
	raw := s
	if i := strings.LastIndexByte(raw, ':'); i >= 0 {
		raw = raw[i+1:]
	}
	raw = strings.TrimPrefix(raw, "⟨")
	raw = strings.TrimSuffix(raw, "⟩")

	u, err := ulid.ParseStrict(strings.ToUpper(raw))
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	return ID{u: u}, nil
}

// FromRecord decodes the store's nested record-id shape: a table name plus
// the inner variant value. Only string-variant ids carry ULIDs; anything
// else means the table was populated outside our schema.
func FromRecord(table string, inner any) (ID, error) {
	switch v := inner.(type) {
	case string:
		return Parse(v)
	case fmt.Stringer:
		return Parse(v.String())
	default:
		return ID{}, fmt.Errorf("%w: %s record carries %T id, want string", ErrMalformed, table, inner)
	}
}

// String returns the canonical 26-character ULID text form.
func (id ID) String() string { return id.u.String() }

// ULID returns the underlying value.
func (id ID) ULID() ulid.ULID { return id.u }

// IsZero reports whether the id is the zero ULID.
func (id ID) IsZero() bool { return id.u == ulid.ULID{} }

// MarshalJSON emits the flat canonical form, envelope discarded.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.u.String() + `"`), nil
}

// UnmarshalJSON accepts any textual form Parse accepts.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrMalformed, string(data))
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
