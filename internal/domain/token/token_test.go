package token

import (
	"errors"
	"testing"
)

func TestNew_Accepts(t *testing.T) {
	cases := []string{
		"",
		"algorithms",
		"Amy Nguyen",
		"CS 4540",
		"multi\tword\nquery",
		"0123456789",
		"MixedCASE tokens 42",
	}
	for _, raw := range cases {
		tok, err := New(raw)
		if err != nil {
			t.Errorf("New(%q) returned error: %v", raw, err)
			continue
		}
		if tok.String() != raw {
			t.Errorf("New(%q).String() = %q, want input unchanged", raw, tok.String())
		}
	}
}

func TestNew_Rejects(t *testing.T) {
	cases := []string{
		"O'Brien; DROP TABLE user",
		"name == 'x'",
		`quote"inside`,
		`back\slash`,
		"semi;colon",
		"paren(thesis",
		"dash-joined",
		"under_score",
		"émile",
		"日本語",
		"null\x00byte",
	}
	for _, raw := range cases {
		if _, err := New(raw); !errors.Is(err, ErrRejected) {
			t.Errorf("New(%q) error = %v, want ErrRejected", raw, err)
		}
	}
}

func TestNew_RejectedTokenIsEmpty(t *testing.T) {
	tok, err := New("bad;input")
	if err == nil {
		t.Fatal("expected rejection")
	}
	if tok.String() != "" {
		t.Errorf("rejected token carries text %q, want empty", tok.String())
	}
}
