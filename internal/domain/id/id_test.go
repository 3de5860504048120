package id

import (
	"encoding/json"
	"errors"
	"testing"
)

const sample = "01J7YZ7MC3P44547KT11KHXGJV"

func TestParse_Forms(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"flat", sample},
		{"table qualified", "user:" + sample},
		{"bracket escaped", "user:⟨" + sample + "⟩"},
		{"lowercase", "01j7yz7mc3p44547kt11khxgjv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got.String() != sample {
				t.Errorf("Parse(%q).String() = %q, want %q", tc.in, got.String(), sample)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-ulid",
		"user:",
		"01J7YZ7MC3P44547KT11KHXGJ",   // one short
		"01J7YZ7MC3P44547KT11KHXGJVX", // one long
		"01J7YZ7MC3P44547KT11KHXGJL",  // L not in crockford alphabet
	}
	for _, in := range cases {
		if _, err := Parse(in); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformed", in, err)
		}
	}
}

func TestFromRecord(t *testing.T) {
	got, err := FromRecord("university", sample)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if got.String() != sample {
		t.Errorf("FromRecord encodes to %q, want %q", got.String(), sample)
	}

	if _, err := FromRecord("user", 42); !errors.Is(err, ErrMalformed) {
		t.Errorf("FromRecord with numeric inner id: error = %v, want ErrMalformed", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"`+sample+`"` {
		t.Errorf("Marshal = %s, want flat quoted ULID", data)
	}

	var back ID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != orig {
		t.Errorf("round trip changed id: %v != %v", back, orig)
	}
}

func TestUnmarshalJSON_Rejects(t *testing.T) {
	var dst ID
	for _, in := range []string{`42`, `"nope"`, `null`} {
		if err := json.Unmarshal([]byte(in), &dst); !errors.Is(err, ErrMalformed) {
			t.Errorf("Unmarshal(%s) error = %v, want ErrMalformed", in, err)
		}
	}
}

func TestIsZero(t *testing.T) {
	var zero ID
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if New().IsZero() {
		t.Error("freshly minted id should not be zero")
	}
}
