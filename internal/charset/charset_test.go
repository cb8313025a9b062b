// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package charset

import (
	"errors"
	"testing"

	"github.com/toeirei/padre/internal/errs"
)

const (
	graphChars  = "!\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
	alnumChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	alphaChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	punctChars  = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	wordChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"
	xdigitChars = "ABCDEFabcdef0123456789"
)

func TestResolve_NamedClasses(t *testing.T) {
	cases := []struct {
		spec string
		want string
		n    int
	}{
		{"", graphChars, 94},
		{"*", graphChars, 94},
		{":graph:", graphChars, 94},
		{":alnum:", alnumChars, 62},
		{":alpha:", alphaChars, 52},
		{":digit:", digitChars, 10},
		{":lower:", lowerChars, 26},
		{":punct:", punctChars, 32},
		{":upper:", upperChars, 26},
		{":word:", wordChars, 63},
		{":xdigit:", xdigitChars, 22},
	}
	for _, c := range cases {
		t.Run(c.spec, func(t *testing.T) {
			got, err := Resolve(c.spec)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", c.spec, err)
			}
			if string(got) != c.want {
				t.Fatalf("Resolve(%q) = %q, want %q", c.spec, got, c.want)
			}
			if got.Len() != c.n {
				t.Fatalf("Resolve(%q) has %d chars, want %d", c.spec, got.Len(), c.n)
			}
		})
	}
}

func TestResolve_LiteralsAndRanges(t *testing.T) {
	cases := map[string]string{
		"a-c":        "abc",
		"-ab":        "-ab",
		"abc":        "abc",
		"a":          "a",
		"-":          "-",
		"a-":         "a-",
		"a-c-e":      "abc-e",
		"a-a":        "a",
		"a-cx-z":     "abcxyz",
		"a - c":      "abc",
		" \ta-c\r\n": "abc",
		"aab":        "aab",
		"--":         "--",

		"a-zA-Z0-9_!": alnumChars + "_!",
	}
	for spec, want := range cases {
		got, err := Resolve(spec)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", spec, err)
		}
		if string(got) != want {
			t.Fatalf("Resolve(%q) = %q, want %q", spec, got, want)
		}
	}
}

func TestResolve_BackwardsRange(t *testing.T) {
	got, err := Resolve("z-a")
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected no output on failure, got %q", got)
	}
}

func TestResolve_NonPrintable(t *testing.T) {
	for _, spec := range []string{"abc\x00", "é", "a\x7f"} {
		if _, err := Resolve(spec); !errors.Is(err, errs.ErrInvalidArgument) {
			t.Fatalf("Resolve(%q): expected ErrInvalidArgument, got %v", spec, err)
		}
	}
}

func TestResolve_WhitespaceOnly(t *testing.T) {
	if _, err := Resolve("   "); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestResolve_Overflow(t *testing.T) {
	for _, spec := range []string{"!-~!", "a-za-za-za-z", "!-~-"} {
		got, err := Resolve(spec)
		if !errors.Is(err, errs.ErrResourceExhausted) {
			t.Fatalf("Resolve(%q): expected ErrResourceExhausted, got %v", spec, err)
		}
		if got != "" {
			t.Fatalf("Resolve(%q): expected no output, got %q", spec, got)
		}
	}

	// exactly MaxSize characters still fits
	if got, err := Resolve("a-za-za-zA-P"); err != nil || got.Len() != MaxSize {
		t.Fatalf("expected %d characters, got %d (%v)", MaxSize, got.Len(), err)
	}
}

func TestCharsetMap(t *testing.T) {
	cs := MustResolve("*")
	raw := make([]byte, MaxSize)
	for i := range raw {
		raw[i] = byte(i)
	}
	if got := cs.Map(raw); got != graphChars {
		t.Fatalf("Map = %q, want %q", got, graphChars)
	}

	digits := MustResolve(":digit:")
	if got := digits.Map([]byte{0, 9, 10, 255}); got != "0905" {
		t.Fatalf("Map = %q, want %q", got, "0905")
	}
}

func TestCharsetContains(t *testing.T) {
	cs := MustResolve(":xdigit:")
	if !cs.Contains('f') || cs.Contains('g') {
		t.Fatalf("unexpected membership for %q", cs)
	}
}

func TestClassNames(t *testing.T) {
	names := ClassNames()
	if len(names) != 9 || names[0] != ":alnum:" || names[len(names)-1] != ":xdigit:" {
		t.Fatalf("unexpected class names: %v", names)
	}
	for _, n := range names {
		if _, err := Resolve(n); err != nil {
			t.Fatalf("class %s does not resolve: %v", n, err)
		}
	}
}
