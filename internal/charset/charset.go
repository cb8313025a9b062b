// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package charset resolves charset specifications into the ordered alphabet
// derived bytes are mapped onto.
//
// A specification is either empty, "*" or ":graph:" for every printable
// ASCII character, one of the named POSIX-like classes (":alnum:",
// ":digit:", ...), or a sequence of literals and ranges such as
// "a-zA-Z0-9_!". Whitespace is ignored. A leading "-" and a trailing "-" are
// literal hyphens.
package charset

import (
	"fmt"
	"sort"

	"github.com/toeirei/padre/internal/errs"
)

const (
	// First and Last delimit the characters an alphabet may contain.
	First = '!'
	Last  = '~'

	// MaxSize is the number of characters between First and Last. No
	// alphabet may be longer.
	MaxSize = Last - First + 1
)

// Charset is a resolved alphabet. It is not deduplicated: a character listed
// twice is twice as likely to appear in a derived password.
type Charset string

// graph is the expansion used for "", "*" and ":graph:".
const graph = "!-~"

var classes = map[string]string{
	":alnum:":  "a-zA-Z0-9",
	":alpha:":  "a-zA-Z",
	":digit:":  "0-9",
	":graph:":  graph,
	":lower:":  "a-z",
	":punct:":  "!-/:-@[-`{-~",
	":upper:":  "A-Z",
	":word:":   "A-Za-z0-9_",
	":xdigit:": "A-Fa-f0-9",
}

// ClassNames returns the recognized named classes in lexical order.
func ClassNames() []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve expands spec into an alphabet. Nothing is returned on failure.
func Resolve(spec string) (Charset, error) {
	def := spec
	switch spec {
	case "", "*":
		def = graph
	default:
		if expansion, ok := classes[spec]; ok {
			def = expansion
		}
	}

	b := builder{}
	var (
		left    byte // pending left bound, 0 when none
		ranging bool // a '-' follows the pending left bound
	)
	for i := 0; i < len(def); i++ {
		c := def[i]
		if isSpace(c) {
			continue
		}
		if c < First || c > Last {
			return "", fmt.Errorf("charset %q: character %q at offset %d is not printable ASCII: %w", spec, c, i, errs.ErrInvalidArgument)
		}

		switch {
		case left == 0 && c == '-':
			if err := b.add(c); err != nil {
				return "", wrap(spec, err)
			}
		case left == 0:
			left = c
		case c == '-':
			ranging = true
		case ranging:
			if left > c {
				return "", fmt.Errorf("charset %q: range %c-%c runs backwards: %w", spec, left, c, errs.ErrInvalidArgument)
			}
			if err := b.addRange(left, c); err != nil {
				return "", wrap(spec, err)
			}
			left, ranging = 0, false
		default:
			if err := b.add(left); err != nil {
				return "", wrap(spec, err)
			}
			left = c
		}
	}
	if left != 0 {
		if err := b.add(left); err != nil {
			return "", wrap(spec, err)
		}
	}
	if ranging {
		if err := b.add('-'); err != nil {
			return "", wrap(spec, err)
		}
	}

	if len(b.buf) == 0 {
		return "", fmt.Errorf("charset %q expands to no characters: %w", spec, errs.ErrInvalidArgument)
	}
	return Charset(b.buf), nil
}

// MustResolve is like Resolve but panics on error. It is meant for
// specifications known at compile time.
func MustResolve(spec string) Charset {
	cs, err := Resolve(spec)
	if err != nil {
		panic(err)
	}
	return cs
}

// Len returns the number of characters in the alphabet.
func (cs Charset) Len() int { return len(cs) }

// Contains reports whether c is part of the alphabet.
func (cs Charset) Contains(c byte) bool {
	for i := 0; i < len(cs); i++ {
		if cs[i] == c {
			return true
		}
	}
	return false
}

// Map replaces every byte of raw with cs[b % len(cs)] and returns the result.
// raw is left untouched. Map panics on an empty alphabet.
func (cs Charset) Map(raw []byte) string {
	out := make([]byte, len(raw))
	n := len(cs)
	for i, b := range raw {
		out[i] = cs[int(b)%n]
	}
	return string(out)
}

// builder is a bounded append buffer. It refuses to grow past MaxSize.
type builder struct {
	buf []byte
}

func (b *builder) add(c byte) error {
	if len(b.buf) >= MaxSize {
		return errs.ErrResourceExhausted
	}
	b.buf = append(b.buf, c)
	return nil
}

func (b *builder) addRange(lo, hi byte) error {
	for c := int(lo); c <= int(hi); c++ {
		if err := b.add(byte(c)); err != nil {
			return err
		}
	}
	return nil
}

func wrap(spec string, err error) error {
	return fmt.Errorf("charset %q exceeds %d characters: %w", spec, MaxSize, err)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
