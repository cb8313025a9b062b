// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security holds the master secret while a password is derived.
// A Secret redacts itself when formatted or encoded so it cannot leak into
// logs, and it is zeroed in place once the derivation is done.
package security

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[SECRET]"

// Secret is a thin wrapper around a byte slice holding the master secret.
// The Secret owns its bytes exclusively; nothing may retain them after Zero.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter to ensure `%v`, `%#v` and friends are redacted.
func (s Secret) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, redacted)
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Len returns the number of secret bytes.
func (s Secret) Len() int { return len(s) }

// Zero overwrites the underlying byte slice with zeros.
func (s Secret) Zero() {
	for i := range s {
		s[i] = 0
	}
}

// IsZero reports whether every byte of the secret is zero.
func (s Secret) IsZero() bool {
	for _, b := range s {
		if b != 0 {
			return false
		}
	}
	return true
}

// Use executes fn with the underlying bytes (not a copy). fn must not retain
// the slice.
func (s Secret) Use(fn func([]byte) error) error {
	return fn([]byte(s))
}

// FromBytes takes ownership of in. The caller must not use in afterwards.
func FromBytes(in []byte) Secret { return Secret(in) }

// WithSecret acquires a secret from acquire, hands it to fn and zeroes it on
// every exit path, including a panic in fn. A secret returned together with
// an error from acquire is zeroed as well.
func WithSecret(acquire func() (Secret, error), fn func(Secret) error) error {
	s, err := acquire()
	defer s.Zero()
	if err != nil {
		return err
	}
	return fn(s)
}
