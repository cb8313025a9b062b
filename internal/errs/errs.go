// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package errs holds the error kinds shared by padre's packages. Callers
// classify failures with errors.Is; packages wrap the sentinels with context
// using fmt.Errorf("...: %w", errs.ErrX).
package errs

import "errors"

var (
	// ErrInvalidArgument marks malformed or missing inputs, such as a charset
	// range running backwards or an account without a domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceExhausted marks inputs exceeding a fixed bound: the account
	// database size cap, the maximum alphabet size or the secret buffer.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrParse marks a malformed account database row.
	ErrParse = errors.New("parse error")

	// ErrIO marks a file that cannot be read or secret input ending early.
	ErrIO = errors.New("i/o error")

	// ErrDerivation marks a failure of the key derivation primitive.
	ErrDerivation = errors.New("derivation error")
)

// Kind returns the sentinel err wraps, or nil when err is not one of ours.
func Kind(err error) error {
	for _, k := range []error{ErrInvalidArgument, ErrResourceExhausted, ErrParse, ErrIO, ErrDerivation} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
