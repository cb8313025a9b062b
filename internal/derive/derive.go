// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package derive turns a master secret and an account into a password.
//
// The salt is the NUL-terminated concatenation of domain, username and
// iteration token. scrypt stretches the secret with that salt into one byte
// per password character, and each byte picks a character from the account's
// alphabet. Changing the salt layout or the cost parameters changes every
// password ever derived, so both are fixed.
package derive

import (
	"fmt"

	"github.com/toeirei/padre/internal/charset"
	"github.com/toeirei/padre/internal/errs"
	"github.com/toeirei/padre/internal/model"
	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. They must never vary at runtime.
const (
	N = 16384
	R = 8
	P = 1
)

// Salt builds domain || 0x00 || username || 0x00 || iteration || 0x00.
func Salt(domain, username, iteration string) []byte {
	salt := make([]byte, 0, len(domain)+len(username)+len(iteration)+3)
	salt = append(salt, domain...)
	salt = append(salt, 0)
	salt = append(salt, username...)
	salt = append(salt, 0)
	salt = append(salt, iteration...)
	salt = append(salt, 0)
	return salt
}

type params struct {
	n, r, p int
}

var pinned = params{n: N, r: R, p: P}

func (c params) key(secret, salt []byte, length int) ([]byte, error) {
	dk, err := scrypt.Key(secret, salt, c.n, c.r, c.p, length)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errs.ErrDerivation)
	}
	return dk, nil
}

// Key stretches secret with salt into length bytes using the pinned cost
// parameters.
func Key(secret, salt []byte, length int) ([]byte, error) {
	return pinned.key(secret, salt, length)
}

// Derive returns the password of the given length for secret and the account
// identified by domain, username and iteration, drawn from cs. It does not
// modify secret; zeroing it is the caller's job.
func Derive(secret []byte, domain, username, iteration string, length uint, cs charset.Charset) (string, error) {
	switch {
	case len(secret) == 0:
		return "", fmt.Errorf("empty master secret: %w", errs.ErrInvalidArgument)
	case domain == "" || username == "":
		return "", fmt.Errorf("domain and username are required: %w", errs.ErrInvalidArgument)
	case length == 0:
		return "", fmt.Errorf("password length must be positive: %w", errs.ErrInvalidArgument)
	case cs.Len() == 0:
		return "", fmt.Errorf("empty charset: %w", errs.ErrInvalidArgument)
	case uint64(length) > maxLength:
		return "", fmt.Errorf("password length %d exceeds %d: %w", length, maxLength, errs.ErrInvalidArgument)
	}

	dk, err := Key(secret, Salt(domain, username, iteration), int(length))
	if err != nil {
		return "", err
	}
	defer clear(dk)
	return cs.Map(dk), nil
}

// DeriveAccount validates a, resolves its charset and derives its password.
func DeriveAccount(secret []byte, a model.Account) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	cs, err := charset.Resolve(a.Characters)
	if err != nil {
		return "", err
	}
	return Derive(secret, a.Domain, a.Username, a.Iteration, a.Length, cs)
}

// maxLength keeps the length addressable as an int on 32-bit platforms.
const maxLength = 1<<31 - 1
