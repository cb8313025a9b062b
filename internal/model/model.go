// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the account records shared by the parsers, the
// account store and the front ends.
package model

import (
	"fmt"

	"github.com/toeirei/padre/internal/errs"
)

// Account identifies one derivable password. It never carries the master
// secret or the derived password.
type Account struct {
	Domain     string
	Username   string
	Iteration  string // opaque token, used verbatim in the salt
	Characters string // charset specification
	Length     uint
}

// AccountList is an ordered sequence of accounts in source order.
type AccountList []Account

// String returns the username@domain representation.
func (a Account) String() string {
	return fmt.Sprintf("%s@%s", a.Username, a.Domain)
}

// Validate checks the invariants every derivation relies on.
func (a Account) Validate() error {
	switch {
	case a.Domain == "":
		return fmt.Errorf("account has no domain: %w", errs.ErrInvalidArgument)
	case a.Username == "":
		return fmt.Errorf("account %q has no username: %w", a.Domain, errs.ErrInvalidArgument)
	case a.Length == 0:
		return fmt.Errorf("account %s has zero length: %w", a, errs.ErrInvalidArgument)
	}
	return nil
}
