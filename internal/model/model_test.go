// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"testing"

	"github.com/toeirei/padre/internal/errs"
)

func TestAccountString(t *testing.T) {
	a := Account{Username: "alice", Domain: "example.com"}
	if got := a.String(); got != "alice@example.com" {
		t.Errorf("unexpected Account.String(): %q", got)
	}
}

func TestAccountValidate(t *testing.T) {
	ok := Account{Domain: "x.com", Username: "alice", Iteration: "0", Length: 8}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid account rejected: %v", err)
	}

	for name, a := range map[string]Account{
		"no domain":   {Username: "alice", Length: 8},
		"no username": {Domain: "x.com", Length: 8},
		"zero length": {Domain: "x.com", Username: "alice"},
	} {
		if err := a.Validate(); !errors.Is(err, errs.ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}
}

func TestAccountValidate_EmptyIterationAllowed(t *testing.T) {
	a := Account{Domain: "x.com", Username: "alice", Length: 1}
	if err := a.Validate(); err != nil {
		t.Fatalf("empty iteration token should be accepted: %v", err)
	}
}
