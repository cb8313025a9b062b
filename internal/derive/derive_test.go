// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package derive

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/toeirei/padre/internal/charset"
	"github.com/toeirei/padre/internal/errs"
	"github.com/toeirei/padre/internal/model"
)

func TestSaltLayout(t *testing.T) {
	got := Salt("example.com", "alice", "0")
	want := []byte("example.com\x00alice\x000\x00")
	if !bytes.Equal(got, want) {
		t.Fatalf("Salt = %q, want %q", got, want)
	}

	if got := Salt("", "", ""); !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Fatalf("empty Salt = %q", got)
	}
}

// Known answers computed independently with OpenSSL's scrypt over the same
// salt layout and cost parameters.
func TestDerive_KnownAnswers(t *testing.T) {
	cases := []struct {
		secret, domain, username, iteration string
		length                              uint
		chars                               string
		want                                string
	}{
		{"correcthorse", "example.com", "alice", "0", 16, ":alnum:", "VjxVSLXeZGeFnulC"},
		{"hunter2", "x.com", "bob", "1", 12, ":digit:", "273863765973"},
	}
	for _, c := range cases {
		got, err := Derive([]byte(c.secret), c.domain, c.username, c.iteration, c.length, charset.MustResolve(c.chars))
		if err != nil {
			t.Fatalf("Derive failed: %v", err)
		}
		if got != c.want {
			t.Fatalf("Derive(%s, %s) = %q, want %q", c.domain, c.username, got, c.want)
		}
	}
}

func TestDerive_DeterministicAndInCharset(t *testing.T) {
	cs := charset.MustResolve(":alnum:")
	secret := []byte("correcthorse")
	first, err := Derive(secret, "example.com", "alice", "0", 16, cs)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	second, err := Derive(secret, "example.com", "alice", "0", 16, cs)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if first != second {
		t.Fatalf("derivation not deterministic: %q vs %q", first, second)
	}
	if len(first) != 16 {
		t.Fatalf("expected 16 characters, got %d", len(first))
	}
	for i := 0; i < len(first); i++ {
		if !cs.Contains(first[i]) {
			t.Fatalf("character %q not in charset", first[i])
		}
	}
	if string(secret) != "correcthorse" {
		t.Fatalf("Derive modified the secret")
	}
}

func TestDerive_IterationChangesPassword(t *testing.T) {
	cs := charset.MustResolve("*")
	a, err := Derive([]byte("s"), "d", "u", "0", 32, cs)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	b, err := Derive([]byte("s"), "d", "u", "1", 32, cs)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if a == b {
		t.Fatalf("different iterations produced the same password")
	}
}

func TestDerive_InvalidArguments(t *testing.T) {
	cs := charset.MustResolve(":digit:")
	cases := map[string]func() (string, error){
		"empty secret":   func() (string, error) { return Derive(nil, "d", "u", "0", 8, cs) },
		"empty domain":   func() (string, error) { return Derive([]byte("s"), "", "u", "0", 8, cs) },
		"empty username": func() (string, error) { return Derive([]byte("s"), "d", "", "0", 8, cs) },
		"zero length":    func() (string, error) { return Derive([]byte("s"), "d", "u", "0", 0, cs) },
		"empty charset":  func() (string, error) { return Derive([]byte("s"), "d", "u", "0", 8, "") },
	}
	for name, fn := range cases {
		got, err := fn()
		if !errors.Is(err, errs.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
		if got != "" {
			t.Fatalf("%s: expected no password, got %q", name, got)
		}
	}
}

func TestDeriveAccount(t *testing.T) {
	a := model.Account{Domain: "example.com", Username: "alice", Iteration: "0", Characters: ":alnum:", Length: 16}
	got, err := DeriveAccount([]byte("correcthorse"), a)
	if err != nil {
		t.Fatalf("DeriveAccount failed: %v", err)
	}
	if got != "VjxVSLXeZGeFnulC" {
		t.Fatalf("DeriveAccount = %q", got)
	}

	a.Characters = "z-a"
	if _, err := DeriveAccount([]byte("correcthorse"), a); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad charset, got %v", err)
	}
	a.Characters, a.Length = ":alnum:", 0
	if _, err := DeriveAccount([]byte("correcthorse"), a); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero length, got %v", err)
	}
}

func TestKey_RawBytes(t *testing.T) {
	dk, err := Key([]byte("correcthorse"), Salt("example.com", "alice", "0"), 16)
	if err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	if got := hex.EncodeToString(dk); got != "e909932fa8dfad04ed9c049b89ce495a" {
		t.Fatalf("Key = %s", got)
	}
}

func TestKey_PrimitiveFailure(t *testing.T) {
	bad := params{n: 3, r: R, p: P} // N must be a power of two
	if _, err := bad.key([]byte("s"), []byte("salt"), 8); !errors.Is(err, errs.ErrDerivation) {
		t.Fatalf("expected ErrDerivation, got %v", err)
	}
}
