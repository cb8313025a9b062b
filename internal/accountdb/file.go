// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package accountdb

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/padre/internal/errs"
	"github.com/toeirei/padre/internal/model"
)

// MaxFileSize bounds the (decompressed) size of a database file.
const MaxFileSize = 16 << 10

// Stdin is the path naming standard input.
const Stdin = "-"

// stdin is swapped by tests.
var stdin io.Reader = os.Stdin

// Read returns everything r yields, refusing inputs above MaxFileSize.
func Read(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read database: %w: %w", errs.ErrIO, err)
	}
	if len(buf) > MaxFileSize {
		return nil, fmt.Errorf("database exceeds %d bytes: %w", MaxFileSize, errs.ErrResourceExhausted)
	}
	return buf, nil
}

// Open reads the database at path. "-" reads standard input and a ".zst"
// suffix selects zstd decompression.
func Open(path string) ([]byte, error) {
	var r io.Reader
	if path == Stdin {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	if !isCompressed(path) {
		return Read(r)
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w: %w", errs.ErrIO, err)
	}
	defer dec.Close()
	return Read(dec)
}

// Load opens and parses the database at path. A database without rows
// yields ErrEmptyDatabase.
func Load(path string) (model.AccountList, error) {
	buf, err := Open(path)
	if err != nil {
		return nil, err
	}
	accounts, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDatabase)
	}
	return accounts, nil
}

// Format writes accounts in database format. Fields that cannot be
// represented are rejected before anything is written.
func Format(w io.Writer, accounts model.AccountList) error {
	var buf bytes.Buffer
	for i, a := range accounts {
		for _, field := range []string{a.Domain, a.Username, a.Iteration, a.Characters} {
			if strings.ContainsAny(field, ",\n") {
				return fmt.Errorf("account %d (%s): field %q contains a comma or newline: %w", i+1, a, field, errs.ErrInvalidArgument)
			}
		}
		fmt.Fprintf(&buf, "%s,%s,%s,%d,%s\n", a.Domain, a.Username, a.Iteration, a.Length, a.Characters)
	}
	if buf.Len() > MaxFileSize {
		return fmt.Errorf("database would exceed %d bytes: %w", MaxFileSize, errs.ErrResourceExhausted)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	return nil
}

// Save writes accounts to path, zstd-compressed when path ends in ".zst".
// "-" writes to standard output.
func Save(path string, accounts model.AccountList) error {
	var out bytes.Buffer
	if isCompressed(path) {
		enc, err := zstd.NewWriter(&out)
		if err != nil {
			return fmt.Errorf("could not create zstd writer: %w", err)
		}
		if err := Format(enc, accounts); err != nil {
			_ = enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrIO, err)
		}
	} else if err := Format(&out, accounts); err != nil {
		return err
	}

	if path == Stdin {
		_, err := out.WriteTo(os.Stdout)
		return err
	}
	if err := os.WriteFile(path, out.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	return nil
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}
