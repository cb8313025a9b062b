// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package accountdb reads and writes the flat-file account database.
//
// Every line holds one account as five comma-separated columns:
//
//	domain,username,iteration,length,characters
//
// The last line may omit its newline. Fields are taken verbatim; there is no
// quoting, so no field may contain a comma or a newline.
package accountdb

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/toeirei/padre/internal/errs"
	"github.com/toeirei/padre/internal/model"
)

// Columns is the number of columns of a row.
const Columns = 5

// ErrEmptyDatabase is returned by Load when the database holds no rows. It is
// not a parse failure.
var ErrEmptyDatabase = errors.New("database contains no entries")

// ParseError reports the 1-based line of the offending row.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Unwrap lets errors.Is(err, errs.ErrParse) match.
func (e *ParseError) Unwrap() error { return errs.ErrParse }

// Parse reads every row of buf in a single forward pass. It fails for the
// whole batch on the first malformed row. Blank lines, including a lone
// "\r" of a CRLF file, produce no row. A
// buffer without rows yields an empty list and no error.
func Parse(buf []byte) (model.AccountList, error) {
	var (
		accounts model.AccountList
		row      model.Account
		line     = 1
		col      = 0 // next unset column
		start    = 0 // offset of the field being scanned
	)

	closeRow := func(end int) {
		if col == 0 && (end == start || (end == start+1 && buf[start] == '\r')) {
			return
		}
		row.Characters = string(buf[start:end])
		accounts = append(accounts, row)
	}

	for i, c := range buf {
		switch c {
		case ',':
			if col >= Columns-1 {
				return nil, &ParseError{Line: line, Reason: fmt.Sprintf("more than %d columns", Columns)}
			}
			if err := assign(&row, col, string(buf[start:i])); err != nil {
				return nil, &ParseError{Line: line, Reason: err.Error()}
			}
			col++
			start = i + 1
		case '\n':
			closeRow(i)
			row, col, start = model.Account{}, 0, i+1
			line++
		}
	}
	closeRow(len(buf))

	return accounts, nil
}

func assign(a *model.Account, col int, field string) error {
	switch col {
	case 0:
		a.Domain = field
	case 1:
		a.Username = field
	case 2:
		a.Iteration = field
	case 3:
		n, err := strconv.ParseUint(field, 10, 0)
		if err != nil {
			return fmt.Errorf("length %q is not a non-negative integer", field)
		}
		a.Length = uint(n)
	}
	return nil
}
