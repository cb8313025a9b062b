// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	"github.com/toeirei/padre/internal/accountdb"
	"github.com/toeirei/padre/internal/errs"
	"github.com/toeirei/padre/internal/i18n"
	"github.com/toeirei/padre/internal/tui"
)

// describe renders err as the one-line, localized message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, accountdb.ErrEmptyDatabase):
		return i18n.T("error.empty_database")
	case errors.Is(err, tui.ErrCanceled):
		return i18n.T("error.canceled")
	}

	switch errs.Kind(err) {
	case errs.ErrInvalidArgument:
		return i18n.T("error.invalid_argument", err)
	case errs.ErrResourceExhausted:
		return i18n.T("error.resource_exhausted", err)
	case errs.ErrParse:
		return i18n.T("error.parse", err)
	case errs.ErrIO:
		return i18n.T("error.io", err)
	case errs.ErrDerivation:
		return i18n.T("error.derivation", err)
	}
	return i18n.T("error.prefix", err)
}
