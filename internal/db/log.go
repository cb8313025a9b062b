// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/toeirei/padre/internal/logging"

func dbLogf(format string, v ...any) {
	logging.Debugf(format, v...)
}
