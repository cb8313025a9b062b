// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for padre.
//
// Usage:
//
//	padre [flags] <domain> <username>
//	padre [flags] <database>
//	padre [flags]
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/padre/ui/cli"
)

func main() {
	// cli.Execute reports the error itself, in the configured language.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
