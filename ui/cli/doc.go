// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for padre using Cobra.
// It loads configuration, determines the account, collects the master secret
// and prints or copies the derived password. The derivation itself lives in
// internal/derive; this package stays a thin shell around it.
package cli
