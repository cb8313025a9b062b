// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"runtime/debug"
	"testing"

	"github.com/toeirei/padre/buildvars"
)

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != "dev" {
		t.Fatalf("expected default commit got %s", c)
	}
	if d != "" {
		t.Fatalf("expected empty date got %s", d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/wrapper", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v0.3.1-0.20260110131337-d1692e4643ee"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1-0.20260110131337-d1692e4643ee" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "dev" || c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected version info %q %q %q", v, c, d)
	}
}

func TestResolveBuildVersion_LinkerValues(t *testing.T) {
	prevV, prevC := buildvars.Version, buildvars.Commit
	defer func() { buildvars.Version, buildvars.Commit = prevV, prevC }()

	buildvars.Commit = "deadbeef"
	info := &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}}
	if v, _, _ := resolveBuildVersion(info); v != "deadbeef" {
		t.Fatalf("expected commit fallback got %s", v)
	}

	buildvars.Version = "v9.9.9"
	info.Main.Version = "v1.0.0"
	if v, c, _ := resolveBuildVersion(info); v != "v9.9.9" || c != "deadbeef" {
		t.Fatalf("linker values must win, got %s %s", v, c)
	}
}
