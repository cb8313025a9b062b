// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks padre's translations. It scans the Go sources for
// i18n.T() calls and compares them with the embedded YAML locales:
// a key passed to i18n.T that the primary locale lacks, or a key of the
// primary locale missing from another locale, fails the run. Keys nothing
// refers to are reported as warnings.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key", ...)
	callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// any literal shaped like a message key, e.g. in a table of IDs
	literalRe = regexp.MustCompile(`"([a-z_]+\.[a-z_.]+)"`)
)

// report is the outcome of one lint run.
type report struct {
	Called    int                 // distinct keys passed to i18n.T
	Undefined []string            // called but absent from the primary locale
	Missing   map[string][]string // locale file -> primary keys it lacks
	Orphaned  []string            // in the primary locale but never referenced
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	fmt.Println("Running i18n linter...")
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	printReport(r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	called, referenced, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	r := report{Called: len(called), Missing: map[string][]string{}}
	for key := range called {
		if _, ok := primary[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		if _, ok := referenced[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

func printReport(r report) {
	fmt.Printf("Found %d translation keys passed to i18n.T.\n\n", r.Called)

	fmt.Println("--- Undefined keys (used in code, not in the primary locale) ---")
	printList(r.Undefined)

	fmt.Println("--- Missing keys (in the primary locale, not in others) ---")
	if len(r.Missing) == 0 {
		fmt.Println("  none")
	}
	names := make([]string, 0, len(r.Missing))
	for name := range r.Missing {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s:\n", name)
		for _, key := range r.Missing[name] {
			fmt.Printf("    - %s\n", key)
		}
	}

	fmt.Println("--- Orphaned keys (never referenced) ---")
	printList(r.Orphaned)

	switch {
	case r.failed():
		fmt.Println("Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Println("Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("All translation files are consistent.")
	}
}

func printList(keys []string) {
	if len(keys) == 0 {
		fmt.Println("  none")
	}
	for _, key := range keys {
		fmt.Printf("  - %s\n", key)
	}
}

// findUsedKeys scans the non-test .go files under root. called holds the
// keys passed to i18n.T; referenced additionally holds every key-shaped
// literal. Hidden and underscore-prefixed directories and tools/ are skipped.
func findUsedKeys(root string) (called, referenced map[string]struct{}, err error) {
	called = make(map[string]struct{})
	referenced = make(map[string]struct{})

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			called[m[1]] = struct{}{}
			referenced[m[1]] = struct{}{}
		}
		for _, m := range literalRe.FindAllStringSubmatch(string(content), -1) {
			referenced[m[1]] = struct{}{}
		}
		return nil
	})
	return called, referenced, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts nested maps into dot-separated keys. Flat files with
// dotted keys pass through unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, val, keys)
	}
}
