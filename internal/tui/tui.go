// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/padre/internal/model"
	"golang.org/x/term"
)

// ErrCanceled is returned when the user leaves the menu without choosing.
var ErrCanceled = errors.New("no account selected")

// runProgram is swapped by tests.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

// SelectAccount shows the menu on the alternate screen and returns the index
// of the chosen account. When stdin is not a terminal, for example because
// the database was piped in, the menu reads keys from the controlling TTY.
func SelectAccount(accounts model.AccountList) (int, error) {
	if len(accounts) == 0 {
		return -1, ErrCanceled
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInputTTY())
	}

	final, err := runProgram(newMenuModel(accounts), opts...)
	if err != nil {
		return -1, fmt.Errorf("account menu: %w", err)
	}
	m, ok := final.(menuModel)
	if !ok || m.selected < 0 {
		return -1, ErrCanceled
	}
	return m.selected, nil
}
