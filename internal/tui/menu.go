// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive account picker shown when a
// database holds more than one account.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/padre/internal/i18n"
	"github.com/toeirei/padre/internal/model"
)

// menuModel lists accounts and lets the user pick one, optionally narrowing
// the list with a case-insensitive search over domain and username.
type menuModel struct {
	accounts  model.AccountList
	displayed []int // indexes into accounts
	cursor    int
	offset    int // first displayed row on screen
	filter    string
	filtering bool
	selected  int // index into accounts, -1 until chosen
	quitting  bool
	keys      KeyMap
	help      help.Model
	width     int
	height    int
}

func newMenuModel(accounts model.AccountList) menuModel {
	m := menuModel{
		accounts: accounts,
		selected: -1,
		keys:     DefaultKeyMap,
		help:     help.New(),
	}
	m.rebuild()
	return m
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m *menuModel) rebuild() {
	m.displayed = m.displayed[:0]
	q := strings.ToLower(m.filter)
	for i, a := range m.accounts {
		if q == "" ||
			strings.Contains(strings.ToLower(a.Domain), q) ||
			strings.Contains(strings.ToLower(a.Username), q) {
			m.displayed = append(m.displayed, i)
		}
	}
	if m.cursor >= len(m.displayed) {
		m.cursor = max(len(m.displayed)-1, 0)
	}
	m.scroll()
}

// visibleRows is the number of list rows that fit on screen. Title, search
// line, status line and help take the rest.
func (m menuModel) visibleRows() int {
	if m.height <= 0 {
		return len(m.displayed)
	}
	return max(m.height-8, 1)
}

func (m *menuModel) scroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.displayed)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
		case key.Matches(msg, m.keys.Clear):
			m.filter = ""
			m.rebuild()
		case key.Matches(msg, m.keys.Select):
			if len(m.displayed) == 0 {
				return m, nil
			}
			m.selected = m.displayed[m.cursor]
			return m, tea.Quit
		}
		m.scroll()
	}
	return m, nil
}

func (m menuModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.rebuild()
	case tea.KeyBackspace:
		if r := []rune(m.filter); len(r) > 0 {
			m.filter = string(r[:len(r)-1])
			m.rebuild()
		}
	case tea.KeySpace:
		m.filter += " "
		m.cursor = 0
		m.rebuild()
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.cursor = 0
		m.rebuild()
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("menu.title")))
	b.WriteString("\n")

	if len(m.displayed) == 0 {
		b.WriteString(descriptionStyle.Render(i18n.T("menu.no_match")))
		b.WriteString("\n")
	}
	end := min(m.offset+m.visibleRows(), len(m.displayed))
	for row := m.offset; row < end; row++ {
		a := m.accounts[m.displayed[row]]
		desc := descriptionStyle.Render(i18n.T("menu.item_description", a.Username, a.Iteration))
		if row == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + a.Domain))
		} else {
			b.WriteString(itemStyle.Render("  " + a.Domain))
		}
		b.WriteString("  " + desc + "\n")
	}

	b.WriteString("\n")
	if m.filtering || m.filter != "" {
		b.WriteString(filterStyle.Render(i18n.T("menu.search", m.filter)))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(i18n.T("menu.status", len(m.displayed), len(m.accounts))))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}
