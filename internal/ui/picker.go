// Package ui is the built-in fallback picker, used when no external
// dmenu-style launcher is configured or installed.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const maxVisible = 15

type reloadMsg struct{}

type model struct {
	entries []string
	filter  string
	cursor  int
	choice  string
	reload  func() ([]string, error)
	changes <-chan struct{}
}

// Pick shows entries in a filterable terminal list and returns the
// chosen line ("" when dismissed). When watch is non-nil the entry
// list is reloaded on every signal, so config edits show up while the
// picker is open.
func Pick(entries []string, reload func() ([]string, error), watch <-chan struct{}) (string, error) {
	m := model{entries: entries, reload: reload, changes: watch}
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	return final.(model).choice, nil
}

func (m model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reloadMsg:
		if m.reload != nil {
			if entries, err := m.reload(); err == nil {
				m.entries = entries
			}
		}
		m.clampCursor()
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			visible := m.visible()
			if m.cursor < len(visible) {
				m.choice = visible[m.cursor]
			}
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case tea.KeyBackspace:
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.clampCursor()
			}
		case tea.KeyRunes, tea.KeySpace:
			m.filter += string(msg.Runes)
			m.clampCursor()
		}
	}
	return m, nil
}

func (m *model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = 0
	}
}

// visible filters entries case-insensitively on every space-separated
// filter word.
func (m model) visible() []string {
	if m.filter == "" {
		return m.entries
	}
	words := strings.Fields(strings.ToLower(m.filter))
	var out []string
entries:
	for _, e := range m.entries {
		lower := strings.ToLower(e)
		for _, w := range words {
			if !strings.Contains(lower, w) {
				continue entries
			}
		}
		out = append(out, e)
	}
	return out
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("netmenu"))
	b.WriteString("  ")
	b.WriteString(promptStyle.Render("> " + m.filter))
	b.WriteString("\n\n")

	visible := m.visible()
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(visible) {
		end = len(visible)
	}
	for i := start; i < end; i++ {
		line := visible[i]
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("no matching entries"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: run  esc: cancel  type to filter"))
	return b.String()
}
