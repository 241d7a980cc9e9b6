package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "first or last name"
	ti.CharLimit = 64
	return ti
}

// startSearch focuses the search box.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.searching = true
	return m, m.search.Focus()
}

// handleSearchKey routes keys while the search box has focus. Every edit
// re-runs the search, so the listing always reflects the box contents.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ApplySearch):
		m.search.Blur()
		m.searching = false
		m.applySearch(m.search.Value())
		return m, nil

	case key.Matches(msg, m.keys.ClearSearch):
		m.search.Blur()
		m.search.SetValue("")
		m.searching = false
		m.applySearch("")
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applySearch(m.search.Value())
	}
	return m, cmd
}

// applySearch hands the term to the browser, which resets to page 1.
func (m *Model) applySearch(term string) {
	m.browser.Search(term)
	m.refresh()
	m.cursor = 0
	m.logger.Debug("search",
		zap.String("term", term),
		zap.Int("matches", m.snapshot.Matches),
	)
}

func (m Model) renderSearchBar() string {
	return lipgloss.NewStyle().MaxWidth(m.width).Render(m.search.View())
}
