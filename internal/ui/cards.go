package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
)

// cardInner is the text width inside a card's border and padding.
const cardInner = cardWidth - 4

// renderCards lays out one card per record, left to right, wrapping at the
// terminal width.
func (m Model) renderCards(records []directory.User) string {
	styles := m.theme.Styles()
	cols := gridColumns(m.width)
	gap := strings.Repeat(" ", cardGap)

	rows := make([]string, 0, gridRows(len(records), cols))
	for start := 0; start < len(records); start += cols {
		end := min(start+cols, len(records))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, renderCard(records[i], i == m.cursor, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(u directory.User, selected bool, styles Styles) string {
	badge := styles.Badge.Render(" " + u.Initials() + " ")
	name := truncate(u.DisplayName(), cardInner-lipgloss.Width(badge)-1)
	email := styles.MutedText.Render(truncate(orDash(u.Email), cardInner))

	style := styles.Card
	if selected {
		style = styles.CardSelected
		name = styles.AccentText.Bold(true).Render(name)
	}
	return style.Render(badge + " " + name + "\n" + email)
}

// cardAt returns the index of the card under (x, y), or -1.
func (m Model) cardAt(x, y, n int) int {
	cols := gridColumns(m.width)
	for i := 0; i < n; i++ {
		if cardRect(i, cols).contains(x, y) {
			return i
		}
	}
	return -1
}

// moveCursor shifts the card cursor by delta, staying on the page.
func (m *Model) moveCursor(delta int) {
	n := len(m.snapshot.Records)
	if n == 0 {
		m.cursor = 0
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
}
