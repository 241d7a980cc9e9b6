package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/directory"
)

const detailWidth = 52

// detailModal shows one user. It has no state beyond the record.
type detailModal struct {
	user directory.User
}

func newDetailModal(u directory.User) detailModal {
	return detailModal{user: u}
}

func (d detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Close) {
		return d, nil, true
	}
	return d, nil, false
}

func (d detailModal) Box(theme Theme) string {
	styles := theme.Styles()
	inner := detailWidth - 6 // border + padding

	var b strings.Builder
	b.WriteString(styles.Badge.Render(" " + d.user.Initials() + " "))
	b.WriteString(" ")
	b.WriteString(styles.Text.Bold(true).Render(truncate(d.user.DisplayName(), inner-5)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"Email", d.user.Email},
		{"Company", d.user.CompanyName},
		{"Location", d.user.Location()},
		{"Image", d.user.ImageURL},
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)).Width(10)
	for _, row := range rows {
		b.WriteString(label.Render(row.label))
		b.WriteString(styles.Text.Render(truncate(orDash(row.value), inner-10)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc/x or click outside to close"))

	return styles.Modal.Width(detailWidth - 2).Render(b.String())
}
