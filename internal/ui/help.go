package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var helpTitles = []string{"Search", "Pages", "Cards", "Overlays", "General"}

// renderHelp renders the help overlay from the full key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	groups := m.keys.FullHelp()
	for i, group := range groups {
		if i < len(helpTitles) {
			b.WriteString(styles.AccentText.Bold(true).Render(helpTitles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Click a card to open it. Any key closes help."))

	box := styles.Modal.Width(46).Render(b.String())
	return placeOverlay(m.theme, box, m.width, m.height)
}

// renderFooter shows the flash message when present, otherwise short help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.flash != "" {
		style := styles.SuccessText
		if m.flashWarn {
			style = styles.WarningText
		}
		return styles.Footer.MaxWidth(m.width).Render(style.Render(m.flash))
	}
	m.help.Width = m.width
	return styles.Footer.Render(m.help.View(m.keys))
}

var _ help.KeyMap = keyMap{}
