package ui

import (
	"fmt"
	"strings"

	"github.com/five82/roster/internal/state"
)

// renderHeader renders the one-line status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	parts := []string{bg.Render("roster", styles.Logo)}
	switch snap.Phase {
	case state.PhaseLoading:
		parts = append(parts, bg.Render("fetching directory", styles.WarningText))
	case state.PhaseFailed:
		parts = append(parts, bg.Render("directory unavailable", styles.DangerText))
	default:
		parts = append(parts, bg.Render(matchSummary(snap), styles.SuccessText))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	inner := max(0, m.width-styles.Header.GetHorizontalPadding())
	return styles.Header.MaxHeight(1).Render(bg.FillLine(bg.Join(parts, 2), inner))
}

func matchSummary(snap state.Snapshot) string {
	if strings.TrimSpace(snap.Term) == "" {
		return fmt.Sprintf("%d users", snap.Total)
	}
	return fmt.Sprintf("%d of %d match %q", snap.Matches, snap.Total, strings.TrimSpace(snap.Term))
}
