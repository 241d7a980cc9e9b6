package ui

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/state"
)

const (
	prevLabel = "← Prev"
	nextLabel = "Next →"

	// maxDots is the most pages the dot strip is drawn for.
	maxDots = 20
)

// span is a half-open column range on one line.
type span struct {
	start, end int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

// controlsView is a rendered controls line plus the columns of its
// clickable parts.
type controlsView struct {
	line string
	prev span
	next span
}

// controlsLayout renders Prev, the page label, Next and the dot strip. It is
// rebuilt from the snapshot on every call.
func (m Model) controlsLayout(snap state.Snapshot) controlsView {
	ctl := snap.Controls
	styles := m.theme.Styles()

	prev := styles.ControlDisabled.Render(prevLabel)
	if ctl.PrevEnabled {
		prev = styles.ControlEnabled.Render(prevLabel)
	}
	next := styles.ControlDisabled.Render(nextLabel)
	if ctl.NextEnabled {
		next = styles.ControlEnabled.Render(nextLabel)
	}
	label := styles.Text.Render(ctl.Label())

	const sep = "  "
	v := controlsView{prev: span{0, lipgloss.Width(prev)}}
	x := v.prev.end + len(sep) + lipgloss.Width(label) + len(sep)
	v.next = span{x, x + lipgloss.Width(next)}
	v.line = prev + sep + label + sep + next

	if ctl.TotalPages > 1 && ctl.TotalPages <= maxDots {
		v.line += sep + m.renderDots(snap)
	}
	return v
}

func (m Model) renderDots(snap state.Snapshot) string {
	styles := m.theme.Styles()
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = m.browser.PageSize()
	p.SetTotalPages(snap.Matches)
	p.Page = snap.Controls.Page - 1
	p.ActiveDot = styles.AccentText.Render("•")
	p.InactiveDot = styles.FaintText.Render("•")
	return p.View()
}

// renderControls returns the controls line, or "" when they are hidden.
func (m Model) renderControls() string {
	if !m.snapshot.Controls.Visible {
		return ""
	}
	return m.controlsLayout(m.snapshot).line
}
