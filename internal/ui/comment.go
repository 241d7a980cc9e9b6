package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Comment feedback. The empty warning is drawn inside the box, which hides
// the footer while open.
const (
	EmptyCommentMessage = "Please enter a comment before submitting!"
	commentWidth        = 48
)

// commentSubmittedMsg carries the raw textarea contents on ctrl+s.
type commentSubmittedMsg struct {
	text string
}

// commentModal is a free-form comment box. Submitting does not touch the
// directory listing.
type commentModal struct {
	input   textarea.Model
	warning string
}

func newCommentModal() (commentModal, tea.Cmd) {
	ta := textarea.New()
	ta.Placeholder = "Leave a comment..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetWidth(commentWidth - 6)
	ta.SetHeight(4)
	cmd := ta.Focus()
	return commentModal{input: ta}, cmd
}

func (c commentModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Cancel):
			return c, nil, true
		case key.Matches(msg, keys.Submit):
			text := c.input.Value()
			submit := func() tea.Msg { return commentSubmittedMsg{text: text} }
			if strings.TrimSpace(text) == "" {
				c.warning = EmptyCommentMessage
				return c, submit, false
			}
			return c, submit, true
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if strings.TrimSpace(c.input.Value()) != "" {
		c.warning = ""
	}
	return c, cmd, false
}

func (c commentModal) Box(theme Theme) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Comment"))
	b.WriteString("\n\n")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")
	if c.warning != "" {
		b.WriteString(styles.WarningText.Render(c.warning))
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("ctrl+s submit · esc cancel"))
	return styles.Modal.Width(commentWidth - 2).Render(b.String())
}
