// Package ui is roster's Bubble Tea terminal interface.
//
// # Architecture Overview
//
// Model owns a state.Browser and renders only from the Snapshot it returns.
// Every user action (a keystroke in the search box, a page change, a card
// click) goes through the browser and is followed by a fresh snapshot, so
// the cards, the "Page X of Y" label and the Prev/Next enabled flags can
// never disagree with each other.
//
// # Package Structure
//
//   - app.go: Model, Options, Update/View, the fetch command and Run
//   - search.go: search box (bubbles textinput); each edit re-runs the search
//   - cards.go: card grid and cursor
//   - pagination.go: Prev/Next, page label and dot strip (bubbles paginator)
//   - detail.go, comment.go: overlays implementing Modal
//   - header.go, help.go: status bar, footer help and help overlay
//   - layout.go: screen geometry shared by rendering and mouse hit-testing
//   - theme.go, style_helpers.go: palettes and lipgloss helpers
//
// # Screen Layout
//
//	line 0   header
//	line 1   search box
//	line 3+  card grid, or the loading / failure / no-results message
//	         blank line
//	         ← Prev  Page X of Y  Next →  • • •
//	         blank line
//	         footer (help or flash message)
//
// # Event Flow
//
//  1. Init starts the spinner and the one-shot fetch
//  2. usersLoadedMsg or fetchFailedMsg moves the browser out of loading
//  3. Keys and mouse clicks drive search, paging and overlays
//  4. A click outside an open overlay closes it
//
// # Overlay States
//
// Model.modal is nil when no overlay is open. Opening the detail overlay
// does not change the page or the search term.
package ui
