package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Screen geometry. Mouse hit-testing relies on these matching what the
// render functions draw.
const (
	headerLine = 0
	searchLine = 1
	gridTop    = 3

	// cardWidth and cardHeight include the rounded border.
	cardWidth  = 30
	cardHeight = 4
	cardGap    = 1
)

// FlashDuration is how long footer messages stay visible.
const FlashDuration = 3 * time.Second

// rect is a half-open screen rectangle.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// gridColumns returns how many cards fit side by side.
func gridColumns(width int) int {
	return max(1, (width+cardGap)/(cardWidth+cardGap))
}

// gridRows returns the number of card rows for n cards.
func gridRows(n, cols int) int {
	if n <= 0 || cols <= 0 {
		return 0
	}
	return (n + cols - 1) / cols
}

// cardRect returns the screen rectangle of the i-th card on the page.
func cardRect(i, cols int) rect {
	row, col := i/cols, i%cols
	return rect{
		x: col * (cardWidth + cardGap),
		y: gridTop + row*cardHeight,
		w: cardWidth,
		h: cardHeight,
	}
}

// controlsLine returns the y coordinate of the pagination controls when n
// cards are shown.
func controlsLine(n, cols int) int {
	return gridTop + gridRows(n, cols)*cardHeight + 1
}

// centeredRect returns where lipgloss.Place puts a block of the given size
// inside a width x height area.
func centeredRect(block string, width, height int) rect {
	w, h := lipgloss.Width(block), lipgloss.Height(block)
	return rect{
		x: centerOffset(width, w),
		y: centerOffset(height, h),
		w: w,
		h: h,
	}
}

func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return int(math.Round(float64(gap) * float64(lipgloss.Center)))
}
