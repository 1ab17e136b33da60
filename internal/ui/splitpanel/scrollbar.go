package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ScrollThumbChar = "█"
	ScrollTrackChar = "│"
)

// BuildScrollbar returns one cell per visible row. The thumb is sized by
// the visible share of totalItems and placed by offset. When everything
// fits the cells are blank.
func BuildScrollbar(viewHeight, totalItems, offset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	bar := make([]string, viewHeight)
	if totalItems <= viewHeight {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumbSize := (viewHeight * viewHeight) / totalItems
	thumbSize = min(max(thumbSize, 1), max(viewHeight-2, 1))

	maxScroll := max(totalItems-viewHeight, 1)
	trackSpace := max(viewHeight-thumbSize, 0)
	thumbPos := min(max((offset*trackSpace)/maxScroll, 0), trackSpace)

	thumbColor := trackColor
	if focused {
		thumbColor = activeColor
	}
	thumb := lipgloss.NewStyle().Foreground(thumbColor)
	track := lipgloss.NewStyle().Foreground(trackColor)

	for i := range viewHeight {
		if i >= thumbPos && i < thumbPos+thumbSize {
			bar[i] = thumb.Render(ScrollThumbChar)
		} else {
			bar[i] = track.Render(ScrollTrackChar)
		}
	}
	return bar
}
