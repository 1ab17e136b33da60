// Package splitpanel lays out two bordered panels side by side: a
// sidebar with a scrollbar and a content panel.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/twig/internal/ui/style"
)

// Panel is the content of one side.
type Panel struct {
	Title      string   // Shown as the first line, muted
	Lines      []string // Visible lines, already scrolled
	ScrollPos  int      // Index of the first visible item
	TotalItems int      // Items in the whole list; defaults to len(Lines)
}

// Config holds the sidebar sizing rules.
type Config struct {
	SidebarWidthPercent float64 // e.g. 0.4 for 40%
	SidebarMinWidth     int
	SidebarMaxWidth     int
}

// Layout holds computed widths and renders the panels.
type Layout struct {
	Width        int
	SidebarWidth int
	ContentWidth int
	FocusSidebar bool
	Colors       style.ColorConfig
}

// NewLayout splits width between the sidebar and the content panel.
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	sidebarWidth := int(float64(width) * cfg.SidebarWidthPercent)
	sidebarWidth = max(sidebarWidth, cfg.SidebarMinWidth)
	sidebarWidth = min(sidebarWidth, cfg.SidebarMaxWidth)

	return &Layout{
		Width:        width,
		SidebarWidth: sidebarWidth,
		ContentWidth: max(width-sidebarWidth, 0),
		FocusSidebar: true,
		Colors:       colors,
	}
}

// SetFocus sets which panel is focused.
func (l *Layout) SetFocus(focusSidebar bool) {
	l.FocusSidebar = focusSidebar
}

// Render draws both panels height lines tall, borders included.
func (l *Layout) Render(sidebar, content Panel, height int) string {
	active := lipgloss.Color(l.Colors.Info)
	dim := lipgloss.Color(l.Colors.Muted)

	left := l.buildPanel(sidebar, l.SidebarWidth, height, l.FocusSidebar, active, dim)
	right := l.buildPanel(content, l.ContentWidth, height, !l.FocusSidebar, active, dim)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (l *Layout) buildPanel(panel Panel, width, height int, focused bool, activeColor, dimColor lipgloss.Color) string {
	// border(2) + padding(2) + scrollbar(2)
	contentWidth := max(width-6, 1)
	visibleHeight := max(height-2, 1)

	var lines []string
	if panel.Title != "" {
		lines = append(lines, style.Muted(panel.Title))
	}
	lines = append(lines, panel.Lines...)
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	scrollbar := BuildScrollbar(visibleHeight, totalItems, panel.ScrollPos, activeColor, dimColor, focused)

	result := make([]string, len(lines))
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w > contentWidth {
			line = truncateString(line, contentWidth)
		} else if w < contentWidth {
			line += strings.Repeat(" ", contentWidth-w)
		}
		result[i] = line + " " + scrollbar[i]
	}

	borderColor := dimColor
	if focused {
		borderColor = activeColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(strings.Join(result, "\n"))
}

// truncateString shortens s to maxWidth cells, ending in "...".
func truncateString(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth-3 {
			return candidate + "..."
		}
	}
	return "..."
}

// SidebarContentWidth returns the usable width inside the sidebar.
func (l *Layout) SidebarContentWidth() int {
	return l.SidebarWidth - 6
}

// MainContentWidth returns the usable width inside the content panel.
func (l *Layout) MainContentWidth() int {
	return l.ContentWidth - 6
}
