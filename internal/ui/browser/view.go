package browser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/footprint-tools/twig/internal/ui/splitpanel"
	"github.com/footprint-tools/twig/internal/ui/style"
	"github.com/footprint-tools/twig/internal/usage"
)

// splitMinWidth is the narrowest terminal that gets side by side panels.
const splitMinWidth = 72

var panelConfig = splitpanel.Config{
	SidebarWidthPercent: 0.35,
	SidebarMinWidth:     24,
	SidebarMaxWidth:     40,
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(style.Header("twig"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.width >= splitMinWidth {
		b.WriteString(m.splitView())
	} else {
		b.WriteString(m.stackedView())
	}

	b.WriteString("\n")
	switch {
	case strings.TrimSpace(m.input.Value()) == "":
	case m.problem != nil:
		b.WriteString(style.Error(problemText(m.problem)))
		b.WriteString("\n")
	default:
		b.WriteString(style.Success("ready, press enter to accept"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(keys.shortHelp()))
	b.WriteString("\n")

	return b.String()
}

// window returns the range of suggestions that keeps the cursor visible.
func (m Model) window() (first, last int) {
	if m.cursor >= maxVisible {
		first = m.cursor - maxVisible + 1
	}
	return first, min(first+maxVisible, len(m.suggestions))
}

func (m Model) suggestionLines() []string {
	first, last := m.window()
	lines := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		if i == m.cursor {
			lines = append(lines, "→ "+style.Selected(m.suggestions[i]))
		} else {
			lines = append(lines, "  "+m.suggestions[i])
		}
	}
	return lines
}

func (m Model) usageLines() []string {
	lines := make([]string, len(m.usage))
	for i, line := range m.usage {
		lines[i] = style.Hint(line)
	}
	return lines
}

func (m Model) splitView() string {
	layout := splitpanel.NewLayout(m.width, panelConfig, style.GetColors())
	first, _ := m.window()

	sidebar := splitpanel.Panel{
		Title:      "completions",
		Lines:      m.suggestionLines(),
		ScrollPos:  first,
		TotalItems: len(m.suggestions),
	}
	content := splitpanel.Panel{
		Title: "usage",
		Lines: m.usageLines(),
	}
	// title + visible rows + borders
	return layout.Render(sidebar, content, maxVisible+3) + "\n"
}

func (m Model) stackedView() string {
	var b strings.Builder

	if len(m.suggestions) == 0 {
		b.WriteString(style.Muted("   (no completions)"))
		b.WriteString("\n")
	}
	for _, line := range m.suggestionLines() {
		b.WriteString(" " + line + "\n")
	}
	_, last := m.window()
	if hidden := len(m.suggestions) - last; hidden > 0 {
		b.WriteString(style.Muted("   … " + strconv.Itoa(hidden) + " more"))
		b.WriteString("\n")
	}

	if len(m.usage) > 0 {
		b.WriteString("\n")
		b.WriteString(style.Frame(strings.Join(m.usageLines(), "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

func problemText(err error) string {
	var u *usage.Error
	if errors.As(err, &u) {
		return usage.Format(u)
	}
	return err.Error()
}
