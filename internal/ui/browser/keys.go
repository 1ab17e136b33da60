package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/twig/internal/ui/style"
)

type keyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Accept   key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "select")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
}

// shortHelp lists the bindings shown in the footer, in display order.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Up, k.Accept, k.Quit}
}

// newHelp returns a help model drawn in the muted theme colors. With
// styling off it renders plain text.
func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " · "
	if !style.Enabled() {
		h.Styles = help.Styles{}
		return h
	}
	colors := style.GetColors()
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Info))
	h.Styles.ShortDesc = muted
	h.Styles.ShortSeparator = muted
	return h
}
