package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/twig/internal/dispatchers"
	"github.com/footprint-tools/twig/internal/tokenize"
	"github.com/footprint-tools/twig/internal/usage"
)

const maxVisible = 8

// Model is the bubbletea model of the browser.
type Model struct {
	input    textinput.Model
	help     help.Model
	registry *dispatchers.Registry

	suggestions []string
	cursor      int
	usage       []string
	problem     error

	chosen    string
	cancelled bool
	width     int
}

// New returns a focused model with initial typed in.
func New(r *dispatchers.Registry, initial string) Model {
	ti := textinput.New()
	ti.Prompt = "twig> "
	ti.Placeholder = "type a command, tab completes"
	ti.CharLimit = 512
	ti.Focus()
	ti.SetValue(initial)
	ti.CursorEnd()

	m := Model{input: ti, help: newHelp(), registry: r}
	m.refresh()
	return m
}

// Chosen returns the accepted line, empty unless enter accepted one.
func (m Model) Chosen() string {
	return m.chosen
}

// Cancelled reports whether the user quit without accepting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Value returns the line as typed so far.
func (m Model) Value() string {
	return m.input.Value()
}

// Suggestions returns the completions of the word being typed.
func (m Model) Suggestions() []string {
	return m.suggestions
}

// Selected returns the highlighted completion, or "".
func (m Model) Selected() string {
	if m.cursor < len(m.suggestions) {
		return m.suggestions[m.cursor]
	}
	return ""
}

// Problem returns why the current line would not run, nil when it would.
func (m Model) Problem() error {
	return m.problem
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		return m, nil

	case tea.KeyMsg:
		switch {

		case key.Matches(msg, keys.Quit):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if len(m.suggestions) > 0 {
				m.cursor = (m.cursor - 1 + len(m.suggestions)) % len(m.suggestions)
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if len(m.suggestions) > 0 {
				m.cursor = (m.cursor + 1) % len(m.suggestions)
			}
			return m, nil

		case key.Matches(msg, keys.Complete):
			if word := m.Selected(); word != "" {
				m.input.SetValue(tokenize.Complete(m.input.Value(), word))
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, keys.Accept):
			if strings.TrimSpace(m.input.Value()) != "" && m.problem == nil {
				m.chosen = m.input.Value()
				return m, tea.Quit
			}
			return m, nil
		}
	}

	previous := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != previous {
		m.refresh()
	}
	return m, cmd
}

// refresh recomputes everything derived from the typed line.
func (m *Model) refresh() {
	line := m.input.Value()
	args, _ := tokenize.Partial(line)

	m.suggestions = m.registry.Suggest(args)
	m.cursor = 0

	m.usage = nil
	if c := m.registry.Lookup(args[0]); c != nil {
		m.usage = c.Usage()
	}

	m.problem = nil
	words := tokenize.Split(line)
	if len(words) == 0 {
		return
	}
	if m.registry.Lookup(words[0]) == nil {
		m.problem = usage.UnknownCommand(words[0], m.registry.Similar(words[0], 3)...)
		return
	}
	m.problem = usage.FromResult(m.registry.Match(words), nil)
}
