// Package browser is an interactive completion explorer: type a line,
// watch the completions and usage of the command update, press enter to
// accept it.
package browser

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/twig/internal/dispatchers"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("browser requires an interactive terminal")

// Deps holds the side effects of Browse.
type Deps struct {
	IsTerminal func() bool
	Run        func(tea.Model) (tea.Model, error)
}

// DefaultDeps runs a full screen program on the real terminal.
func DefaultDeps() Deps {
	return Deps{
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Run: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		},
	}
}

// Browse lets the user compose a line against r. It returns the accepted
// line, or "" when the user quit without accepting one.
func Browse(r *dispatchers.Registry, initial string) (string, error) {
	return browse(r, initial, DefaultDeps())
}

func browse(r *dispatchers.Registry, initial string, deps Deps) (string, error) {
	// Bubble Tea needs a real terminal
	if !deps.IsTerminal() {
		return "", ErrNotTerminal
	}

	final, err := deps.Run(New(r, initial))
	if err != nil {
		return "", err
	}

	return final.(Model).Chosen(), nil
}
