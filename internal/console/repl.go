package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// LineEditor reads lines from the user. *liner.State implements it.
type LineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// NewEditor opens a liner editor that completes with c and recalls
// history, oldest first. The caller must Close it to restore the
// terminal.
func NewEditor(c *Console, history []string) *liner.State {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(c.Complete)
	for _, line := range history {
		ln.AppendHistory(line)
	}
	return ln
}

// Serve runs lines read from ed until /quit, Ctrl+C or end of input.
// Failed lines are reported and do not stop the loop.
func (c *Console) Serve(ed LineEditor, prompt string) error {
	for !c.done {
		line, err := ed.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(c.deps.Out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ed.AppendHistory(line)
		_ = c.Run(line)
	}
	return nil
}
