package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/twig/internal/app"
	"github.com/footprint-tools/twig/internal/completions"
	"github.com/footprint-tools/twig/internal/dispatchers"
	"github.com/footprint-tools/twig/internal/token"
	"github.com/footprint-tools/twig/internal/ui/browser"
	"github.com/footprint-tools/twig/internal/usage"
)

const mainUsage = `usage: twig [--no-color] [--no-pager | --pager=CMD] [-e LINE | MODE ...]

   twig                  start the interactive console
   twig -e LINE          run one console line and exit
   twig complete LINE    print the completions of LINE, one per line
   twig usage            print every accepted command shape
   twig help             print the console commands
   twig browse [LINE]    compose a line with live completions, then run it
   twig completion SHELL print the completion script for bash, zsh or fish
`

var modeSpecs = []completions.Mode{
	{Name: "complete", Summary: "Print the completions of a console line", Line: true},
	{Name: "usage", Summary: "Print every accepted command shape"},
	{Name: "help", Summary: "Print the console commands"},
	{Name: "browse", Summary: "Compose a console line interactively", Line: true},
	{Name: "completion", Summary: "Print a shell completion script", Choices: shellNames()},
}

var flagSpecs = []completions.Flag{
	{Names: []string{"--help", "-h"}, Description: "Show usage"},
	{Names: []string{"--eval", "-e"}, Description: "Run one console line", Line: true},
	{Names: []string{"--no-color"}, Description: "Disable colors"},
	{Names: []string{"--no-pager"}, Description: "Never page output"},
	{Names: []string{"--pager"}, Description: "Page output through CMD"},
}

func shellNames() []string {
	var names []string
	for _, s := range completions.Shells() {
		names = append(names, s.String())
	}
	return names
}

func completionSpec() completions.Spec {
	return completions.Spec{
		Binary: filepath.Base(completions.BinaryPath()),
		Modes:  modeSpecs,
		Flags:  flagSpecs,
	}
}

// newModes builds the first words of the command line. Each handler
// returns the process exit code.
func newModes(a *app.Application, e env) *dispatchers.Registry {
	out := e.stdout
	return dispatchers.NewRegistry(
		dispatchers.NewCommand(dispatchers.CommandSpec{Name: "complete"}, func(b *dispatchers.Builder) {
			complete := func(line string) (any, error) {
				for _, s := range a.Console.Complete(line) {
					fmt.Fprintln(out, s)
				}
				return 0, nil
			}
			b.Leaf(func(p dispatchers.Params) (any, error) {
				return complete("")
			})
			b.End(token.Variadic(token.WithHint(token.Text(), "Line")), func(p dispatchers.Params) (any, error) {
				return complete(strings.Join(dispatchers.Rest[string](p, 1), " "))
			})
		}),
		dispatchers.NewCommand(dispatchers.CommandSpec{Name: "usage"}, func(b *dispatchers.Builder) {
			b.Leaf(func(p dispatchers.Params) (any, error) {
				a.Output.Page(strings.Join(a.Console.Registry().Usage(), "\n") + "\n")
				return 0, nil
			})
		}),
		dispatchers.NewCommand(dispatchers.CommandSpec{Name: "help"}, func(b *dispatchers.Builder) {
			b.Leaf(func(p dispatchers.Params) (any, error) {
				a.Output.Page(dispatchers.Help(a.Console.Registry()))
				return 0, nil
			})
		}),
		dispatchers.NewCommand(dispatchers.CommandSpec{Name: "browse"}, func(b *dispatchers.Builder) {
			browse := func(initial string) (any, error) {
				line, err := e.browse(a.Console.Registry(), initial)
				if errors.Is(err, browser.ErrNotTerminal) {
					return nil, &usage.Error{Kind: usage.ErrUnknown, Message: "twig: browse needs an interactive terminal"}
				}
				if err != nil {
					return nil, err
				}
				if line == "" {
					return 0, nil
				}
				fmt.Fprintln(out, line)
				return usage.ExitCode(a.Console.Run(line)), nil
			}
			b.Leaf(func(p dispatchers.Params) (any, error) {
				return browse("")
			})
			b.End(token.Variadic(token.WithHint(token.Text(), "Line")), func(p dispatchers.Params) (any, error) {
				return browse(strings.Join(dispatchers.Rest[string](p, 1), " "))
			})
		}),
		dispatchers.NewCommand(dispatchers.CommandSpec{Name: "completion"}, func(b *dispatchers.Builder) {
			b.Leaf(func(p dispatchers.Params) (any, error) {
				bin := completions.BinaryPath()
				for _, shell := range completions.Shells() {
					fmt.Fprintf(out, "# %s: add to %s\n%s\n", shell, completions.RcFile(shell), completions.SourceInstructions(shell, bin))
				}
				return 0, nil
			})
			b.End(token.Enum(completions.Shells()...), func(p dispatchers.Params) (any, error) {
				shell := dispatchers.Param[completions.Shell](p, -1)
				if err := completions.PrintCompletions(out, shell, completionSpec()); err != nil {
					return nil, err
				}
				return 0, nil
			})
		}),
	)
}
