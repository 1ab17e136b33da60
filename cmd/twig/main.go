package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/twig/internal/app"
	"github.com/footprint-tools/twig/internal/console"
	"github.com/footprint-tools/twig/internal/dispatchers"
	"github.com/footprint-tools/twig/internal/store"
	"github.com/footprint-tools/twig/internal/ui/browser"
	"github.com/footprint-tools/twig/internal/ui/style"
	"github.com/footprint-tools/twig/internal/usage"
)

// env holds the side effects of run.
type env struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	openStore  func() (*store.Store, error)
	browse     func(r *dispatchers.Registry, initial string) (string, error)
	serve      func(c *console.Console, history []string, prompt string) error
}

func defaultEnv() env {
	return env{
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		openStore: func() (*store.Store, error) {
			return store.New(store.DBPath())
		},
		browse: browser.Browse,
		serve: func(c *console.Console, history []string, prompt string) error {
			ed := console.NewEditor(c, history)
			defer ed.Close()
			return c.Serve(ed, prompt)
		},
	}
}

func main() {
	os.Exit(run(os.Args[1:], defaultEnv()))
}

func run(args []string, e env) int {
	rawFlags, words := splitArgs(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	if f, ok := unknownFlag(rawFlags); ok {
		return fail(e.stderr, usage.InvalidFlag(f))
	}
	if flags.Has("-e") || flags.Has("--eval") {
		return fail(e.stderr, usage.MissingArgument("LINE"))
	}

	a := app.New(app.Options{
		Out:           e.stdout,
		Err:           e.stderr,
		PagerDisabled: flags.Has("--no-pager"),
		PagerOverride: flags.String("--pager", ""),
		NoColor:       flags.Has("--no-color"),
		IsTerminal:    e.isTerminal,
		OpenStore:     e.openStore,
	})
	defer a.Close()

	if flags.Has("--help") || flags.Has("-h") {
		a.Output.Page(mainUsage)
		return 0
	}

	if line := flags.String("--eval", ""); line != "" {
		return usage.ExitCode(a.Console.Run(line))
	}

	if len(words) == 0 {
		if err := e.serve(a.Console, a.HistoryLines(), a.Prompt()); err != nil {
			fmt.Fprintf(e.stderr, "twig: %v\n", err)
			return 1
		}
		return 0
	}

	return runMode(newModes(a, e), words, e.stderr)
}

// runMode executes the mode named by words[0]. Mode handlers return the
// exit code as their value.
func runMode(modes *dispatchers.Registry, words []string, stderr io.Writer) int {
	cmd := modes.Lookup(words[0])
	if cmd == nil {
		return fail(stderr, usage.UnknownCommand(words[0], modes.Similar(words[0], 2)...))
	}

	res := cmd.Execute(words)
	var suggestions []string
	if _, ok := res.(dispatchers.NotMatched); ok {
		suggestions = cmd.Suggest(words)
	}
	if err := usage.FromResult(res, suggestions); err != nil {
		return fail(stderr, err.(*usage.Error))
	}
	code, _ := res.(dispatchers.Ok).Value.(int)
	return code
}

func fail(stderr io.Writer, err *usage.Error) int {
	fmt.Fprintln(stderr, style.Error(usage.Format(err)))
	return err.GetExitCode()
}
