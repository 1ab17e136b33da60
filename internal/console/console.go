// Package console is the twig command console: it reads lines, matches
// them against the registered commands and prints what the handlers
// return.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/twig/internal/dispatchers"
	"github.com/footprint-tools/twig/internal/format"
	"github.com/footprint-tools/twig/internal/log"
	"github.com/footprint-tools/twig/internal/store"
	"github.com/footprint-tools/twig/internal/tokenize"
	"github.com/footprint-tools/twig/internal/ui/style"
	"github.com/footprint-tools/twig/internal/usage"
)

// History records console lines. *store.Store implements it.
type History interface {
	Append(sessionID, line string, outcome store.Outcome) (int64, error)
	Recent(limit int) ([]store.Entry, error)
}

// Config reads and writes persistent settings. *config.Provider
// implements it.
type Config interface {
	Get(key string) (string, bool)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) (bool, error)
}

// Logger receives diagnostics. *log.Logger implements it.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Styler colors console output. *style.Styler implements it.
type Styler interface {
	Error(text string) string
	Muted(text string) string
}

// Deps are the collaborators of a Console. History and Config may be
// nil, which disables the commands that need them.
type Deps struct {
	Out     io.Writer
	Err     io.Writer
	History History
	Config  Config
	// Logger defaults to a no-op logger.
	Logger Logger
	// Styler defaults to the global style settings.
	Styler Styler
	// Dates formats the timestamps of /history.
	Dates format.Layout
}

// Console executes lines against the twig commands.
type Console struct {
	deps     Deps
	session  *Session
	registry *dispatchers.Registry
	done     bool
}

// New creates a console with the built-in commands registered.
func New(session *Session, deps Deps) *Console {
	if deps.Logger == nil {
		deps.Logger = log.NopLogger{}
	}
	if deps.Styler == nil {
		deps.Styler = style.NewStyler()
	}
	if deps.Dates == (format.Layout{}) {
		deps.Dates = format.New("", "")
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Err == nil {
		deps.Err = io.Discard
	}
	c := &Console{deps: deps, session: session}
	c.registry = dispatchers.NewRegistry(c.commands()...)
	return c
}

// Registry returns the commands of the console.
func (c *Console) Registry() *dispatchers.Registry {
	return c.registry
}

// Session returns the live session settings.
func (c *Console) Session() *Session {
	return c.session
}

// Done reports whether /quit was run.
func (c *Console) Done() bool {
	return c.done
}

// Run executes one line, printing its result or the reason it could not
// run. The returned error is the *usage.Error that was printed, nil on
// success or for a blank line.
func (c *Console) Run(line string) error {
	words := tokenize.Split(line)
	if len(words) == 0 {
		return nil
	}

	err := c.run(words)
	c.record(line, outcomeOf(err))

	if err != nil {
		var u *usage.Error
		if errors.As(err, &u) {
			fmt.Fprintln(c.deps.Err, c.deps.Styler.Error(usage.Format(u)))
		} else {
			fmt.Fprintln(c.deps.Err, c.deps.Styler.Error(err.Error()))
		}
	}
	return err
}

func (c *Console) run(words []string) error {
	cmd := c.registry.Lookup(words[0])
	if cmd == nil {
		c.deps.Logger.Info("console: unknown command %q", words[0])
		return usage.UnknownCommand(words[0], c.registry.Similar(words[0], 3)...)
	}

	if c.session.Verbose {
		if m, ok := cmd.Match(words).(dispatchers.Matched); ok {
			fmt.Fprintln(c.deps.Out, c.deps.Styler.Muted(formatValues(m.Values)))
		}
	}

	res := cmd.Execute(words)
	c.deps.Logger.Debug("console: %s -> %T", strings.Join(words, " "), res)

	var suggestions []string
	if _, failed := res.(dispatchers.NotMatched); failed {
		suggestions = cmd.Suggest(words)
	}
	if err := usage.FromResult(res, suggestions); err != nil {
		var u *usage.Error
		if errors.As(err, &u) && u.Kind == usage.ErrHandlerFailed {
			c.deps.Logger.Error("console: %s failed: %v", cmd.Name(), u.Err)
		}
		return err
	}

	if ok, isOk := res.(dispatchers.Ok); isOk && ok.Value != nil {
		fmt.Fprintln(c.deps.Out, formatValue(ok.Value))
	}
	return nil
}

// Complete returns the full lines tab completion offers for line.
func (c *Console) Complete(line string) []string {
	args, _ := tokenize.Partial(line)
	words := c.registry.Suggest(args)
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = tokenize.Complete(line, w)
	}
	return lines
}

func (c *Console) record(line string, outcome store.Outcome) {
	if c.deps.History == nil {
		return
	}
	if _, err := c.deps.History.Append(c.session.ID, line, outcome); err != nil {
		c.deps.Logger.Warn("console: history not recorded: %v", err)
	}
}

func outcomeOf(err error) store.Outcome {
	var u *usage.Error
	switch {
	case err == nil:
		return store.OutcomeOK
	case !errors.As(err, &u):
		return store.OutcomeFailed
	case u.Kind == usage.ErrUnknownCommand:
		return store.OutcomeUnknownCommand
	case u.Kind == usage.ErrHandlerFailed:
		return store.OutcomeFailed
	default:
		return store.OutcomeRejected
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d:%v", i, v)
	}
	return "matched " + strings.Join(parts, " ")
}
