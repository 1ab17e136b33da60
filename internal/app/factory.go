// Package app wires the twig console to its configuration, log, history
// store and output.
package app

import (
	"io"
	"os"
	"strconv"

	"github.com/footprint-tools/twig/internal/config"
	"github.com/footprint-tools/twig/internal/console"
	"github.com/footprint-tools/twig/internal/format"
	"github.com/footprint-tools/twig/internal/log"
	"github.com/footprint-tools/twig/internal/paths"
	"github.com/footprint-tools/twig/internal/store"
	"github.com/footprint-tools/twig/internal/ui"
	"github.com/footprint-tools/twig/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	Out io.Writer
	Err io.Writer

	// Pager options
	PagerDisabled bool
	PagerOverride string

	// NoColor turns styling off regardless of the color setting.
	NoColor bool
	// IsTerminal reports whether Out is interactive. Styling needs it.
	IsTerminal func() bool

	// OpenStore opens the history store. A failure leaves the console
	// without history.
	OpenStore func() (*store.Store, error)
}

// DefaultOptions writes to the process streams and opens the history
// database at its usual location.
func DefaultOptions() Options {
	return Options{
		Out: os.Stdout,
		Err: os.Stderr,
		IsTerminal: func() bool {
			return ui.NewPager(os.Stdout).IsTerminal()
		},
		OpenStore: func() (*store.Store, error) {
			return store.New(store.DBPath())
		},
	}
}

// Application is a console with everything it depends on.
type Application struct {
	Console *console.Console
	// Store is nil when the history database could not be opened.
	Store  *store.Store
	Config map[string]string
	Output *ui.Pager
	Logger *log.Logger
}

// New creates the application. Nothing here is fatal: a broken log file
// or history database is logged and the console runs without it.
func New(opts Options) *Application {
	cfg, _ := config.GetAll()

	if enabled, _ := strconv.ParseBool(cfg["enable_log"]); enabled {
		if err := log.Init(paths.LogFilePath(), log.ParseLevel(cfg["log_level"])); err != nil {
			// No log to report it to.
			_, _ = io.WriteString(opts.Err, "twig: logging disabled: "+err.Error()+"\n")
		}
	}

	color, _ := strconv.ParseBool(cfg["color"])
	styled := color && !opts.NoColor && opts.IsTerminal != nil && opts.IsTerminal()
	style.Init(styled, cfg)

	var styler console.Styler = style.NopStyler{}
	if style.Enabled() {
		styler = style.NewStyler()
	}

	a := &Application{Config: cfg, Logger: log.GetLogger()}

	var history console.History
	if opts.OpenStore != nil {
		st, err := opts.OpenStore()
		if err != nil {
			log.Warn("app: history disabled: %v", err)
		} else {
			a.Store = st
			history = st
			a.pruneHistory()
		}
	}

	session := console.NewSession(store.NewSessionID(), cfg)
	a.Console = console.New(session, console.Deps{
		Out:     opts.Out,
		Err:     opts.Err,
		History: history,
		Config:  config.NewProvider(),
		Logger:  a.Logger,
		Styler:  styler,
		Dates:   format.FromConfig(cfg),
	})
	log.Info("app: session %s started", session.ID)

	var pagerOpts []ui.PagerOption
	if opts.PagerDisabled {
		pagerOpts = append(pagerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		pagerOpts = append(pagerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	if opts.IsTerminal != nil {
		pagerOpts = append(pagerOpts, ui.WithTerminalCheck(opts.IsTerminal))
	}
	pagerOpts = append(pagerOpts, ui.WithConfigGetter(func(key string) (string, bool) {
		v, ok := cfg[key]
		return v, ok
	}))
	a.Output = ui.NewPager(opts.Out, pagerOpts...)

	return a
}

// historyLimit returns the history_limit setting, 0 when unset or invalid.
func (a *Application) historyLimit() int {
	limit, err := strconv.Atoi(a.Config["history_limit"])
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func (a *Application) pruneHistory() {
	limit := a.historyLimit()
	if limit == 0 {
		return
	}
	if n, err := a.Store.Prune(limit); err != nil {
		log.Warn("app: prune history: %v", err)
	} else if n > 0 {
		log.Debug("app: pruned %d history lines", n)
	}
}

// HistoryLines returns the lines to preload into the line editor, oldest
// first.
func (a *Application) HistoryLines() []string {
	if a.Store == nil {
		return nil
	}
	lines, err := a.Store.Lines(a.historyLimit())
	if err != nil {
		log.Warn("app: load history: %v", err)
		return nil
	}
	return lines
}

// Prompt returns the prompt setting.
func (a *Application) Prompt() string {
	return a.Config["prompt"]
}

// Close releases the store and the log file.
func (a *Application) Close() error {
	if a.Store != nil {
		_ = a.Store.Close()
	}
	return log.Close()
}
