// Package ui holds terminal output helpers shared by the twig binary.
//
// The pager runs whatever command the --pager flag, the pager setting or
// $PAGER names, the way git and man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// Pager writes long output, through a pager program when out is a
// terminal.
type Pager struct {
	out        io.Writer
	disabled   bool
	override   string
	config     func(string) (string, bool)
	env        func(string) string
	isTerminal func() bool
	run        func(name string, args []string, content string) error
}

// PagerOption configures a Pager.
type PagerOption func(*Pager)

// WithPagerDisabled always writes directly (--no-pager).
func WithPagerDisabled() PagerOption {
	return func(p *Pager) { p.disabled = true }
}

// WithPagerOverride uses cmd ahead of config and environment (--pager=cmd).
func WithPagerOverride(cmd string) PagerOption {
	return func(p *Pager) { p.override = cmd }
}

// WithConfigGetter reads the pager setting through fn.
func WithConfigGetter(fn func(string) (string, bool)) PagerOption {
	return func(p *Pager) { p.config = fn }
}

// WithEnvGetter reads $PAGER through fn.
func WithEnvGetter(fn func(string) string) PagerOption {
	return func(p *Pager) { p.env = fn }
}

// WithTerminalCheck replaces the test for an interactive out.
func WithTerminalCheck(fn func() bool) PagerOption {
	return func(p *Pager) { p.isTerminal = fn }
}

// WithRunner replaces how the pager program is executed.
func WithRunner(fn func(name string, args []string, content string) error) PagerOption {
	return func(p *Pager) { p.run = fn }
}

// NewPager creates a Pager writing to out.
func NewPager(out io.Writer, opts ...PagerOption) *Pager {
	p := &Pager{
		out: out,
		env: os.Getenv,
	}
	p.isTerminal = func() bool {
		f, ok := p.out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
	p.run = p.exec
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsTerminal reports whether output goes to an interactive terminal.
func (p *Pager) IsTerminal() bool {
	return p.isTerminal()
}

// Command returns the pager program that Page would run, or ok=false
// when content would be written directly.
//
// Precedence:
//  1. --no-pager
//  2. out is not a terminal
//  3. --pager=<cmd>
//  4. the pager setting
//  5. $PAGER
//  6. less -FRSX
//
// A command of "cat" bypasses the pager.
func (p *Pager) Command() (name string, args []string, ok bool) {
	if p.disabled || !p.IsTerminal() {
		return "", nil, false
	}

	cmd := p.override
	if cmd == "" && p.config != nil {
		cmd, _ = p.config("pager")
	}
	if cmd == "" && p.env != nil {
		cmd = p.env("PAGER")
	}
	if cmd == "" {
		return "less", []string{"-FRSX"}, true
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

// Page writes content, through the pager when one applies. If the pager
// fails the content is written directly.
func (p *Pager) Page(content string) {
	name, args, ok := p.Command()
	if !ok {
		fmt.Fprint(p.out, content)
		return
	}
	if err := p.run(name, args, content); err != nil {
		fmt.Fprint(p.out, content)
	}
}

func (p *Pager) exec(name string, args []string, content string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = p.out
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
