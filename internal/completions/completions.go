// Package completions generates shell completion scripts for the twig
// binary. Modes and flags are completed by the shell; console lines after
// -e, complete and browse are completed by calling "twig complete".
package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

func (s Shell) String() string {
	return string(s)
}

// Shells lists the supported shells.
func Shells() []Shell {
	return []Shell{ShellBash, ShellZsh, ShellFish}
}

// Mode is a first word of the twig command line.
type Mode struct {
	Name    string
	Summary string
	// Line is set when the mode takes a console line.
	Line bool
	// Choices are the fixed words the mode takes, if any.
	Choices []string
}

// Flag is a process flag.
type Flag struct {
	Names       []string
	Description string
	// Line is set when the flag takes a console line.
	Line bool
}

// Spec describes what to complete.
type Spec struct {
	Binary string
	Modes  []Mode
	Flags  []Flag
}

func (s Spec) modeNames() []string {
	names := make([]string, len(s.Modes))
	for i, m := range s.Modes {
		names[i] = m.Name
	}
	return names
}

func (s Spec) flagNames() []string {
	var names []string
	for _, f := range s.Flags {
		names = append(names, f.Names...)
	}
	return names
}

// lineWords are the words after which a console line is expected.
func (s Spec) lineWords() []string {
	var words []string
	for _, f := range s.Flags {
		if f.Line {
			words = append(words, f.Names...)
		}
	}
	for _, m := range s.Modes {
		if m.Line {
			words = append(words, m.Name)
		}
	}
	return words
}

// funcName turns the binary name into a shell identifier.
func (s Spec) funcName() string {
	return "_" + strings.NewReplacer("-", "_", ".", "_").Replace(s.Binary)
}

// Script returns the completion script for shell.
func Script(shell Shell, spec Spec) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(spec), nil
	case ShellZsh:
		return GenerateZsh(spec), nil
	case ShellFish:
		return GenerateFish(spec), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// PrintCompletions writes the completion script for shell to w.
func PrintCompletions(w io.Writer, shell Shell, spec Spec) error {
	script, err := Script(shell, spec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// SourceInstructions returns the line that loads the completions into
// the shell.
func SourceInstructions(shell Shell, binPath string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completion %s)"`, binPath, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completion fish | source`, binPath)
	default:
		return ""
	}
}

// RcFile returns the startup file SourceInstructions belongs in.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// BinaryPath returns the resolved path of the running executable, or
// "twig" when it cannot be determined.
func BinaryPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "twig"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}
