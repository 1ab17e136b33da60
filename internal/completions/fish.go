package completions

import (
	"fmt"
	"strings"
)

// GenerateFish returns a fish completion script.
func GenerateFish(spec Spec) string {
	var b strings.Builder
	bin := spec.Binary
	lineCompletion := fmt.Sprintf("(%s complete -- (commandline -ct))", bin)

	fmt.Fprintf(&b, "# fish completion for %s\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", bin)

	for _, m := range spec.Modes {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s -d '%s'\n", bin, m.Name, fishEscape(m.Summary))
	}
	b.WriteString("\n")

	for _, f := range spec.Flags {
		var parts []string
		for _, name := range f.Names {
			switch {
			case strings.HasPrefix(name, "--"):
				parts = append(parts, "-l "+strings.TrimPrefix(name, "--"))
			case strings.HasPrefix(name, "-"):
				parts = append(parts, "-s "+strings.TrimPrefix(name, "-"))
			}
		}
		if f.Line {
			parts = append(parts, "-x -a '"+lineCompletion+"'")
		}
		fmt.Fprintf(&b, "complete -c %s %s -d '%s'\n", bin, strings.Join(parts, " "), fishEscape(f.Description))
	}
	b.WriteString("\n")

	for _, m := range spec.Modes {
		switch {
		case m.Line:
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -a '%s'\n", bin, m.Name, lineCompletion)
		case len(m.Choices) > 0:
			fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -a '%s'\n", bin, m.Name, strings.Join(m.Choices, " "))
		}
	}
	return b.String()
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
