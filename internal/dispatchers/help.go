package dispatchers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/footprint-tools/twig/internal/ui/style"
)

// formatUsage styles the command name in Info color and the argument hints as hints.
func formatUsage(line string) string {
	name, rest, found := strings.Cut(line, " ")
	if !found {
		return style.Info(name)
	}
	return style.Info(name) + " " + style.Hint(rest)
}

// Usage returns the usage lines of every command in registration order.
func (r *Registry) Usage() []string {
	var lines []string
	for _, c := range r.commands {
		lines = append(lines, c.Usage()...)
	}
	return lines
}

// Help renders an overview of every command, grouped by category.
func Help(r *Registry) string {
	var out bytes.Buffer

	out.WriteString("twig - type a command, press tab to complete it\n\n")

	grouped := r.ByCategory()
	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(style.Header(cat.String()))
		out.WriteString("\n")

		for _, c := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-10s", c.Name())), c.Summary())
		}
		out.WriteString("\n")
	}

	out.WriteString("See '/help <command>' for the accepted arguments of a command.\n")
	return out.String()
}

// CommandHelp renders the summary and every usage line of c.
func CommandHelp(c *Command) string {
	var out bytes.Buffer

	out.WriteString(c.Name())
	if c.Summary() != "" {
		out.WriteString(" - ")
		out.WriteString(c.Summary())
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n")
	for _, line := range c.Usage() {
		out.WriteString("   ")
		out.WriteString(formatUsage(line))
		out.WriteString("\n")
	}

	if len(c.spec.Aliases) > 0 {
		out.WriteString("\nALIASES\n   ")
		out.WriteString(strings.Join(c.spec.Aliases, ", "))
		out.WriteString("\n")
	}

	return out.String()
}
