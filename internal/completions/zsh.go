package completions

import (
	"fmt"
	"strings"
)

// GenerateZsh returns a zsh completion script.
func GenerateZsh(spec Spec) string {
	var b strings.Builder
	fn := spec.funcName()

	fmt.Fprintf(&b, "#compdef %s\n\n", spec.Binary)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local prev=${words[CURRENT-1]}\n\n")

	b.WriteString("    case $prev in\n")
	if words := spec.lineWords(); len(words) > 0 {
		fmt.Fprintf(&b, "        %s)\n", strings.Join(words, "|"))
		b.WriteString("            local -a lines\n")
		fmt.Fprintf(&b, "            lines=(\"${(@f)$(%s complete -- \"${(Q)words[CURRENT]}\" 2>/dev/null)}\")\n", spec.Binary)
		b.WriteString("            compadd -Q -S '' -- \"${lines[@]}\"\n")
		b.WriteString("            return\n")
		b.WriteString("            ;;\n")
	}
	for _, m := range spec.Modes {
		if len(m.Choices) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", m.Name)
		fmt.Fprintf(&b, "            compadd -- %s\n", strings.Join(m.Choices, " "))
		b.WriteString("            return\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    if [[ ${words[CURRENT]} == -* ]]; then\n")
	b.WriteString("        local -a flags\n")
	b.WriteString("        flags=(\n")
	for _, f := range spec.Flags {
		for _, name := range f.Names {
			fmt.Fprintf(&b, "            '%s:%s'\n", name, zshEscape(f.Description))
		}
	}
	b.WriteString("        )\n")
	b.WriteString("        _describe 'flag' flags\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        local -a modes\n")
	b.WriteString("        modes=(\n")
	for _, m := range spec.Modes {
		fmt.Fprintf(&b, "            '%s:%s'\n", m.Name, zshEscape(m.Summary))
	}
	b.WriteString("        )\n")
	b.WriteString("        _describe 'mode' modes\n")
	b.WriteString("    fi\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "compdef %s %s\n", fn, spec.Binary)
	return b.String()
}

// zshEscape prepares text for a '...:...' _describe entry.
func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", "'\\''")
	return strings.ReplaceAll(s, ":", "\\:")
}
