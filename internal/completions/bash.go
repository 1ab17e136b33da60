package completions

import (
	"fmt"
	"strings"
)

// GenerateBash returns a bash completion script.
func GenerateBash(spec Spec) string {
	var b strings.Builder
	fn := spec.funcName() + "_completions"

	fmt.Fprintf(&b, "# bash completion for %s\n", spec.Binary)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    case \"$prev\" in\n")
	if words := spec.lineWords(); len(words) > 0 {
		fmt.Fprintf(&b, "        %s)\n", strings.Join(words, "|"))
		fmt.Fprintf(&b, "            mapfile -t COMPREPLY < <(%s complete -- \"$cur\" 2>/dev/null)\n", spec.Binary)
		b.WriteString("            return 0\n")
		b.WriteString("            ;;\n")
	}
	for _, m := range spec.Modes {
		if len(m.Choices) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", m.Name)
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(m.Choices, " "))
		b.WriteString("            return 0\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(spec.flagNames(), " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(spec.modeNames(), " "))
	b.WriteString("    fi\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "complete -o nospace -F %s %s\n", fn, spec.Binary)
	return b.String()
}
