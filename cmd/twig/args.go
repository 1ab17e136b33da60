package main

import (
	"slices"
	"strings"
)

// splitArgs separates process flags from positional words. "-e LINE" is
// rewritten to "--eval=LINE" so ParsedFlags can read it like any other
// valued flag.
func splitArgs(args []string) (flags, words []string) {
	flags = []string{}
	words = []string{}
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case (a == "-e" || a == "--eval") && i+1 < len(args):
			flags = append(flags, "--eval="+args[i+1])
			i++
		case a == "--":
			return flags, append(words, args[i+1:]...)
		case strings.HasPrefix(a, "-") && a != "-":
			flags = append(flags, a)
		default:
			words = append(words, a)
		}
	}
	return flags, words
}

// unknownFlag returns the first flag twig does not define. Valued flags
// are matched on the part before "=".
func unknownFlag(flags []string) (string, bool) {
	for _, f := range flags {
		name, _, _ := strings.Cut(f, "=")
		if !knownFlag(name) {
			return f, true
		}
	}
	return "", false
}

func knownFlag(name string) bool {
	for _, spec := range flagSpecs {
		if slices.Contains(spec.Names, name) {
			return true
		}
	}
	return false
}
