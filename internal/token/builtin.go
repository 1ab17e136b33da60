package token

import (
	"fmt"
	"regexp"
	"strings"
)

// Empty rejects every word. It is the token of nodes that consume nothing.
func Empty() Token[struct{}] {
	return funcToken[struct{}]{
		hint: func() string { return "" },
		convert: func(string) (struct{}, bool) {
			return struct{}{}, false
		},
	}
}

// Text accepts any word as is.
func Text() Token[string] {
	return New("Text", func(part string) (string, bool) {
		return part, true
	})
}

// TextFunc accepts the words for which keep returns true.
func TextFunc(keep func(string) bool) Token[string] {
	return New("Text", func(part string) (string, bool) {
		return part, keep(part)
	})
}

// TextLen accepts words whose length in runes is within [min, max].
func TextLen(min, max int) Token[string] {
	return New(fmt.Sprintf("Text(Length: %d..%d)", min, max), func(part string) (string, bool) {
		n := len([]rune(part))
		return part, n >= min && n <= max
	})
}

// Literal accepts exactly example. It suggests example while the partial
// word is still a prefix of it.
func Literal(example string, ignoreCase bool) Token[string] {
	return funcToken[string]{
		hint: func() string { return example },
		suggest: func(current string) []string {
			if hasPrefix(example, current, ignoreCase) {
				return []string{example}
			}
			return nil
		},
		convert: func(part string) (string, bool) {
			return part, equal(part, example, ignoreCase)
		},
	}
}

// OneOf accepts any of entries and converts to the declared spelling.
func OneOf(ignoreCase bool, entries ...string) Token[string] {
	return OneOfFunc(ignoreCase, func() []string { return entries })
}

// OneOfFunc is OneOf over a set that is looked up on every use, for
// choices that change while the program runs.
func OneOfFunc(ignoreCase bool, entries func() []string) Token[string] {
	return funcToken[string]{
		hint: func() string { return strings.Join(entries(), "|") },
		suggest: func(current string) []string {
			var out []string
			for _, e := range entries() {
				if hasPrefix(e, current, ignoreCase) {
					out = append(out, e)
				}
			}
			return out
		},
		convert: func(part string) (string, bool) {
			for _, e := range entries() {
				if equal(part, e, ignoreCase) {
					return e, true
				}
			}
			return "", false
		},
	}
}

// Enum accepts the String() form of any of values, ignoring case, and
// suggests all of them.
func Enum[T fmt.Stringer](values ...T) Token[T] {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return funcToken[T]{
		hint: func() string { return strings.Join(names, "|") },
		suggest: func(string) []string {
			return append([]string(nil), names...)
		},
		convert: func(part string) (T, bool) {
			for i, name := range names {
				if strings.EqualFold(name, part) {
					return values[i], true
				}
			}
			var zero T
			return zero, false
		},
	}
}

// Bool accepts true/t/yes/on and false/f/no/off, ignoring case.
func Bool() Token[bool] {
	return funcToken[bool]{
		hint: func() string { return "true|t|yes|on|false|f|no|off" },
		suggest: func(string) []string {
			return []string{"true", "false"}
		},
		convert: func(part string) (bool, bool) {
			switch strings.ToLower(part) {
			case "true", "t", "yes", "on":
				return true, true
			case "false", "f", "no", "off":
				return false, true
			default:
				return false, false
			}
		},
	}
}

// Match is the value produced by Regex: the leftmost match in the word.
type Match struct {
	// Text is the matched substring.
	Text string
	// Groups holds the capture groups, Groups[0] being the whole match.
	Groups []string
	// Start and End are byte offsets of the match in the word.
	Start, End int
}

// Regex accepts words in which re finds a match.
func Regex(re *regexp.Regexp) Token[Match] {
	return New(fmt.Sprintf("Regex(%s)", re.String()), func(part string) (Match, bool) {
		loc := re.FindStringSubmatchIndex(part)
		if loc == nil {
			return Match{}, false
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = part[loc[2*i]:loc[2*i+1]]
			}
		}
		return Match{
			Text:   groups[0],
			Groups: groups,
			Start:  loc[0],
			End:    loc[1],
		}, true
	})
}

func equal(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func hasPrefix(s, prefix string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
	}
	return strings.HasPrefix(s, prefix)
}
