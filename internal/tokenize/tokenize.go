// Package tokenize splits a raw console line into the words the command
// tree matches against.
package tokenize

import (
	"strings"
	"unicode"
)

// Split breaks line into tokens.
//
// Whitespace separates tokens and runs of whitespace never produce empty
// tokens. A double quote toggles quoting, so "my path" is a single token.
// \" always yields a literal quote, inside or outside quotes. An
// unterminated quote is tolerated: the remaining text becomes the last token.
func Split(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '\\' && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++

		case r == '"':
			inQuotes = !inQuotes
			if !inQuotes {
				flush()
			}

		case unicode.IsSpace(r) && !inQuotes:
			flush()

		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, trimSurrounding(current.String(), `"`))
	}

	return tokens
}

// Partial reports the tokens of line together with the word being typed at
// the end of it. When line ends in whitespace the partial word is empty and
// the caller is completing a fresh slot.
func Partial(line string) (tokens []string, current string) {
	tokens = Split(line)
	if line == "" || (endsInSpace(line) && !openQuote(line)) {
		return append(tokens, ""), ""
	}
	if len(tokens) == 0 {
		return []string{""}, ""
	}
	return tokens, tokens[len(tokens)-1]
}

func endsInSpace(line string) bool {
	r := []rune(line)
	return unicode.IsSpace(r[len(r)-1])
}

// openQuote reports whether line ends inside an unterminated quote.
func openQuote(line string) bool {
	open := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == '"':
			i++
		case runes[i] == '"':
			open = !open
		}
	}
	return open
}

func trimSurrounding(s, delim string) string {
	if len(s) >= 2*len(delim) && strings.HasPrefix(s, delim) && strings.HasSuffix(s, delim) {
		return s[len(delim) : len(s)-len(delim)]
	}
	return s
}

// Quote renders word so that Split reads it back as a single token.
func Quote(word string) string {
	if !strings.ContainsFunc(word, func(r rune) bool { return unicode.IsSpace(r) || r == '"' }) {
		return word
	}
	return `"` + strings.ReplaceAll(word, `"`, `\"`) + `"`
}

// Complete replaces the word being typed at the end of line with word and
// starts a fresh slot after it.
func Complete(line, word string) string {
	return line[:wordStart(line)] + Quote(word) + " "
}

// wordStart returns the byte offset at which the last word of line begins,
// counting an opening quote as part of the word, or len(line) when line
// ends in whitespace outside quotes.
func wordStart(line string) int {
	start := -1
	inQuotes := false
	closed := false
	skip := false

	for i, r := range line {
		if skip {
			skip = false
			continue
		}

		switch {
		case r == '\\' && strings.HasPrefix(line[i+1:], `"`):
			if start < 0 || closed {
				start, closed = i, false
			}
			skip = true

		case r == '"':
			if inQuotes {
				inQuotes, closed = false, true
				continue
			}
			if start < 0 || closed {
				start, closed = i, false
			}
			inQuotes = true

		case unicode.IsSpace(r) && !inQuotes:
			start, closed = -1, false

		default:
			if start < 0 || closed {
				start, closed = i, false
			}
		}
	}

	if start < 0 {
		return len(line)
	}
	return start
}
