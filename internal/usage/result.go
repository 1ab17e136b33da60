package usage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/twig/internal/dispatchers"
)

const endOfInput = "end of input"

// FromResult turns a resolution outcome into a usage error. Successes
// yield nil, except an Ok whose handler failed. A handler may fail with a
// *Error of its own, which is returned as is. suggestions are attached
// as the words that would have been accepted.
func FromResult(res dispatchers.AcceptResult, suggestions []string) error {
	switch r := res.(type) {
	case dispatchers.Ok:
		if r.Err != nil {
			var u *Error
			if errors.As(r.Err, &u) {
				return u
			}
			return HandlerFailed(r.Err)
		}
		return nil
	case dispatchers.Matched:
		return nil
	case dispatchers.NotMatched:
		return notMatched(r, suggestions)
	default:
		return &Error{
			Kind:    ErrIncompleteCommand,
			Message: "twig: nothing to run",
		}
	}
}

// HandlerFailed wraps an error returned by a command handler.
func HandlerFailed(err error) *Error {
	return &Error{
		Kind:    ErrHandlerFailed,
		Message: fmt.Sprintf("twig: %v", err),
		Err:     err,
	}
}

func notMatched(r dispatchers.NotMatched, suggestions []string) *Error {
	expected := Expected(r)
	if r.Current == "" {
		return &Error{
			Kind:        ErrIncompleteCommand,
			Message:     fmt.Sprintf("twig: incomplete command, expected `%s`", expected),
			Suggestions: suggestions,
		}
	}
	return &Error{
		Kind:        ErrUnexpectedToken,
		Message:     fmt.Sprintf("twig: unexpected `%s`, expected `%s`", r.Current, expected),
		Suggestions: suggestions,
	}
}

// Expected describes what would have been accepted where r failed: the
// node's own hint when the node rejected the word, the hints of its
// children when it accepted the word but none of them could go on.
func Expected(r dispatchers.NotMatched) string {
	if !r.SelfMatches {
		return r.Node.Token().Hint()
	}

	var hints []string
	for _, child := range r.Node.Children() {
		h := child.Token().Hint()
		if h == "" {
			h = endOfInput
		}
		hints = append(hints, h)
	}
	return strings.Join(hints, " | ")
}

// Format renders err for the console: the message, then a "did you
// mean" line when the error carries suggestions.
func Format(err *Error) string {
	if len(err.Suggestions) == 0 {
		return err.Message
	}
	return err.Message + "\n\n" + "Did you mean one of these?\n    " + strings.Join(err.Suggestions, "\n    ")
}
