// Package token defines the typed converters a command tree matches input
// words with, plus the combinators used to build new tokens from existing
// ones.
//
// A token is a capability set: it describes itself (Hint), proposes
// completions for a partially typed word (Suggest) and accepts or rejects a
// single word (Convert). Tokens are immutable and free of side effects, so a
// token can be shared by any number of trees and goroutines.
package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNestedVariadic is raised when a variadic token is wrapped again.
var ErrNestedVariadic = errors.New("token: variadic token cannot be wrapped as variadic again")

const defaultHint = "TOKEN"

// Acceptor is the type-erased view of a Token. Command trees hold
// acceptors so that nodes of different value types can live side by side.
type Acceptor interface {
	// Hint describes the expected input, e.g. "Int" or "on|off".
	Hint() string
	// Suggest returns completion candidates for the partial word current.
	Suggest(current string) []string
	// Accept converts part, reporting false when the word is rejected.
	Accept(part string) (any, bool)
}

// Token converts one raw input word into a T.
type Token[T any] interface {
	Acceptor
	// Convert parses part, reporting false when the word is rejected.
	Convert(part string) (T, bool)
}

// funcToken backs every token in this package.
type funcToken[T any] struct {
	hint    func() string
	suggest func(current string) []string
	convert func(part string) (T, bool)
}

func (t funcToken[T]) Hint() string {
	if t.hint == nil {
		return defaultHint
	}
	return t.hint()
}

func (t funcToken[T]) Suggest(current string) []string {
	if t.suggest == nil {
		return nil
	}
	return t.suggest(current)
}

func (t funcToken[T]) Convert(part string) (T, bool) {
	return t.convert(part)
}

func (t funcToken[T]) Accept(part string) (any, bool) {
	v, ok := t.convert(part)
	if !ok {
		return nil, false
	}
	return v, true
}

// New returns a token that converts words with convert and describes
// itself with hint.
func New[T any](hint string, convert func(part string) (T, bool)) Token[T] {
	return funcToken[T]{
		hint:    func() string { return hint },
		convert: convert,
	}
}

// WithHint overrides the hint of tok.
func WithHint[T any](tok Token[T], hint string) Token[T] {
	return WithHintFunc(tok, func() string { return hint })
}

// WithHintFunc overrides the hint of tok with a lazily computed one.
func WithHintFunc[T any](tok Token[T], hint func() string) Token[T] {
	return funcToken[T]{
		hint:    hint,
		suggest: tok.Suggest,
		convert: tok.Convert,
	}
}

// WithSuggestions makes tok always suggest the given list.
func WithSuggestions[T any](tok Token[T], suggestions ...string) Token[T] {
	return WithSuggestFunc(tok, func(string) []string { return suggestions })
}

// WithSuggestFunc overrides how tok completes a partial word.
func WithSuggestFunc[T any](tok Token[T], suggest func(current string) []string) Token[T] {
	return funcToken[T]{
		hint:    tok.Hint,
		suggest: suggest,
		convert: tok.Convert,
	}
}

// Transform post-processes the values accepted by tok. A word is rejected
// when tok rejects it or when fn reports false.
func Transform[T, R any](tok Token[T], fn func(T) (R, bool)) Token[R] {
	return funcToken[R]{
		hint:    tok.Hint,
		suggest: tok.Suggest,
		convert: func(part string) (R, bool) {
			v, ok := tok.Convert(part)
			if !ok {
				var zero R
				return zero, false
			}
			return fn(v)
		},
	}
}

// union accepts a word when any member does. The first accepting member
// wins, while every member contributes to Hint and Suggest.
type union[T any] struct {
	members []Token[T]
}

// Union combines tokens of the same type.
func Union[T any](tokens ...Token[T]) Token[T] {
	if len(tokens) == 1 {
		return tokens[0]
	}
	return union[T]{members: tokens}
}

func (u union[T]) Hint() string {
	hints := make([]string, len(u.members))
	for i, m := range u.members {
		hints[i] = m.Hint()
	}
	return strings.Join(hints, "|")
}

func (u union[T]) Suggest(current string) []string {
	var out []string
	for _, m := range u.members {
		out = append(out, m.Suggest(current)...)
	}
	return out
}

func (u union[T]) Convert(part string) (T, bool) {
	for _, m := range u.members {
		if v, ok := m.Convert(part); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (u union[T]) Accept(part string) (any, bool) {
	for _, m := range u.members {
		if v, ok := m.Accept(part); ok {
			return v, true
		}
	}
	return nil, false
}

// erased adapts an Acceptor to Token[any].
type erased struct {
	Acceptor
}

func (e erased) Convert(part string) (any, bool) {
	return e.Accept(part)
}

// Combine is the type-erased Union, used when a branch is keyed by tokens
// of different value types.
func Combine(acceptors ...Acceptor) Acceptor {
	if len(acceptors) == 1 {
		return acceptors[0]
	}
	members := make([]Token[any], len(acceptors))
	for i, a := range acceptors {
		members[i] = erased{a}
	}
	return union[any]{members: members}
}

// variadic marks its inner token as repeatable: the matcher keeps applying
// it to the following words until one is rejected.
type variadic[T any] struct {
	Token[T]
}

func (v variadic[T]) Hint() string {
	return v.Token.Hint() + "..."
}

func (variadic[T]) repeatable() {}

// Variadic wraps tok so it consumes a greedy run of words. Wrapping a
// variadic token again panics with ErrNestedVariadic.
func Variadic[T any](tok Token[T]) Token[T] {
	if IsVariadic(tok) {
		panic(fmt.Errorf("%w: %s", ErrNestedVariadic, tok.Hint()))
	}
	return variadic[T]{Token: tok}
}

// IsVariadic reports whether a was produced by Variadic.
func IsVariadic(a Acceptor) bool {
	_, ok := a.(interface{ repeatable() })
	return ok
}
