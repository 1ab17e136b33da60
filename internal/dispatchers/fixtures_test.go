package dispatchers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/twig/internal/token"
)

type locale int

const (
	enUS locale = iota
	frFR
)

func (l locale) String() string {
	if l == enUS {
		return "en_us"
	}
	return "fr_fr"
}

// newSetCommand declares:
//
//	/set(/s) locale en_us|fr_fr
//	/set(/s) path Text
func newSetCommand() *Command {
	return NewCommand(CommandSpec{
		Name:     "/set",
		Aliases:  []string{"/s"},
		Summary:  "Change a session setting",
		Category: CategorySettings,
	}, func(b *Builder) {
		b.Branch(token.Literal("locale", true), func(b *Builder) {
			b.End(token.Enum(enUS, frFR), func(p Params) (any, error) {
				return Param[locale](p, -1), nil
			})
		})
		b.Branch(token.Literal("path", true), func(b *Builder) {
			b.End(token.Text(), func(p Params) (any, error) {
				return "path=" + Param[string](p, 2), nil
			})
		})
	})
}

// newAddCommand declares /add Int...
func newAddCommand() *Command {
	return NewCommand(CommandSpec{Name: "/add", Category: CategoryCompute}, func(b *Builder) {
		b.End(token.Variadic(token.Int(10)), func(p Params) (any, error) {
			sum := 0
			for _, v := range Rest[int](p, 1) {
				sum += v
			}
			return sum, nil
		})
	})
}

// newHistoryCommand declares an optional trailing argument:
//
//	/history
//	/history Int(radix=10, 1..100)
func newHistoryCommand() *Command {
	return NewCommand(CommandSpec{Name: "/history", Category: CategorySession}, func(b *Builder) {
		b.Leaf(func(p Params) (any, error) {
			return 10, nil
		})
		b.End(token.IntRange(10, 1, 100), func(p Params) (any, error) {
			return Param[int](p, 1), nil
		})
	})
}

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return fmt.Errorf("unreachable")
}
