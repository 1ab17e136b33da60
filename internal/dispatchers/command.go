package dispatchers

import (
	"fmt"
	"slices"
	"strings"

	"github.com/footprint-tools/twig/internal/token"
)

// Command binds a name and its aliases to a tree of accepted argument
// shapes. A Command is immutable and safe for concurrent use.
type Command struct {
	spec CommandSpec
	root *Internal
}

// NewCommand builds a command. build declares the shapes that may follow
// the name; it must declare at least one, otherwise NewCommand panics with
// ErrNoChildren.
func NewCommand(spec CommandSpec, build func(b *Builder)) *Command {
	b := &Builder{}
	build(b)
	return &Command{
		spec: spec,
		root: NewInternal(nameToken(spec), b.nodes()...),
	}
}

// nameToken matches the command name or any alias.
func nameToken(spec CommandSpec) token.Token[string] {
	names := spec.Names()

	hint := spec.Name
	if len(spec.Aliases) > 0 {
		hint += "(" + strings.Join(spec.Aliases, "|") + ")"
	}

	tok := token.OneOf(!spec.CaseSensitive, names...)
	tok = token.WithHint(tok, hint)
	return token.WithSuggestions(tok, names...)
}

func (c *Command) Name() string {
	return c.spec.Name
}

// Names returns the name followed by the aliases.
func (c *Command) Names() []string {
	return c.spec.Names()
}

func (c *Command) Summary() string {
	return c.spec.Summary
}

func (c *Command) Category() CommandCategory {
	return c.spec.Category
}

// Root returns the root node of the command tree.
func (c *Command) Root() *Internal {
	return c.root
}

// Accepts reports whether word invokes this command.
func (c *Command) Accepts(word string) bool {
	_, ok := c.root.tok.Accept(word)
	return ok
}

// Execute matches args, whose first word is the command name, and runs
// the handler of the first declared path that matches them exactly.
// The handler's Params start with the command name.
func (c *Command) Execute(args []string) AcceptResult {
	return Resolve(c.root, args, true)
}

// Match is Execute without running any handler.
func (c *Command) Match(args []string) AcceptResult {
	return Resolve(c.root, args, false)
}

// Suggest returns completions for the last word of args. args must not be
// empty; to complete a fresh word, pass "" as the last element.
func (c *Command) Suggest(args []string) []string {
	switch res := c.Match(args).(type) {
	case Ok, Matched:
		return nil
	case NotMatched:
		if !res.SelfMatches {
			return res.Node.tok.Suggest(res.Current)
		}
		var out []string
		for _, child := range res.Node.children {
			out = append(out, child.Token().Suggest(res.Current)...)
		}
		return out
	default:
		panic(fmt.Sprintf("dispatchers: unexpected result %T suggesting %q for %s", res, args, c.spec.Name))
	}
}

// Usage returns one line per path of the command, in declaration order.
func (c *Command) Usage() []string {
	return slices.Collect(c.root.Hints())
}
