package dispatchers

import (
	"strings"
)

// Registry is an ordered set of commands sharing one input line. Register
// every command before the registry is used; after that it is read-only
// and safe for concurrent use.
type Registry struct {
	commands []*Command
}

func NewRegistry(commands ...*Command) *Registry {
	r := &Registry{}
	for _, c := range commands {
		r.Register(c)
	}
	return r
}

// Register appends c. Earlier commands win when several match.
func (r *Registry) Register(c *Command) {
	r.commands = append(r.commands, c)
}

// Commands returns the commands in registration order.
func (r *Registry) Commands() []*Command {
	return append([]*Command(nil), r.commands...)
}

// Lookup returns the command invoked by name, or nil.
func (r *Registry) Lookup(name string) *Command {
	for _, c := range r.commands {
		if c.Accepts(name) {
			return c
		}
	}
	return nil
}

// Names returns every name and alias, in registration order.
func (r *Registry) Names() []string {
	var names []string
	for _, c := range r.commands {
		names = append(names, c.Names()...)
	}
	return names
}

// ByCategory groups commands by category, keeping registration order.
func (r *Registry) ByCategory() map[CommandCategory][]*Command {
	grouped := make(map[CommandCategory][]*Command)
	for _, c := range r.commands {
		grouped[c.Category()] = append(grouped[c.Category()], c)
	}
	return grouped
}

// Execute runs args against every command in order. The first success is
// returned; otherwise the best failure, the earliest command winning ties.
func (r *Registry) Execute(args []string) AcceptResult {
	return r.resolve(args, (*Command).Execute)
}

// Match is Execute without running any handler.
func (r *Registry) Match(args []string) AcceptResult {
	return r.resolve(args, (*Command).Match)
}

func (r *Registry) resolve(args []string, try func(*Command, []string) AcceptResult) AcceptResult {
	if len(args) == 0 {
		return Inapplicable{}
	}
	var best AcceptResult
	for _, c := range r.commands {
		res := try(c, args)
		if IsSuccess(res) {
			return res
		}
		if best == nil {
			best = res
			continue
		}
		best = Better(best, res)
	}
	if best == nil {
		return Inapplicable{}
	}
	return best
}

// Suggest returns completions for the last word of args. With a single
// word the command names are completed; otherwise the command named by the
// first word completes the rest. An unknown first word yields the names
// closest to it.
func (r *Registry) Suggest(args []string) []string {
	if len(args) == 0 {
		return r.Names()
	}

	if len(args) == 1 {
		var out []string
		prefix := strings.ToLower(args[0])
		for _, name := range r.Names() {
			if strings.HasPrefix(strings.ToLower(name), prefix) {
				out = append(out, name)
			}
		}
		return out
	}

	if c := r.Lookup(args[0]); c != nil {
		return c.Suggest(args)
	}
	return r.Similar(args[0], defaultSuggestionsCount)
}

// Similar returns up to max names within a small edit distance of input.
func (r *Registry) Similar(input string, max int) []string {
	return FindSimilarCommands(input, r.Names(), max)
}
