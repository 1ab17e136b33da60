package dispatchers

import (
	"github.com/footprint-tools/twig/internal/token"
)

// walk is the state of a single resolution. Each call allocates its own,
// so a tree can be matched from many goroutines at once.
type walk struct {
	args    []string
	values  []any
	execute bool
}

// Resolve matches args against the tree rooted at n. With execute set, the
// handler of the matched leaf runs and Ok is returned; otherwise a match
// yields Matched and no handler runs.
func Resolve(n Node, args []string, execute bool) AcceptResult {
	w := &walk{args: args, execute: execute}
	return n.accept(w, 0)
}

func (n *Internal) accept(w *walk, cursor int) AcceptResult {
	if cursor >= len(w.args) {
		return Inapplicable{}
	}

	current := w.args[cursor]
	v, ok := n.tok.Accept(current)
	if !ok {
		return NotMatched{Node: n, SelfMatches: false, Current: current}
	}
	w.values = append(w.values, v)
	next := cursor + 1

	if token.IsVariadic(n.tok) {
		for next < len(w.args) {
			v, ok := n.tok.Accept(w.args[next])
			if !ok {
				break
			}
			w.values = append(w.values, v)
			next++
		}
	}

	// A child that fails part way may have appended values; the next
	// sibling starts again from this node's own values.
	mark := len(w.values)
	var best AcceptResult = Inapplicable{}
	for _, child := range n.children {
		w.values = w.values[:mark]
		res := child.accept(w, next)
		if IsSuccess(res) {
			return res
		}
		best = Better(best, res)
	}

	following := ""
	if next < len(w.args) {
		following = w.args[next]
	}
	return Better(best, NotMatched{Node: n, SelfMatches: true, Current: following})
}

func (l *Leaf) accept(w *walk, cursor int) AcceptResult {
	if cursor != len(w.args) {
		return Inapplicable{}
	}

	if !w.execute {
		return Matched{Values: append([]any(nil), w.values...)}
	}

	value, err := l.handler(Params{values: w.values})
	w.values = nil
	return Ok{Value: value, Err: err}
}
