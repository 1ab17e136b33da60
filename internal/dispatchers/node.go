package dispatchers

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/footprint-tools/twig/internal/token"
)

// ErrNoChildren is raised when an internal node is declared without
// children.
var ErrNoChildren = errors.New("dispatchers: internal node must have at least one child")

// Handler runs when input reaches a leaf. It receives every value the
// tokens along the path accepted, in order.
type Handler func(p Params) (any, error)

// Node is a vertex of a command tree: either *Internal or *Leaf. Trees are
// immutable once built; all matching state lives in the per-call walk.
type Node interface {
	// Token is the token matched against the input at this node. Leaves
	// carry a token that rejects everything.
	Token() token.Acceptor
	// Hints yields one usage line per leaf reachable from this node.
	Hints() iter.Seq[string]

	accept(w *walk, cursor int) AcceptResult
}

// Internal consumes one input word (or a greedy run of them when its token
// is variadic) and hands the rest of the input to its children.
type Internal struct {
	tok      token.Acceptor
	children []Node
}

// NewInternal returns an internal node. Children are tried in the order
// given. It panics with ErrNoChildren when children is empty.
func NewInternal(tok token.Acceptor, children ...Node) *Internal {
	if len(children) == 0 {
		panic(fmt.Errorf("%w: token %q", ErrNoChildren, tok.Hint()))
	}
	return &Internal{
		tok:      tok,
		children: append([]Node(nil), children...),
	}
}

func (n *Internal) Token() token.Acceptor {
	return n.tok
}

// Children returns the child nodes in declaration order.
func (n *Internal) Children() []Node {
	return append([]Node(nil), n.children...)
}

func (n *Internal) Hints() iter.Seq[string] {
	return func(yield func(string) bool) {
		self := n.tok.Hint()
		for _, child := range n.children {
			for hint := range child.Hints() {
				line := self
				if strings.TrimSpace(hint) != "" {
					line = self + " " + hint
				}
				if !yield(line) {
					return
				}
			}
		}
	}
}

func (n *Internal) String() string {
	return fmt.Sprintf("Internal(%s)", n.tok.Hint())
}

// Leaf terminates a path. It matches only when the input has been consumed
// exactly.
type Leaf struct {
	handler Handler
}

// NewLeaf returns a leaf bound to h.
func NewLeaf(h Handler) *Leaf {
	return &Leaf{handler: h}
}

var leafToken = token.Empty()

func (l *Leaf) Token() token.Acceptor {
	return leafToken
}

func (l *Leaf) Hints() iter.Seq[string] {
	return func(yield func(string) bool) {
		yield("")
	}
}

func (l *Leaf) String() string {
	return "Leaf"
}
