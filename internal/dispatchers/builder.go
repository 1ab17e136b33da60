package dispatchers

import "github.com/footprint-tools/twig/internal/token"

// Builder collects the children of one scope of a command tree. The scope is
// explicit: nested scopes receive their own Builder.
type Builder struct {
	children []Node
}

// Branch adds an internal node keyed by tok whose children are declared by
// fn. fn must declare at least one child.
func (b *Builder) Branch(tok token.Acceptor, fn func(b *Builder)) {
	sub := &Builder{}
	fn(sub)
	b.children = append(b.children, NewInternal(tok, sub.children...))
}

// BranchAny is Branch keyed by any of toks.
func (b *Builder) BranchAny(toks []token.Acceptor, fn func(b *Builder)) {
	b.Branch(token.Combine(toks...), fn)
}

// End adds a node keyed by tok that terminates in h.
func (b *Builder) End(tok token.Acceptor, h Handler) {
	b.children = append(b.children, NewInternal(tok, NewLeaf(h)))
}

// EndAny is End keyed by any of toks.
func (b *Builder) EndAny(toks []token.Acceptor, h Handler) {
	b.End(token.Combine(toks...), h)
}

// Leaf terminates the current scope in h, so the input may stop here.
func (b *Builder) Leaf(h Handler) {
	b.children = append(b.children, NewLeaf(h))
}

func (b *Builder) nodes() []Node {
	return b.children
}
