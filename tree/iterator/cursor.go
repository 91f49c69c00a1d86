package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

// Cursor is a position in a tree.
// It is either at a node, or at the sentinel position which
// stands for both "one past the end" and "one before the beginning".
//
// A Cursor does not own anything. Any insert, delete or rotation
// on the tree invalidates it; using it afterwards is undefined.
type Cursor[T any] struct {
	nodes *tree.Arena[T]
	root  tree.Ref
	at    tree.Ref
}

// NewCursor returns a Cursor at n in the tree rooted at root.
// Pass tree.Nil as n for the sentinel position.
// Note: This is meant to be called by other tree implementations.
func NewCursor[T any](nodes *tree.Arena[T], root, n tree.Ref) Cursor[T] {
	return Cursor[T]{
		nodes: nodes,
		root:  root,
		at:    n,
	}
}

// Valid returns false if c is at the sentinel position.
func (c Cursor[T]) Valid() bool {
	return c.at != tree.Nil
}

// Key returns the key at c. It panics at the sentinel position.
func (c Cursor[T]) Key() T {
	if c.at == tree.Nil {
		panic("Key called on end cursor")
	}
	return c.nodes.At(c.at).Key
}

// Next moves c to the in-order successor.
// From the last node, c moves to the sentinel.
// From the sentinel, c moves to the first node.
func (c *Cursor[T]) Next() {
	if c.at == tree.Nil {
		c.at = c.nodes.Min(c.root)
		return
	}
	c.at = c.nodes.Successor(c.at)
}

// Prev moves c to the in-order predecessor.
// From the first node, c moves to the sentinel.
// From the sentinel, c moves to the last node.
func (c *Cursor[T]) Prev() {
	if c.at == tree.Nil {
		c.at = c.nodes.Max(c.root)
		return
	}
	c.at = c.nodes.Predecessor(c.at)
}

// Equal returns true if c and o are at the same position
// of the same tree.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.nodes == o.nodes && c.at == o.at
}
