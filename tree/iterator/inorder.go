package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	c Cursor[T]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any](nodes *tree.Arena[T], root tree.Ref) *InOrder[T] {
	return &InOrder[T]{
		c: NewCursor(nodes, root, tree.Nil),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i == nil {
		return false
	}
	// So, if Next returned false, calling Item will panic,
	// but, if you call Next again, Item will... return the first key in order, again!
	i.c.Next()
	return i.c.Valid()
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.c.Key()
}
