package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

var _ Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	c Cursor[T]
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](nodes *tree.Arena[T], root tree.Ref) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		c: NewCursor(nodes, root, tree.Nil),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but walking backwards.
	if i == nil {
		return false
	}
	i.c.Prev()
	return i.c.Valid()
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.c.Key()
}
