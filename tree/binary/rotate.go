package binary

import (
	"go.lepak.sg/ordtree/tree"
)

// RotateLeft rotates the tree to the left at a node with key k,
// promoting that node's right child into its position.
// It returns false and leaves the tree unchanged if k is not in the
// tree or its node has no right child.
//
// Rotation keeps the in-order sequence of keys and the size.
// All cursors and iterators are invalidated.
func (t *Tree[T]) RotateLeft(k T) bool {
	n := t.search(k)
	if n == tree.Nil {
		return false
	}

	_, ok := t.nodes.RotateLeft(&t.root, n)
	return ok
}

// RotateRight rotates the tree to the right at a node with key k,
// promoting that node's left child into its position.
// It returns false and leaves the tree unchanged if k is not in the
// tree or its node has no left child.
//
// Rotation keeps the in-order sequence of keys and the size.
// All cursors and iterators are invalidated.
func (t *Tree[T]) RotateRight(k T) bool {
	n := t.search(k)
	if n == tree.Nil {
		return false
	}

	_, ok := t.nodes.RotateRight(&t.root, n)
	return ok
}
