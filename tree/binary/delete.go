package binary

import (
	"go.lepak.sg/ordtree/tree"
)

// Delete removes one occurrence of k from the tree.
// If k is not in the tree, Delete does nothing.
func (t *Tree[T]) Delete(k T) {
	z := t.search(k)
	if z == tree.Nil {
		return
	}

	// copy, the links of z are read after z's neighbours change
	zn := *t.nodes.At(z)

	switch {
	case zn.Left == tree.Nil:
		t.nodes.Transplant(&t.root, z, zn.Right)
	case zn.Right == tree.Nil:
		t.nodes.Transplant(&t.root, z, zn.Left)
	default:
		// z's in-order successor y has no left child.
		// y takes z's place, taking over both of z's subtrees.
		y := t.nodes.Min(zn.Right)
		if t.nodes.At(y).Parent != z {
			t.nodes.Transplant(&t.root, y, t.nodes.At(y).Right)
			t.nodes.SetRight(y, zn.Right)
		}
		t.nodes.Transplant(&t.root, z, y)
		t.nodes.SetLeft(y, zn.Left)
	}

	t.nodes.Free(z)
	t.count--
}
