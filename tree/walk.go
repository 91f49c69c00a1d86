package tree

// Min returns the leftmost node of the subtree rooted at n,
// or Nil if n is Nil.
func (a *Arena[T]) Min(n Ref) Ref {
	if n == Nil {
		return Nil
	}
	for a.nodes[n].Left != Nil {
		n = a.nodes[n].Left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n,
// or Nil if n is Nil.
func (a *Arena[T]) Max(n Ref) Ref {
	if n == Nil {
		return Nil
	}
	for a.nodes[n].Right != Nil {
		n = a.nodes[n].Right
	}
	return n
}

// Successor returns the node that follows n in-order,
// or Nil if n is the last node.
func (a *Arena[T]) Successor(n Ref) Ref {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if r := a.nodes[n].Right; r != Nil {
		return a.Min(r)
	}

	// Climb until we come up out of a left child.
	child, p := n, a.nodes[n].Parent
	for p != Nil && a.nodes[p].Right == child {
		child, p = p, a.nodes[p].Parent
	}
	return p
}

// Predecessor returns the node that precedes n in-order,
// or Nil if n is the first node.
func (a *Arena[T]) Predecessor(n Ref) Ref {
	// Successor with left and right flipped.
	if l := a.nodes[n].Left; l != Nil {
		return a.Max(l)
	}

	child, p := n, a.nodes[n].Parent
	for p != Nil && a.nodes[p].Left == child {
		child, p = p, a.nodes[p].Parent
	}
	return p
}

// Transplant puts the subtree rooted at v where the subtree rooted
// at u used to hang. If u was the root, *root becomes v.
// v may be Nil. u's own links are left untouched.
func (a *Arena[T]) Transplant(root *Ref, u, v Ref) {
	p := a.nodes[u].Parent

	switch {
	case p == Nil:
		*root = v
	case a.nodes[p].Left == u:
		a.nodes[p].Left = v
	case a.nodes[p].Right == u:
		a.nodes[p].Right = v
	default:
		panic("parent does not hold child")
	}

	if v != Nil {
		a.nodes[v].Parent = p
	}
}

// SetLeft links c as the left child of n, fixing c's back-reference.
// c may be Nil.
func (a *Arena[T]) SetLeft(n, c Ref) {
	a.nodes[n].Left = c
	if c != Nil {
		a.nodes[c].Parent = n
	}
}

// SetRight links c as the right child of n, fixing c's back-reference.
// c may be Nil.
func (a *Arena[T]) SetRight(n, c Ref) {
	a.nodes[n].Right = c
	if c != Nil {
		a.nodes[c].Parent = n
	}
}
