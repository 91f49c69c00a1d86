package tree

// RotateLeft rotates the node n to the left and returns
// the node that now occupies its old position.
// For example, this is the result of calling RotateLeft on n:
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// The right child p is returned. The ordering m < n < o < p < q
// is always preserved. o and q may be Nil.
// If n has no right child, nothing changes and ok is false.
// If n was the root, *root is updated.
func (a *Arena[T]) RotateLeft(root *Ref, n Ref) (p Ref, ok bool) {
	if n == Nil {
		return Nil, false
	}

	p = a.nodes[n].Right
	if p == Nil {
		return Nil, false
	}

	a.SetRight(n, a.nodes[p].Left)
	a.Transplant(root, n, p)
	a.SetLeft(p, n)

	return p, true
}

// RotateRight rotates the node n to the right and returns
// the node that now occupies its old position.
// For example, this is the result of calling RotateRight on n:
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// The left child l is returned. The ordering k < l < m < n < o
// is always preserved. k and m may be Nil.
// If n has no left child, nothing changes and ok is false.
// If n was the root, *root is updated.
func (a *Arena[T]) RotateRight(root *Ref, n Ref) (l Ref, ok bool) {
	if n == Nil {
		return Nil, false
	}

	l = a.nodes[n].Left
	if l == Nil {
		return Nil, false
	}

	a.SetLeft(n, a.nodes[l].Right)
	a.Transplant(root, n, l)
	a.SetRight(l, n)

	return l, true
}
