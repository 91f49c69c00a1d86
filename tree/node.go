// Package tree holds the node storage and structural primitives
// shared by the tree implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Ref addresses a Node inside an Arena.
// Refs stay stable for the lifetime of the node they point to.
type Ref uint32

// Nil is the absent Ref. Slot 0 of every arena is reserved for it.
const Nil Ref = 0

// Node is a binary tree node. Links between nodes are Refs into
// the owning Arena, so Parent is a plain back-reference.
type Node[T any] struct {
	Key                 T
	Left, Right, Parent Ref
}

// Arena owns every node of a tree.
// The zero Arena may be used immediately.
//
// Pointers returned by At are only good until the next Alloc,
// which may grow the backing slice. Hold Refs, not pointers.
type Arena[T any] struct {
	// nodes[0] is the Nil slot and is never handed out.
	nodes []Node[T]
	// head of the free list, threaded through Node.Left
	free Ref
	live int
}

// Alloc creates a node holding k with no links and returns its Ref.
// Freed slots are reused before the arena grows.
func (a *Arena[T]) Alloc(k T) Ref {
	if len(a.nodes) == 0 {
		a.nodes = make([]Node[T], 1, 8)
	}

	a.live++

	if a.free != Nil {
		r := a.free
		a.free = a.nodes[r].Left
		a.nodes[r] = Node[T]{Key: k}
		return r
	}

	a.nodes = append(a.nodes, Node[T]{Key: k})
	return Ref(len(a.nodes) - 1)
}

// Free releases the node at r. The caller must have unlinked it
// from the tree already.
func (a *Arena[T]) Free(r Ref) {
	if r == Nil {
		panic("cannot Free Nil")
	}

	a.nodes[r] = Node[T]{Left: a.free}
	a.free = r
	a.live--
}

// At returns the node at r.
func (a *Arena[T]) At(r Ref) *Node[T] {
	if r == Nil {
		panic("cannot dereference Nil")
	}
	return &a.nodes[r]
}

// Live returns the number of allocated nodes.
func (a *Arena[T]) Live() int {
	return a.live
}

// Reset releases every node at once. Existing Refs become invalid.
func (a *Arena[T]) Reset() {
	// zero the slots so keys holding pointers can be collected
	var zero Node[T]
	for i := range a.nodes {
		a.nodes[i] = zero
	}
	if len(a.nodes) > 0 {
		a.nodes = a.nodes[:1]
	}
	a.free = Nil
	a.live = 0
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// Compare orders l against r using only <.
// Two keys are Equal when neither is less than the other.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if r < l {
		return Greater
	} else {
		return Equal
	}
}
