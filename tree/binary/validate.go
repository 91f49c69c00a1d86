package binary

import (
	"errors"
	"fmt"

	"go.lepak.sg/ordtree/tree"
)

// ErrCorrupt is wrapped by the errors returned from Validate.
var ErrCorrupt = errors.New("tree is corrupt")

// Validate checks the structure of the tree and returns an error
// describing the first broken invariant it finds, or nil.
// It takes O(n) time and O(height) extra space.
func (t *Tree[T]) Validate() error {
	if t.nodes.Live() != t.count {
		return fmt.Errorf("count %d but %d nodes allocated: %w",
			t.count, t.nodes.Live(), ErrCorrupt)
	}

	if t.root == tree.Nil {
		if t.count != 0 {
			return fmt.Errorf("no root but count %d: %w", t.count, ErrCorrupt)
		}
		return nil
	}

	if p := t.nodes.At(t.root).Parent; p != tree.Nil {
		return fmt.Errorf("root %v has parent %v: %w",
			t.nodes.At(t.root).Key, t.nodes.At(p).Key, ErrCorrupt)
	}

	// Depth first, checking back-references. A node with a wrong
	// parent is reported before it can be visited twice, so this
	// also terminates on corrupt trees.
	reachable := 0
	stack := []tree.Ref{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		reachable++
		if reachable > t.count {
			return fmt.Errorf("more than %d nodes reachable: %w", t.count, ErrCorrupt)
		}

		node := t.nodes.At(n)
		for _, c := range [...]tree.Ref{node.Left, node.Right} {
			if c == tree.Nil {
				continue
			}
			if parent := t.nodes.At(c).Parent; parent != n {
				return fmt.Errorf("child %v of %v has parent ref %d: %w",
					t.nodes.At(c).Key, node.Key, parent, ErrCorrupt)
			}
			stack = append(stack, c)
		}
	}

	if reachable != t.count {
		return fmt.Errorf("count %d but %d nodes reachable: %w",
			t.count, reachable, ErrCorrupt)
	}

	prev := t.nodes.Min(t.root)
	for n := t.nodes.Successor(prev); n != tree.Nil; prev, n = n, t.nodes.Successor(n) {
		if pk, nk := t.nodes.At(prev).Key, t.nodes.At(n).Key; nk < pk {
			return fmt.Errorf("%v follows %v in-order: %w", nk, pk, ErrCorrupt)
		}
	}

	return nil
}
