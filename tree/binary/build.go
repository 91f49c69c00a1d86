package binary

import (
	"errors"
	"math/rand"

	"go.lepak.sg/ordtree/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ErrTooManyAttempts is returned by BuildRandomBalanced if no
// balanced tree came up within the allowed number of attempts.
var ErrTooManyAttempts = errors.New("too many attempts")

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	tr := &Tree[int]{}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	for _, n := range nodes {
		tr.Insert(n)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// If maxAttempts > 0 and that many trees were built without one
// being balanced, the last tree is returned with ErrTooManyAttempts.
func BuildRandomBalanced(num int, seed int64, maxAttempts int) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		if maxAttempts > 0 && attempts == maxAttempts {
			return tr, attempts, ErrTooManyAttempts
		}
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		if tr == nil {
			tr = &Tree[int]{}
		} else {
			// reuse the arena's memory
			tr.Clear()
		}
		for _, n := range nodes {
			tr.Insert(n)
		}
	}

	return tr, attempts, nil
}

// indexTraversals checks that pre and in could be the pre- and
// in-order traversals of the same duplicate-free tree, and maps each
// key to its position in the in-order traversal.
func indexTraversals[T constraints.Ordered](pre, in []T) (map[T]int, error) {
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	inOrderMap := make(map[T]int, len(in))
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, errors.New("duplicated key in in-order traversal")
		}
		inOrderMap[v] = i
	}

	return inOrderMap, nil
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal.
// The keys must be unique. The in-order traversal does not have to
// be sorted: the built tree has the given shape even if it is not
// a search tree, in which case searching it gives meaningless results.
func BuildFromPreAndInOrderIter[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	inOrderMap, err := indexTraversals([]T(pre), []T(in))
	if err != nil {
		return nil, err
	}

	if _, ok := inOrderMap[pre[0]]; !ok {
		return nil, errors.New("pre-order key not found in in-order traversal")
	}

	tr := &Tree[T]{}
	tr.root = tr.nodes.Alloc(pre[0])
	tr.count = 1

	for _, toInsert := range pre[1:] {
		toInsertIdx, ok := inOrderMap[toInsert]
		if !ok {
			return nil, errors.New("pre-order key not found in in-order traversal")
		}

		// The idea: walk down the tree to find where toInsert should go
		current, parent := tr.root, tree.Nil

		var result tree.Order
		for current != tree.Nil {
			node := tr.nodes.At(current)
			currentKeyIdx, ok := inOrderMap[node.Key]
			if !ok {
				// This is actually impossible as
				// previous keys in the pre-order traversal
				// would definitely exist in the tree at this point
				panic("current node key not found in in-order traversal")
			}
			// not actually tree-related, this Compare function is just handy
			result = tree.Compare(toInsertIdx, currentKeyIdx)
			switch result {
			case tree.Less:
				// toInsert is first - go left
				current, parent = node.Left, current
			case tree.Greater:
				// current node key is first - go right
				current, parent = node.Right, current
			default:
				// since we've already checked that the in-order traversal
				// doesn't contain any duplicate keys while building inOrderMap,
				// this can only be caused by:
				return nil, errors.New("duplicated key in pre-order traversal")
			}
		}

		newnode := tr.nodes.Alloc(toInsert)
		tr.count++

		switch result {
		case tree.Less:
			tr.nodes.SetLeft(parent, newnode)
		case tree.Greater:
			tr.nodes.SetRight(parent, newnode)
		default:
			panic("unreachable")
		}
	}

	// Every pair of permutations builds some tree, but it is only
	// the right one if it gives back the same pre-order traversal.
	i := 0
	consistent := true
	tr.PreOrder(func(k T) bool {
		consistent = k == pre[i]
		i++
		return consistent
	})
	if !consistent {
		return nil, errors.New("pre- and in-order traversals are inconsistent")
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal.
// The same rules as for BuildFromPreAndInOrderIter apply.
func BuildFromPreAndInOrderRec[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// A dog on the internet told me how to do this
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if _, err := indexTraversals([]T(pre), []T(in)); err != nil {
		return nil, err
	}

	tr := &Tree[T]{}
	root, err := buildFromPreAndInOrderRecVisit(&tr.nodes, []T(pre), []T(in))
	if err != nil {
		return nil, err
	}
	tr.root = root
	tr.count = len(pre)

	return tr, nil
}

func buildFromPreAndInOrderRecVisit[T constraints.Ordered](
	nodes *tree.Arena[T], pre, in []T) (tree.Ref, error) {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) == 0 {
		return tree.Nil, nil
	}

	if len(pre) == 1 {
		if in[0] != pre[0] {
			return tree.Nil, errors.New("pre- and in-order traversals are inconsistent")
		}

		return nodes.Alloc(pre[0]), nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return tree.Nil, errors.New("pre- and in-order traversals are inconsistent")
	}

	inleft, inright := in[0:xi], in[xi+1:]

	preleft, preright := pre[1:xi+1], pre[xi+1:]

	left, err := buildFromPreAndInOrderRecVisit(nodes, preleft, inleft)
	if err != nil {
		return tree.Nil, err
	}
	right, err := buildFromPreAndInOrderRecVisit(nodes, preright, inright)
	if err != nil {
		return tree.Nil, err
	}

	n := nodes.Alloc(x)
	nodes.SetLeft(n, left)
	nodes.SetRight(n, right)

	return n, nil
}
