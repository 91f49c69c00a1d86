package binary

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"go.lepak.sg/ordtree/tree"
	"go.lepak.sg/ordtree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned when querying the extremes of an empty Tree.
var ErrEmpty = errors.New("tree is empty")

// Tree is a binary search tree. It is not safe for concurrent use;
// guard the whole tree with one lock if it has to be shared.
//
// The zero Tree may be used immediately. Tree must not be passed
// around as a value (ie. just use &Tree{} when creating one), since
// copies would share node storage.
//
// This tree implementation is not self-balancing. RotateLeft and
// RotateRight are there for callers that want to reshape it.
//
// Invariants:
//   - An in-order walk yields keys in non-decreasing order.
//     On insertion, keys less than a node go to its left subtree and
//     everything else, including equal keys, goes to its right subtree.
//   - Every node's Parent is the node holding it as a child.
//     The root has no parent.
//   - The node count equals the number of nodes reachable from the root.
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	nodes tree.Arena[T]
	root  tree.Ref
	count int
}

// search returns the first node with key k on the path from the root,
// or tree.Nil.
func (t *Tree[T]) search(k T) tree.Ref {
	n := t.root

	for n != tree.Nil {
		node := t.nodes.At(n)
		switch tree.Compare(k, node.Key) {
		case tree.Less:
			n = node.Left
		case tree.Greater:
			n = node.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return tree.Nil
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.search(k) != tree.Nil
}

// Find returns a Cursor at a node with key k.
// If k is not in the tree, the Cursor is at the end position.
// With duplicate keys, the Cursor may not be at the first of them
// in order.
func (t *Tree[T]) Find(k T) iterator.Cursor[T] {
	return iterator.NewCursor(&t.nodes, t.root, t.search(k))
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Every time we go right, the node we leave is a candidate,
	// and each later candidate is larger than the last one.
	best := tree.Nil
	for n := t.root; n != tree.Nil; {
		node := t.nodes.At(n)
		if node.Key < k {
			best, n = n, node.Right
		} else {
			n = node.Left
		}
	}

	if best == tree.Nil {
		return
	}
	return t.nodes.At(best).Key, true
}

// Greater returns the smallest key in the tree
// that is greater than k.
// If there is no key in the tree greater than k,
// g is the zero T and ok is false.
func (t *Tree[T]) Greater(k T) (g T, ok bool) {
	best := tree.Nil
	for n := t.root; n != tree.Nil; {
		node := t.nodes.At(n)
		if k < node.Key {
			best, n = n, node.Left
		} else {
			n = node.Right
		}
	}

	if best == tree.Nil {
		return
	}
	return t.nodes.At(best).Key, true
}

// Insert inserts k into the binary tree.
// Duplicates are allowed: a key equal to an existing one goes
// into that node's right subtree.
func (t *Tree[T]) Insert(k T) {
	n, p := t.root, tree.Nil
	var cmp tree.Order

	for n != tree.Nil {
		node := t.nodes.At(n)
		cmp = tree.Compare(k, node.Key)
		switch cmp {
		case tree.Less:
			n, p = node.Left, n
		case tree.Greater, tree.Equal:
			n, p = node.Right, n
		default:
			panic("unreachable")
		}
	}

	newnode := t.nodes.Alloc(k)

	switch {
	case p == tree.Nil:
		t.root = newnode
	case cmp == tree.Less:
		if t.nodes.At(p).Left != tree.Nil {
			panic("impossible")
		}
		t.nodes.SetLeft(p, newnode)
	default:
		if t.nodes.At(p).Right != tree.Nil {
			panic("impossible")
		}
		t.nodes.SetRight(p, newnode)
	}

	t.count++
}

// Min returns the smallest key in the tree.
// It returns ErrEmpty if the tree is empty.
func (t *Tree[T]) Min() (k T, err error) {
	if t.root == tree.Nil {
		return k, ErrEmpty
	}
	return t.nodes.At(t.nodes.Min(t.root)).Key, nil
}

// Max returns the largest key in the tree.
// It returns ErrEmpty if the tree is empty.
func (t *Tree[T]) Max() (k T, err error) {
	if t.root == tree.Nil {
		return k, ErrEmpty
	}
	return t.nodes.At(t.nodes.Max(t.root)).Key, nil
}

// Root returns the key at the root of the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Root() (k T, ok bool) {
	if t.root == tree.Nil {
		return
	}
	return t.nodes.At(t.root).Key, true
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[T]) Len() int {
	return t.count
}

// Empty returns true if the tree has no keys.
func (t *Tree[T]) Empty() bool {
	return t.count == 0
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.nodes.Reset()
	t.root = tree.Nil
	t.count = 0
}

// Begin returns a Cursor at the smallest key.
// For an empty tree, Begin equals End.
func (t *Tree[T]) Begin() iterator.Cursor[T] {
	return iterator.NewCursor(&t.nodes, t.root, t.nodes.Min(t.root))
}

// End returns a Cursor one past the largest key.
// Calling Prev on it moves to the largest key.
func (t *Tree[T]) End() iterator.Cursor[T] {
	return iterator.NewCursor(&t.nodes, t.root, tree.Nil)
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	t.visitInOrder(t.root, f)
}

func (t *Tree[T]) visitInOrder(n tree.Ref, f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == tree.Nil {
		return true
	}
	node := t.nodes.At(n)

	return t.visitInOrder(node.Left, f) &&
		f(node.Key) &&
		t.visitInOrder(node.Right, f)
}

// PreOrder applies f to each key in the tree, visiting each node
// before its children. If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	t.visitPreOrder(t.root, f)
}

func (t *Tree[T]) visitPreOrder(n tree.Ref, f func(k T) bool) bool {
	if n == tree.Nil {
		return true
	}
	node := t.nodes.At(n)

	return f(node.Key) &&
		t.visitPreOrder(node.Left, f) &&
		t.visitPreOrder(node.Right, f)
}

// PostOrder applies f to each key in the tree, visiting each node
// after its children. If f returns false, the iteration is stopped early.
func (t *Tree[T]) PostOrder(f func(k T) bool) {
	t.visitPostOrder(t.root, f)
}

func (t *Tree[T]) visitPostOrder(n tree.Ref, f func(k T) bool) bool {
	if n == tree.Nil {
		return true
	}
	node := t.nodes.At(n)

	return t.visitPostOrder(node.Left, f) &&
		t.visitPostOrder(node.Right, f) &&
		f(node.Key)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return iterator.CoIterate[T](t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(&t.nodes, t.root)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in reverse order, largest first.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(&t.nodes, t.root)
}

// Height returns the actual height of the tree, and the smallest
// height a tree with the same number of nodes could have.
// The empty tree has height 0, a lone root has height 1.
func (t *Tree[T]) Height() (actual, ideal int) {
	return t.height(t.root), bits.Len(uint(t.count))
}

func (t *Tree[T]) height(n tree.Ref) int {
	if n == tree.Nil {
		return 0
	}
	node := t.nodes.At(n)

	l, r := t.height(node.Left), t.height(node.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Balanced returns true if the tree is as short as it can be.
func (t *Tree[T]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == tree.Nil {
		return ""
	}

	t.printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func (t *Tree[T]) printvisit(
	sb *strings.Builder, n tree.Ref, prefix, branch string, initial, isMid bool) {
	node := t.nodes.At(n)

	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(node.Key))
	sb.WriteRune('\n')

	if node.Left != tree.Nil {
		t.printvisit(sb, node.Left, prefix, treeLeftBranch, false, node.Right != tree.Nil)
	}

	if node.Right != tree.Nil {
		t.printvisit(sb, node.Right, prefix, treeRightBranch, false, false)
	}
}
