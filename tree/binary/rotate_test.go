package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/ordtree/tree"
)

func TestRotateLeft(t *testing.T) {
	tr := treeOf(10, 5, 15, 12, 20)

	require.True(t, tr.RotateLeft(10))

	assert.Equal(t, []int{5, 10, 12, 15, 20}, keys(tr))
	assert.Equal(t, 5, tr.Len())
	root, ok := tr.Root()
	require.True(t, ok)
	assert.Equal(t, 15, root, "the old root is no longer root")
	assert.Equal(t, `15
├─L─10
│   ├─L─5
│   └─R─12
└─R─20
`, tr.String())
	assert.NoError(t, tr.Validate())
}

func TestRotateRight(t *testing.T) {
	tr := treeOf(10, 5, 15, 3, 7)

	require.True(t, tr.RotateRight(10))

	assert.Equal(t, []int{3, 5, 7, 10, 15}, keys(tr))
	root, _ := tr.Root()
	assert.Equal(t, 5, root)
	assert.Equal(t, `5
├─L─3
└─R─10
    ├─L─7
    └─R─15
`, tr.String())
	assert.NoError(t, tr.Validate())
}

func TestRotate_Inner(t *testing.T) {
	tr := treeOf(10, 5, 15, 12, 20, 3)

	require.True(t, tr.RotateLeft(15))
	root, _ := tr.Root()
	assert.Equal(t, 10, root)
	assert.Equal(t, `10
├─L─5
│   └─L─3
└─R─20
    └─L─15
        └─L─12
`, tr.String())
	assert.Equal(t, []int{3, 5, 10, 12, 15, 20}, keys(tr))
	assert.NoError(t, tr.Validate())

	require.True(t, tr.RotateRight(5))
	assert.Equal(t, []int{3, 5, 10, 12, 15, 20}, keys(tr))
	assert.NoError(t, tr.Validate())
}

func TestRotate_Fails(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(tr *Tree[int]) bool
	}{
		{
			name:   "left absent",
			rotate: func(tr *Tree[int]) bool { return tr.RotateLeft(99) },
		},
		{
			name:   "right absent",
			rotate: func(tr *Tree[int]) bool { return tr.RotateRight(99) },
		},
		{
			name:   "left without right child",
			rotate: func(tr *Tree[int]) bool { return tr.RotateLeft(12) },
		},
		{
			name:   "left on leaf",
			rotate: func(tr *Tree[int]) bool { return tr.RotateLeft(20) },
		},
		{
			name:   "right without left child",
			rotate: func(tr *Tree[int]) bool { return tr.RotateRight(5) },
		},
		{
			name:   "right on leaf",
			rotate: func(tr *Tree[int]) bool { return tr.RotateRight(7) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 5 and 12 each have a single child, 7, 11 and 20 are leaves
			tr := treeOf(10, 5, 15, 12, 20, 7, 11)
			before := tr.String()

			assert.False(t, tt.rotate(tr))
			assert.Equal(t, before, tr.String())
			assert.Equal(t, 7, tr.Len())
			assert.NoError(t, tr.Validate())
		})
	}

	var empty Tree[int]
	assert.False(t, empty.RotateLeft(1))
	assert.False(t, empty.RotateRight(1))
}

func TestRotate_Inverse(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		at      int
	}{
		{name: "root", inserts: []int{10, 5, 15, 12, 20}, at: 10},
		{name: "inner", inserts: []int{10, 5, 15, 12, 20, 11, 13}, at: 15},
		{name: "no inner subtree", inserts: []int{1, 2, 3}, at: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := treeOf(tt.inserts...)
			before := snapshot(tr)

			promoted := tr.nodes.At(tr.search(tt.at)).Right
			require.NotEqual(t, tree.Nil, promoted)
			promotedKey := tr.nodes.At(promoted).Key

			require.True(t, tr.RotateLeft(tt.at))
			assert.NotEqual(t, before, snapshot(tr))
			require.True(t, tr.RotateRight(promotedKey))

			assert.Equal(t, before, snapshot(tr), "topology restored")
			assert.NoError(t, tr.Validate())
		})
	}
}

// snapshot captures every link in the tree, keyed by node ref.
func snapshot(tr *Tree[int]) map[tree.Ref]tree.Node[int] {
	s := make(map[tree.Ref]tree.Node[int])
	var walk func(n tree.Ref)
	walk = func(n tree.Ref) {
		if n == tree.Nil {
			return
		}
		s[n] = *tr.nodes.At(n)
		walk(s[n].Left)
		walk(s[n].Right)
	}
	walk(tr.root)
	s[tree.Nil] = tree.Node[int]{Left: tr.root}
	return s
}
