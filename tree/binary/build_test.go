package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buildImpls = []struct {
	name  string
	fname string
	f     func(pre, in []int) (*Tree[int], error)
}{
	{
		name:  "iter",
		fname: "BuildFromPreAndInOrderIter",
		f:     BuildFromPreAndInOrderIter[[]int, int],
	},
	{
		name:  "rec",
		fname: "BuildFromPreAndInOrderRec",
		f:     BuildFromPreAndInOrderRec[[]int, int],
	},
}

func TestBuildFromPreAndInOrder(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 100
	const size = 100

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())
		tr := BuildRandom(size, seed)
		origStr := tr.String()
		var inOrder, preOrder []int

		tr.InOrder(func(k int) bool {
			inOrder = append(inOrder, k)
			return true
		})

		tr.PreOrder(func(k int) bool {
			preOrder = append(preOrder, k)
			return true
		})

		require.Equal(t, len(inOrder), len(preOrder), "different traversal length")

		origInOrder, origPreOrder := make([]int, len(inOrder)), make([]int, len(preOrder))
		copy(origInOrder, inOrder)
		copy(origPreOrder, preOrder)

		for _, impl := range buildImpls {
			t.Run(fmt.Sprintf("round=%d/%s", i, impl.name), func(t *testing.T) {
				trNew, err := impl.f(preOrder, inOrder)
				require.NoError(t, err)
				assert.Equal(t, origStr, trNew.String(), "different tree was recreated")
				assert.Equal(t, origInOrder, inOrder, "inOrder was mutated")
				assert.Equal(t, origPreOrder, preOrder, "preOrder was mutated")
				assert.Equal(t, size, trNew.Len())
				assert.NoError(t, trNew.Validate())
			})
		}
	}
}

func TestBuildFromPreAndInOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pre, in []int
	}{
		{name: "empty"},
		{name: "different lengths", pre: []int{1, 2}, in: []int{1}},
		{name: "duplicate in in-order", pre: []int{1, 2}, in: []int{1, 1}},
		{name: "duplicate in pre-order", pre: []int{1, 1}, in: []int{1, 2}},
		{name: "missing key", pre: []int{2, 3}, in: []int{1, 2}},
		{name: "inconsistent", pre: []int{2, 3, 1}, in: []int{1, 2, 3}},
	}
	for _, tt := range tests {
		for _, impl := range buildImpls {
			t.Run(tt.name+"/"+impl.name, func(t *testing.T) {
				tr, err := impl.f(tt.pre, tt.in)
				assert.Error(t, err)
				assert.Nil(t, tr)
			})
		}
	}
}

func TestBuildFromPreAndInOrder_Small(t *testing.T) {
	for _, impl := range buildImpls {
		t.Run(impl.name, func(t *testing.T) {
			tr, err := impl.f([]int{4, 2, 1, 3, 6, 5, 7}, []int{1, 2, 3, 4, 5, 6, 7})
			require.NoError(t, err)
			assert.Equal(t, treeOf(4, 2, 6, 1, 3, 5, 7).String(), tr.String())

			one, err := impl.f([]int{1}, []int{1})
			require.NoError(t, err)
			assert.Equal(t, "1\n", one.String())
		})
	}
}

func TestBuildRandom(t *testing.T) {
	tr := BuildRandom(50, 7)
	assert.Equal(t, 50, tr.Len())
	assert.NoError(t, tr.Validate())
	for k := 0; k < 50; k++ {
		assert.True(t, tr.Contains(k))
	}

	// repeatable
	assert.Equal(t, tr.String(), BuildRandom(50, 7).String())

	assert.True(t, BuildRandom(0, 7).Empty())
}

func TestBuildRandomBalanced(t *testing.T) {
	tr, attempts, err := BuildRandomBalanced(7, 1, 0)
	require.NoError(t, err)
	assert.True(t, tr.Balanced())
	assert.Positive(t, attempts)
	assert.Equal(t, 7, tr.Len())
	assert.NoError(t, tr.Validate())

	// Only the 2 of 6 insert orders starting with the middle key are
	// balanced, so with a limit of one most seeds fail. Find one.
	var failed bool
	for seed := int64(0); seed < 100 && !failed; seed++ {
		tr, attempts, err = BuildRandomBalanced(3, seed, 1)
		if err != nil {
			failed = true
			assert.ErrorIs(t, err, ErrTooManyAttempts)
			assert.Equal(t, 1, attempts)
			assert.False(t, tr.Balanced())
		}
	}
	assert.True(t, failed)
}

var trForBench *Tree[int]

func BenchmarkBuildFromPreAndInOrder(b *testing.B) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	sizes := []int{10, 100, 10000}

	for _, size := range sizes {
		tr := BuildRandom(size, int64(seedrd.Uint64()))
		var inOrder, preOrder []int

		tr.InOrder(func(k int) bool {
			inOrder = append(inOrder, k)
			return true
		})

		tr.PreOrder(func(k int) bool {
			preOrder = append(preOrder, k)
			return true
		})

		for _, impl := range buildImpls {
			b.Run(fmt.Sprintf("size=%d/%s", size, impl.name), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					trForBench, _ = impl.f(preOrder, inOrder)
				}
			})
		}
	}
}
