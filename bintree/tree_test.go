package bintree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helpers

func mkdata(n int) []int {
	rng := rand.New(rand.NewSource(42))
	return rng.Perm(n)
}

func mktree(keys []int) *Node {
	var tree *Node
	for _, k := range keys {
		tree, _ = tree.Insert(k)
	}
	return tree
}

func lg2(i int) int {
	if i <= 0 {
		panic("lg2 of zero or negative!")
	}
	r := 0
	for i >>= 1; i != 0; i >>= 1 {
		r++
	}
	return r
}

func assertSorted(t *testing.T, tree *Node, nelems int) {
	t.Helper()
	ks := tree.Keys()
	require.Len(t, ks, nelems)
	for i := range ks {
		require.Equal(t, i, ks[i], "key at in-order position %d", i)
	}
}

// Tests

func TestEmpty(t *testing.T) {
	var tree *Node
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Left())
	assert.Nil(t, tree.Right())
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.Size())
	assert.Empty(t, tree.Keys())
	assert.Nil(t, tree.Clone())
	assert.True(t, tree.Equal(nil))
	assert.Panics(t, func() { tree.Key() })
	assert.Equal(t, 0, Cost(tree, []int{1, 2, 3}))
}

func TestJoin(t *testing.T) {
	//     1
	//    / \
	//   0   2
	tree := Join(1, New(0), New(2))
	assert.Equal(t, 1, tree.Key())
	assert.Equal(t, 0, tree.Left().Key())
	assert.Equal(t, 2, tree.Right().Key())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, []int{0, 1, 2}, tree.Keys())
}

func TestInsert(t *testing.T) {
	const nelems = 100
	keys := mkdata(nelems)
	tree := mktree(keys)
	tree, ok := tree.Insert(keys[0])
	assert.False(t, ok, "inserted duplicate key %d", keys[0])
	tree, ok = tree.Insert(nelems)
	assert.True(t, ok)
	assertSorted(t, tree, nelems+1)
}

func TestSorting(t *testing.T) {
	const nelems = 10000
	assertSorted(t, mktree(mkdata(nelems)), nelems)
}

func TestScannerReverse(t *testing.T) {
	tree := mktree([]int{3, 1, 4, 0, 2})
	sc := tree.NewScanner(true)
	var got []int
	for k, ok := sc.Next(); ok; k, ok = sc.Next() {
		got = append(got, k)
	}
	sc.Stop()
	assert.Equal(t, []int{4, 3, 2, 1, 0}, got)
}

func TestScannerStop(t *testing.T) {
	tree := mktree(mkdata(1000))
	sc := tree.NewScanner(false)
	k, ok := sc.Next()
	require.True(t, ok)
	assert.Equal(t, 0, k)
	sc.Stop()
}

func TestCloneEqual(t *testing.T) {
	tree := mktree(mkdata(50))
	cl := tree.Clone()
	require.True(t, tree.Equal(cl))
	require.True(t, cl.Equal(tree))

	// Mutating the clone must not affect the original
	cl, _ = cl.Insert(1000)
	assert.False(t, tree.Equal(cl))
	assert.Equal(t, 50, tree.Size())
	assert.Equal(t, 51, cl.Size())

	assert.False(t, Join(1, New(0), nil).Equal(Join(0, nil, New(1))))
	assert.False(t, New(0).Equal(nil))
}

func TestCost(t *testing.T) {
	//     2
	//    /
	//   0
	//    \
	//     1
	tree := Join(2, Join(0, nil, New(1)), nil)
	assert.Equal(t, 50*1+34*2+8*3, Cost(tree, []int{34, 8, 50}))
	assert.InDelta(t, 0.5*1+0.25*2+0.25*3, Cost(tree, []float64{0.25, 0.25, 0.5}), 1e-12)
	assert.Equal(t, 7, Cost(New(0), []int{7}))
}

func TestVine(t *testing.T) {
	tree := Vine(5)
	assert.Equal(t, 5, tree.Height())
	assertSorted(t, tree, 5)
	assert.Nil(t, Vine(0))
}

func TestBalance(t *testing.T) {
	const nelems = 10000

	// Sequential keys (right-heavy vine)
	tree := Vine(nelems)
	require.Equal(t, nelems, tree.Height())
	tree = tree.Balance()
	assert.Equal(t, lg2(nelems)+1, tree.Height())
	assertSorted(t, tree, nelems)

	// Random keys
	tree = mktree(mkdata(nelems))
	t.Logf("RAN: Unbal. tree height %d", tree.Height())
	tree = tree.Balance()
	assert.Equal(t, lg2(nelems)+1, tree.Height())
	assertSorted(t, tree, nelems)

	var empty *Node
	assert.Nil(t, empty.Balance())
	assert.True(t, New(0).Equal(New(0).Balance()))
}

// Benchmarks

func BenchmarkInsert(b *testing.B) {
	var tree *Node
	keys := mkdata(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree, _ = tree.Insert(keys[i])
	}
}

func BenchmarkKeys(b *testing.B) {
	tree := mktree(mkdata(b.N))
	b.ResetTimer()
	_ = tree.Keys()
}
