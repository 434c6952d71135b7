package optbst

import (
	"github.com/npat-efault/treedp/bintree"
)

// costRecur returns the minimum weighted search cost over the keys
// start..end (inclusive):
//
//	cost(i, j) = 0                    if j < i
//	cost(i, i) = freq[i]
//	cost(i, j) = min over r in [i, j] of
//	             cost(i, r-1) + cost(r+1, j) + sum(freq[i..j])
//
// Results for intervals holding two or more keys are memoized in
// s.costs, and the minimizing root (the smallest one, on ties) in
// s.roots. Both maps are keyed by inclusive intervals.
func (s *Solver[W]) costRecur(start, end int) W {
	if end < start {
		return 0
	}
	if start == end {
		return s.freq[start]
	}
	iv := Interval{start, end}
	if v, ok := s.costs[iv]; ok {
		return v
	}
	var best W
	root := start
	for r := start; r <= end; r++ {
		c := s.costRecur(start, r-1) + s.costRecur(r+1, end)
		if r == start || c < best {
			best, root = c, r
		}
	}
	v := best + s.sums.sum(start, end+1)
	s.costs[iv] = v
	s.roots[iv] = root
	return v
}

// costTable holds the bottom-up solution over the keys 0..n-1. All
// tables are indexed by half-open intervals [j, k).
type costTable[W Weight] struct {
	sum  [][]W
	cost [][]W
	root [][]int
}

// costIter fills the cost tables by increasing interval width. For
// width i and start j (k = i + j):
//
//	sum[j][k]  = sum[j][k-1] + freq[k-1]
//	cost[j][k] = min over r in [j, k) of cost[j][r] + cost[r+1][k]
//	             + sum[j][k]
//
// The answer is cost[0][n].
func costIter[W Weight](freq []W) *costTable[W] {
	n := len(freq)
	t := &costTable[W]{
		sum:  make([][]W, n+1),
		cost: make([][]W, n+1),
		root: make([][]int, n+1),
	}
	for j := range t.cost {
		t.sum[j] = make([]W, n+1)
		t.cost[j] = make([]W, n+1)
		t.root[j] = make([]int, n+1)
	}
	for i := 1; i <= n; i++ {
		for j := 0; j+i <= n; j++ {
			k := i + j
			t.sum[j][k] = t.sum[j][k-1] + freq[k-1]
			var best W
			root := j
			for r := j; r < k; r++ {
				c := t.cost[j][r] + t.cost[r+1][k]
				if r == j || c < best {
					best, root = c, r
				}
			}
			t.cost[j][k] = best + t.sum[j][k]
			t.root[j][k] = root
		}
	}
	return t
}

// buildTree materializes the tree over the keys lo..hi-1 whose
// subtree roots are given by root(lo, hi). root is never called for
// empty or single key ranges.
func buildTree(lo, hi int, root func(lo, hi int) int) *bintree.Node {
	switch hi - lo {
	case 0:
		return nil
	case 1:
		return bintree.New(lo)
	}
	r := root(lo, hi)
	return bintree.Join(r, buildTree(lo, r, root), buildTree(r+1, hi, root))
}
