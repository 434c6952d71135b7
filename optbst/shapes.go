package optbst

import (
	"github.com/npat-efault/treedp/bintree"
)

// shapes returns every distinct tree over the keys lo..hi-1. The
// empty key range has exactly one shape, the empty tree (nil). For
// each root i, every left shape over lo..i-1 is paired with every
// right shape over i+1..hi-1. Each returned tree owns all of its
// nodes: subtrees are cloned per pair, never shared.
func shapes(lo, hi int) []*bintree.Node {
	if lo >= hi {
		return []*bintree.Node{nil}
	}
	var res []*bintree.Node
	for i := lo; i < hi; i++ {
		lefts := shapes(lo, i)
		rights := shapes(i+1, hi)
		for _, l := range lefts {
			for _, r := range rights {
				res = append(res, bintree.Join(i, l.Clone(), r.Clone()))
			}
		}
	}
	return res
}
