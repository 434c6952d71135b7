/*

Balance an arbitrary binary search tree (BST) using the
Day-Stout-Warren (DSW) algorithm. See:

  http://dl.acm.org/citation.cfm?id=820173
  http://www.eecs.umich.edu/~qstout/pap/CACM86.pdf

*/

package bintree

// treeToVine transforms the tree pointed to by "root" to a vine (a
// tree where every node's left subtree is empty) by performing
// successive right rotations. It also counts the number of nodes in
// the tree.
//
//      (d)        (b)      a       a
//      / \        / \       \       \
//     b   e  =>  a   d  =>   b   =>  b
//    / \            / \       \       \
//   a   c          c   e      (d)      c
//                             / \       \
//                            c   e       d
//                                         \
//                                          e
//
// Returns a pointer to the new tree root, and the number of nodes in
// the tree.
func treeToVine(root *Node) (*Node, int) {
	var vt *Node // vine tail
	rm := root   // remainder
	sz := 0
	for rm != nil {
		if rm.l == nil {
			vt, rm = rm, rm.r
			sz++
			continue
		}
		// Rotate right
		//
		//       d <-rm     b <-rm
		//      / \        / \
		// t-> b   e  =>  a   d
		//    / \            / \
		//   a   c          c   e
		//
		t := rm.l
		rm.l = t.r
		t.r = rm
		if vt == nil {
			root = t
		} else {
			vt.r = t
		}
		rm = t
	}
	return root, sz
}

// compress performs "count" left rotations, pivoted on the 1st,
// 3rd, 5th, etc nodes of the right spine of the tree:
//
//    (a)             b              b
//      \            / \            / \
//       b     1    a  (c)    2    a   d
//        \    =>        \    =>      / \
//         c              d          c   e
//          \              \
//           d              e
//            \
//             e
//
// The caller must make sure that "count" rotations are possible on
// the given tree. Returns a pointer to the new tree root.
func compress(root *Node, count int) *Node {
	var sc, ch *Node // scanner, child
	for i := 0; i < count; i++ {
		if sc == nil {
			ch = root
			root = ch.r
		} else {
			ch = sc.r
			sc.r = ch.r
		}
		sc = ch.r
		ch.r = sc.l
		sc.l = ch
	}
	return root
}

// floorPow2 returns 2 ^ floor(log2(i)), for i >= 1.
func floorPow2(i int) int {
	r := 1
	for r <= i {
		r <<= 1
	}
	return r >> 1
}

// vineToTree transforms the vine pointed to by "root" to a
// route-balanced tree by performing multiple compress operations.
func vineToTree(root *Node, sz int) *Node {
	lc := sz + 1 - floorPow2(sz+1)
	root = compress(root, lc)
	sz -= lc
	for sz > 1 {
		root = compress(root, sz>>1)
		sz >>= 1
	}
	return root
}

// Balance rebalances the tree in place using the DSW algorithm, in
// O(n) time and constant additional space. The in-order key sequence
// is preserved. The height of the resulting tree is floor(log2(n)) +
// 1. Returns a pointer to the new tree root.
func (tree *Node) Balance() *Node {
	tree, sz := treeToVine(tree)
	return vineToTree(tree, sz)
}

// Vine returns a degenerate tree (every left subtree empty) holding
// the keys 0..n-1.
func Vine(n int) *Node {
	var tree *Node
	for k := n - 1; k >= 0; k-- {
		tree = Join(k, nil, tree)
	}
	return tree
}
