// Package bintree implements the binary tree shapes produced and
// consumed by the optimal BST algorithms. Nodes carry a key index
// (the position of the key in the ordered key sequence); the tree
// orders keys the way a binary search tree does: keys in the left
// subtree are smaller than the node's key, keys in the right subtree
// are larger.
package bintree

import (
	"golang.org/x/exp/constraints"
)

// Node is a tree node. A *Node (pointer to the root node) represents
// a tree. A nil *Node is an empty tree (or an empty subtree). Every
// node exclusively owns its two subtrees; no subtree is ever shared
// between two parents.
type Node struct {
	key  int
	l, r *Node
}

// New allocates a single-node tree with the given key.
func New(key int) *Node {
	return &Node{key: key}
}

// Join allocates a node with the given key and attaches l and r as
// its left and right subtrees. Ownership of l and r passes to the new
// node.
func Join(key int, l, r *Node) *Node {
	return &Node{key: key, l: l, r: r}
}

// IsEmpty tests if the tree is empty.
func (tree *Node) IsEmpty() bool {
	return tree == nil
}

// Key returns the key of the tree's root node. Panics on an empty
// tree.
func (tree *Node) Key() int {
	if tree == nil {
		panic("bintree: Key of empty tree")
	}
	return tree.key
}

// Left returns the left subtree (nil for an empty tree).
func (tree *Node) Left() *Node {
	if tree == nil {
		return nil
	}
	return tree.l
}

// Right returns the right subtree (nil for an empty tree).
func (tree *Node) Right() *Node {
	if tree == nil {
		return nil
	}
	return tree.r
}

// Insert adds a node with the given key to the tree, at the position
// the search order dictates. Returns a pointer to the new tree root
// and true, or the unchanged tree and false if the key is already in
// the tree.
func (tree *Node) Insert(key int) (*Node, bool) {
	node := New(key)
	if tree == nil {
		return node, true
	}
	cn := tree
	for {
		if key < cn.key {
			if cn.l == nil {
				cn.l = node
				return tree, true
			}
			cn = cn.l
		} else if key > cn.key {
			if cn.r == nil {
				cn.r = node
				return tree, true
			}
			cn = cn.r
		} else {
			return tree, false
		}
	}
}

// Clone returns a deep copy of the tree. The copy shares no nodes
// with the original.
func (tree *Node) Clone() *Node {
	if tree == nil {
		return nil
	}
	return &Node{key: tree.key, l: tree.l.Clone(), r: tree.r.Clone()}
}

// Equal tests if two trees have the same shape and the same keys at
// the same positions.
func (tree *Node) Equal(o *Node) bool {
	if tree == nil || o == nil {
		return tree == o
	}
	return tree.key == o.key && tree.l.Equal(o.l) && tree.r.Equal(o.r)
}

// BUG(npat): Height and Size are recursive; their stack depth is the
// height of the tree.

// Height returns the height of the tree. The empty tree has height 0.
func (tree *Node) Height() int {
	if tree == nil {
		return 0
	}
	lh := tree.l.Height()
	rh := tree.r.Height()
	if lh < rh {
		return rh + 1
	}
	return lh + 1
}

// Size returns the number of nodes in the tree.
func (tree *Node) Size() int {
	if tree == nil {
		return 0
	}
	return tree.l.Size() + tree.r.Size() + 1
}

// Keys returns the keys of the tree in in-order (ascending, for a
// well formed tree).
func (tree *Node) Keys() []int {
	var ks []int
	sc := tree.NewScanner(false)
	defer sc.Stop()
	for k, ok := sc.Next(); ok; k, ok = sc.Next() {
		ks = append(ks, k)
	}
	return ks
}

// Cost returns the weighted search cost of the tree: the sum, over
// all nodes, of (depth + 1) * w[key], where the root has depth 0. Every
// key in the tree must be a valid index into w.
func Cost[W constraints.Integer | constraints.Float](tree *Node, w []W) W {
	return cost(tree, w, 1)
}

func cost[W constraints.Integer | constraints.Float](tree *Node, w []W, level W) W {
	if tree == nil {
		return 0
	}
	return level*w[tree.key] + cost(tree.l, w, level+1) + cost(tree.r, w, level+1)
}
