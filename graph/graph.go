// Package graph converts binary trees to parent -> children adjacency
// lists, for inspection and for equality based testing.
package graph

import (
	"github.com/npat-efault/treedp/bintree"
	"github.com/npat-efault/treedp/queue"
)

// Child is an edge target: the identifier and the key of a child
// node.
type Child struct {
	ID  int
	Key int
}

// Graph is the adjacency view of a tree. Nodes are identified by the
// order in which a breadth-first traversal visits them: the root is
// 0, its children follow left to right, and so on.
type Graph struct {
	// Keys[id] is the key of node id.
	Keys []int
	// Children maps a node identifier to the ordered (left before
	// right) list of its children. Leaves have no entry.
	Children map[int][]Child
}

// Export traverses tree breadth-first and returns its adjacency
// view. The tree is not modified. The empty tree yields a graph with
// no nodes.
func Export(tree *bintree.Node) Graph {
	g := Graph{Children: make(map[int][]Child)}
	if tree.IsEmpty() {
		return g
	}
	q := queue.New[*bintree.Node](tree.Size())
	q.Push(tree)
	g.Keys = append(g.Keys, tree.Key())
	for id := 0; !q.Empty(); id++ {
		n := q.Pop()
		for _, c := range [2]*bintree.Node{n.Left(), n.Right()} {
			if c.IsEmpty() {
				continue
			}
			g.Children[id] = append(g.Children[id],
				Child{ID: len(g.Keys), Key: c.Key()})
			g.Keys = append(g.Keys, c.Key())
			q.Push(c)
		}
	}
	return g
}

// Len returns the number of nodes in the graph.
func (g Graph) Len() int {
	return len(g.Keys)
}

// ByKey returns the adjacency view keyed by node keys instead of
// node identifiers: parent key -> ordered child keys. Keys are
// unique within a search tree, so the view is lossless for trees
// produced by the optbst package.
func (g Graph) ByKey() map[int][]int {
	m := make(map[int][]int, len(g.Children))
	for id, cs := range g.Children {
		ks := make([]int, len(cs))
		for i, c := range cs {
			ks[i] = c.Key
		}
		m[g.Keys[id]] = ks
	}
	return m
}
