// Package optbst implements classical dynamic programming algorithms
// over binary search trees (BSTs) built on the ordered key sequence
// 0..n-1, where key i is accessed with frequency freq[i].
//
// A Solver answers four questions about the keys:
//
//   - How many structurally distinct BSTs hold the keys (the n-th
//     Catalan number)? See CountDistinctShapes.
//   - Which are they? See EnumerateShapes.
//   - What is the minimum weighted search cost, sum((depth+1) *
//     freq[key]), of any BST over the keys? See OptimalCost.
//   - Which tree achieves it? See OptimalTree.
//
// Counting and cost minimization are each implemented twice: as a
// memoized top-down recursion (Recursive) and as a bottom-up table
// fill (Iterative). Both strategies return identical results. The
// recursive strategies use stack depth proportional to the number of
// keys; prefer Iterative for large inputs.
//
// A Solver owns its memoization caches. Its methods may be called
// concurrently; calls are serialized by an internal mutex.
package optbst
