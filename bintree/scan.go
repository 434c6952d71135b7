package bintree

// The Scanner type is used to scan the keys of a tree in order.
// Scanning is implemented by launching a go-routine that walks the
// tree and emits keys on a channel.
type Scanner struct {
	ch   <-chan int
	quit chan<- struct{}
}

// scan walks root in-order (or reverse in-order), emitting keys on
// ch. Returns false if the scan was stopped.
func scan(root *Node, reverse bool, ch chan<- int, quit <-chan struct{}) bool {
	if root == nil {
		return true
	}
	pre, post := root.l, root.r
	if reverse {
		pre, post = post, pre
	}
	if !scan(pre, reverse, ch, quit) {
		return false
	}
	select {
	case <-quit:
		return false
	case ch <- root.key:
	}
	return scan(post, reverse, ch, quit)
}

// NewScanner creates a new tree-scanner, initializes it, and spawns
// the respective scanning go-routine. The scanner walks the tree in
// ascending key order if "reverse" is false (or in descending key
// order if "reverse" is true).
func (tree *Node) NewScanner(reverse bool) Scanner {
	ch := make(chan int)
	quit := make(chan struct{})
	go func() {
		scan(tree, reverse, ch, quit)
		close(ch)
	}()
	return Scanner{ch, quit}
}

// Next returns the next key. If "ok" (the second return value) is
// true, then "k" (the first return value) is the key. If "ok" is
// false, then there are no more keys.
func (sc Scanner) Next() (k int, ok bool) {
	k, ok = <-sc.ch
	return k, ok
}

// Stop must be called in order to stop the scanner (and free the
// resources used by it) without completing the scan. There is no need
// (but it doesn't hurt) to call Stop after the scanner returns "ok"
// == false. Stop must be called at most once.
func (sc Scanner) Stop() {
	close(sc.quit)
}
