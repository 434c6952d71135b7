package queue

// Q is a FIFO queue of elements of type T, made with a slice.
// *NOT* THREAD SAFE. The zero value is an empty queue ready to use.
type Q[T any] struct {
	m uint32 /* queue mask (len(b) - 1) */
	s uint32 /* start index */
	e uint32 /* end index */
	b []T    /* buffer */
}

// New allocates and returns a new Q with initial space for at least
// sz elements. The capacity is rounded up to a power of 2.
func New[T any](sz int) *Q[T] {
	q := &Q[T]{}
	q.alloc(np2(sz))
	return q
}

// np2 returns the smallest power of 2 that is >= i (and >= 1).
func np2(i int) int {
	r := 1
	for r < i {
		r <<= 1
	}
	return r
}

func (q *Q[T]) alloc(sz int) {
	b := make([]T, sz)
	n := q.e - q.s
	for i := uint32(0); i < n; i++ {
		b[i] = q.b[(q.s+i)&q.m]
	}
	q.b, q.m, q.s, q.e = b, uint32(sz)-1, 0, n
}

// Empty tests if Q is empty.
func (q *Q[T]) Empty() bool {
	return q.s == q.e
}

// Len returns the number of elements waiting in the Q.
func (q *Q[T]) Len() int {
	return int(q.e - q.s)
}

// Cap returns the current capacity of the Q (# of element slots).
func (q *Q[T]) Cap() int {
	return len(q.b)
}

// Peek returns the first element in the Q, without removing
// it. Panics if Q is empty.
func (q *Q[T]) Peek() T {
	if q.Empty() {
		panic("Q: peek at empty Q")
	}
	return q.b[q.s&q.m]
}

// Pop removes the first element from the Q and returns it. Panics if
// Q is empty.
func (q *Q[T]) Pop() T {
	if q.Empty() {
		panic("Q: pop from empty Q")
	}
	var zero T
	i := q.s & q.m
	e := q.b[i]
	q.b[i] = zero
	q.s++
	return e
}

// Push adds element "e" to the tail of the Q, growing the Q if it is
// full.
func (q *Q[T]) Push(e T) {
	if int(q.e-q.s) == len(q.b) {
		q.alloc(np2(2 * len(q.b)))
	}
	q.b[q.e&q.m] = e
	q.e++
}
