package optbst

import (
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/npat-efault/treedp/errors"
)

// MaxCount is the largest key count whose number of distinct shapes
// (the Catalan number C_36 = 11_959_798_385_860_453_492) fits in a
// uint64.
const MaxCount = 36

// maxClosed is the largest n for which the closed form
// Binomial(2n, n) / (n+1) can be evaluated without overflowing int
// arithmetic.
const maxClosed = 30

func errCountOverflow(n int) error {
	return errors.Errf(errors.ErrOverflow,
		"number of distinct trees over %d keys overflows uint64", n)
}

// mulAdd returns acc + a*b, and false if the result overflows.
func mulAdd(acc, a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(acc, lo, 0)
	return sum, carry == 0
}

// countRecur returns the number of distinct trees over num keys:
// count(0) = 1, count(num) = sum over i in [0, num) of count(i) *
// count(num-1-i), where i is the number of keys left of the
// root. Results are memoized in counts.
func countRecur(counts map[int]uint64, num int) (uint64, error) {
	if num == 0 {
		return 1, nil
	}
	if v, ok := counts[num]; ok {
		return v, nil
	}
	var res uint64
	for i := 0; i < num; i++ {
		left, err := countRecur(counts, i)
		if err != nil {
			return 0, err
		}
		right, err := countRecur(counts, num-1-i)
		if err != nil {
			return 0, err
		}
		var ok bool
		if res, ok = mulAdd(res, left, right); !ok {
			return 0, errCountOverflow(num)
		}
	}
	counts[num] = res
	return res, nil
}

// CatalanIter returns the number of distinct trees over n keys, by
// filling res[0..n] in increasing order with the same recurrence
// countRecur uses.
func CatalanIter(n int) (uint64, error) {
	if n < 0 {
		return 0, errors.Errf(errors.ErrInvalidArgument,
			"negative key count %d", n)
	}
	res := make([]uint64, n+1)
	res[0] = 1
	for i := 1; i <= n; i++ {
		for j := 0; j < i; j++ {
			var ok bool
			if res[i], ok = mulAdd(res[i], res[j], res[i-1-j]); !ok {
				return 0, errCountOverflow(i)
			}
		}
	}
	return res[n], nil
}

// CatalanClosed returns the n-th Catalan number from the closed form
// Binomial(2n, n) / (n+1). It supports n <= 30 only; larger n fail
// with ErrOverflow.
func CatalanClosed(n int) (uint64, error) {
	if n < 0 {
		return 0, errors.Errf(errors.ErrInvalidArgument,
			"negative key count %d", n)
	}
	if n > maxClosed {
		return 0, errors.Errf(errors.ErrOverflow,
			"closed form supports at most %d keys, got %d",
			maxClosed, n)
	}
	return uint64(combin.Binomial(2*n, n) / (n + 1)), nil
}
