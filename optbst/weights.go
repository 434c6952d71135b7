package optbst

import (
	"github.com/npat-efault/treedp/errors"
)

// Interval identifies a contiguous range of key indexes. Depending on
// the table it indexes, End is either inclusive or exclusive; the
// owner of each table documents which.
type Interval struct {
	Start, End int
}

// WeightTable computes the sum of frequencies over half-open
// intervals [start, end) of a frequency array, memoizing every
// interval it computes. Entries are never invalidated; the frequency
// array must not change after the table is created.
type WeightTable[W Weight] struct {
	freq []W
	memo map[Interval]W
}

// NewWeightTable returns a table over freq. The table keeps a
// reference to freq.
func NewWeightTable[W Weight](freq []W) *WeightTable[W] {
	return &WeightTable[W]{freq: freq, memo: make(map[Interval]W)}
}

// Sum returns freq[start] + ... + freq[end-1]. The sum of an empty
// interval (start == end) is 0. Fails with an ErrInvalidRange error
// if end < start or if the interval is not within the frequency
// array.
func (t *WeightTable[W]) Sum(start, end int) (W, error) {
	if end < start || start < 0 || end > len(t.freq) {
		return 0, errors.Errf(errors.ErrInvalidRange,
			"invalid interval [%d, %d) over %d weights",
			start, end, len(t.freq))
	}
	return t.sum(start, end), nil
}

// sum(start, end) = sum(start, end-1) + freq[end-1]. Bounds must be
// valid.
func (t *WeightTable[W]) sum(start, end int) W {
	if start == end {
		return 0
	}
	iv := Interval{start, end}
	if v, ok := t.memo[iv]; ok {
		return v
	}
	v := t.sum(start, end-1) + t.freq[end-1]
	t.memo[iv] = v
	return v
}

// Len returns the number of cached intervals.
func (t *WeightTable[W]) Len() int {
	return len(t.memo)
}
