package optbst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npat-efault/treedp/errors"
)

func linearSum(freq []int, start, end int) int {
	s := 0
	for i := start; i < end; i++ {
		s += freq[i]
	}
	return s
}

func TestWeightTableSum(t *testing.T) {
	freq := []int{4, 5, 6, 9, 11, 12, 15, 16, 20}
	wt := NewWeightTable(freq)
	for start := 0; start <= len(freq); start++ {
		for end := start; end <= len(freq); end++ {
			v, err := wt.Sum(start, end)
			require.NoError(t, err)
			assert.Equal(t, linearSum(freq, start, end), v,
				"interval [%d, %d)", start, end)
		}
	}
	// Every non-empty interval is cached exactly once
	n := len(freq)
	assert.Equal(t, n*(n+1)/2, wt.Len())
}

func TestWeightTableInvalid(t *testing.T) {
	wt := NewWeightTable([]float64{0.5, 0.25, 0.25})
	for _, iv := range []Interval{{2, 1}, {-1, 2}, {0, 4}, {3, 2}} {
		_, err := wt.Sum(iv.Start, iv.End)
		require.Error(t, err, "interval %v", iv)
		assert.True(t, errors.IsInvalidRange(err), "interval %v", iv)
	}
	v, err := wt.Sum(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 0, wt.Len())
}
