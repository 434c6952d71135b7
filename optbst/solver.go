package optbst

import (
	"log/slog"
	"math"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/npat-efault/treedp/bintree"
	"github.com/npat-efault/treedp/errors"
	"github.com/npat-efault/treedp/graph"
)

// Weight is the type of key access frequencies.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Strategy selects the algorithm used to answer a query.
type Strategy int

const (
	// Recursive is top-down memoized recursion.
	Recursive Strategy = iota
	// Iterative is bottom-up table filling.
	Iterative
	// ClosedForm evaluates Binomial(2n, n) / (n+1). Only valid for
	// CountDistinctShapes, and only up to 30 keys.
	ClosedForm
)

var strategyNames = [...]string{
	Recursive:  "recursive",
	Iterative:  "iterative",
	ClosedForm: "closed",
}

func (st Strategy) String() string {
	if st < 0 || int(st) >= len(strategyNames) {
		return "Strategy(?)"
	}
	return strategyNames[st]
}

// ParseStrategy returns the strategy with the given name
// ("recursive", "iterative" or "closed"; case is ignored).
func ParseStrategy(name string) (Strategy, error) {
	for st, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(st), nil
		}
	}
	return 0, errors.Errf(errors.ErrInvalidArgument,
		"unknown strategy %q", name)
}

func errStrategy(st Strategy, op string) error {
	return errors.Errf(errors.ErrInvalidArgument,
		"strategy %s not supported by %s", st, op)
}

type options struct {
	logger *slog.Logger
	strict bool
}

// Option configures a Solver.
type Option func(*options)

// WithLogger sets the logger that receives the solver's debug
// records. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStrictLength controls whether New requires len(freq) to equal
// the key range (the default). When disabled, counting and
// enumeration use the key range, while cost queries use all of freq.
func WithStrictLength(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Solver answers counting, enumeration and optimal cost queries over
// a fixed key range and frequency array. Memoization caches are
// filled on first use and live as long as the Solver.
type Solver[W Weight] struct {
	mu   sync.Mutex
	n    int
	freq []W
	log  *slog.Logger

	sums   *WeightTable[W]
	counts map[int]uint64   // keyed by number of keys
	costs  map[Interval]W   // keyed by inclusive interval
	roots  map[Interval]int // keyed by inclusive interval
}

// New returns a Solver for the keys 0..numRange-1 with access
// frequencies freq. numRange must be greater than 1. Every frequency
// must be non-negative and, for floating point weights, finite. Fails
// with an ErrInvalidArgument error otherwise. The Solver keeps a
// private copy of freq.
func New[W Weight](numRange int, freq []W, opts ...Option) (*Solver[W], error) {
	o := options{logger: slog.Default(), strict: true}
	for _, opt := range opts {
		opt(&o)
	}
	if numRange <= 1 {
		return nil, errors.Errf(errors.ErrInvalidArgument,
			"key range must be an integer larger than 1, got %d",
			numRange)
	}
	if o.strict && len(freq) != numRange {
		return nil, errors.Errf(errors.ErrInvalidArgument,
			"%d frequencies given for %d keys", len(freq), numRange)
	}
	for i, w := range freq {
		if f := float64(w); math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.Errf(errors.ErrInvalidArgument,
				"frequency of key %d is not finite: %v", i, w)
		}
		if w < 0 {
			return nil, errors.Errf(errors.ErrInvalidArgument,
				"frequency of key %d is negative: %v", i, w)
		}
	}
	fr := append([]W(nil), freq...)
	return &Solver[W]{
		n:      numRange,
		freq:   fr,
		log:    o.logger.With("keys", numRange),
		sums:   NewWeightTable(fr),
		counts: make(map[int]uint64),
		costs:  make(map[Interval]W),
		roots:  make(map[Interval]int),
	}, nil
}

// NumRange returns the number of keys.
func (s *Solver[W]) NumRange() int {
	return s.n
}

// Freq returns a copy of the frequency array.
func (s *Solver[W]) Freq() []W {
	return append([]W(nil), s.freq...)
}

// IntervalSum returns freq[start] + ... + freq[end-1], memoized. Fails
// with an ErrInvalidRange error if end < start or the interval is
// outside the frequency array.
func (s *Solver[W]) IntervalSum(start, end int) (W, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sums.Sum(start, end)
}

// CountDistinctShapes returns the number of structurally distinct
// BSTs over the solver's keys: the Catalan number C_n. All strategies
// return the same value. Fails with ErrOverflow for more than
// MaxCount keys (more than 30 for ClosedForm).
func (s *Solver[W]) CountDistinctShapes(st Strategy) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var (
		c   uint64
		err error
	)
	switch st {
	case Recursive:
		if s.n > MaxCount {
			// Fail before recursing all the way down.
			return 0, errCountOverflow(s.n)
		}
		c, err = countRecur(s.counts, s.n)
	case Iterative:
		c, err = CatalanIter(s.n)
	case ClosedForm:
		c, err = CatalanClosed(s.n)
	default:
		return 0, errStrategy(st, "CountDistinctShapes")
	}
	if err != nil {
		return 0, err
	}
	s.log.Debug("counted distinct shapes", "strategy", st, "count", c)
	return c, nil
}

// EnumerateShapes returns every structurally distinct BST over the
// solver's keys. Each tree's in-order key sequence is 0..n-1, and
// each tree owns all of its nodes. The number of trees equals
// CountDistinctShapes; it grows as 4^n, so n should be small.
func (s *Solver[W]) EnumerateShapes() []*bintree.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := shapes(0, s.n)
	s.log.Debug("enumerated shapes", "count", len(res))
	return res
}

// OptimalCost returns the minimum weighted search cost, sum((depth+1)
// * freq[key]), of any BST over the keys 0..len(freq)-1. Recursive
// and Iterative return identical values.
func (s *Solver[W]) OptimalCost(st Strategy) (W, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var c W
	switch st {
	case Recursive:
		c = s.costRecur(0, len(s.freq)-1)
	case Iterative:
		c = costIter(s.freq).cost[0][len(s.freq)]
	default:
		return 0, errStrategy(st, "OptimalCost")
	}
	s.log.Debug("computed optimal cost", "strategy", st, "cost", c,
		"cached", len(s.costs))
	return c, nil
}

// OptimalTree returns a BST over the keys 0..len(freq)-1 whose
// weighted search cost equals OptimalCost. Among roots of equal cost
// the smallest key is chosen, so both strategies return equal trees.
func (s *Solver[W]) OptimalTree(st Strategy) (*bintree.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.freq)
	var root func(lo, hi int) int
	switch st {
	case Recursive:
		s.costRecur(0, n-1)
		root = func(lo, hi int) int { return s.roots[Interval{lo, hi - 1}] }
	case Iterative:
		t := costIter(s.freq)
		root = func(lo, hi int) int { return t.root[lo][hi] }
	default:
		return nil, errStrategy(st, "OptimalTree")
	}
	return buildTree(0, n, root), nil
}

// BruteForceCost returns the minimum weighted search cost over all
// distinct BSTs of the keys 0..len(freq)-1, by enumerating them. It is
// exponential in the number of keys.
func (s *Solver[W]) BruteForceCost() W {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best W
	for i, t := range shapes(0, len(s.freq)) {
		if c := bintree.Cost(t, s.freq); i == 0 || c < best {
			best = c
		}
	}
	return best
}

// BalancedCost returns the weighted search cost of the
// height-balanced BST over the keys 0..len(freq)-1. It is never less
// than OptimalCost.
func (s *Solver[W]) BalancedCost() W {
	return bintree.Cost(bintree.Vine(len(s.freq)).Balance(), s.freq)
}

// ExportGraph returns the adjacency view of tree. See graph.Export.
func (s *Solver[W]) ExportGraph(tree *bintree.Node) graph.Graph {
	return graph.Export(tree)
}
