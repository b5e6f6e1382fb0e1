package solver

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bcp/pricing"
)

// Result is the outcome of one Solve call.
type Result struct {
	// ChromaticNumber is the best coloring size found. If TimedOut is true
	// this is only an upper bound, not a proof of optimality.
	ChromaticNumber int
	// Coloring holds the color classes, each a sorted slice of original
	// (pre-branching) vertex ids.
	Coloring [][]int
	// Nodes is the number of branch-and-bound nodes explored, including the
	// root.
	Nodes int
	// TimedOut is true if WithTimeLimit was set and the search was cut off
	// before exhausting the branch tree.
	TimedOut bool
}

// Driver runs the branch-cut-and-price search. Construct with New.
type Driver struct {
	logger           *zap.Logger
	timeLimit        time.Duration
	pricer           pricing.Pricer
	heuristicCadence int
	debugChecks      bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithTimeLimit bounds wall-clock search time; zero (the default) means no
// limit. On expiry Solve returns its best incumbent so far with TimedOut
// set.
func WithTimeLimit(d time.Duration) Option {
	return func(drv *Driver) { drv.timeLimit = d }
}

// WithPricer overrides the default BranchReduce pricing backend, e.g. with
// pricing.CliqueCover{}.
func WithPricer(p pricing.Pricer) Option {
	return func(drv *Driver) { drv.pricer = p }
}

// WithLogger installs a zap logger for search progress; the default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(drv *Driver) { drv.logger = l }
}

// WithHeuristicCadence sets how many graph modifications elapse between
// re-runs of the DSATUR heuristic at a branch node, matching the original
// source's get_n_mods() % 10 == 0 cadence (default 10).
func WithHeuristicCadence(n int) Option {
	return func(drv *Driver) {
		if n > 0 {
			drv.heuristicCadence = n
		}
	}
}

// WithDebugChecks enables the original source's debug connectivity
// assertions at every branch node, at the cost of search speed.
func WithDebugChecks(enabled bool) Option {
	return func(drv *Driver) { drv.debugChecks = enabled }
}

// New constructs a Driver with the given Options applied over the defaults:
// no time limit, the BranchReduce pricer, heuristic cadence 10, debug
// checks off, and a no-op logger.
func New(opts ...Option) *Driver {
	drv := &Driver{
		logger:           zap.NewNop(),
		pricer:           pricing.BranchReduce{},
		heuristicCadence: 10,
	}
	for _, opt := range opts {
		opt(drv)
	}
	return drv
}
