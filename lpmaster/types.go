package lpmaster

// Solution is the result of column generation on one branch node: the LP
// relaxation value (a lower bound on the node's chromatic number) and the
// primal variable values keyed by column id, used by branching's pair
// selection (formulation.Formulation.Similarity).
type Solution struct {
	Value float64
	X     map[int]float64
}

// Option configures Solve's convergence behavior.
type Option func(*config)

type config struct {
	maxRounds int
	tol       float64
}

func defaultConfig() config {
	return config{maxRounds: 10000, tol: EPS}
}

// WithMaxRounds bounds the number of column-generation rounds (pricing
// calls) before Solve gives up with ErrPricerStalled. The original source
// has no such bound (an exact pricer cannot stall), but a finite cap keeps
// a misbehaving alternative Pricer from hanging the driver.
func WithMaxRounds(n int) Option {
	return func(c *config) { c.maxRounds = n }
}

// WithTolerance overrides the tolerance passed to the simplex solver for both
// the primal and the dual solve. Pricing keeps its own 1+EPS threshold.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tol = tol }
}
