package lpmaster

import "errors"

var (
	// ErrNoActiveColumns is returned when Solve is called on a formulation
	// with no active columns: the caller must seed at least a heuristic
	// coloring's columns before column generation can start.
	ErrNoActiveColumns = errors.New("lpmaster: formulation has no active columns")
	// ErrInfeasible is returned when the restricted master LP has no
	// feasible solution, which should not happen for a properly-seeded
	// formulation (every active vertex covered by at least one column) and
	// indicates a bug in the caller's column seeding.
	ErrInfeasible = errors.New("lpmaster: restricted master is infeasible")
	// ErrPricerStalled is returned when Solve has used all of its rounds
	// (WithMaxRounds) and pricing still added a new column in the last one.
	// A round in which every set the pricer returns is already in the
	// formulation ends Solve successfully instead.
	ErrPricerStalled = errors.New("lpmaster: column generation reached its round limit")
)
