// Package lpmaster implements the column-generation restricted master
// problem: a fractional set-cover LP over the active columns of a
// formulation.Formulation, solved to optimality by alternating LP solves
// with calls into a pricing.Pricer until no further improving column exists.
//
// The restricted master is
//
//	minimize   sum_j x_j                      (one variable per active column)
//	subject to sum_{j: v in column j} x_j >= 1   for every active vertex v
//	           x_j >= 0
//
// gonum's simplex solver (gonum.org/v1/gonum/optimize/convex/lp.Simplex)
// has no shadow-price accessor, so the dual
//
//	maximize   sum_v y_v
//	subject to sum_{v in column j} y_v <= 1      for every active column j
//	           y_v >= 0
//
// is solved as a second, independent Simplex call each round. The dual
// optimum y becomes the vertex weights handed to pricing for the next
// round's column search; when pricing returns no set of weight greater than
// 1+EPS, the restricted master is LP-optimal for the current branch node.
package lpmaster

// EPS is the numeric floor for LP feasibility and pricing-convergence
// comparisons, shared with pricing.EPS and the solver driver's own EPS.
const EPS = 1e-9
