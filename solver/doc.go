// Package solver stitches dsatur, formulation, lpmaster and branching into
// the full branch-cut-and-price driver, following the original source's
// src/branch_cut_price.cpp main loop: seed an initial coloring, solve the
// root LP, then repeatedly price, branch, and backtrack until the branch
// tree is exhausted or a wall-clock time limit is hit.
//
// Driver is the package's sole exported entry point; construct one with New
// and its functional Options (time limit, pricing backend, heuristic
// re-run cadence, debug connectivity assertions), matching the lpmaster
// package's own Option convention.
//
// Logging is the one ambient concern this package (and cmd/bcp) carries
// that the lower library packages (graph, formulation, dsatur, pricing,
// lpmaster, branching) deliberately do not: those stay log-free so they
// remain usable as an embeddable library, while solver, as the orchestrator
// a caller actually runs, reports progress through go.uber.org/zap.
package solver

// EPS is the numeric floor shared with lpmaster.EPS and pricing.EPS for
// comparing LP bounds against the integer incumbent.
const EPS = 1e-9
