// Package pricing finds violating columns for the column-generation master:
// given a graph whose vertex weights are the current LP dual prices, it
// searches for independent sets S with w(S) = sum of weights over S greater
// than 1+EPS. An empty result proves the restricted master LP optimal.
//
// Two interchangeable backends implement the Pricer interface:
//
//   - BranchReduce: branch-and-reduce search with Xiao-style reductions
//     (weight-dominance, unconfined-vertex/confining-set) and a weighted
//     clique-cover upper bound, following the original source's
//     src/pricing.cpp.
//   - CliqueCover: exact maximum-weight-clique enumeration over the
//     complement graph with integer-scaled weights, following
//     src/pricing_cliquer.cpp.
package pricing

// EPS is the numeric floor used throughout pricing for weight comparisons,
// matching the solver driver's own EPS.
const EPS = 1e-9
