// Package branching implements Zykov's branching scheme over pairs of
// fractionally-colored-together vertices, following the original source's
// incl/branching.hpp and src/branch.cpp / src/branch2.cpp.
//
// At a branch node with a fractional LP solution, Branch selects the active
// vertex pair (u, v) whose combined column weight S[u][v] (formulation's
// Similarity matrix) is closest to 0.5 -- the pair the master LP is least
// decided about. The search then explores two children in turn:
//
//   - Conflict(u, v): force u and v into different colors (add the edge).
//   - Contract(u, v): force u and v into the same color (merge the vertices).
//
// Stack tracks one path from the root to the current node as a slice of
// Frames, each recording which of the two children is currently applied to
// the wrapped Formulation. Backtrack advances a frame from Conflict to
// Contract, or pops it entirely once both children have been explored,
// bubbling up to the parent frame as needed -- the same pop/prune/advance
// logic as the original source's recursive branch_cut_price loop, reshaped
// into an explicit stack so solver can drive it iteratively.
package branching

// EPS is the fractional-value floor: a column weight at or below EPS is
// treated as zero and its pair is not a branching candidate.
const EPS = 1e-9
