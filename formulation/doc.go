// Package formulation owns the catalog of generated independent-set columns
// and triangle cuts that back the set-cover LP, together with the indices
// (by-vertex, by-pair) that let the branching and pricing loops look them up
// in O(1).
//
// Columns are never removed once added (spec: "Columns are inserted by
// pricing or heuristics and are never removed; deactivation is state-only").
// They live in an append-only arena; the by-vertex and by-pair indices hold
// integer column ids rather than owning pointers, so there is no reference
// cycle between a Formulation and its own columns (see the formulation
// entry of DESIGN.md).
//
// Formulation is the only thing allowed to mutate its Graph: Change/Undo on
// Formulation first applies the modification to the graph, then cascades the
// corresponding activation update to every column the modification could
// have affected.
package formulation
