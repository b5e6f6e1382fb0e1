// Package graph implements the mutable, integer-indexed graph that backs the
// branch-cut-and-price coloring solver.
//
// Vertices are identified by stable integers in [0, NTotal). Unlike a
// general-purpose graph library, this Graph is never asked to add or remove
// vertices: the vertex set is fixed at construction time and the only
// mutations are Change and its exact inverse Undo, applied in strict LIFO
// order by the branching search. Three modification kinds are supported:
//
//	Conflict(u, v)   -- add an edge between u and v.
//	Contract(u, v)   -- merge v into u, transferring v's incident edges to u
//	                    and deactivating v.
//	Deactivate(u)    -- remove u from the active graph without touching its
//	                    own adjacency row, so that a later Undo can restore it.
//
// Every applied modification is pushed onto an undo log (Graph.mods); undoing
// out of order, or with mismatched operands, is an internal contract
// violation and returns ErrUndoMismatch.
//
// Concurrency: this type is single-threaded by design. The solver owns one
// Graph at a time and mutates it only through Change/Undo from its own
// goroutine. No locking is used.
package graph
