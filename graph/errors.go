package graph

import "errors"

// Sentinel errors for Graph contract violations. These are returned, never
// panicked, so a host (solver, tests) can decide how to treat them; the
// solver driver treats any of them surfacing mid-search as fatal, since it
// indicates a bug in its own branching bookkeeping rather than bad input.
var (
	// ErrSameVertex indicates u == v was passed to an operation that requires
	// distinct vertices.
	ErrSameVertex = errors.New("graph: u and v must be distinct")

	// ErrInactiveVertex indicates an operation referenced a vertex that is
	// not currently active.
	ErrInactiveVertex = errors.New("graph: vertex is not active")

	// ErrOutOfRange indicates a vertex id outside [0, NTotal).
	ErrOutOfRange = errors.New("graph: vertex id out of range")

	// ErrUndoMismatch indicates the top of the undo log does not match the
	// (kind, u, v) given to Undo.
	ErrUndoMismatch = errors.New("graph: undo does not match top of log")

	// ErrEmptyUndoLog indicates Undo was called with nothing left to undo.
	ErrEmptyUndoLog = errors.New("graph: undo log is empty")

	// ErrUnknownModKind indicates an invalid ModKind value.
	ErrUnknownModKind = errors.New("graph: unknown modification kind")
)
