package dimacs

import "errors"

var (
	// ErrMissingProblemLine is returned when the input contains no
	// "p edge/col n m" line at all.
	ErrMissingProblemLine = errors.New("dimacs: missing problem line (\"p edge n m\")")
	// ErrMalformedLine is returned for a "p" or "e" line that cannot be
	// parsed into its expected fields.
	ErrMalformedLine = errors.New("dimacs: malformed line")
	// ErrVertexOutOfRange is returned when an edge line references a vertex
	// id outside [1, n] (or [0, n-1] under 0-based inference) of the
	// declared problem size.
	ErrVertexOutOfRange = errors.New("dimacs: edge references vertex outside declared range")
)
