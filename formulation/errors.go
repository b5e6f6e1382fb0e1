package formulation

import "errors"

var (
	// ErrEmptyColumn indicates AddColumn was given an empty vertex set.
	ErrEmptyColumn = errors.New("formulation: column is empty")

	// ErrDuplicateColumn indicates the exact same vertex set is already in
	// the catalog.
	ErrDuplicateColumn = errors.New("formulation: column already present")

	// ErrNotIndependent indicates a column (or cut) contains an adjacent
	// pair, or a vertex not active in the current graph.
	ErrNotIndependent = errors.New("formulation: set is not independent in the current graph")
)
