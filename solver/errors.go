package solver

import "errors"

// ErrDebugAssertionFailed is returned when WithDebugChecks is enabled and a
// branch node fails one of the original source's debug sanity checks
// (connectivity of the active subgraph and its complement). Mirrors the
// original's check_connectivity assert, turned into a recoverable error
// instead of a process abort.
var ErrDebugAssertionFailed = errors.New("solver: branch node failed a debug connectivity assertion")
