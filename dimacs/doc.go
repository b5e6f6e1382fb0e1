// Package dimacs reads and writes graphs and colorings in the DIMACS
// graph-coloring (.col) and clique (.clq) benchmark formats, following the
// original source's utils.cpp reader and the DIMACS format conventions used
// by the standard benchmark instances (myciel*, queen*, and similar).
//
// A DIMACS file is line-oriented:
//
//	c this is a comment line, ignored
//	p edge <n> <m>        -- problem line: n vertices, m edges
//	e <u> <v>              -- one edge per line
//
// Some instances number vertices from 1, others (rarely) from 0; Parse
// infers which by scanning the minimum vertex id referenced and shifting
// down by one if it is 1-based, so callers never need to know the source
// convention. Parallel edges and self-loops are tolerated and folded
// (self-loops ignored, parallel edges deduplicated), matching
// graph.Graph.AddEdge's own construction-time tolerance.
package dimacs
