package graph

// AddEdge adds an edge between u and v to the original instance, before any
// branching has begun. Unlike Change(ModConflict, ...), this is not logged
// to the undo stack: it is construction-time only, used by the DIMACS reader
// and by tests building small graphs by hand. Self-loops are ignored and
// parallel edges are accepted idempotently (multiplicity capped at 1), per
// the DIMACS reader's tolerance for duplicate "e" lines.
func (g *Graph) AddEdge(u, v int) {
	if u == v || u < 0 || v < 0 || u >= g.nTotal || v >= g.nTotal {
		return
	}
	if g.adjCount[u][v] > 0 {
		return
	}
	g.adjCount[u][v] = 1
	g.adjCount[v][u] = 1
	g.deg[u]++
	g.deg[v]++
}

// EdgeCount returns the number of distinct unordered active-or-not edges
// currently recorded (counts multiplicity as present-or-absent, matching
// the original instance's edge count before any contraction).
func (g *Graph) EdgeCount() int {
	m := 0
	for u := 0; u < g.nTotal; u++ {
		for v := u + 1; v < g.nTotal; v++ {
			if g.adjCount[u][v] > 0 {
				m++
			}
		}
	}
	return m
}
