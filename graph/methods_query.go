package graph

import "sort"

// Adjacency returns the edge multiplicity between u and v: 0 if u == v or
// either vertex is inactive, otherwise the accumulated count.
func (g *Graph) Adjacency(u, v int) int {
	if u == v || u < 0 || v < 0 || u >= g.nTotal || v >= g.nTotal {
		return 0
	}
	if !g.active[u] || !g.active[v] {
		return 0
	}
	return int(g.adjCount[u][v])
}

// Adjacent reports whether u and v are adjacent (Adjacency > 0).
func (g *Graph) Adjacent(u, v int) bool { return g.Adjacency(u, v) > 0 }

// Degree returns deg[u]: 0 if u is inactive or out of range.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.nTotal || !g.active[u] {
		return 0
	}
	return g.deg[u]
}

// IsEmpty reports whether the graph has no active vertices.
func (g *Graph) IsEmpty() bool {
	for _, a := range g.active {
		if a {
			return false
		}
	}
	return true
}

// ActiveVertices returns the sorted list of currently active vertex ids.
func (g *Graph) ActiveVertices() []int {
	out := make([]int, 0, g.ActiveCount())
	for u := 0; u < g.nTotal; u++ {
		if g.active[u] {
			out = append(out, u)
		}
	}
	return out
}

// OpenNeighborhood returns the sorted set of active vertices adjacent to at
// least one member of s, excluding members of s itself.
func (g *Graph) OpenNeighborhood(s []int) []int {
	in := make(map[int]bool, len(s))
	for _, u := range s {
		in[u] = true
	}
	seen := make(map[int]bool)
	var out []int
	for _, u := range s {
		for w := 0; w < g.nTotal; w++ {
			if w == u || !g.active[w] || in[w] || seen[w] {
				continue
			}
			if g.adjCount[u][w] > 0 {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	sortInts(out)
	return out
}

// ClosedNeighborhood returns OpenNeighborhood(s) union s, sorted, restricted
// to active vertices.
func (g *Graph) ClosedNeighborhood(s []int) []int {
	open := g.OpenNeighborhood(s)
	seen := make(map[int]bool, len(open)+len(s))
	var out []int
	for _, u := range open {
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	for _, u := range s {
		if g.active[u] && !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	sortInts(out)
	return out
}

// MaxDegreeVertex returns an active vertex of maximum degree, or -1 if the
// graph has no active vertex.
func (g *Graph) MaxDegreeVertex() int {
	best, bestDeg := -1, -1
	for u := 0; u < g.nTotal; u++ {
		if g.active[u] && g.deg[u] > bestDeg {
			best, bestDeg = u, g.deg[u]
		}
	}
	return best
}

// MinDegreeVertex returns an active vertex of minimum degree, or -1 if the
// graph has no active vertex.
func (g *Graph) MinDegreeVertex() int {
	best, bestDeg := -1, int(^uint(0)>>1)
	for u := 0; u < g.nTotal; u++ {
		if g.active[u] && g.deg[u] < bestDeg {
			best, bestDeg = u, g.deg[u]
		}
	}
	return best
}

// IsConnected reports whether the active subgraph is connected (BFS-based;
// a graph with zero or one active vertex is trivially connected).
func (g *Graph) IsConnected() bool {
	return g.connected(func(u, v int) bool { return g.Adjacent(u, v) })
}

// IsConnectedComplement reports whether the complement of the active
// subgraph is connected.
func (g *Graph) IsConnectedComplement() bool {
	return g.connected(func(u, v int) bool { return !g.Adjacent(u, v) })
}

// connected runs BFS over the active vertex set using adj as the edge test.
func (g *Graph) connected(adj func(u, v int) bool) bool {
	active := g.ActiveVertices()
	if len(active) <= 1 {
		return true
	}
	visited := make(map[int]bool, len(active))
	queue := []int{active[0]}
	visited[active[0]] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range active {
			if visited[v] || v == u {
				continue
			}
			if adj(u, v) {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return len(visited) == len(active)
}

// CheckConnectivity runs the debug sanity checks from the original source's
// check_connectivity: both the active subgraph and its complement should be
// connected for a well-posed branch node (a disconnected graph or complement
// means the formulation could have been split into independent pieces).
func (g *Graph) CheckConnectivity() bool {
	return g.IsConnected() && g.IsConnectedComplement()
}

// CheckUniversal reports whether any active vertex is adjacent to every
// other active vertex (a "universal" vertex), mirroring the original
// source's check_universal debug assertion.
func (g *Graph) CheckUniversal() bool {
	n := g.ActiveCount()
	for u := 0; u < g.nTotal; u++ {
		if g.active[u] && g.deg[u] == n-1 {
			return true
		}
	}
	return false
}

// Clone returns a deep, undo-log-free copy of g: independent adjacency,
// degree, weight and active state, used by pricing for its scratch
// subgraphs (which never need to be undone, only discarded).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nTotal:  g.nTotal,
		active:  append([]bool(nil), g.active...),
		deg:     append([]int(nil), g.deg...),
		weights: append([]float64(nil), g.weights...),
	}
	c.adjCount = make([][]int32, g.nTotal)
	for i, row := range g.adjCount {
		c.adjCount[i] = append([]int32(nil), row...)
	}
	return c
}

// ApplyChangesToSolution replays the contract log in reverse order onto a
// set partition: for every Contract(u, v) modification (most recent first),
// v is reinserted into whichever set currently contains u. This translates
// vertex identifiers in a solution over the *current* (branched) graph back
// to the *original* graph's vertex set.
func (g *Graph) ApplyChangesToSolution(sets [][]int) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = append([]int(nil), s...)
	}

	for i := len(g.mods) - 1; i >= 0; i-- {
		m := g.mods[i]
		if m.Kind != ModContract {
			continue
		}
		for si, s := range out {
			if containsInt(s, m.U) {
				out[si] = append(s, m.V)
				break
			}
		}
	}
	for _, s := range out {
		sortInts(s)
	}
	return out
}

func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}

func sortInts(s []int) { sort.Ints(s) }
