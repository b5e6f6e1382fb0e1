package pricing

import (
	"sort"

	"github.com/katalvlaran/bcp/graph"
)

// mwisHeuristic extends (baseValue, baseNodes) by greedily repeatedly taking
// the active vertex of maximum weight and removing its closed neighborhood,
// on a scratch clone of g. This is the lower bound used both to report
// candidate violating columns and to prune the branch-and-reduce tree.
func mwisHeuristic(g *graph.Graph, baseValue float64, baseNodes []int) (float64, []int) {
	w := g.Clone()
	value := baseValue
	nodes := append([]int(nil), baseNodes...)

	for !w.IsEmpty() {
		best, bestW := -1, 0.0
		for _, u := range w.ActiveVertices() {
			if w.Weight(u) > bestW {
				best, bestW = u, w.Weight(u)
			}
		}
		if best == -1 {
			break
		}
		value += bestW
		nodes = append(nodes, best)
		for _, u := range w.ClosedNeighborhood([]int{best}) {
			w.Deactivate(u)
		}
	}
	sortInts(nodes)
	return value, nodes
}

// mwisUpperBound bounds the maximum achievable weight on g by a weighted
// clique cover: vertices are packed, in decreasing (weight, degree) order,
// into the first existing clique whose accumulated member set exactly
// equals the candidate's open neighborhood (an exact structural match, not
// a pairwise-adjacency search), else seed a new singleton clique. The sum
// of one representative weight per clique upper-bounds any independent
// set's weight, since an independent set can use at most one vertex per
// clique. Matches the original source's weighted clique-cover bound.
func mwisUpperBound(g *graph.Graph) float64 {
	type clique struct {
		members []int
		weight  float64
	}
	active := g.ActiveVertices()
	sort.Slice(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if g.Weight(a) != g.Weight(b) {
			return g.Weight(a) > g.Weight(b)
		}
		return g.Degree(a) > g.Degree(b)
	})

	var cliques []clique
	var bound float64
	for _, u := range active {
		onu := g.OpenNeighborhood([]int{u})
		best := -1
		for i := range cliques {
			if intSliceEqual(cliques[i].members, onu) {
				if best == -1 || cliques[i].weight > cliques[best].weight {
					best = i
				}
			}
		}
		if best == -1 {
			cliques = append(cliques, clique{members: []int{u}, weight: g.Weight(u)})
			bound += g.Weight(u)
			continue
		}
		cliques[best].members = unionSorted(cliques[best].members, []int{u})
	}
	return bound
}
