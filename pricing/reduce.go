package pricing

import (
	"github.com/katalvlaran/bcp/graph"
)

// weightDominanceRule implements xiao2021_rule1: if v's weight is at least
// the sum of weights of its open neighborhood, every maximum-weight
// independent set can be assumed to contain v, so v and its neighborhood are
// folded into the current partial solution and removed from g. Runs a single
// pass over a snapshot of g's active vertices, matching the original
// source's for_nodes loop (a vertex deactivated earlier in the pass is
// simply skipped, not revisited).
func weightDominanceRule(g *graph.Graph) (addedValue float64, addedNodes []int) {
	for _, v := range g.ActiveVertices() {
		if !g.IsActive(v) {
			continue
		}
		onv := g.OpenNeighborhood([]int{v})
		if g.Weight(v) < weight(g, onv) {
			continue
		}
		addedValue += g.Weight(v)
		addedNodes = append(addedNodes, v)
		for _, u := range g.ClosedNeighborhood([]int{v}) {
			g.Deactivate(u)
		}
	}
	return addedValue, addedNodes
}

// unconfinedRule implements xiao2021_rule5: any vertex with an empty
// confining set can never appear in an optimal MWIS and is removed outright
// (it costs nothing to the solution, unlike weightDominanceRule's fold).
func unconfinedRule(g *graph.Graph) {
	for _, v := range g.ActiveVertices() {
		if !g.IsActive(v) {
			continue
		}
		if len(confiningSet(g, v)) == 0 {
			g.Deactivate(v)
		}
	}
}

// reduce applies the weight-dominance rule followed by the unconfined-vertex
// rule once each, folding any dominated vertices into (value, nodes). It
// mutates g in place, matching the original source's reduce().
func reduce(g *graph.Graph, baseValue float64, baseNodes []int) (float64, []int) {
	addedValue, addedNodes := weightDominanceRule(g)
	unconfinedRule(g)
	return baseValue + addedValue, append(append([]int(nil), baseNodes...), addedNodes...)
}

// confiningSet computes a confining set for v following Xiao's unconfined
// vertex characterization (Xiao & Nagamochi, as cited by the original
// source's incl/pricing.hpp). A child of S is a neighbor u of S whose weight
// is at least the weight of its neighbors inside S; N(S) below is the open
// neighborhood of S. Starting from S = {v}, repeatedly look for an extending
// child: a child u with exactly one neighbor outside S and
// w(u) < w(N(u) \ N(S)); that single outside neighbor is added to S. Once no
// extending child exists, v is unconfined (returns nil) if some child u of S
// has w(u) >= w(N(u) \ N(S)); otherwise S is returned.
func confiningSet(g *graph.Graph, v int) []int {
	s := []int{v}
	for {
		ons := g.OpenNeighborhood(s)
		satellite := -1
		for _, u := range ons {
			onu := g.OpenNeighborhood([]int{u})
			inter := intersectSorted(s, onu)
			if g.Weight(u) < weight(g, inter) {
				continue // u is not a legal child of S
			}
			ext := diffSorted(onu, s)
			if len(ext) != 1 {
				continue
			}
			outside := diffSorted(onu, ons)
			if g.Weight(u) >= weight(g, outside) {
				continue // u would make S unconfined if adopted; skip it
			}
			satellite = ext[0]
			break
		}
		if satellite == -1 {
			break
		}
		s = unionSorted(s, []int{satellite})
	}

	ons := g.OpenNeighborhood(s)
	for _, u := range ons {
		onu := g.OpenNeighborhood([]int{u})
		inter := intersectSorted(s, onu)
		if g.Weight(u) < weight(g, inter) {
			continue
		}
		outside := diffSorted(onu, ons)
		if g.Weight(u) >= weight(g, outside) {
			return nil // unconfined
		}
	}
	return s
}
