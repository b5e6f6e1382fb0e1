package pricing

import (
	"math"
	"sort"

	"github.com/katalvlaran/bcp/graph"
)

// CliqueCover is the alternative Pricer backend: maximum weight independent
// set in g is exactly maximum weight clique in g's complement, so it scales
// weights to integers and runs an exact branch-and-bound clique search over
// the complement adjacency, following the original source's
// src/pricing_cliquer.cpp (which wraps the external cliquer library, itself
// an exact integer-weighted clique solver).
type CliqueCover struct{}

func (CliqueCover) Solve(g *graph.Graph) ([][]int, error) {
	active := g.ActiveVertices()
	n := len(active)
	if n == 0 {
		return nil, nil
	}
	// scale is the integer scaling factor applied to floating-point weights
	// before handing them to the integer clique search, following
	// pricing_cliquer.cpp's INT_MAX/n convention (n weights of at most 1
	// sum to at most INT_MAX).
	scale := float64(math.MaxInt32 / n)
	idx := make(map[int]int, n)
	for i, u := range active {
		idx[u] = i
	}

	// complementAdj[i][j] is true iff active[i], active[j] are NOT adjacent
	// in g, i.e. they ARE adjacent in the complement (so can co-occur in a
	// clique of the complement == independent set of g).
	complementAdj := make([][]bool, n)
	weights := make([]int64, n)
	for i, u := range active {
		complementAdj[i] = make([]bool, n)
		weights[i] = int64(math.Round(g.Weight(u) * scale))
		for j, v := range active {
			if i != j && !g.Adjacent(u, v) {
				complementAdj[i][j] = true
			}
		}
	}

	threshold := int64(math.Round((1 + EPS) * scale))
	seen := make(map[string]bool)
	var found [][]int
	best := int64(0)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return weights[order[a]] > weights[order[b]] })

	var candidates func(cur []int, curWeight int64, cand []int)
	candidates = func(cur []int, curWeight int64, cand []int) {
		if curWeight > best {
			best = curWeight
		}
		if curWeight > threshold {
			nodes := make([]int, len(cur))
			for i, c := range cur {
				nodes[i] = active[c]
			}
			sortInts(nodes)
			ext := maximalSet(g, nodes)
			key := signature(ext)
			if !seen[key] {
				seen[key] = true
				found = append(found, ext)
			}
		}

		remainingBound := int64(0)
		for _, c := range cand {
			remainingBound += weights[c]
		}
		if curWeight+remainingBound <= best {
			return
		}

		for i, c := range cand {
			var next []int
			for _, d := range cand[i+1:] {
				if complementAdj[c][d] {
					next = append(next, d)
				}
			}
			cur = append(cur, c)
			candidates(cur, curWeight+weights[c], next)
			cur = cur[:len(cur)-1]
		}
	}

	candidates(nil, 0, order)
	return found, nil
}
