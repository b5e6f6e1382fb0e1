package pricing

import "github.com/katalvlaran/bcp/graph"

// BranchReduce is the default Pricer: a branch-and-reduce search for maximum
// weight independent sets, following the original source's src/pricing.cpp.
type BranchReduce struct{}

type branchNode struct {
	g        *graph.Graph
	solValue float64
	solNodes []int
}

// Solve searches g (treating g.Weight as the MWIS objective) for independent
// sets whose weight exceeds 1+EPS, returning every distinct such set found
// along the way (not only the incumbent optimum), each extended to a
// maximal independent set. An empty, nil-error result means no violating
// column exists in g under its current weights.
func (BranchReduce) Solve(g *graph.Graph) ([][]int, error) {
	root := g.Clone()
	for _, u := range root.ActiveVertices() {
		if root.Weight(u) <= 0 {
			root.Deactivate(u)
		}
	}

	stack := []branchNode{{g: root, solValue: 0, solNodes: nil}}
	seen := make(map[string]bool)
	var found [][]int
	best := 0.0

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n.solValue, n.solNodes = reduce(n.g, n.solValue, n.solNodes)

		heuValue, heuNodes := mwisHeuristic(n.g, n.solValue, n.solNodes)
		if heuValue > best {
			best = heuValue
		}
		if heuValue > 1+EPS {
			recordViolator(g, heuNodes, seen, &found)
		}

		if n.g.IsEmpty() {
			continue
		}
		if mwisUpperBound(n.g)+n.solValue <= best {
			continue
		}
		stack = branchPush(stack, n)
	}

	return found, nil
}

func recordViolator(g *graph.Graph, nodes []int, seen map[string]bool, found *[][]int) {
	ext := maximalSet(g, nodes)
	key := signature(ext)
	if seen[key] {
		return
	}
	seen[key] = true
	*found = append(*found, ext)
}

// branchPush selects a branching vertex v (the maximum-degree active vertex
// whose confining set is non-empty, deactivating any confined-free vertex
// found along the way as an unconfined-rule application) and pushes the two
// children: "v's confining set is in the solution" and "v is excluded".
func branchPush(stack []branchNode, n branchNode) []branchNode {
	var v int
	var conf []int
	for {
		if n.g.IsEmpty() {
			return stack
		}
		v = n.g.MaxDegreeVertex()
		conf = confiningSet(n.g, v)
		if len(conf) > 0 {
			break
		}
		n.g.Deactivate(v)
	}

	inValue := n.solValue + weight(n.g, conf)
	g1 := n.g.Clone()
	for _, u := range g1.ClosedNeighborhood(conf) {
		g1.Deactivate(u)
	}
	if !g1.IsEmpty() {
		inNodes := append(append([]int(nil), n.solNodes...), conf...)
		sortInts(inNodes)
		stack = append(stack, branchNode{g: g1, solValue: inValue, solNodes: inNodes})
	}

	g2 := n.g.Clone()
	g2.Deactivate(v)
	if !g2.IsEmpty() {
		outNodes := append([]int(nil), n.solNodes...)
		stack = append(stack, branchNode{g: g2, solValue: n.solValue, solNodes: outNodes})
	}
	return stack
}
