package pricing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/bcp/graph"
)

func sortInts(s []int) { sort.Ints(s) }

// signature renders a sorted node list as a map key for set deduplication.
func signature(nodes []int) string {
	var b strings.Builder
	for i, u := range nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(u))
	}
	return b.String()
}

// maximalSet extends s to a maximal independent set of g, greedily adding
// minimum-degree vertices from the remaining non-neighbors. A maximal set
// is at least as good a column as s and costs little extra to compute.
func maximalSet(g *graph.Graph, s []int) []int {
	w := g.Clone()
	for _, u := range w.ClosedNeighborhood(s) {
		w.Deactivate(u)
	}
	out := append([]int(nil), s...)
	for !w.IsEmpty() {
		u := w.MinDegreeVertex()
		out = append(out, u)
		for _, x := range w.ClosedNeighborhood([]int{u}) {
			w.Deactivate(x)
		}
	}
	sortInts(out)
	return out
}
