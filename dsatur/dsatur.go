package dsatur

import "github.com/katalvlaran/bcp/graph"

// Run colors the active subgraph of g with the DSATUR heuristic and returns
// the number of colors used together with the induced color classes (each a
// sorted slice of vertex ids, one per color).
func Run(g *graph.Graph) (int, [][]int) {
	n := g.N()
	active := g.ActiveVertices()
	if len(active) == 0 {
		return 0, nil
	}

	colored := make([]bool, n)
	color := make([]int, n) // 0 means uncolored
	satDeg := make([]int, n)
	neighborColors := make([]map[int]bool, n)
	for _, u := range active {
		neighborColors[u] = make(map[int]bool)
	}

	remaining := len(active)
	maxColor := 0

	for remaining > 0 {
		cur := -1
		for _, u := range active {
			if colored[u] {
				continue
			}
			if cur == -1 {
				cur = u
				continue
			}
			if satDeg[u] > satDeg[cur] || (satDeg[u] == satDeg[cur] && g.Degree(u) > g.Degree(cur)) {
				cur = u
			}
		}

		used := neighborColors[cur]
		c := 1
		for used[c] {
			c++
		}
		color[cur] = c
		colored[cur] = true
		remaining--
		if c > maxColor {
			maxColor = c
		}

		for _, w := range g.OpenNeighborhood([]int{cur}) {
			if colored[w] {
				continue
			}
			if !neighborColors[w][c] {
				neighborColors[w][c] = true
				satDeg[w]++
			}
		}
	}

	classes := make([][]int, maxColor)
	for _, u := range active {
		classes[color[u]-1] = append(classes[color[u]-1], u)
	}
	return maxColor, classes
}
