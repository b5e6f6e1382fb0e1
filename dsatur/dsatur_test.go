package dsatur

import (
	"testing"

	"github.com/katalvlaran/bcp/graph"
)

func assertProperColoring(t *testing.T, g *graph.Graph, k int, classes [][]int) {
	t.Helper()
	if len(classes) != k {
		t.Fatalf("len(classes) = %d, want %d", len(classes), k)
	}
	seen := make(map[int]bool)
	for _, class := range classes {
		for i, u := range class {
			if seen[u] {
				t.Fatalf("vertex %d appears in more than one class", u)
			}
			seen[u] = true
			for _, v := range class[i+1:] {
				if g.Adjacent(u, v) {
					t.Fatalf("class contains adjacent pair (%d, %d)", u, v)
				}
			}
		}
	}
	for _, u := range g.ActiveVertices() {
		if !seen[u] {
			t.Fatalf("vertex %d missing from coloring", u)
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	g := graph.NewGraph(0)
	k, classes := Run(g)
	if k != 0 || len(classes) != 0 {
		t.Fatalf("empty graph should color with 0 colors, got %d/%v", k, classes)
	}
}

func TestEdgelessGraph(t *testing.T) {
	g := graph.NewGraph(5)
	k, classes := Run(g)
	if k != 1 {
		t.Fatalf("edgeless graph should need 1 color, got %d", k)
	}
	assertProperColoring(t, g, k, classes)
}

func TestCompleteGraph(t *testing.T) {
	n := 5
	g := graph.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
		}
	}
	k, classes := Run(g)
	if k != n {
		t.Fatalf("K%d should need %d colors, got %d", n, n, k)
	}
	assertProperColoring(t, g, k, classes)
}

func TestBipartiteGraphUsesTwoColors(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)
	k, classes := Run(g)
	if k != 2 {
		t.Fatalf("C4 should need 2 colors, got %d", k)
	}
	assertProperColoring(t, g, k, classes)
}

func TestRespectsInactiveVertices(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	if err := g.Change(graph.ModDeactivate, 1, -1); err != nil {
		t.Fatal(err)
	}
	k, classes := Run(g)
	if k != 1 {
		t.Fatalf("two isolated active vertices should need 1 color, got %d", k)
	}
	assertProperColoring(t, g, k, classes)
}
