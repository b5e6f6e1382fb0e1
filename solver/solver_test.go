package solver

import (
	"math/rand"
	"os"
	"testing"

	"github.com/katalvlaran/bcp/dimacs"
	"github.com/katalvlaran/bcp/graph"
	"github.com/katalvlaran/bcp/pricing"
)

func assertProperColoring(t *testing.T, g *graph.Graph, n int, result Result) {
	t.Helper()
	if len(result.Coloring) != result.ChromaticNumber {
		t.Fatalf("len(Coloring) = %d, want ChromaticNumber = %d", len(result.Coloring), result.ChromaticNumber)
	}
	seen := make(map[int]bool)
	for _, class := range result.Coloring {
		for i, u := range class {
			if seen[u] {
				t.Fatalf("vertex %d appears in more than one color class", u)
			}
			seen[u] = true
			for _, v := range class[i+1:] {
				if g.Adjacent(u, v) {
					t.Fatalf("color class contains adjacent pair (%d, %d)", u, v)
				}
			}
		}
	}
	for u := 0; u < n; u++ {
		if !seen[u] {
			t.Fatalf("vertex %d missing from final coloring", u)
		}
	}
}

func complete(n int) *graph.Graph {
	g := graph.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

func cycle(n int) *graph.Graph {
	g := graph.NewGraph(n)
	for u := 0; u < n; u++ {
		g.AddEdge(u, (u+1)%n)
	}
	return g
}

func petersen() *graph.Graph {
	g := graph.NewGraph(10)
	// outer 5-cycle 0..4, inner 5-star (pentagram) 5..9, spokes i -- i+5.
	for i := 0; i < 5; i++ {
		g.AddEdge(i, (i+1)%5)
		g.AddEdge(i, i+5)
		g.AddEdge(i+5, 5+(i+2)%5)
	}
	return g
}

func TestSolveEmptyGraph(t *testing.T) {
	g := graph.NewGraph(0)
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 0 {
		t.Fatalf("chi(empty) = %d, want 0", r.ChromaticNumber)
	}
}

func TestSolveSingleVertex(t *testing.T) {
	g := graph.NewGraph(1)
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 1 {
		t.Fatalf("chi(K1) = %d, want 1", r.ChromaticNumber)
	}
	assertProperColoring(t, g, 1, r)
}

func TestSolveEdgelessGraph(t *testing.T) {
	g := graph.NewGraph(6)
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 1 {
		t.Fatalf("chi(edgeless) = %d, want 1", r.ChromaticNumber)
	}
	assertProperColoring(t, g, 6, r)
}

func TestSolveTriangle(t *testing.T) {
	g := complete(3)
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 3 {
		t.Fatalf("chi(K3) = %d, want 3", r.ChromaticNumber)
	}
	assertProperColoring(t, g, 3, r)
}

func TestSolveCompleteGraph(t *testing.T) {
	n := 6
	g := complete(n)
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != n {
		t.Fatalf("chi(K%d) = %d, want %d", n, r.ChromaticNumber, n)
	}
	assertProperColoring(t, g, n, r)
}

func TestSolveC4IsBipartite(t *testing.T) {
	g := cycle(4)
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 2 {
		t.Fatalf("chi(C4) = %d, want 2", r.ChromaticNumber)
	}
	assertProperColoring(t, g, 4, r)
}

func TestSolveC5IsOddCycle(t *testing.T) {
	g := cycle(5)
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 3 {
		t.Fatalf("chi(C5) = %d, want 3", r.ChromaticNumber)
	}
	assertProperColoring(t, g, 5, r)
}

func TestSolvePetersenGraph(t *testing.T) {
	g := petersen()
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 3 {
		t.Fatalf("chi(Petersen) = %d, want 3", r.ChromaticNumber)
	}
	assertProperColoring(t, g, 10, r)
}

// bruteForceChromaticNumber is a trusted, independent oracle for small
// graphs: try k = 1, 2, ... and backtrack a coloring assignment.
func bruteForceChromaticNumber(g *graph.Graph, n int) int {
	color := make([]int, n)
	var try func(k, u int) bool
	try = func(k, u int) bool {
		if u == n {
			return true
		}
		for c := 1; c <= k; c++ {
			ok := true
			for v := 0; v < u; v++ {
				if color[v] == c && g.Adjacent(u, v) {
					ok = false
					break
				}
			}
			if ok {
				color[u] = c
				if try(k, u+1) {
					return true
				}
				color[u] = 0
			}
		}
		return false
	}
	for k := 1; k <= n; k++ {
		if try(k, 0) {
			return k
		}
	}
	return n
}

func TestSolveMatchesBruteForceOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	probs := []float64{0.3, 0.5, 0.7}
	for trial := 0; trial < 12; trial++ {
		n := 4 + rng.Intn(7) // 4..10
		p := probs[trial%len(probs)]
		g := graph.NewGraph(n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < p {
					g.AddEdge(u, v)
				}
			}
		}
		want := bruteForceChromaticNumber(g, n)

		got, err := New().Solve(g)
		if err != nil {
			t.Fatal(err)
		}
		if got.ChromaticNumber != want {
			t.Fatalf("trial %d (n=%d p=%v): chi = %d, want %d", trial, n, p, got.ChromaticNumber, want)
		}
		assertProperColoring(t, g, n, got)
	}
}

// loadDimacs parses a fixture under ../testdata, the instances too large for
// the brute-force oracle to touch.
func loadDimacs(t *testing.T, name string) *graph.Graph {
	t.Helper()
	f, err := os.Open("../testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := dimacs.Parse(f)
	if err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	return g
}

// TestSolveMyciel3MatchesKnownChromaticNumber runs the Mycielski-3 instance
// (11 vertices, chi = 4) to completion. DSATUR already colors it with 4
// colors, but the LP bound (fractional chromatic number 2.9) does not prove
// that, so the search has to exhaust a branch tree before it returns.
func TestSolveMyciel3MatchesKnownChromaticNumber(t *testing.T) {
	g := loadDimacs(t, "myciel3.col")
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.TimedOut {
		t.Fatal("solve timed out with no time limit set")
	}
	if r.ChromaticNumber != 4 {
		t.Fatalf("chi(myciel3) = %d, want 4", r.ChromaticNumber)
	}
	assertProperColoring(t, g, g.N(), r)
}

// TestSolveQueen5x5MatchesKnownChromaticNumber runs the 5x5 queens graph (25
// vertices, chi = 5) to completion, the largest instance in this suite and
// the one most likely to expose a weak LP bound or a stalled pricer.
func TestSolveQueen5x5MatchesKnownChromaticNumber(t *testing.T) {
	g := loadDimacs(t, "queen5_5.col")
	r, err := New().Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.TimedOut {
		t.Fatal("solve timed out with no time limit set")
	}
	if r.ChromaticNumber != 5 {
		t.Fatalf("chi(queen5_5) = %d, want 5", r.ChromaticNumber)
	}
	assertProperColoring(t, g, g.N(), r)
}

func TestSolveWithCliqueCoverPricerAgrees(t *testing.T) {
	g := complete(4)
	r, err := New(WithPricer(pricing.CliqueCover{})).Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	if r.ChromaticNumber != 4 {
		t.Fatalf("chi(K4) with clique-cover backend = %d, want 4", r.ChromaticNumber)
	}
}
