package graph

import (
	"math/rand"
	"testing"
)

// TestReversibilityRandomSequences checks the round-trip law: for any random
// valid sequence of Change calls followed by their inverses in LIFO order,
// Graph state is bitwise identical to the pre-sequence snapshot.
func TestReversibilityRandomSequences(t *testing.T) {
	const n = 8
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		g := randomGraph(n, rng)
		snapshot := g.Clone()

		type applied struct {
			kind ModKind
			u, v int
		}
		var log []applied

		steps := rng.Intn(10)
		for i := 0; i < steps; i++ {
			active := g.ActiveVertices()
			if len(active) < 2 {
				break
			}
			u := active[rng.Intn(len(active))]
			v := active[rng.Intn(len(active))]
			for v == u {
				v = active[rng.Intn(len(active))]
			}

			kind := ModConflict
			if rng.Intn(2) == 0 {
				kind = ModContract
			}
			if err := g.Change(kind, u, v); err != nil {
				t.Fatalf("trial %d step %d: Change(%s,%d,%d): %v", trial, i, kind, u, v, err)
			}
			log = append(log, applied{kind, u, v})
		}

		for i := len(log) - 1; i >= 0; i-- {
			a := log[i]
			if err := g.Undo(a.kind, a.u, a.v); err != nil {
				t.Fatalf("trial %d: Undo(%s,%d,%d): %v", trial, a.kind, a.u, a.v, err)
			}
		}

		requireIdenticalGraphs(t, snapshot, g)
	}
}

func randomGraph(n int, rng *rand.Rand) *Graph {
	g := NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < 0.4 {
				g.AddEdge(u, v)
			}
		}
	}
	return g
}
