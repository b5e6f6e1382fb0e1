package branching

import (
	"math"

	"github.com/katalvlaran/bcp/formulation"
	"github.com/katalvlaran/bcp/graph"
	"github.com/katalvlaran/bcp/lpmaster"
)

// Branch picks the active vertex pair whose combined column weight in sol
// is closest to 0.5 -- the master LP's least-decided pair -- and reports it
// for the caller to Push. ok is false when no active pair has any combined
// weight above EPS, meaning sol is already an integral coloring (every
// active column partitions the graph with 0/1 weights) and this node needs
// no further branching.
func Branch(f *formulation.Formulation, sol lpmaster.Solution) (u, v int, ok bool) {
	s := f.Similarity(sol.X)
	active := f.Graph().ActiveVertices()

	u, v = -1, -1
	bestDist := math.MaxFloat64
	for i, a := range active {
		for _, b := range active[i+1:] {
			val := s[a][b]
			if val <= EPS {
				continue
			}
			dist := math.Abs(val - 0.5)
			if dist < bestDist {
				bestDist = dist
				u, v = a, b
			}
		}
	}
	return u, v, u != -1
}

// Backtrack advances the search from the current node: Conflict -> Contract
// for the same pair, or Contract -> pop the frame and repeat for the parent.
// Returns false once the stack empties, meaning the whole branch tree
// rooted where this Stack started has been fully explored.
func (s *Stack) Backtrack() (bool, error) {
	for len(s.frames) > 0 {
		top := &s.frames[len(s.frames)-1]
		switch top.state {
		case atConflict:
			if err := s.f.Undo(graph.ModConflict, top.U, top.V); err != nil {
				return false, err
			}
			if err := s.f.Change(graph.ModContract, top.U, top.V); err != nil {
				return false, err
			}
			top.state = atContract
			return true, nil
		case atContract:
			if err := s.f.Undo(graph.ModContract, top.U, top.V); err != nil {
				return false, err
			}
			s.frames = s.frames[:len(s.frames)-1]
		}
	}
	return false, nil
}
