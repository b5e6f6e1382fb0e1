package branching

import (
	"github.com/katalvlaran/bcp/formulation"
	"github.com/katalvlaran/bcp/graph"
)

// state tracks which of the two Zykov children a Frame currently has
// applied to the wrapped Formulation.
type state int

const (
	atConflict state = iota
	atContract
)

// Frame is one node of the branch path: the pair being decided and which
// child is currently in effect.
type Frame struct {
	U, V  int
	state state
}

// Stack drives one root-to-current-node path of the Zykov branch tree over
// a single shared Formulation, applying and undoing Conflict/Contract
// modifications as it descends and backtracks.
type Stack struct {
	f      *formulation.Formulation
	frames []Frame
}

// NewStack returns an empty Stack over f. f's Graph must start with no
// branching modifications applied (the root node).
func NewStack(f *formulation.Formulation) *Stack {
	return &Stack{f: f}
}

// Len returns the current branch depth (distance from the root).
func (s *Stack) Len() int { return len(s.frames) }

// Push applies Conflict(u, v) and descends into a new frame.
func (s *Stack) Push(u, v int) error {
	if err := s.f.Change(graph.ModConflict, u, v); err != nil {
		return err
	}
	s.frames = append(s.frames, Frame{U: u, V: v, state: atConflict})
	return nil
}
