package formulation

import "github.com/katalvlaran/bcp/graph"

// Column is an independent set used as a variable of the set-cover LP.
// Nodes is kept sorted so two columns with the same vertex set compare
// equal by slice content.
type Column struct {
	Nodes  []int
	Active bool
}

// Cut is a triangle cut scaffold (odd-cycle-style inequality). Its
// separation routine and LP contribution are deliberately unimplemented:
// see DESIGN.md, "triangle cuts" open question.
type Cut struct {
	A, B, C int
	Active  bool
}

// Formulation aggregates the generated columns and cuts of one branch node,
// owning the per-vertex and per-pair indices used for O(1) lookup. It is
// the sole owner of its Graph: nothing outside this package should call
// Graph.Change/Undo directly once a Formulation wraps it.
type Formulation struct {
	g *graph.Graph

	columns []Column
	cuts    []Cut

	// byVertex[v] lists column ids whose Nodes contain v.
	byVertex [][]int
	// byPair[pairKey(u,v)] lists column ids whose Nodes contain both u and v.
	byPair map[[2]int][]int

	// byCutVertex[v] lists cut ids touching v (kept for completeness; no
	// separation routine consumes it, per the triangle-cut open question).
	byCutVertex [][]int
}

// New wraps g in a fresh, empty Formulation (no seeded columns). Most
// callers want NewFromColoring instead.
func New(g *graph.Graph) *Formulation {
	return &Formulation{
		g:           g,
		byVertex:    make([][]int, g.N()),
		byPair:      make(map[[2]int][]int),
		byCutVertex: make([][]int, g.N()),
	}
}

// NewFromColoring builds a Formulation seeded from an initial feasible
// coloring (e.g. DSATUR's output): each color class becomes a column, and
// any active vertex not covered by one of those classes gets its own
// singleton column. This guarantees the restricted master LP starts
// feasible, since every active vertex is covered by at least one column.
func NewFromColoring(g *graph.Graph, colorClasses [][]int) (*Formulation, error) {
	f := New(g)
	covered := make([]bool, g.N())
	for _, class := range colorClasses {
		if len(class) == 0 {
			continue
		}
		if _, err := f.AddColumn(class); err != nil {
			return nil, err
		}
		for _, v := range class {
			covered[v] = true
		}
	}
	for _, v := range g.ActiveVertices() {
		if !covered[v] {
			if _, err := f.AddColumn([]int{v}); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Graph returns the wrapped Graph. Callers must not mutate it directly.
func (f *Formulation) Graph() *graph.Graph { return f.g }

// NumColumns returns the total number of columns ever added (active or not).
func (f *Formulation) NumColumns() int { return len(f.columns) }

// NumCuts returns the total number of cuts ever added.
func (f *Formulation) NumCuts() int { return len(f.cuts) }

// Column returns a copy of the column stored at id.
func (f *Formulation) Column(id int) Column {
	c := f.columns[id]
	return Column{Nodes: append([]int(nil), c.Nodes...), Active: c.Active}
}

// SetWeight forwards to the underlying graph; pricing uses this to install
// dual prices before searching for violating columns.
func (f *Formulation) SetWeight(v int, w float64) { f.g.SetWeight(v, w) }

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
