package formulation

import (
	"sort"

	"github.com/katalvlaran/bcp/graph"
)

// AddColumn appends a new column for the independent set s. s need not be
// sorted; it is copied and sorted internally. Precondition: s is independent
// in the current graph and not already present (ErrNotIndependent /
// ErrDuplicateColumn otherwise).
func (f *Formulation) AddColumn(s []int) (int, error) {
	if len(s) == 0 {
		return -1, ErrEmptyColumn
	}
	nodes := append([]int(nil), s...)
	sort.Ints(nodes)

	if !f.isIndependent(nodes) {
		return -1, ErrNotIndependent
	}
	if f.CheckAlreadyIn(nodes) {
		return -1, ErrDuplicateColumn
	}

	id := len(f.columns)
	f.columns = append(f.columns, Column{Nodes: nodes, Active: true})

	for _, u := range nodes {
		f.byVertex[u] = append(f.byVertex[u], id)
	}
	for i, u := range nodes {
		for _, v := range nodes[i+1:] {
			k := pairKey(u, v)
			f.byPair[k] = append(f.byPair[k], id)
		}
	}
	return id, nil
}

// AddCut appends a new triangle cut (a, b, c). No independence precondition
// applies (cuts are not independent sets); duplicates are allowed since no
// separation routine in this implementation generates them automatically.
func (f *Formulation) AddCut(a, b, c int) int {
	id := len(f.cuts)
	f.cuts = append(f.cuts, Cut{A: a, B: b, C: c, Active: true})
	for _, v := range [3]int{a, b, c} {
		f.byCutVertex[v] = append(f.byCutVertex[v], id)
	}
	return id
}

// CheckAlreadyIn reports whether a column with exactly this (sorted) vertex
// set already exists, active or not.
func (f *Formulation) CheckAlreadyIn(sorted []int) bool {
	for _, c := range f.columns {
		if intSliceEqual(c.Nodes, sorted) {
			return true
		}
	}
	return false
}

// CheckActivation recomputes, from scratch, whether the column at id should
// currently be active: every member vertex active in the graph and no two
// members adjacent.
func (f *Formulation) CheckActivation(id int) bool {
	return f.isIndependent(f.columns[id].Nodes)
}

// CheckAll verifies that every column's stored Active flag matches a fresh
// recomputation, the formulation-level consistency invariant debug builds
// can assert on after a sequence of Change/Undo calls.
func (f *Formulation) CheckAll() bool {
	for id, c := range f.columns {
		if c.Active != f.CheckActivation(id) {
			return false
		}
	}
	return true
}

func (f *Formulation) isIndependent(nodes []int) bool {
	for _, u := range nodes {
		if !f.g.IsActive(u) {
			return false
		}
	}
	for i, u := range nodes {
		for _, v := range nodes[i+1:] {
			if f.g.Adjacent(u, v) {
				return false
			}
		}
	}
	return true
}

// Change applies a graph modification and cascades the corresponding
// activation update to every column the modification could have affected.
func (f *Formulation) Change(kind graph.ModKind, u, v int) error {
	if err := f.g.Change(kind, u, v); err != nil {
		return err
	}
	f.cascade(kind, u, v)
	return nil
}

// Undo reverses a graph modification and re-derives activation for every
// column that could have been affected, exactly mirroring Change's cascade.
func (f *Formulation) Undo(kind graph.ModKind, u, v int) error {
	if err := f.g.Undo(kind, u, v); err != nil {
		return err
	}
	f.cascade(kind, u, v)
	return nil
}

// cascade re-derives activation for the columns a (u, v) modification of
// kind could have touched:
//   - Conflict(u, v): columns containing both u and v may have just become
//     non-independent.
//   - Contract(u, v): columns containing v are now invalid (v no longer
//     exists); columns containing u may have gained an adjacent pair via
//     edges v transferred onto u.
//   - Deactivate(u): columns containing u are now invalid.
func (f *Formulation) cascade(kind graph.ModKind, u, v int) {
	switch kind {
	case graph.ModConflict:
		for _, id := range f.byPair[pairKey(u, v)] {
			f.columns[id].Active = f.CheckActivation(id)
		}
	case graph.ModContract:
		seen := make(map[int]bool)
		for _, id := range f.byVertex[v] {
			seen[id] = true
		}
		for _, id := range f.byVertex[u] {
			seen[id] = true
		}
		for id := range seen {
			f.columns[id].Active = f.CheckActivation(id)
		}
	case graph.ModDeactivate:
		for _, id := range f.byVertex[u] {
			f.columns[id].Active = f.CheckActivation(id)
		}
	}
}

// ActiveColumns returns the ids of all currently active columns, in
// insertion order.
func (f *Formulation) ActiveColumns() []int {
	var out []int
	for id, c := range f.columns {
		if c.Active {
			out = append(out, id)
		}
	}
	return out
}

// ActiveColumnsWith returns the ids of currently active columns containing
// vertex v, in insertion order.
func (f *Formulation) ActiveColumnsWith(v int) []int {
	var out []int
	for _, id := range f.byVertex[v] {
		if f.columns[id].Active {
			out = append(out, id)
		}
	}
	return out
}

// Similarity returns S where S[u][v] = sum of x[id] over active columns id
// containing both u and v, for x a map from column id to its LP value.
func (f *Formulation) Similarity(x map[int]float64) [][]float64 {
	n := f.g.N()
	s := make([][]float64, n)
	for i := range s {
		s[i] = make([]float64, n)
	}
	for _, id := range f.ActiveColumns() {
		val, ok := x[id]
		if !ok || val == 0 {
			continue
		}
		nodes := f.columns[id].Nodes
		for i, a := range nodes {
			for _, b := range nodes[i+1:] {
				s[a][b] += val
				s[b][a] += val
			}
		}
	}
	return s
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
