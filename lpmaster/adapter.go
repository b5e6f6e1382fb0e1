package lpmaster

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/bcp/formulation"
)

// primalModel is the standard-form encoding (minimize c'x s.t. Ax=b, x>=0)
// of the restricted master's set-cover LP: one x-variable per active column
// plus one surplus variable per active vertex converting each >= constraint
// into an equality.
type primalModel struct {
	c       []float64
	a       *mat.Dense
	b       []float64
	colIDs  []int
	numVars int
}

func buildPrimal(f *formulation.Formulation) primalModel {
	colIDs := f.ActiveColumns()
	verts := f.Graph().ActiveVertices()
	nCols, nVerts := len(colIDs), len(verts)

	vertRow := make(map[int]int, nVerts)
	for i, v := range verts {
		vertRow[v] = i
	}

	numVars := nCols + nVerts
	c := make([]float64, numVars)
	for j := 0; j < nCols; j++ {
		c[j] = 1
	}

	a := mat.NewDense(nVerts, numVars, nil)
	b := make([]float64, nVerts)
	for i := range b {
		b[i] = 1
	}
	for j, id := range colIDs {
		for _, v := range f.Column(id).Nodes {
			if row, ok := vertRow[v]; ok {
				a.Set(row, j, 1)
			}
		}
	}
	for i := 0; i < nVerts; i++ {
		a.Set(i, nCols+i, -1) // surplus: sum x_j - s_v = 1
	}

	return primalModel{c: c, a: a, b: b, colIDs: colIDs, numVars: numVars}
}

// dualModel is the standard-form encoding of the master's LP dual:
// maximize sum y_v s.t. for every active column j, sum of y_v over v in
// column j plus a slack t_j equals 1. Expressed to Simplex as a
// minimization of -sum y_v.
type dualModel struct {
	c      []float64
	a      *mat.Dense
	b      []float64
	vertID []int
}

func buildDual(f *formulation.Formulation) dualModel {
	colIDs := f.ActiveColumns()
	verts := f.Graph().ActiveVertices()
	nCols, nVerts := len(colIDs), len(verts)

	vertCol := make(map[int]int, nVerts)
	for i, v := range verts {
		vertCol[v] = i
	}

	numVars := nVerts + nCols
	c := make([]float64, numVars)
	for i := 0; i < nVerts; i++ {
		c[i] = -1
	}

	a := mat.NewDense(nCols, numVars, nil)
	b := make([]float64, nCols)
	for j := 0; j < nCols; j++ {
		b[j] = 1
	}
	for j, id := range colIDs {
		for _, v := range f.Column(id).Nodes {
			if col, ok := vertCol[v]; ok {
				a.Set(j, col, 1)
			}
		}
		a.Set(j, nVerts+j, 1) // slack
	}

	return dualModel{c: c, a: a, b: b, vertID: verts}
}

func solvePrimal(m primalModel, tol float64) (float64, map[int]float64, error) {
	if len(m.colIDs) == 0 {
		return 0, nil, ErrNoActiveColumns
	}
	z, x, err := lp.Simplex(m.c, m.a, m.b, tol, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("lpmaster: primal solve: %w", errInfeasible(err))
	}
	out := make(map[int]float64, len(m.colIDs))
	for j, id := range m.colIDs {
		out[id] = x[j]
	}
	return z, out, nil
}

func solveDual(m dualModel, tol float64) (map[int]float64, error) {
	if len(m.vertID) == 0 {
		return map[int]float64{}, nil
	}
	_, y, err := lp.Simplex(m.c, m.a, m.b, tol, nil)
	if err != nil {
		return nil, fmt.Errorf("lpmaster: dual solve: %w", errInfeasible(err))
	}
	out := make(map[int]float64, len(m.vertID))
	for i, v := range m.vertID {
		out[v] = y[i]
	}
	return out, nil
}

func errInfeasible(err error) error {
	if err == lp.ErrInfeasible {
		return ErrInfeasible
	}
	return err
}
