package solver

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bcp/branching"
	"github.com/katalvlaran/bcp/dsatur"
	"github.com/katalvlaran/bcp/formulation"
	"github.com/katalvlaran/bcp/graph"
	"github.com/katalvlaran/bcp/lpmaster"
)

// Solve runs branch-cut-and-price to find the chromatic number of g (and an
// optimal coloring, modulo TimedOut). Branching modifications are applied to
// g itself and undone as the search backtracks, so a search that runs to
// completion leaves g's active vertices and edges as it found them. Solve
// overwrites g's vertex weights with dual prices, and when it returns early
// (time limit or error) the modifications of the current branch path are
// still applied to g.
func (d *Driver) Solve(g *graph.Graph) (Result, error) {
	start := time.Now()

	if g.N() == 0 {
		return Result{ChromaticNumber: 0}, nil
	}

	heuK, heuClasses := dsatur.Run(g)
	best := heuK
	bestColoring := g.ApplyChangesToSolution(heuClasses)
	d.logger.Info("initial heuristic coloring", zap.Int("colors", best))

	f, err := formulation.NewFromColoring(g, heuClasses)
	if err != nil {
		return Result{}, err
	}

	stack := branching.NewStack(f)
	nodes := 0

	for {
		nodes++
		if d.timeLimit > 0 && time.Since(start) > d.timeLimit {
			d.logger.Info("time limit reached", zap.Int("nodes", nodes))
			return Result{ChromaticNumber: best, Coloring: bestColoring, Nodes: nodes, TimedOut: true}, nil
		}

		if d.debugChecks && !f.Graph().IsEmpty() && !f.Graph().CheckConnectivity() {
			return Result{}, ErrDebugAssertionFailed
		}

		sol, err := lpmaster.Solve(f, d.pricer)
		if err != nil {
			return Result{}, err
		}

		// An integral LP optimum is a feasible coloring in its own right,
		// whether or not this node is a branch-tree leaf: capture it as soon
		// as it beats the incumbent, matching the original source's
		// sol.is_integral AND sol.cost+EPS < upper.cost check.
		if classes, integral := integralColoring(f, sol); integral {
			if k := len(classes); float64(k)+EPS < float64(best) {
				best = k
				bestColoring = f.Graph().ApplyChangesToSolution(classes)
				d.logger.Debug("integral LP solution improved incumbent", zap.Int("colors", best))
			}
		}

		// chi is integer valued: round the fractional bound up before
		// comparing against the incumbent, so e.g. LP=3.2 prunes against
		// best=4 (ceil=4) rather than only against best<=3.
		if math.Ceil(sol.Value-EPS) >= float64(best) {
			cont, err := stack.Backtrack()
			if err != nil {
				return Result{}, err
			}
			if !cont {
				break
			}
			continue
		}

		if f.Graph().NMods()%d.heuristicCadence == 0 {
			if k, classes := dsatur.Run(f.Graph()); k > 0 && k < best {
				best = k
				bestColoring = f.Graph().ApplyChangesToSolution(classes)
				d.logger.Debug("heuristic re-run improved incumbent", zap.Int("colors", best))
			}
		}

		u, v, ok := branching.Branch(f, sol)
		if !ok {
			// sol is already integral, handled above; nothing left to branch.
			cont, err := stack.Backtrack()
			if err != nil {
				return Result{}, err
			}
			if !cont {
				break
			}
			continue
		}

		if err := stack.Push(u, v); err != nil {
			return Result{}, err
		}
	}

	d.logger.Info("search complete", zap.Int("colors", best), zap.Int("nodes", nodes))
	return Result{ChromaticNumber: best, Coloring: bestColoring, Nodes: nodes}, nil
}

// integralColoring inspects sol's column weights and reports whether every
// one is within EPS of 0 or 1 -- an integral set-cover solution -- along
// with the vertex classes of the columns selected at weight 1.
func integralColoring(f *formulation.Formulation, sol lpmaster.Solution) (classes [][]int, integral bool) {
	integral = true
	for id, x := range sol.X {
		switch {
		case x >= 1-EPS:
			classes = append(classes, f.Column(id).Nodes)
		case x > EPS:
			integral = false
		}
	}
	return classes, integral
}
