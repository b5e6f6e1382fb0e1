package lpmaster

import (
	"fmt"

	"github.com/katalvlaran/bcp/formulation"
	"github.com/katalvlaran/bcp/pricing"
)

// Solve runs column generation to LP-optimality on the current branch node:
// repeatedly solve the restricted master, price out its dual with pricer,
// and append any violating independent set as a new column, until pricing
// finds nothing improving. Mirrors the original source's column-generation
// loop in src/branch_cut_price.cpp.
func Solve(f *formulation.Formulation, pricer pricing.Pricer, opts ...Option) (Solution, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(f.ActiveColumns()) == 0 {
		return Solution{}, ErrNoActiveColumns
	}

	var last Solution
	for round := 0; round < cfg.maxRounds; round++ {
		primal := buildPrimal(f)
		value, x, err := solvePrimal(primal, cfg.tol)
		if err != nil {
			return Solution{}, err
		}
		last = Solution{Value: value, X: x}

		dual := buildDual(f)
		y, err := solveDual(dual, cfg.tol)
		if err != nil {
			return Solution{}, err
		}
		for v, weight := range y {
			f.Graph().SetWeight(v, weight)
		}

		sets, err := pricer.Solve(f.Graph())
		if err != nil {
			return Solution{}, fmt.Errorf("lpmaster: pricing round %d: %w", round, err)
		}

		added := 0
		for _, s := range sets {
			if f.CheckAlreadyIn(s) {
				continue
			}
			if _, err := f.AddColumn(s); err == nil {
				added++
			}
		}
		if added == 0 {
			return last, nil
		}
	}
	return last, ErrPricerStalled
}
