// Command bcp computes the chromatic number of a DIMACS graph-coloring
// instance by branch-cut-and-price, following the original source's
// src/main.cpp.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/bcp/dimacs"
	"github.com/katalvlaran/bcp/pricing"
	"github.com/katalvlaran/bcp/solver"
)

func main() {
	app := &cli.App{
		Name:      "bcp",
		Usage:     "compute the chromatic number of a DIMACS graph instance by branch-cut-and-price",
		ArgsUsage: "<instance.col>",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "time-limit",
				Usage: "wall-clock search budget, 0 for unbounded",
				Value: 0,
			},
			&cli.StringFlag{
				Name:  "pricer",
				Usage: "pricing backend: branch-reduce or clique-cover",
				Value: "branch-reduce",
			},
			&cli.IntFlag{
				Name:  "heuristic-cadence",
				Usage: "graph modifications between DSATUR re-runs",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "debug-checks",
				Usage: "enable per-node connectivity sanity assertions",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug-level logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("missing instance path", 1)
	}
	path := c.Args().Get(0)

	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("bcp: opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := dimacs.Parse(f)
	if err != nil {
		return fmt.Errorf("bcp: parsing %s: %w", path, err)
	}
	logger.Info("instance loaded", zap.String("path", path), zap.Int("vertices", g.N()))

	pricer, err := pricing.FromName(c.String("pricer"))
	if err != nil {
		return err
	}

	drv := solver.New(
		solver.WithLogger(logger),
		solver.WithTimeLimit(c.Duration("time-limit")),
		solver.WithPricer(pricer),
		solver.WithHeuristicCadence(c.Int("heuristic-cadence")),
		solver.WithDebugChecks(c.Bool("debug-checks")),
	)

	start := time.Now()
	result, err := drv.Solve(g)
	if err != nil {
		return fmt.Errorf("bcp: solving %s: %w", path, err)
	}
	elapsed := time.Since(start)

	logger.Info("search finished",
		zap.Int("colors", result.ChromaticNumber),
		zap.Int("nodes", result.Nodes),
		zap.Bool("timed_out", result.TimedOut),
		zap.Duration("elapsed", elapsed),
	)

	return dimacs.WriteSolution(os.Stdout, result.Coloring)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}
