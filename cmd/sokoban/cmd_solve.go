package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sokoban/internal/cache"
	"sokoban/internal/puzzle"
	"sokoban/internal/solver"
	"sokoban/internal/ux"
	"sokoban/internal/validate"
	"sokoban/internal/warehouse"
)

var (
	solveHeuristic string
	solveNodeLimit int
	solveCacheDir  string
	solveNoVerify  bool
	solveShow      bool
	solvePretty    bool
	solveTimeout   time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve <warehouse-file>",
	Short: "Find a minimal-cost solution, or report Impossible",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "", "heuristic to use (assignment, nearest); overrides config")
	solveCmd.Flags().IntVar(&solveNodeLimit, "node-limit", 0, "cap on A* node expansions; overrides config")
	solveCmd.Flags().StringVar(&solveCacheDir, "cache", "", "solution cache directory; overrides config")
	solveCmd.Flags().BoolVar(&solveNoVerify, "no-verify", false, "skip replaying the solution through the validator")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "print every intermediate grid")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "colorize grid output")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "give up after this long (reported as Impossible)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	w, err := warehouse.LoadFile(args[0])
	if err != nil {
		return err
	}

	opts := solver.Options{
		Heuristic:  cfg.Heuristic,
		NodeLimit:  cfg.NodeLimit,
		SkipVerify: solveNoVerify,
	}
	if solveHeuristic != "" {
		opts.Heuristic = solveHeuristic
	}
	if solveNodeLimit != 0 {
		opts.NodeLimit = solveNodeLimit
	}

	cacheDir := cfg.CachePath
	if solveCacheDir != "" {
		cacheDir = solveCacheDir
	}
	if cacheDir != "" {
		store, err := cache.Open(cache.Config{Path: cacheDir, Logger: slog.Default()})
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Cache = store
	}

	ctx := cmd.Context()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	sol, err := solver.Solve(ctx, w, opts)
	if errors.Is(err, solver.ErrImpossible) {
		fmt.Println(validate.Impossible)
		return nil
	}
	if err != nil {
		return err
	}

	labels := make([]string, len(sol.Actions))
	for i, a := range sol.Actions {
		labels[i] = string(a)
	}
	fmt.Println(strings.Join(labels, ", "))
	fmt.Printf("cost: %d\n", sol.Cost)

	if solveShow {
		showSolution(w, sol.Actions)
	}
	return nil
}

// showSolution replays the plan and prints the grid after every step.
func showSolution(w *warehouse.Warehouse, actions []puzzle.Action) {
	p := puzzle.New(w)
	s := p.Initial()
	printGrid(renderState(w, s))
	for _, a := range actions {
		s = p.Result(s, a)
		fmt.Printf("-- %s --\n", a)
		printGrid(renderState(w, s))
	}
}

func renderState(w *warehouse.Warehouse, s puzzle.State) string {
	cp := w.Clone()
	cp.Worker = s.Worker
	copy(cp.Boxes, s.Boxes)
	return cp.String()
}

func printGrid(grid string) {
	if solvePretty {
		grid = ux.ColorizeGrid(grid)
	}
	fmt.Println(grid)
}
