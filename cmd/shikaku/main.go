// Command shikaku is a thin demonstration wrapper around the solver core:
// it reads a puzzle from the text board format, solves it, and prints
// every discovered solution. It is deliberately minimal — no grid editor,
// no colored rendering, no HTTP server — only the contract between a host
// and Solve is exercised here.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rybkr/shikaku/internal/parse"
	"github.com/rybkr/shikaku/internal/render"
	"github.com/rybkr/shikaku/internal/solver"
)

var (
	traceEnabled bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shikaku",
		Short: "Shikaku puzzle solver",
	}

	solveCmd := &cobra.Command{
		Use:   "solve [puzzle-file]",
		Short: "Solve a Shikaku puzzle and print every distinct solution",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().BoolVar(&traceEnabled, "trace", false, "emit diagnostic trace lines during propagation and branching")

	root.AddCommand(solveCmd)
	return root
}

func runSolve(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("shikaku: %w", err)
	}
	defer f.Close()

	g, err := parse.Parse(f)
	if err != nil {
		return fmt.Errorf("shikaku: %w", err)
	}

	opts := solver.DefaultOptions()
	opts.Trace = traceEnabled
	opts.TraceWriter = cmd.ErrOrStderr()

	solutions, err := solver.Solve(g, opts)
	if err != nil {
		return fmt.Errorf("shikaku: %w", err)
	}
	if len(solutions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution")
		return nil
	}

	canonicals := make([]string, 0, len(solutions))
	for c := range solutions {
		canonicals = append(canonicals, c)
	}
	sort.Strings(canonicals)

	for i, c := range canonicals {
		out, err := render.Render(g, c)
		if err != nil {
			return fmt.Errorf("shikaku: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "solution %d:\n%s\n", i+1, out)
	}
	return nil
}
