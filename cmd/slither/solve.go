package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slither/graph"
	"github.com/katalvlaran/slither/internal/config"
	"github.com/katalvlaran/slither/internal/telemetry"
	"github.com/katalvlaran/slither/search"
)

var configPath string

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve a puzzle file and print its solution(s)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	flags := solveCmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.Bool("find-all", false, "enumerate every solution instead of stopping at the first")
	flags.Int("max-solutions", 0, "cap on solutions found in enumerate mode (0 = unlimited)")
	flags.Int("worker-count", 0, "absolute worker cap (0 = auto from hardware)")
	flags.Float64("parallel-fraction", 1.0, "fraction of hardware parallelism to use, (0,1]")
	flags.Int("parallel-depth", 0, "override the fork-depth threshold (0 = auto)")
	flags.Bool("canonical-only", false, "suppress horizontal-reflection duplicate solutions")
	flags.Duration("timeout", 0, "wall-clock deadline (0 = none)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, span := telemetry.StartSpan(cmd.Context(), "slither.solve")
	defer span.End()

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	g, err := parsePuzzleFile(args[0])
	if err != nil {
		return err
	}

	gr, err := graph.Build(g)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	sink := &printingSink{w: cmd.OutOrStdout(), g: gr}
	out, err := search.Solve(ctx, g, cfg, sink)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %d solution(s), %d branches explored\n",
		out.Kind, out.SolutionsFound, out.Explored)

	return nil
}
