package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slither",
	Short: "Solve Slitherlink puzzles",
	Long: `slither loads a Slitherlink puzzle from a text file and searches its
solution space with a parallel branch-and-bound solver.`,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
