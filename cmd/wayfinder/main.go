package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wayfinder",
	Short: "Route search over city road maps",
	Long: `wayfinder finds routes between named cities on a weighted road map
using one of six search strategies: breadth_first, depth_first,
iterative_deepening, uniform_cost, greedy, or a_star.

It ships a built-in map of the Netherlands; custom maps can be supplied as
JSON files. The independent "queens" subcommand solves the N-queens puzzle
with arc-consistency propagation and exports the solutions as JSON.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
