package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wayfinder/mapdata"
	"wayfinder/search"
)

var (
	routeFrom          string
	routeTo            string
	routeStrategy      string
	routeMapFile       string
	routeClosedList    bool
	routeMaxExpansions int
	routeDepthLimit    int
	routeJSON          bool
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find a route between two cities",
	Example: `  wayfinder route --from Amsterdam --to Maastricht
  wayfinder route --from Groningen --to Middelburg --strategy uniform_cost
  wayfinder route --from Utrecht --to Enschede --strategy a_star --closed-list`,
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&routeFrom, "from", "", "start city")
	routeCmd.Flags().StringVar(&routeTo, "to", "", "goal city")
	routeCmd.Flags().StringVar(&routeStrategy, "strategy", "a_star", "search strategy")
	routeCmd.Flags().StringVar(&routeMapFile, "map", "", "JSON map file (default: built-in Netherlands map)")
	routeCmd.Flags().BoolVar(&routeClosedList, "closed-list", false, "use a global closed set instead of path-local cycle avoidance")
	routeCmd.Flags().IntVar(&routeMaxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	routeCmd.Flags().IntVar(&routeDepthLimit, "depth-limit", 0, "depth bound for depth_first (0 = node count)")
	routeCmd.Flags().BoolVar(&routeJSON, "json", false, "print the result as JSON")
	routeCmd.MarkFlagRequired("from")
	routeCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(routeCmd)
}

func loadMap(path string) (*mapdata.Map, error) {
	if path == "" {
		return mapdata.Netherlands(), nil
	}
	return mapdata.LoadMap(path)
}

func runRoute(cmd *cobra.Command, args []string) error {
	strategy, err := search.ParseStrategy(routeStrategy)
	if err != nil {
		return err
	}

	m, err := loadMap(routeMapFile)
	if err != nil {
		return err
	}

	opts := []search.Option{search.WithHeuristic(m.Heuristic())}
	if routeClosedList {
		opts = append(opts, search.WithClosedList())
	}
	if routeMaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(routeMaxExpansions))
	}
	if routeDepthLimit > 0 {
		opts = append(opts, search.WithDepthLimit(routeDepthLimit))
	}

	result, err := search.Search(cmd.Context(), m.Graph(), routeFrom, routeTo, strategy, opts...)
	if err != nil {
		return err
	}

	if routeJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	if !result.Found {
		fmt.Printf("no route from %s to %s (%d nodes expanded)\n", routeFrom, routeTo, result.Expanded)
		return nil
	}

	fmt.Printf("route (%s): %s\n", strategy, strings.Join(result.Path, " -> "))
	fmt.Printf("distance: %d km, %d nodes expanded\n", result.Cost, result.Expanded)
	return nil
}
