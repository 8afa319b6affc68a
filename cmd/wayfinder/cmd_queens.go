package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wayfinder/queens"
)

var (
	queensN     int
	queensAll   bool
	queensLimit int
	queensOut   string
)

var queensCmd = &cobra.Command{
	Use:   "queens",
	Short: "Solve the N-queens puzzle",
	Long: `Solves the N-queens constraint satisfaction problem with AC-3
propagation and backtracking. With --out the solutions are written as a
JSON file in the board viewer's schema.`,
	Example: `  wayfinder queens --n 8
  wayfinder queens --n 8 --all --out queens.json`,
	RunE: runQueens,
}

func init() {
	queensCmd.Flags().IntVar(&queensN, "n", 8, "board size")
	queensCmd.Flags().BoolVar(&queensAll, "all", false, "enumerate every solution")
	queensCmd.Flags().IntVar(&queensLimit, "limit", 0, "stop after this many solutions (implies --all)")
	queensCmd.Flags().StringVar(&queensOut, "out", "", "write solutions to a JSON file")
	rootCmd.AddCommand(queensCmd)
}

func runQueens(cmd *cobra.Command, args []string) error {
	var solutions []queens.Solution
	if queensAll || queensLimit > 0 {
		solutions = queens.SolveAll(queensN, queensLimit)
	} else if s, ok := queens.Solve(queensN); ok {
		solutions = []queens.Solution{s}
	}

	if len(solutions) == 0 {
		return fmt.Errorf("no solution for n=%d", queensN)
	}

	fmt.Printf("%d solution(s) for n=%d\n", len(solutions), queensN)
	printBoard(queensN, solutions[0])

	if queensOut != "" {
		if err := queens.WriteFile(queensOut, queensN, solutions); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", queensOut)
	}
	return nil
}

// printBoard renders one solution as an ASCII board, queens as Q.
func printBoard(n int, s queens.Solution) {
	rowOf := make(map[int]int, n) // col -> row
	for _, p := range s {
		rowOf[p.Col] = p.Row
	}
	for row := n; row >= 1; row-- {
		cells := make([]string, n)
		for col := 1; col <= n; col++ {
			if rowOf[col] == row {
				cells[col-1] = "Q"
			} else {
				cells[col-1] = "."
			}
		}
		fmt.Println(strings.Join(cells, " "))
	}
}
