// Package queens solves the N-queens puzzle as a constraint satisfaction
// problem: one variable per column, domains are board rows, and two queens
// are consistent when they share neither a row nor a diagonal. Arc
// consistency (AC-3) prunes the domains before and during a chronological
// backtracking search.
package queens

// Position is a queen placement, 1-based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Solution places one queen per column, ordered by column.
type Solution []Position

// Solve returns the first solution found for an n-by-n board, or false
// when the puzzle has none (n of 2 and 3, or a non-positive n).
func Solve(n int) (Solution, bool) {
	solutions := solve(n, 1)
	if len(solutions) == 0 {
		return nil, false
	}
	return solutions[0], true
}

// SolveAll enumerates solutions for an n-by-n board. A positive limit caps
// how many are collected; limit <= 0 enumerates all of them.
func SolveAll(n, limit int) []Solution {
	return solve(n, limit)
}

func solve(n, limit int) []Solution {
	if n <= 0 {
		return nil
	}

	domains := fullDomains(n)
	if !propagate(n, domains) {
		return nil
	}

	var out []Solution
	assigned := make([]int, n)

	var backtrack func(col int, domains [][]int) bool
	backtrack = func(col int, domains [][]int) bool {
		if col == n {
			solution := make(Solution, n)
			for c, row := range assigned {
				solution[c] = Position{Row: row, Col: c + 1}
			}
			out = append(out, solution)
			return limit > 0 && len(out) >= limit
		}

		for _, row := range domains[col] {
			next := copyDomains(domains)
			next[col] = []int{row}
			if !propagate(n, next) {
				continue
			}
			assigned[col] = row
			if backtrack(col+1, next) {
				return true
			}
		}
		return false
	}

	backtrack(0, domains)
	return out
}

// consistent reports whether queens in two distinct columns can occupy the
// given rows: never the same row, never the same diagonal.
func consistent(colA, rowA, colB, rowB int) bool {
	if rowA == rowB {
		return false
	}
	diffRow := rowA - rowB
	if diffRow < 0 {
		diffRow = -diffRow
	}
	diffCol := colA - colB
	if diffCol < 0 {
		diffCol = -diffCol
	}
	return diffRow != diffCol
}

// propagate runs AC-3 over all column pairs, pruning rows that leave some
// other column without any consistent placement. Returns false when a
// domain empties, meaning the current assignments cannot be completed.
func propagate(n int, domains [][]int) bool {
	type arc struct{ xi, xj int }

	queue := make([]arc, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				queue = append(queue, arc{i, j})
			}
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !revise(domains, a.xi, a.xj) {
			continue
		}
		if len(domains[a.xi]) == 0 {
			return false
		}
		// The pruned domain may invalidate rows elsewhere; re-check
		// every arc pointing at xi.
		for xk := 0; xk < n; xk++ {
			if xk != a.xi && xk != a.xj {
				queue = append(queue, arc{xk, a.xi})
			}
		}
	}
	return true
}

// revise removes rows from domains[xi] that no row in domains[xj] is
// consistent with. Reports whether anything was removed.
func revise(domains [][]int, xi, xj int) bool {
	kept := domains[xi][:0]
	revised := false

	for _, rowI := range domains[xi] {
		supported := false
		for _, rowJ := range domains[xj] {
			if consistent(xi, rowI, xj, rowJ) {
				supported = true
				break
			}
		}
		if supported {
			kept = append(kept, rowI)
		} else {
			revised = true
		}
	}

	domains[xi] = kept
	return revised
}

func fullDomains(n int) [][]int {
	domains := make([][]int, n)
	for col := range domains {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i + 1
		}
		domains[col] = rows
	}
	return domains
}

func copyDomains(domains [][]int) [][]int {
	out := make([][]int, len(domains))
	for i, d := range domains {
		out[i] = append([]int(nil), d...)
	}
	return out
}
