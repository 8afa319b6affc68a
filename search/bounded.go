package search

import (
	"context"
	"fmt"
)

// dfsFrame is one decision point of a depth-bounded search: a node on the
// active path together with a cursor over the neighbors that have not been
// tried yet.
type dfsFrame struct {
	node string
	g    int
	nbrs []Neighbor
	next int
}

// runDepthBounded explores with chronological backtracking: the active path
// is the frame stack, the first enumerated neighbor of each node is pursued
// exhaustively before the cursor advances, and a branch stops growing once
// its length reaches the bound. The backtracking is explicit iterative
// state rather than recursion so the bound and the failure-driven unwind
// stay observable.
//
// The caller guarantees start != goal.
func runDepthBounded(ctx context.Context, g *Graph, start, goal string, bound int, options Options) (Result, error) {
	frames := []dfsFrame{{node: start, nbrs: g.Neighbors(start)}}
	onPath := map[string]bool{start: true}
	expanded := 1

	for len(frames) > 0 {
		select {
		case <-ctx.Done():
			return Result{Expanded: expanded}, ctx.Err()
		default:
		}

		top := &frames[len(frames)-1]
		depth := len(frames) - 1

		// A frame at the bound may not extend; unwind to the previous
		// decision point.
		if depth >= bound || top.next >= len(top.nbrs) {
			delete(onPath, top.node)
			frames = frames[:len(frames)-1]
			continue
		}

		nb := top.nbrs[top.next]
		top.next++

		if onPath[nb.Node] {
			continue
		}

		if nb.Node == goal {
			path := make([]string, 0, len(frames)+1)
			for _, f := range frames {
				path = append(path, f.node)
			}
			path = append(path, nb.Node)
			return Result{
				Path:     path,
				Cost:     top.g + nb.Cost,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		expanded++
		if options.MaxExpansions > 0 && expanded > options.MaxExpansions {
			return Result{Expanded: expanded}, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, expanded)
		}
		frames = append(frames, dfsFrame{node: nb.Node, g: top.g + nb.Cost, nbrs: g.Neighbors(nb.Node)})
		onPath[nb.Node] = true
	}

	return Result{Expanded: expanded}, nil
}

// runIterativeDeepening repeats the depth-bounded search with bounds
// 0, 1, 2, ... until a round succeeds. Nothing carries over between
// rounds. The path-local check caps useful bounds at NodeCount-1 edges, so
// exhausting that bound without success means the goal is unreachable.
func runIterativeDeepening(ctx context.Context, g *Graph, start, goal string, options Options) (Result, error) {
	totalExpanded := 0
	budget := options.MaxExpansions

	for bound := 0; bound <= g.NodeCount()-1; bound++ {
		roundOptions := options
		if budget > 0 {
			roundOptions.MaxExpansions = budget - totalExpanded
			if roundOptions.MaxExpansions <= 0 {
				return Result{Expanded: totalExpanded}, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, totalExpanded)
			}
		}

		result, err := runDepthBounded(ctx, g, start, goal, bound, roundOptions)
		totalExpanded += result.Expanded
		result.Expanded = totalExpanded
		if err != nil || result.Found {
			return result, err
		}
	}

	return Result{Expanded: totalExpanded}, nil
}
