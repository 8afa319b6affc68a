package search

import (
	"context"
	"fmt"
)

// Strategy selects the frontier ordering and visited policy of a search.
type Strategy int

const (
	// BreadthFirst explores in FIFO order. Shortest path by edge count,
	// not by cost.
	BreadthFirst Strategy = iota

	// DepthFirst extends a single path with chronological backtracking.
	// Terminates on finite graphs but makes no optimality promise.
	DepthFirst

	// IterativeDeepening reruns a depth-bounded depth-first search with
	// bounds 0, 1, 2, ... until the goal is found, restarting from
	// scratch each round.
	IterativeDeepening

	// UniformCost pops the candidate with the lowest accumulated cost g.
	// Returns a minimum-cost path.
	UniformCost

	// Greedy pops the candidate whose frontier node has the lowest
	// heuristic estimate h. Fast, not optimal.
	Greedy

	// AStar pops the candidate with the lowest f = g + h. Optimal when
	// the heuristic never overestimates.
	AStar
)

// String returns the wire name of the strategy.
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "breadth_first"
	case DepthFirst:
		return "depth_first"
	case IterativeDeepening:
		return "iterative_deepening"
	case UniformCost:
		return "uniform_cost"
	case Greedy:
		return "greedy"
	case AStar:
		return "a_star"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "breadth_first", "bfs":
		return BreadthFirst, nil
	case "depth_first", "dfs":
		return DepthFirst, nil
	case "iterative_deepening", "ids":
		return IterativeDeepening, nil
	case "uniform_cost", "ucs":
		return UniformCost, nil
	case "greedy":
		return Greedy, nil
	case "a_star", "astar":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// needsHeuristic reports whether the strategy orders its frontier by a
// heuristic estimate.
func (s Strategy) needsHeuristic() bool {
	return s == Greedy || s == AStar
}

// Result contains the outcome of a search.
//
// When Found is true, Path is the node sequence from start to goal
// inclusive and Cost is the sum of the traversed edge costs (zero when
// start equals goal). When Found is false no partial path is reported.
type Result struct {
	Path     []string
	Cost     int
	Expanded int
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	Heuristic     HeuristicProvider
	ClosedList    bool
	MaxExpansions int
	DepthLimit    int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic supplies the provider used to build the goal-scoped
// estimate table. Required for Greedy and AStar, ignored by the other
// strategies (supplying it is never an error).
func WithHeuristic(p HeuristicProvider) Option {
	return func(o *Options) { o.Heuristic = p }
}

// WithClosedList switches the visited policy from path-local to a global
// closed set: a node popped and expanded once is never expanded again.
// Duplicates may still sit on the frontier; they are discarded lazily when
// popped. This is the closed-list A* variant, also valid for UniformCost
// and Greedy.
func WithClosedList() Option {
	return func(o *Options) { o.ClosedList = true }
}

// WithMaxExpansions bounds the number of candidate expansions. Exceeding
// the budget aborts the search with ErrBudgetExceeded. Zero means no
// budget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithDepthLimit bounds the path length (in edges) explored by DepthFirst.
// A limit of zero allows no extension beyond the start node. When the
// option is absent the only bound is the path-local cycle check. Ignored by
// the other strategies; IterativeDeepening manages its own bound.
func WithDepthLimit(d int) Option {
	return func(o *Options) { o.DepthLimit = d }
}

// Search finds a path from start to goal using the given strategy.
//
// The graph and any coordinates behind the heuristic provider are read-only
// for the duration of the call; the frontier, visited bookkeeping, and the
// heuristic table are owned by this one invocation. Searches are
// deterministic: the same inputs yield the same result.
//
// Returns a Result with Found set when a path exists, a Result with Found
// unset when the whole reachable space was exhausted, and an error only for
// precondition failures (unknown nodes, missing heuristic), cancellation,
// or an exceeded expansion budget.
func Search(ctx context.Context, g *Graph, start, goal string, strategy Strategy, opts ...Option) (Result, error) {
	options := Options{DepthLimit: -1}
	for _, opt := range opts {
		opt(&options)
	}

	if !g.HasNode(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	if !g.HasNode(goal) {
		return Result{}, fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
	}

	var table *HeuristicTable
	if strategy.needsHeuristic() {
		if options.Heuristic == nil {
			return Result{}, fmt.Errorf("%w: %s", ErrNoHeuristic, strategy)
		}
		var err error
		table, err = options.Heuristic.Compute(g, goal)
		if err != nil {
			return Result{}, err
		}
	}

	// Trivial case: no expansion, no traversal.
	if start == goal {
		return Result{Path: []string{start}, Cost: 0, Found: true}, nil
	}

	switch strategy {
	case BreadthFirst:
		return runFrontier(ctx, g, start, goal, &fifoFrontier{}, nil, options)
	case UniformCost:
		fr := newPriorityFrontier(func(c *candidate) int { return c.g })
		return runFrontier(ctx, g, start, goal, fr, nil, options)
	case Greedy:
		fr := newPriorityFrontier(func(c *candidate) int { return c.h })
		return runFrontier(ctx, g, start, goal, fr, table, options)
	case AStar:
		fr := newPriorityFrontier(func(c *candidate) int { return c.g + c.h })
		return runFrontier(ctx, g, start, goal, fr, table, options)
	case DepthFirst:
		limit := options.DepthLimit
		if limit < 0 {
			// The path-local check caps any path at NodeCount nodes.
			limit = g.NodeCount() - 1
		}
		return runDepthBounded(ctx, g, start, goal, limit, options)
	case IterativeDeepening:
		return runIterativeDeepening(ctx, g, start, goal, options)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
}

// runFrontier is the shared expand/select/terminate loop for the FIFO and
// priority disciplines. The goal test happens on the popped candidate, not
// at generation time, so a cost-ordered frontier only commits to a goal
// path once nothing cheaper remains.
func runFrontier(ctx context.Context, g *Graph, start, goal string, fr frontier, table *HeuristicTable, options Options) (Result, error) {
	seed := &candidate{path: []string{start}}
	if table != nil {
		h, err := table.Lookup(start)
		if err != nil {
			return Result{}, err
		}
		seed.h = h
	}
	fr.push(seed)

	var closed map[string]bool
	if options.ClosedList {
		closed = make(map[string]bool, g.NodeCount())
	}

	expanded := 0
	for !fr.empty() {
		select {
		case <-ctx.Done():
			return Result{Expanded: expanded}, ctx.Err()
		default:
		}

		current, err := fr.pop()
		if err != nil {
			return Result{Expanded: expanded}, err
		}

		// Lazy discard: a closed node may still have stale duplicates
		// on the frontier. Dropping one is not a search step.
		if closed != nil && closed[current.node()] {
			continue
		}

		if current.node() == goal {
			return Result{
				Path:     reversePath(current.path),
				Cost:     current.g,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		if closed != nil {
			closed[current.node()] = true
		}
		expanded++
		if options.MaxExpansions > 0 && expanded > options.MaxExpansions {
			return Result{Expanded: expanded}, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, expanded)
		}

		for _, nb := range g.Neighbors(current.node()) {
			if closed != nil {
				if closed[nb.Node] {
					continue
				}
			} else if current.onPath(nb.Node) {
				continue
			}

			h := 0
			if table != nil {
				if h, err = table.Lookup(nb.Node); err != nil {
					return Result{Expanded: expanded}, err
				}
			}
			fr.push(current.extend(nb, h))
		}
	}

	return Result{Expanded: expanded}, nil
}

// reversePath turns a newest-first candidate path into start-to-goal order.
func reversePath(path []string) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[len(path)-1-i] = n
	}
	return out
}
