package search

import "errors"

// Sentinel errors for search operations.
var (
	// ErrUnknownNode is returned when a start node, goal node, or heuristic
	// lookup names a node that is not part of the graph.
	ErrUnknownNode = errors.New("search: unknown node")

	// ErrMissingCoordinate is returned when a heuristic is requested for a
	// node that has no positional data. The provider fails instead of
	// silently defaulting the estimate.
	ErrMissingCoordinate = errors.New("search: node has no coordinate")

	// ErrEmptyFrontier signals frontier underflow. The driver's loop
	// condition maps an exhausted frontier to a not-found result, so this
	// error escaping Search indicates a driver bug, not a caller error.
	ErrEmptyFrontier = errors.New("search: frontier is empty")

	// ErrNoHeuristic is returned when a heuristic-aware strategy (greedy,
	// A*) is invoked without a heuristic provider.
	ErrNoHeuristic = errors.New("search: strategy requires a heuristic provider")

	// ErrUnknownStrategy is returned when parsing an unrecognized strategy
	// name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrNegativeCost is returned when adding an edge with a negative cost.
	ErrNegativeCost = errors.New("search: edge cost must be non-negative")

	// ErrBudgetExceeded is returned when a search gives up because it
	// expanded more candidates than its configured step budget allows.
	ErrBudgetExceeded = errors.New("search: expansion budget exceeded")
)
