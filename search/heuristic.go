package search

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// HeuristicProvider computes goal-distance estimates for a fixed goal.
//
// Compute must assign a value to every node of the graph; partial tables are
// an error. Search calls Compute once per invocation, so a table is always
// scoped to exactly one goal and can never leak into a search for a
// different goal.
type HeuristicProvider interface {
	Compute(g *Graph, goal string) (*HeuristicTable, error)
}

// HeuristicTable maps every node of a graph to a non-negative estimate of
// the remaining cost to one specific goal. The table is immutable once
// computed.
type HeuristicTable struct {
	goal   string
	values map[string]int
}

// Goal returns the goal node this table was computed for.
func (t *HeuristicTable) Goal() string {
	return t.goal
}

// Lookup returns the estimate for a node.
func (t *HeuristicTable) Lookup(node string) (int, error) {
	v, ok := t.values[node]
	if !ok {
		return 0, fmt.Errorf("%w: %s not in heuristic table", ErrUnknownNode, node)
	}
	return v, nil
}

// StraightLine derives estimates from 2-D coordinates: the estimate for a
// node is the Euclidean distance between its coordinate and the goal's,
// truncated toward zero. As long as every edge cost dominates the straight
// line between its endpoints the estimate is admissible, which is what A*
// needs for optimality.
type StraightLine struct {
	Coordinates map[string]orb.Point
}

// Compute builds the table for one goal. Every graph node needs a
// coordinate; a node without one fails the whole computation rather than
// silently defaulting to zero.
func (s StraightLine) Compute(g *Graph, goal string) (*HeuristicTable, error) {
	goalPoint, ok := s.Coordinates[goal]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCoordinate, goal)
	}

	table := &HeuristicTable{goal: goal, values: make(map[string]int, g.NodeCount())}
	for _, node := range g.Nodes() {
		p, ok := s.Coordinates[node]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCoordinate, node)
		}
		table.values[node] = int(planar.Distance(p, goalPoint))
	}
	return table, nil
}

// Static wraps a fixed value map as a provider. Useful for tests and for
// callers that precompute estimates by other means. Every graph node must
// have a value.
type Static map[string]int

// Compute validates the values against the graph and returns them as a
// table for the given goal.
func (s Static) Compute(g *Graph, goal string) (*HeuristicTable, error) {
	table := &HeuristicTable{goal: goal, values: make(map[string]int, g.NodeCount())}
	for _, node := range g.Nodes() {
		v, ok := s[node]
		if !ok {
			return nil, fmt.Errorf("%w: no estimate for %s", ErrUnknownNode, node)
		}
		table.values[node] = v
	}
	return table, nil
}
