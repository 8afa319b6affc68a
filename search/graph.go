package search

import (
	"fmt"
	"sort"
)

// Neighbor represents a node reachable over a single edge, with the cost of
// traversing that edge.
type Neighbor struct {
	Node string
	Cost int
}

// Graph is a weighted undirected adjacency structure over named nodes.
//
// Edges are symmetric: declaring a road from A to B makes it traversable in
// both directions at the same cost. Declaring both directions explicitly is
// allowed and simply yields the neighbor twice; the search strategies treat
// the duplicate as a redundant but harmless candidate.
//
// A Graph must be fully built before the first Search call and is read-only
// for the duration of a search, so a single Graph may be shared between
// concurrent searches.
type Graph struct {
	adjacency map[string][]Neighbor
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string][]Neighbor)}
}

// AddNode declares a node without any edges. Adding an existing node is a
// no-op.
func (g *Graph) AddNode(name string) {
	if _, ok := g.adjacency[name]; !ok {
		g.adjacency[name] = nil
	}
}

// AddEdge declares a road between two nodes. Both directions are added, so
// one declaration per edge is enough. Costs must be non-negative.
func (g *Graph) AddEdge(from, to string, cost int) error {
	if cost < 0 {
		return fmt.Errorf("%w: %s-%s cost %d", ErrNegativeCost, from, to, cost)
	}
	g.adjacency[from] = append(g.adjacency[from], Neighbor{Node: to, Cost: cost})
	g.adjacency[to] = append(g.adjacency[to], Neighbor{Node: from, Cost: cost})
	return nil
}

// HasNode reports whether the node has been declared.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// Neighbors returns the nodes directly reachable from the given node, in
// declaration order. The returned slice is owned by the graph and must not
// be modified.
func (g *Graph) Neighbors(name string) []Neighbor {
	return g.adjacency[name]
}

// NodeCount returns the number of declared nodes.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// Nodes returns all declared node names in sorted order.
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
