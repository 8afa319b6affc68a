package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	from, to string
	cost     int
}

// buildGraph declares each edge once; the graph mirrors the reverse
// direction itself.
func buildGraph(t *testing.T, edges []edge) *Graph {
	t.Helper()
	g := NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.cost))
	}
	return g
}

// toyGraph is the 4-node scenario graph: the direct A-C road costs more
// than the detour through B.
func toyGraph(t *testing.T) *Graph {
	t.Helper()
	return buildGraph(t, []edge{
		{"A", "B", 1},
		{"B", "C", 1},
		{"A", "C", 5},
		{"C", "D", 2},
	})
}

var allStrategies = []Strategy{
	BreadthFirst, DepthFirst, IterativeDeepening, UniformCost, Greedy, AStar,
}

// zeroHeuristic satisfies greedy/A* preconditions without steering the
// search. h = 0 everywhere is trivially admissible.
func zeroHeuristic(g *Graph) Static {
	h := Static{}
	for _, n := range g.Nodes() {
		h[n] = 0
	}
	return h
}

func TestSearchStartEqualsGoal(t *testing.T) {
	g := toyGraph(t)
	for _, strategy := range allStrategies {
		result, err := Search(context.Background(), g, "A", "A", strategy,
			WithHeuristic(zeroHeuristic(g)))
		require.NoError(t, err, strategy.String())
		assert.True(t, result.Found, strategy.String())
		assert.Equal(t, []string{"A"}, result.Path, strategy.String())
		assert.Equal(t, 0, result.Cost, strategy.String())
		assert.Equal(t, 0, result.Expanded, strategy.String())
	}
}

func TestSearchUnknownNodes(t *testing.T) {
	g := toyGraph(t)

	_, err := Search(context.Background(), g, "Nowhere", "C", BreadthFirst)
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = Search(context.Background(), g, "A", "Nowhere", BreadthFirst)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestSearchHeuristicRequired(t *testing.T) {
	g := toyGraph(t)

	_, err := Search(context.Background(), g, "A", "C", Greedy)
	assert.ErrorIs(t, err, ErrNoHeuristic)

	_, err = Search(context.Background(), g, "A", "C", AStar)
	assert.ErrorIs(t, err, ErrNoHeuristic)

	// Supplying one to a non-heuristic strategy is not an error.
	_, err = Search(context.Background(), g, "A", "C", BreadthFirst,
		WithHeuristic(zeroHeuristic(g)))
	assert.NoError(t, err)
}

func TestUniformCostScenario(t *testing.T) {
	g := toyGraph(t)
	result, err := Search(context.Background(), g, "A", "C", UniformCost)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "B", "C"}, result.Path)
	assert.Equal(t, 2, result.Cost)
}

func TestAStarScenario(t *testing.T) {
	g := toyGraph(t)
	h := Static{"A": 3, "B": 1, "C": 0, "D": 2}

	result, err := Search(context.Background(), g, "A", "C", AStar, WithHeuristic(h))
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "B", "C"}, result.Path)
	assert.Equal(t, 2, result.Cost)
}

func TestAStarClosedListScenario(t *testing.T) {
	g := toyGraph(t)
	h := Static{"A": 3, "B": 1, "C": 0, "D": 2}

	result, err := Search(context.Background(), g, "A", "C", AStar,
		WithHeuristic(h), WithClosedList())
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "B", "C"}, result.Path)
	assert.Equal(t, 2, result.Cost)
}

func TestBreadthFirstScenario(t *testing.T) {
	g := toyGraph(t)
	result, err := Search(context.Background(), g, "A", "C", BreadthFirst)
	require.NoError(t, err)
	require.True(t, result.Found)
	// Breadth-first minimizes edge count, not cost: either the direct
	// road or the detour is acceptable, but never anything longer.
	assert.LessOrEqual(t, len(result.Path), 3)
	assertValidPath(t, g, result, "A", "C")
}

func TestBreadthFirstFewestEdges(t *testing.T) {
	// The cheap route has three edges, the direct one a single edge.
	g := buildGraph(t, []edge{
		{"A", "B", 1},
		{"B", "C", 1},
		{"C", "D", 1},
		{"A", "D", 100},
	})
	result, err := Search(context.Background(), g, "A", "D", BreadthFirst)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "D"}, result.Path)
	assert.Equal(t, 100, result.Cost)
}

func TestAllStrategiesReachabilitySoundness(t *testing.T) {
	g := buildGraph(t, []edge{
		{"A", "B", 2},
		{"B", "C", 3},
		{"C", "D", 1},
		{"B", "D", 7},
		{"A", "E", 4},
		{"E", "D", 9},
		// An island the mainland cannot reach.
		{"X", "Y", 1},
	})
	h := zeroHeuristic(g)

	for _, strategy := range allStrategies {
		result, err := Search(context.Background(), g, "A", "D", strategy, WithHeuristic(h))
		require.NoError(t, err, strategy.String())
		require.True(t, result.Found, strategy.String())
		assertValidPath(t, g, result, "A", "D")

		result, err = Search(context.Background(), g, "A", "Y", strategy, WithHeuristic(h))
		require.NoError(t, err, strategy.String())
		assert.False(t, result.Found, strategy.String())
		assert.Nil(t, result.Path, strategy.String())
	}
}

func TestCostAwareOptimality(t *testing.T) {
	// Dense enough that greedy and depth-first would happily take a
	// detour; brute force over all simple paths supplies the ground
	// truth.
	g := buildGraph(t, []edge{
		{"A", "B", 4},
		{"A", "C", 1},
		{"C", "B", 2},
		{"B", "D", 5},
		{"C", "D", 8},
		{"B", "E", 2},
		{"D", "E", 2},
		{"A", "E", 12},
	})
	pairs := [][2]string{{"A", "D"}, {"A", "E"}, {"C", "E"}, {"B", "A"}}

	for _, pair := range pairs {
		want, ok := bruteForceMinCost(g, pair[0], pair[1])
		require.True(t, ok)

		ucs, err := Search(context.Background(), g, pair[0], pair[1], UniformCost)
		require.NoError(t, err)
		require.True(t, ucs.Found)
		assert.Equal(t, want, ucs.Cost, "uniform_cost %s->%s", pair[0], pair[1])
		assertValidPath(t, g, ucs, pair[0], pair[1])

		astar, err := Search(context.Background(), g, pair[0], pair[1], AStar,
			WithHeuristic(zeroHeuristic(g)))
		require.NoError(t, err)
		require.True(t, astar.Found)
		assert.Equal(t, want, astar.Cost, "a_star %s->%s", pair[0], pair[1])

		closedAStar, err := Search(context.Background(), g, pair[0], pair[1], AStar,
			WithHeuristic(zeroHeuristic(g)), WithClosedList())
		require.NoError(t, err)
		require.True(t, closedAStar.Found)
		assert.Equal(t, want, closedAStar.Cost, "closed-list a_star %s->%s", pair[0], pair[1])
	}
}

func TestDepthBoundGrowth(t *testing.T) {
	// Reaching D needs depth 3.
	g := buildGraph(t, []edge{
		{"A", "B", 1},
		{"B", "C", 1},
		{"C", "D", 1},
	})

	for bound := 0; bound <= 2; bound++ {
		result, err := Search(context.Background(), g, "A", "D", DepthFirst,
			WithDepthLimit(bound))
		require.NoError(t, err)
		assert.False(t, result.Found, "bound %d", bound)
	}

	result, err := Search(context.Background(), g, "A", "D", DepthFirst, WithDepthLimit(3))
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, result.Path)
	assert.Equal(t, 3, result.Cost)

	ids, err := Search(context.Background(), g, "A", "D", IterativeDeepening)
	require.NoError(t, err)
	require.True(t, ids.Found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids.Path)
}

func TestIterativeDeepeningFindsShallowGoalDespiteBranching(t *testing.T) {
	// Depth-first plunges into the long arm first; iterative deepening
	// must still come back with a fewest-edge path.
	g := buildGraph(t, []edge{
		{"A", "B", 1},
		{"B", "C", 1},
		{"C", "D", 1},
		{"D", "E", 1},
		{"A", "E", 1},
	})
	result, err := Search(context.Background(), g, "A", "E", IterativeDeepening)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "E"}, result.Path)
}

func TestDepthFirstNeighborOrder(t *testing.T) {
	// Depth-first commits to the first declared neighbor, so it walks
	// the long way round even though a direct road exists.
	g := NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "D", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	result, err := Search(context.Background(), g, "A", "D", DepthFirst)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, result.Path)
}

func TestGreedyFollowsHeuristic(t *testing.T) {
	// The heuristic lures greedy onto the expensive direct road.
	g := toyGraph(t)
	h := Static{"A": 5, "B": 4, "C": 0, "D": 2}

	result, err := Search(context.Background(), g, "A", "C", Greedy, WithHeuristic(h))
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []string{"A", "C"}, result.Path)
	assert.Equal(t, 5, result.Cost)
}

func TestDuplicateEdgeDeclarationsAreHarmless(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "A", 3))

	for _, strategy := range allStrategies {
		result, err := Search(context.Background(), g, "A", "B", strategy,
			WithHeuristic(zeroHeuristic(g)))
		require.NoError(t, err, strategy.String())
		require.True(t, result.Found, strategy.String())
		assert.Equal(t, []string{"A", "B"}, result.Path, strategy.String())
		assert.Equal(t, 3, result.Cost, strategy.String())
	}
}

func TestExpansionBudget(t *testing.T) {
	g := toyGraph(t)
	_, err := Search(context.Background(), g, "A", "D", BreadthFirst,
		WithMaxExpansions(1))
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	// A generous budget changes nothing.
	result, err := Search(context.Background(), g, "A", "D", BreadthFirst,
		WithMaxExpansions(1000))
	require.NoError(t, err)
	assert.True(t, result.Found)
}

func TestSearchCancellation(t *testing.T) {
	g := toyGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, g, "A", "D", BreadthFirst)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Search(ctx, g, "A", "D", DepthFirst)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchIsDeterministic(t *testing.T) {
	g := buildGraph(t, []edge{
		{"A", "B", 2},
		{"A", "C", 2},
		{"B", "D", 2},
		{"C", "D", 2},
		{"D", "E", 1},
	})
	h := zeroHeuristic(g)

	for _, strategy := range allStrategies {
		first, err := Search(context.Background(), g, "A", "E", strategy, WithHeuristic(h))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Search(context.Background(), g, "A", "E", strategy, WithHeuristic(h))
			require.NoError(t, err)
			assert.Equal(t, first, again, strategy.String())
		}
	}
}

// assertValidPath checks the path invariants: endpoints, no repeated node,
// every hop is a declared edge, and the reported cost is the sum of the
// traversed edge costs.
func assertValidPath(t *testing.T, g *Graph, result Result, start, goal string) {
	t.Helper()
	require.NotEmpty(t, result.Path)
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, goal, result.Path[len(result.Path)-1])

	seen := map[string]bool{}
	for _, n := range result.Path {
		assert.False(t, seen[n], "node %s repeats in path %v", n, result.Path)
		seen[n] = true
	}

	total := 0
	for i := 0; i < len(result.Path)-1; i++ {
		cost, ok := edgeCost(g, result.Path[i], result.Path[i+1])
		require.True(t, ok, "no edge %s-%s", result.Path[i], result.Path[i+1])
		total += cost
	}
	assert.Equal(t, total, result.Cost)
}

// edgeCost returns the cheapest declared edge between two nodes.
func edgeCost(g *Graph, from, to string) (int, bool) {
	best, found := 0, false
	for _, nb := range g.Neighbors(from) {
		if nb.Node == to && (!found || nb.Cost < best) {
			best, found = nb.Cost, true
		}
	}
	return best, found
}

// bruteForceMinCost enumerates every simple path between the endpoints.
func bruteForceMinCost(g *Graph, start, goal string) (int, bool) {
	best, found := 0, false
	var walk func(node string, visited map[string]bool, cost int)
	walk = func(node string, visited map[string]bool, cost int) {
		if node == goal {
			if !found || cost < best {
				best, found = cost, true
			}
			return
		}
		visited[node] = true
		for _, nb := range g.Neighbors(node) {
			if !visited[nb.Node] {
				walk(nb.Node, visited, cost+nb.Cost)
			}
		}
		delete(visited, node)
	}
	walk(start, map[string]bool{}, 0)
	return best, found
}
