// Package search implements a multi-strategy state-space search engine over
// weighted undirected graphs of named locations.
//
// Six interchangeable strategies are provided: breadth-first, depth-first
// with cycle avoidance, iterative-deepening depth-first, uniform-cost,
// greedy best-first, and A*. Uniform-cost and A* (with an admissible
// heuristic) return minimum-cost paths; the remaining strategies guarantee
// a valid path and termination, nothing more.
//
// A search invocation owns its frontier, visited bookkeeping, and heuristic
// table exclusively. Graphs and coordinate sets are read-only during a
// search and may be shared between concurrent invocations.
package search
