package search

import "container/heap"

// candidate is a partial path waiting on the frontier. The path is stored
// newest-first (the node under consideration is path[0], the start node is
// last), matching how expansion prepends a neighbor to the path so far; the
// final result reverses it into start-to-goal order.
type candidate struct {
	path []string
	g    int // accumulated edge cost from the start
	h    int // cached estimate for path[0], heuristic strategies only
	seq  uint64
}

// node returns the frontier node of the candidate.
func (c *candidate) node() string {
	return c.path[0]
}

// onPath reports whether the node already occurs in the candidate's own
// path. This is the path-local cycle check; sibling candidates share no
// state.
func (c *candidate) onPath(node string) bool {
	for _, n := range c.path {
		if n == node {
			return true
		}
	}
	return false
}

// extend builds the successor candidate that steps onto the neighbor. The
// path is copied, never aliased, since several successors grow from the
// same parent.
func (c *candidate) extend(nb Neighbor, h int) *candidate {
	path := make([]string, len(c.path)+1)
	path[0] = nb.Node
	copy(path[1:], c.path)
	return &candidate{path: path, g: c.g + nb.Cost, h: h}
}

// frontier is the open set of candidates. The three disciplines (FIFO,
// priority-by-key, bounded-depth) share this contract; bounded-depth lives
// in bounded.go because chronological backtracking keeps a single active
// path instead of a candidate set.
type frontier interface {
	push(c *candidate)
	pop() (*candidate, error)
	empty() bool
}

// fifoFrontier dequeues candidates in strict insertion order
// (breadth-first).
type fifoFrontier struct {
	queue []*candidate
}

func (f *fifoFrontier) push(c *candidate) {
	f.queue = append(f.queue, c)
}

func (f *fifoFrontier) pop() (*candidate, error) {
	if len(f.queue) == 0 {
		return nil, ErrEmptyFrontier
	}
	c := f.queue[0]
	f.queue[0] = nil
	f.queue = f.queue[1:]
	return c, nil
}

func (f *fifoFrontier) empty() bool {
	return len(f.queue) == 0
}

// priorityKey selects the ordering key of a candidate: g for uniform-cost,
// h for greedy, g+h for A*.
type priorityKey func(c *candidate) int

// priorityFrontier keeps candidates ordered ascending by key. Ties are
// broken by insertion order: every push stamps a monotonically increasing
// sequence number and the heap ordering compares it on equal keys, so
// equal-key candidates leave the frontier in arrival order regardless of
// how the heap sifts.
type priorityFrontier struct {
	items candidateHeap
	key   priorityKey
	seq   uint64
}

func newPriorityFrontier(key priorityKey) *priorityFrontier {
	f := &priorityFrontier{key: key}
	heap.Init(&f.items)
	return f
}

func (f *priorityFrontier) push(c *candidate) {
	f.seq++
	c.seq = f.seq
	heap.Push(&f.items, heapEntry{cand: c, key: f.key(c)})
}

func (f *priorityFrontier) pop() (*candidate, error) {
	if f.items.Len() == 0 {
		return nil, ErrEmptyFrontier
	}
	entry := heap.Pop(&f.items).(heapEntry)
	return entry.cand, nil
}

func (f *priorityFrontier) empty() bool {
	return f.items.Len() == 0
}

// heapEntry caches the ordering key so it is computed once per push.
type heapEntry struct {
	cand *candidate
	key  int
}

type candidateHeap []heapEntry

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].cand.seq < h[j].cand.seq
}

func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(heapEntry))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = heapEntry{}
	*h = old[:n-1]
	return entry
}
