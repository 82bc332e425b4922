package graph

// Graph is an immutable CSR forward-star graph.
type Graph struct {
	firstOut []int32
	head     []NodeId
	weight   []Weight
}

// New validates and wraps the given CSR arrays into a Graph. firstOut must
// have length n+1, be non-decreasing, and firstOut[n] must equal len(head).
// head and weight must have equal length; every head entry must lie in
// [0, n) and every weight must be non-negative; no arc may be a self-loop
// (an HGV road segment never starts and ends at the same junction).
func New(firstOut []int32, head []NodeId, weight []Weight) (*Graph, error) {
	if len(head) != len(weight) {
		return nil, ErrFirstOutInvalid
	}
	if len(firstOut) == 0 {
		return nil, ErrFirstOutInvalid
	}
	n := len(firstOut) - 1
	for v := 0; v < n; v++ {
		if firstOut[v] > firstOut[v+1] {
			return nil, ErrFirstOutInvalid
		}
	}
	if int(firstOut[n]) != len(head) {
		return nil, ErrFirstOutInvalid
	}
	for v := 0; v < n; v++ {
		start, end := firstOut[v], firstOut[v+1]
		for i := start; i < end; i++ {
			h := head[i]
			if h < 0 || int(h) >= n {
				return nil, ErrHeadOutOfRange
			}
			if int(h) == v {
				return nil, ErrSelfLoop
			}
		}
	}
	for _, w := range weight {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
	}
	return &Graph{firstOut: firstOut, head: head, weight: weight}, nil
}

// NumNodes returns n.
func (g *Graph) NumNodes() int { return len(g.firstOut) - 1 }

// NumArcs returns m.
func (g *Graph) NumArcs() int { return len(g.head) }

// Degree returns the out-degree of v.
func (g *Graph) Degree(v NodeId) int {
	return int(g.firstOut[v+1] - g.firstOut[v])
}

// ForEachOut calls fn for every outgoing arc of v, in CSR storage order.
func (g *Graph) ForEachOut(v NodeId, fn func(arc Arc)) {
	start, end := g.firstOut[v], g.firstOut[v+1]
	for i := start; i < end; i++ {
		fn(Arc{Head: g.head[i], Weight: g.weight[i]})
	}
}

// Out returns the raw arc-index range [start, end) of v's outgoing star,
// for callers that want to index directly into Head/WeightAt.
func (g *Graph) Out(v NodeId) (start, end int32) {
	return g.firstOut[v], g.firstOut[v+1]
}

// HeadAt returns the destination node of the arc at CSR index i.
func (g *Graph) HeadAt(i int32) NodeId { return g.head[i] }

// WeightAt returns the weight of the arc at CSR index i.
func (g *Graph) WeightAt(i int32) Weight { return g.weight[i] }

// Reverse builds the edge-reversed graph: an arc (u,v,w) in g becomes an
// arc (v,u,w) in the result. Construction is a two-pass counting sort:
// count in-degrees, prefix-sum into firstOut, then place arcs using a
// cursor array, mirroring the forward-star builder used by contraction
// hierarchy preprocessing tools.
func (g *Graph) Reverse() *Graph {
	n := g.NumNodes()
	m := g.NumArcs()

	firstOut := make([]int32, n+1)
	for _, h := range g.head {
		firstOut[h+1]++
	}
	for v := 0; v < n; v++ {
		firstOut[v+1] += firstOut[v]
	}

	head := make([]NodeId, m)
	weight := make([]Weight, m)
	pos := make([]int32, n)
	copy(pos, firstOut[:n])

	for v := 0; v < n; v++ {
		start, end := g.firstOut[v], g.firstOut[v+1]
		for i := start; i < end; i++ {
			to := g.head[i]
			w := g.weight[i]
			slot := pos[to]
			pos[to]++
			head[slot] = NodeId(v)
			weight[slot] = w
		}
	}

	return &Graph{firstOut: firstOut, head: head, weight: weight}
}
