package dijkstra

import (
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/graph"
	"github.com/tachygraph/hgvroute/tsvector"
	"github.com/tachygraph/hgvroute/xheap"
)

// Query is reusable, per-caller state for running Dijkstra's algorithm
// over a shared, read-only graph.Graph. A Query is not safe for concurrent
// use; run independent queries concurrently by constructing one Query per
// goroutine over the same graph.
type Query struct {
	g    *graph.Graph
	opts Options

	queue   *xheap.Heap
	dist    *tsvector.Vector[graph.Weight]
	pred    *tsvector.Vector[graph.NodeId]
	settled *bitset.BitSet

	s graph.NodeId
}

// NewQuery allocates a Query over g, sized once to g's node count.
func NewQuery(g *graph.Graph, opts ...Option) (*Query, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NumNodes()
	return &Query{
		g:       g,
		opts:    o,
		queue:   xheap.New(n),
		dist:    tsvector.New[graph.Weight](n, graph.Infinity),
		pred:    tsvector.New[graph.NodeId](n, graph.InvalidNode),
		settled: bitset.New(n),
		s:       graph.InvalidNode,
	}, nil
}

// InitNewSource resets the query and seeds it with source s at distance 0.
func (q *Query) InitNewSource(s graph.NodeId) error {
	if int(s) < 0 || int(s) >= q.g.NumNodes() {
		return ErrBadNode
	}
	q.dist.Reset()
	q.pred.Reset()
	q.queue.Clear()
	q.settled.ClearAll()
	q.s = s
	q.dist.Set(int(s), 0)
	q.queue.Push(int32(s), 0)
	return nil
}

// SettleNext pops and relaxes the next closest node. It returns ok=false
// once the queue is empty.
func (q *Query) SettleNext() (node graph.NodeId, dist graph.Weight, ok bool) {
	id, prio, has := q.queue.Pop()
	if !has {
		return 0, 0, false
	}
	node, dist = graph.NodeId(id), graph.Weight(prio)
	q.settled.Set(int(node))

	start, end := q.g.Out(node)
	for i := start; i < end; i++ {
		to := q.g.HeadAt(i)
		w := q.g.WeightAt(i)
		newDist := dist + w
		if newDist > q.opts.MaxDistance {
			continue
		}
		if newDist < q.dist.Get(int(to)) {
			q.dist.Set(int(to), newDist)
			q.pred.Set(int(to), node)
			if q.queue.Contains(int32(to)) {
				q.queue.DecreaseKey(int32(to), int64(newDist))
			} else {
				q.queue.Push(int32(to), int64(newDist))
			}
		}
	}
	return node, dist, true
}

// DistQuery settles nodes until t is popped or the queue empties, and
// returns t's shortest distance from the query's source.
func (q *Query) DistQuery(t graph.NodeId) (graph.Weight, bool) {
	if q.dist.IsSet(int(t)) && !q.queue.Contains(int32(t)) {
		return q.dist.Get(int(t)), true
	}
	for {
		node, dist, ok := q.SettleNext()
		if !ok {
			return 0, false
		}
		if node == t {
			return dist, true
		}
	}
}

// PathTo reconstructs the shortest path to t after a DistQuery(t) that
// returned ok=true, as a sequence of nodes from the source to t inclusive.
func (q *Query) PathTo(t graph.NodeId) []graph.NodeId {
	if !q.dist.IsSet(int(t)) {
		return nil
	}
	var path []graph.NodeId
	for cur := t; ; {
		path = append(path, cur)
		if cur == q.s {
			break
		}
		cur = q.pred.Get(int(cur))
		if cur == graph.InvalidNode {
			return nil
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Settled reports whether v has already been popped (finalized) by this
// query.
func (q *Query) Settled(v graph.NodeId) bool { return q.settled.Test(int(v)) }

// DistOf returns the current tentative (or, if Settled, final) distance
// to v.
func (q *Query) DistOf(v graph.NodeId) graph.Weight { return q.dist.Get(int(v)) }

// QueueMinKey returns the current minimum key in the queue, used by
// bidirectional searches to test their independent termination condition.
func (q *Query) QueueMinKey() (graph.Weight, bool) {
	_, prio, ok := q.queue.Peek()
	return graph.Weight(prio), ok
}

// Source returns the node this query was last initialized from.
func (q *Query) Source() graph.NodeId { return q.s }

// Graph returns the graph this query runs over.
func (q *Query) Graph() *graph.Graph { return q.g }

// RanksOnlyExponentials runs a full, unbounded exploration from the
// already-initialized source and returns the nodes settled at ranks
// 2^0, 2^1, 2^2, ... (1-indexed settle order), for use by benchmark and
// property-test fixtures that want a geometrically spread sample of the
// search space rather than every settled node.
func (q *Query) RanksOnlyExponentials() []graph.NodeId {
	var samples []graph.NodeId
	rank, next := 0, 1
	for {
		node, _, ok := q.SettleNext()
		if !ok {
			return samples
		}
		rank++
		if rank == next {
			samples = append(samples, node)
			next *= 2
		}
	}
}
