package bfs

import (
	"fmt"

	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/graph"
)

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
func BFS(g *graph.Graph, start graph.NodeId, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if int(start) < 0 || int(start) >= g.NumNodes() {
		return nil, ErrStartOutOfRange
	}
	seeds := bitset.New(g.NumNodes())
	seeds.Set(int(start))
	return multiSource(g, seeds, opts...)
}

// MultiSourceBFS runs a simultaneous BFS from every node set in sources,
// all starting at depth 0. This is the form the Core-CH setup path uses:
// seed with the core node set to discover everything reachable from it.
func MultiSourceBFS(g *graph.Graph, sources *bitset.BitSet, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if sources == nil {
		return nil, fmt.Errorf("bfs: sources bitset is nil")
	}
	return multiSource(g, sources, opts...)
}

func multiSource(g *graph.Graph, sources *bitset.BitSet, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NumNodes()
	res := &Result{
		Order:  make([]graph.NodeId, 0, n),
		Depth:  make([]int32, n),
		Parent: make([]graph.NodeId, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = graph.InvalidNode
	}

	queue := make([]graph.NodeId, 0, n)
	for v := 0; v < n; v++ {
		if sources.Test(v) {
			nv := graph.NodeId(v)
			res.Depth[nv] = 0
			queue = append(queue, nv)
		}
	}

	for head := 0; head < len(queue); head++ {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		v := queue[head]
		depth := int(res.Depth[v])
		res.Order = append(res.Order, v)
		if err := o.OnVisit(v, depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at node %d: %w", v, err)
		}
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			continue
		}

		start, end := g.Out(v)
		for i := start; i < end; i++ {
			to := g.HeadAt(i)
			if !o.FilterNeighbor(v, to) {
				continue
			}
			if res.Depth[to] >= 0 {
				continue
			}
			res.Depth[to] = int32(depth + 1)
			res.Parent[to] = v
			queue = append(queue, to)
		}
	}

	return res, nil
}

// ReachableSet runs a multi-source BFS from sources and returns the bit
// vector of every node visited, sources included. corech's setup calls
// this twice per hierarchy: once on the upward graph to find nodes
// reachable from the core, once on the downward graph's reversal to find
// nodes that can reach the core.
func ReachableSet(g *graph.Graph, sources *bitset.BitSet) (*bitset.BitSet, error) {
	res, err := MultiSourceBFS(g, sources)
	if err != nil {
		return nil, err
	}
	out := bitset.New(g.NumNodes())
	for _, v := range res.Order {
		out.Set(int(v))
	}
	return out, nil
}
