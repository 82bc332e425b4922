package ch

import (
	"github.com/tachygraph/hgvroute/dijkstra"
	"github.com/tachygraph/hgvroute/graph"
)

// Query is the plain bidirectional contraction-hierarchy search: forward
// on Up from rank(s), backward on Down from rank(t), alternating settle
// steps and meeting in the middle.
type Query struct {
	h     *Hierarchy
	fw    *dijkstra.Query
	bw    *dijkstra.Query
	s, t  graph.NodeId
	valid bool
}

// NewQuery allocates a Query over h.
func NewQuery(h *Hierarchy) (*Query, error) {
	fw, err := dijkstra.NewQuery(h.Up)
	if err != nil {
		return nil, err
	}
	bw, err := dijkstra.NewQuery(h.Down)
	if err != nil {
		return nil, err
	}
	return &Query{h: h, fw: fw, bw: bw}, nil
}

// InitNewST sets the endpoints (original node ids) for the next RunQuery.
func (q *Query) InitNewST(s, t graph.NodeId) error {
	if err := q.fw.InitNewSource(graph.NodeId(q.h.Rank[s])); err != nil {
		return err
	}
	if err := q.bw.InitNewSource(graph.NodeId(q.h.Rank[t])); err != nil {
		return err
	}
	q.s, q.t = s, t
	q.valid = true
	return nil
}

// RunQuery alternates forward and backward settle steps until both sides
// have independently certified the meeting distance is optimal, and
// returns the shortest distance if a path exists.
func (q *Query) RunQuery() (graph.Weight, bool) {
	if !q.valid {
		return 0, false
	}
	best := graph.Infinity
	fwFinished, bwFinished := false, false
	fwNext := true

	for !fwFinished || !bwFinished {
		if !fwFinished && (bwFinished || fwNext) {
			node, dist, ok := q.fw.SettleNext()
			if !ok {
				fwFinished = true
				continue
			}
			if q.bw.Settled(node) {
				total := dist + q.bw.DistOf(node)
				if total < best {
					best = total
				}
			}
			if minKey, has := q.fw.QueueMinKey(); !has || minKey >= best {
				fwFinished = true
			}
			fwNext = false
		} else {
			node, dist, ok := q.bw.SettleNext()
			if !ok {
				bwFinished = true
				continue
			}
			if q.fw.Settled(node) {
				total := dist + q.fw.DistOf(node)
				if total < best {
					best = total
				}
			}
			if minKey, has := q.bw.QueueMinKey(); !has || minKey >= best {
				bwFinished = true
			}
			fwNext = true
		}
	}

	if best >= graph.Infinity {
		return 0, false
	}
	return best, true
}
