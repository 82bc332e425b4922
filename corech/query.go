package corech

import (
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/ch"
	"github.com/tachygraph/hgvroute/dijkstra"
	"github.com/tachygraph/hgvroute/graph"
)

// Query is a bidirectional Core-CH search.
type Query struct {
	h      *ch.Hierarchy
	isCore *bitset.BitSet
	fw     *dijkstra.Query
	bw     *dijkstra.Query

	rs, rt               graph.NodeId
	fwFinished, bwFinished bool
	valid                bool
}

// NewQuery allocates a Query over h, with isCore (indexed by rank)
// identifying the uncontracted core subset.
func NewQuery(h *ch.Hierarchy, isCore *bitset.BitSet) (*Query, error) {
	fw, err := dijkstra.NewQuery(h.Up)
	if err != nil {
		return nil, err
	}
	bw, err := dijkstra.NewQuery(h.Down)
	if err != nil {
		return nil, err
	}
	return &Query{h: h, isCore: isCore, fw: fw, bw: bw}, nil
}

// InitNewST sets the endpoints (original node ids). A side whose rank is
// already in the core is marked finished without running its search.
func (q *Query) InitNewST(s, t graph.NodeId) error {
	q.rs = graph.NodeId(q.h.Rank[s])
	q.rt = graph.NodeId(q.h.Rank[t])

	if err := q.fw.InitNewSource(q.rs); err != nil {
		return err
	}
	if err := q.bw.InitNewSource(q.rt); err != nil {
		return err
	}
	q.fwFinished = q.isCore.Test(int(q.rs))
	q.bwFinished = q.isCore.Test(int(q.rt))
	q.valid = true
	return nil
}

// RunQuery runs the bidirectional search to completion and returns the
// shortest distance, if a path exists.
func (q *Query) RunQuery() (graph.Weight, bool) {
	if !q.valid {
		return 0, false
	}
	if q.rs == q.rt {
		return 0, true
	}

	best := graph.Infinity
	fwNext := true

	for !q.fwFinished || !q.bwFinished {
		if !q.fwFinished && (q.bwFinished || fwNext) {
			node, dist, ok := q.fw.SettleNext()
			if !ok {
				q.fwFinished = true
				continue
			}
			if node == q.rt {
				return dist, true
			}
			if q.bw.Settled(node) {
				if total := dist + q.bw.DistOf(node); total < best {
					best = total
				}
			}
			if minKey, has := q.fw.QueueMinKey(); !has || minKey >= best {
				q.fwFinished = true
			}
			fwNext = false
		} else {
			node, dist, ok := q.bw.SettleNext()
			if !ok {
				q.bwFinished = true
				continue
			}
			if node == q.rs {
				return dist, true
			}
			if q.fw.Settled(node) {
				if total := dist + q.fw.DistOf(node); total < best {
					best = total
				}
			}
			if minKey, has := q.bw.QueueMinKey(); !has || minKey >= best {
				q.bwFinished = true
			}
			fwNext = true
		}
	}

	if best >= graph.Infinity {
		return 0, false
	}
	return best, true
}
