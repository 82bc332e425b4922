package ch

import (
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/dijkstra"
	"github.com/tachygraph/hgvroute/graph"
	"github.com/tachygraph/hgvroute/tsvector"
)

// Potential is the lazy, landmark-free contraction-hierarchy A* heuristic
// (C7): an admissible, consistent lower bound on the distance from any
// node to a fixed target, computed on demand and memoized.
//
// InitNewTarget seeds a full (to-completion) backward Dijkstra run over the
// downward graph from the target's rank; this gives every reachable node
// an initial "direct CH path" estimate in one shared pass. Potential then
// refines that estimate lazily, per query node, via the recurrence
//
//	h(v) = min(initDist(v), min over (v,u) in Up: weight(v,u) + h(u))
//
// evaluated with an explicit work-stack rather than recursion, since the
// hierarchy's height can exceed a comfortable native call-stack depth.
type Potential struct {
	h         *Hierarchy
	initQuery *dijkstra.Query

	computed *bitset.BitSet
	pot      *tsvector.Vector[graph.Weight]

	// inProgress marks ranks with a live frame on stack, i.e. expansion
	// started but not yet finalized. A rank re-encountered while inProgress
	// means the Up-graph has a cycle reaching back to a node still being
	// expanded; Potential treats that arc as infinite rather than pushing
	// a second frame for the same rank and growing the stack unboundedly.
	inProgress *bitset.BitSet

	stack []frame
	t     graph.NodeId
	ready bool
}

type frame struct {
	rank   graph.NodeId
	cursor int32
	end    int32
	best   graph.Weight
}

// NewPotential allocates a Potential over h.
func NewPotential(h *Hierarchy) (*Potential, error) {
	initQuery, err := dijkstra.NewQuery(h.Down)
	if err != nil {
		return nil, err
	}
	n := h.NumNodes()
	return &Potential{
		h:          h,
		initQuery:  initQuery,
		computed:   bitset.New(n),
		inProgress: bitset.New(n),
		pot:        tsvector.New[graph.Weight](n, graph.Infinity),
	}, nil
}

// InitNewTarget retargets the potential at original node t: it re-seeds
// and fully drains the backward search over Down, and discards every
// memoized value from the previous target.
func (p *Potential) InitNewTarget(t graph.NodeId) error {
	rt := graph.NodeId(p.h.Rank[t])
	if err := p.initQuery.InitNewSource(rt); err != nil {
		return err
	}
	for {
		if _, _, ok := p.initQuery.SettleNext(); !ok {
			break
		}
	}
	p.computed.ClearAll()
	p.inProgress.ClearAll()
	p.pot.Reset()
	p.t = t
	p.ready = true
	return nil
}

func (p *Potential) initDist(rv graph.NodeId) graph.Weight {
	if p.initQuery.Settled(rv) {
		return p.initQuery.DistOf(rv)
	}
	return graph.Infinity
}

// Potential returns h(vOrig, t): an admissible, consistent lower bound on
// the true shortest distance from vOrig to the current target.
func (p *Potential) Potential(vOrig graph.NodeId) graph.Weight {
	rv := graph.NodeId(p.h.Rank[vOrig])
	if p.computed.Test(int(rv)) {
		return p.pot.Get(int(rv))
	}

	p.stack = p.stack[:0]
	p.pushFrame(rv)

	for len(p.stack) > 0 {
		top := &p.stack[len(p.stack)-1]

		if top.cursor >= top.end {
			p.finalize(top.rank, top.best)
			p.stack = p.stack[:len(p.stack)-1]
			if len(p.stack) > 0 {
				p.combineIntoParent(top.rank, top.best)
			}
			continue
		}

		i := top.cursor
		head := p.h.Up.HeadAt(i)
		w := p.h.Up.WeightAt(i)

		if p.computed.Test(int(head)) {
			cand := addSat(w, p.pot.Get(int(head)))
			if cand < top.best {
				top.best = cand
			}
			top.cursor++
			continue
		}
		if p.inProgress.Test(int(head)) {
			// head has a live frame further down the stack: the Up-graph
			// has a cycle back to it. Treat the arc as infinite rather
			// than pushing a second frame for the same rank.
			top.cursor++
			continue
		}
		p.pushFrame(head)
	}

	return p.pot.Get(int(rv))
}

func (p *Potential) pushFrame(rv graph.NodeId) {
	if p.computed.Test(int(rv)) {
		return
	}
	start, end := p.h.Up.Out(rv)
	p.stack = append(p.stack, frame{
		rank:   rv,
		cursor: start,
		end:    end,
		best:   p.initDist(rv),
	})
	p.inProgress.Set(int(rv))
}

// combineIntoParent folds a just-finalized child's value into the frame
// now on top of the stack (the child's parent), then advances its cursor
// past the arc that led to the child.
func (p *Potential) combineIntoParent(child graph.NodeId, childBest graph.Weight) {
	parent := &p.stack[len(p.stack)-1]
	i := parent.cursor
	w := p.h.Up.WeightAt(i)
	cand := addSat(w, childBest)
	if cand < parent.best {
		parent.best = cand
	}
	parent.cursor++
	_ = child
}

func (p *Potential) finalize(rv graph.NodeId, best graph.Weight) {
	p.pot.Set(int(rv), best)
	p.computed.Set(int(rv))
	p.inProgress.Clear(int(rv))
}

func addSat(a, b graph.Weight) graph.Weight {
	if a >= graph.Infinity || b >= graph.Infinity {
		return graph.Infinity
	}
	return a + b
}
