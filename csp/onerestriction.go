package csp

import (
	"time"

	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/graph"
	"github.com/tachygraph/hgvroute/label"
	"github.com/tachygraph/hgvroute/xheap"
)

// PathStep is one node of a reconstructed path, with the label distance
// settled there and whether a break was taken on arrival.
type PathStep struct {
	Node       graph.NodeId
	Dist       Dist1
	BreakTaken bool
}

// OneRestrictionQuery is a reusable CSP-1 search over a shared, read-only
// graph and parking set.
type OneRestrictionQuery struct {
	g         *graph.Graph
	isParking *bitset.BitSet
	pot       PotentialFunc
	rest      Restriction

	queue       *xheap.Heap
	labels      []*label.Set[Dist1]
	touchedMask *bitset.BitSet
	touched     []int32

	s, t              graph.NodeId
	lastDist          graph.Weight
	lastLabelIdx      int32
	lastDistValid     bool
}

// NewOneRestrictionQuery allocates a query over g with parking set
// isParking, using pot as the A* heuristic (csp.NoPotential for none).
func NewOneRestrictionQuery(g *graph.Graph, isParking *bitset.BitSet, pot PotentialFunc) (*OneRestrictionQuery, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if isParking == nil {
		return nil, ErrNilParkingSet
	}
	n := g.NumNodes()
	return &OneRestrictionQuery{
		g:           g,
		isParking:   isParking,
		pot:         pot,
		rest:        NoRestriction,
		queue:       xheap.New(n),
		labels:      make([]*label.Set[Dist1], n),
		touchedMask: bitset.New(n),
	}, nil
}

// SetRestriction configures the driving-time restriction for subsequent
// queries.
func (q *OneRestrictionQuery) SetRestriction(r Restriction) error {
	if err := r.validate(); err != nil {
		return err
	}
	q.rest = r
	return nil
}

// ClearRestriction disables the restriction entirely.
func (q *OneRestrictionQuery) ClearRestriction() {
	q.rest = NoRestriction
}

func (q *OneRestrictionQuery) labelSetAt(v graph.NodeId) *label.Set[Dist1] {
	if q.labels[v] == nil {
		q.labels[v] = label.NewSet[Dist1]()
	}
	return q.labels[v]
}

func (q *OneRestrictionQuery) markTouched(v graph.NodeId) {
	if !q.touchedMask.Test(int(v)) {
		q.touchedMask.Set(int(v))
		q.touched = append(q.touched, int32(v))
	}
}

// Clean discards the query's explored state (labels, queue, the last
// settled distance at t) without touching its restriction or potential.
// A query left mid-search by DistQueryWithTimeout's deadline must be
// Clean()ed — or re-Init()ed, which calls Clean() itself — before reuse.
func (q *OneRestrictionQuery) Clean() {
	for _, v := range q.touched {
		q.labels[v].Reset()
		q.touchedMask.Clear(int(v))
	}
	q.touched = q.touched[:0]
	q.queue.Clear()
	q.lastDistValid = false
}

// Init resets the query and seeds it for a search from s to t.
func (q *OneRestrictionQuery) Init(s, t graph.NodeId) error {
	if err := q.pot.InitNewTarget(t); err != nil {
		return err
	}
	q.Clean()
	q.s, q.t = s, t

	h := q.pot.Potential(s)
	prio := Priority1(Dist1{0, 0}, h, q.rest)
	if prio >= graph.Infinity {
		return nil
	}
	idx, _ := q.labelSetAt(s).Insert(Dist1{0, 0}, prio, graph.InvalidNode, -1, Dist1Dominates)
	q.markTouched(s)
	q.queue.Push(int32(s), prio)
	_ = idx
	return nil
}

// targetDominates reports whether any settled label at t dominates cand.
func (q *OneRestrictionQuery) targetDominates(cand Dist1) bool {
	set := q.labels[q.t]
	if set == nil {
		return false
	}
	for _, idx := range set.Settled() {
		if Dist1Dominates(set.At(idx).Dist, cand) {
			return true
		}
	}
	return false
}

// SettleNextLabel pops and relaxes the best active label in the whole
// query, returning the node it belonged to. ok is false once the queue is
// empty.
func (q *OneRestrictionQuery) SettleNextLabel() (node graph.NodeId, ok bool) {
	id, _, has := q.queue.Pop()
	if !has {
		return 0, false
	}
	v := graph.NodeId(id)
	set := q.labels[v]
	labelIdx, has2 := set.PopMin()
	if !has2 {
		return v, true
	}
	lbl := set.At(labelIdx)

	if v == q.t {
		q.lastDist = lbl.Dist[0]
		q.lastLabelIdx = labelIdx
		q.lastDistValid = true
	}

	if _, nextPrio, has3 := set.PeekMin(); has3 {
		q.queue.Push(int32(v), nextPrio)
	}

	start, end := q.g.Out(v)
	for i := start; i < end; i++ {
		to := q.g.HeadAt(i)
		if to == v {
			continue
		}
		w := q.g.WeightAt(i)
		nd := lbl.Dist.Link(w)

		if nd[1] >= q.rest.MaxDrivingTime {
			continue
		}
		if q.targetDominates(nd) {
			continue
		}

		candidates := [2]Dist1{nd}
		numCandidates := 1
		if q.isParking.Test(int(to)) {
			candidates[1] = nd.ResetAt(1, q.rest.PauseTime)
			numCandidates = 2
		}

		h := q.pot.Potential(to)
		for c := 0; c < numCandidates; c++ {
			cand := candidates[c]
			prio := Priority1(cand, h, q.rest)
			if prio >= graph.Infinity {
				continue
			}
			toSet := q.labelSetAt(to)
			newIdx, inserted := toSet.Insert(cand, prio, v, labelIdx, Dist1Dominates)
			if !inserted {
				continue
			}
			_ = newIdx
			q.markTouched(to)
			if curPrio, present := q.queue.PriorityOf(int32(to)); present {
				if prio < curPrio {
					q.queue.DecreaseKey(int32(to), prio)
				}
			} else {
				q.queue.Push(int32(to), prio)
			}
		}
	}

	return v, true
}

// DistQuery runs SettleNextLabel until t is settled or the queue empties,
// and returns the minimum total travel time including breaks.
func (q *OneRestrictionQuery) DistQuery() (graph.Weight, bool) {
	for {
		node, ok := q.SettleNextLabel()
		if !ok {
			return 0, false
		}
		if node == q.t && q.lastDistValid {
			return q.lastDist, true
		}
	}
}

// DistQueryWithTimeout runs the same search as DistQuery, but polls the
// wall clock after every settle and aborts with ErrTimeout once deadline
// has passed. On timeout the query is left mid-search; call Clean (or
// Init again) before reusing it.
func (q *OneRestrictionQuery) DistQueryWithTimeout(deadline time.Time) (graph.Weight, bool, error) {
	for {
		node, ok := q.SettleNextLabel()
		if !ok {
			return 0, false, nil
		}
		if node == q.t && q.lastDistValid {
			return q.lastDist, true, nil
		}
		if time.Now().After(deadline) {
			return 0, false, ErrTimeout
		}
	}
}

// CurrentBestPath reconstructs the path to t found by the last successful
// DistQuery, earliest node first.
func (q *OneRestrictionQuery) CurrentBestPath() ([]PathStep, error) {
	if !q.lastDistValid {
		return nil, ErrNoQueryRun
	}
	var steps []PathStep
	node, idx := q.t, q.lastLabelIdx
	for {
		lbl := q.labels[node].At(idx)
		step := PathStep{Node: node, Dist: lbl.Dist}
		if lbl.PrevNode != graph.InvalidNode {
			prevLbl := q.labels[lbl.PrevNode].At(lbl.PrevLabel)
			w := q.arcWeight(lbl.PrevNode, node)
			step.BreakTaken = lbl.Dist[0] != prevLbl.Dist[0]+w
		}
		steps = append(steps, step)
		if lbl.PrevNode == graph.InvalidNode {
			break
		}
		node, idx = lbl.PrevNode, lbl.PrevLabel
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, nil
}

func (q *OneRestrictionQuery) arcWeight(from, to graph.NodeId) graph.Weight {
	start, end := q.g.Out(from)
	for i := start; i < end; i++ {
		if q.g.HeadAt(i) == to {
			return q.g.WeightAt(i)
		}
	}
	return 0
}
