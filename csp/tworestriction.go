package csp

import (
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/graph"
	"github.com/tachygraph/hgvroute/label"
	"github.com/tachygraph/hgvroute/xheap"
)

// PathStep2 is one node of a CSP-2 reconstructed path.
type PathStep2 struct {
	Node            graph.NodeId
	Dist            Dist2
	ShortBreakTaken bool
	LongBreakTaken  bool
}

// TwoRestrictionQuery is a reusable CSP-2 search: a short-break
// restriction nested inside a long-break restriction.
type TwoRestrictionQuery struct {
	g         *graph.Graph
	isParking *bitset.BitSet
	pot       PotentialFunc
	short     Restriction
	long      Restriction

	queue       *xheap.Heap
	labels      []*label.Set[Dist2]
	touchedMask *bitset.BitSet
	touched     []int32

	s, t          graph.NodeId
	lastDist      graph.Weight
	lastLabelIdx  int32
	lastDistValid bool
}

// NewTwoRestrictionQuery allocates a query over g with parking set
// isParking, using pot as the A* heuristic.
func NewTwoRestrictionQuery(g *graph.Graph, isParking *bitset.BitSet, pot PotentialFunc) (*TwoRestrictionQuery, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if isParking == nil {
		return nil, ErrNilParkingSet
	}
	n := g.NumNodes()
	return &TwoRestrictionQuery{
		g:           g,
		isParking:   isParking,
		pot:         pot,
		short:       NoRestriction,
		long:        NoRestriction,
		queue:       xheap.New(n),
		labels:      make([]*label.Set[Dist2], n),
		touchedMask: bitset.New(n),
	}, nil
}

// SetRestrictions configures the short and long driving-time restrictions.
// The invariants long.MaxDrivingTime >= short.MaxDrivingTime and
// long.PauseTime >= short.PauseTime are the caller's responsibility, per
// the data model; they are not re-validated here beyond each Restriction's
// own bounds.
func (q *TwoRestrictionQuery) SetRestrictions(short, long Restriction) error {
	if err := short.validate(); err != nil {
		return err
	}
	if err := long.validate(); err != nil {
		return err
	}
	q.short, q.long = short, long
	return nil
}

// ClearRestrictions disables both restrictions.
func (q *TwoRestrictionQuery) ClearRestrictions() {
	q.short, q.long = NoRestriction, NoRestriction
}

func (q *TwoRestrictionQuery) labelSetAt(v graph.NodeId) *label.Set[Dist2] {
	if q.labels[v] == nil {
		q.labels[v] = label.NewSet[Dist2]()
	}
	return q.labels[v]
}

func (q *TwoRestrictionQuery) markTouched(v graph.NodeId) {
	if !q.touchedMask.Test(int(v)) {
		q.touchedMask.Set(int(v))
		q.touched = append(q.touched, int32(v))
	}
}

// Init resets the query and seeds it for a search from s to t.
func (q *TwoRestrictionQuery) Init(s, t graph.NodeId) error {
	if err := q.pot.InitNewTarget(t); err != nil {
		return err
	}
	for _, v := range q.touched {
		q.labels[v].Reset()
		q.touchedMask.Clear(int(v))
	}
	q.touched = q.touched[:0]
	q.queue.Clear()
	q.s, q.t = s, t
	q.lastDistValid = false

	h := q.pot.Potential(s)
	prio := priority2(Dist2{0, 0, 0}, h, q.short, q.long)
	if prio >= graph.Infinity {
		return nil
	}
	q.labelSetAt(s).Insert(Dist2{0, 0, 0}, prio, graph.InvalidNode, -1, dist2Dominates)
	q.markTouched(s)
	q.queue.Push(int32(s), prio)
	return nil
}

func (q *TwoRestrictionQuery) targetDominates(cand Dist2) bool {
	set := q.labels[q.t]
	if set == nil {
		return false
	}
	for _, idx := range set.Settled() {
		if dist2Dominates(set.At(idx).Dist, cand) {
			return true
		}
	}
	return false
}

// SettleNextLabel pops and relaxes the best active label in the query.
func (q *TwoRestrictionQuery) SettleNextLabel() (node graph.NodeId, ok bool) {
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

		if nd[1] >= q.short.MaxDrivingTime || nd[2] >= q.long.MaxDrivingTime {
			continue
		}
		if q.targetDominates(nd) {
			continue
		}

		var candidates [3]Dist2
		candidates[0] = nd
		numCandidates := 1
		if q.isParking.Test(int(to)) {
			candidates[1] = nd.ResetAt(1, q.short.PauseTime)
			numCandidates = 2
			candidates[2] = nd.ResetAt(2, q.long.PauseTime)
			numCandidates = 3
		}

		h := q.pot.Potential(to)
		for c := 0; c < numCandidates; c++ {
			cand := candidates[c]
			prio := priority2(cand, h, q.short, q.long)
			if prio >= graph.Infinity {
				continue
			}
			toSet := q.labelSetAt(to)
			_, inserted := toSet.Insert(cand, prio, v, labelIdx, dist2Dominates)
			if !inserted {
				continue
			}
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

// DistQuery runs SettleNextLabel until t is settled or the queue empties.
func (q *TwoRestrictionQuery) DistQuery() (graph.Weight, bool) {
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

// CurrentBestPath reconstructs the path to t found by the last successful
// DistQuery.
func (q *TwoRestrictionQuery) CurrentBestPath() ([]PathStep2, error) {
	if !q.lastDistValid {
		return nil, ErrNoQueryRun
	}
	var steps []PathStep2
	node, idx := q.t, q.lastLabelIdx
	for {
		lbl := q.labels[node].At(idx)
		step := PathStep2{Node: node, Dist: lbl.Dist}
		if lbl.PrevNode != graph.InvalidNode {
			prevLbl := q.labels[lbl.PrevNode].At(lbl.PrevLabel)
			w := q.arcWeight(lbl.PrevNode, node)
			if lbl.Dist[0] != prevLbl.Dist[0]+w {
				if lbl.Dist[1] == 0 {
					step.ShortBreakTaken = true
				}
				if lbl.Dist[2] == 0 {
					step.LongBreakTaken = true
				}
			}
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

func (q *TwoRestrictionQuery) arcWeight(from, to graph.NodeId) graph.Weight {
	start, end := q.g.Out(from)
	for i := start; i < end; i++ {
		if q.g.HeadAt(i) == to {
			return q.g.WeightAt(i)
		}
	}
	return 0
}
