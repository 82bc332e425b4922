package cspcorech

import (
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/ch"
	"github.com/tachygraph/hgvroute/corech"
	"github.com/tachygraph/hgvroute/csp"
	"github.com/tachygraph/hgvroute/graph"
	"github.com/tachygraph/hgvroute/label"
	"github.com/tachygraph/hgvroute/xheap"
)

// side is one direction's label-setting state over one of the
// hierarchy's two independent CSR graphs (h.Up for forward, h.Down for
// backward), plus the bookkeeping §4.10's early-termination check needs:
// nonCoreQueued and reachableQueued track, incrementally as nodes enter
// and leave the queue, how many of this side's currently-queued nodes
// are (a) outside the core and (b) still within this side's
// core-reachability set (fromCoreUp for forward, toCoreDown for
// backward, from corech.ReachableFromCore).
type side struct {
	g         *graph.Graph
	isParking *bitset.BitSet // rank-indexed
	isCore    *bitset.BitSet // rank-indexed
	reachable *bitset.BitSet // rank-indexed; this side's core-reachability set
	pot       csp.PotentialFunc
	rest      csp.Restriction

	queue       *xheap.Heap
	labels      []*label.Set[csp.Dist1]
	touchedMask *bitset.BitSet
	touched     []int32

	nonCoreQueued   int
	reachableQueued int

	source   graph.NodeId
	finished bool
}

func newSide(g *graph.Graph, isParking, isCore, reachable *bitset.BitSet, pot csp.PotentialFunc) *side {
	n := g.NumNodes()
	return &side{
		g:           g,
		isParking:   isParking,
		isCore:      isCore,
		reachable:   reachable,
		pot:         pot,
		queue:       xheap.New(n),
		labels:      make([]*label.Set[csp.Dist1], n),
		touchedMask: bitset.New(n),
	}
}

func (sd *side) labelSetAt(v graph.NodeId) *label.Set[csp.Dist1] {
	if sd.labels[v] == nil {
		sd.labels[v] = label.NewSet[csp.Dist1]()
	}
	return sd.labels[v]
}

func (sd *side) markTouched(v graph.NodeId) {
	if !sd.touchedMask.Test(int(v)) {
		sd.touchedMask.Set(int(v))
		sd.touched = append(sd.touched, int32(v))
	}
}

func (sd *side) reset() {
	for _, v := range sd.touched {
		sd.labels[v].Reset()
		sd.touchedMask.Clear(int(v))
	}
	sd.touched = sd.touched[:0]
	sd.queue.Clear()
	sd.finished = false
	sd.nonCoreQueued = 0
	sd.reachableQueued = 0
}

// pushNode pushes v into the queue and, if v was not already resident,
// folds it into the frontier counters.
func (sd *side) pushNode(v graph.NodeId, prio int64) {
	if !sd.queue.Contains(int32(v)) {
		if !sd.isCore.Test(int(v)) {
			sd.nonCoreQueued++
		}
		if sd.reachable.Test(int(v)) {
			sd.reachableQueued++
		}
	}
	sd.queue.Push(int32(v), prio)
}

// retireNode removes v from the frontier counters; called once v is
// popped from the queue and has no further active labels to re-queue.
func (sd *side) retireNode(v graph.NodeId) {
	if !sd.isCore.Test(int(v)) {
		sd.nonCoreQueued--
	}
	if sd.reachable.Test(int(v)) {
		sd.reachableQueued--
	}
}

// seed pushes the zero-distance label at source, after pot.InitNewTarget
// has already been called by the caller.
func (sd *side) seed(source graph.NodeId) {
	sd.source = source
	h := sd.pot.Potential(source)
	prio := csp.Priority1(csp.Dist1{0, 0}, h, sd.rest)
	if prio >= graph.Infinity {
		sd.finished = true
		return
	}
	sd.labelSetAt(source).Insert(csp.Dist1{0, 0}, prio, graph.InvalidNode, -1, csp.Dist1Dominates)
	sd.markTouched(source)
	sd.pushNode(source, prio)
}

// bestSettledTotal returns the minimum d[0] among v's settled labels on
// this side, if any.
func (sd *side) bestSettledTotal(v graph.NodeId) (graph.Weight, bool) {
	set := sd.labels[v]
	if set == nil {
		return 0, false
	}
	best, found := graph.Weight(0), false
	for _, idx := range set.Settled() {
		d := set.At(idx).Dist[0]
		if !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}

// lowerBound estimates this side's best possible distance to v.
func (sd *side) lowerBound(v graph.NodeId) graph.Weight {
	if best, ok := sd.bestSettledTotal(v); ok {
		return best
	}
	_, minKey, ok := sd.queue.Peek()
	if !ok {
		return graph.Infinity
	}
	h := sd.pot.Potential(v)
	if h >= graph.Infinity {
		return graph.Infinity
	}
	bound := minKey - int64(h)
	if bound < 0 {
		bound = 0
	}
	return graph.Weight(bound)
}

func (sd *side) queueMin() (graph.Weight, bool) {
	_, prio, ok := sd.queue.Peek()
	if !ok {
		return 0, false
	}
	return graph.Weight(prio), true
}

// updateFinished marks sd finished once its queue empties or its
// remaining keys can no longer beat the known meeting cost mu.
func (sd *side) updateFinished(mu graph.Weight, muValid bool) {
	if sd.queue.Len() == 0 {
		sd.finished = true
		return
	}
	if muValid {
		if minKey, ok := sd.queueMin(); ok && minKey >= mu {
			sd.finished = true
		}
	}
}

// BidirectionalQuery is the Core-CH CSP-1 search (C10): a forward search
// from s's rank over h.Up, a backward search from t's rank over h.Down,
// meeting in the middle under the same break-counter feasibility join
// csp.BidirectionalQuery uses, plus the early "no path" exit of §4.10.
type BidirectionalQuery struct {
	h      *ch.Hierarchy
	fw, bw *side
	rest   csp.Restriction

	s, t                 graph.NodeId // original node ids
	rs, rt               graph.NodeId // their ranks
	mu                   graph.Weight
	muValid              bool
	meetNode             graph.NodeId
	fwMeetIdx, bwMeetIdx int32
}

// NewBidirectionalQuery allocates a query over hierarchy h. isCoreRank
// is the uncontracted core set, already indexed by rank (the same
// convention corech.Query uses). isParkingOrig is the parking set in
// original node-id space, as produced by compile.Compile; it is
// rank-indexed once here via RankIndex. potFw and potBw are the two
// direction-specific potentials: a *RankPotential wrapping *ch.Potential
// for the accelerated variant, or csp.NoPotential{} for plain
// Core-CH-CSP with no heuristic.
func NewBidirectionalQuery(h *ch.Hierarchy, isCoreRank, isParkingOrig *bitset.BitSet, potFw, potBw csp.PotentialFunc) (*BidirectionalQuery, error) {
	if h == nil {
		return nil, ErrNilHierarchy
	}
	if isCoreRank == nil {
		return nil, ErrNilCoreSet
	}
	if isParkingOrig == nil {
		return nil, ErrNilParkingSet
	}
	fromCoreUp, toCoreDown, err := corech.ReachableFromCore(h, isCoreRank)
	if err != nil {
		return nil, err
	}
	isParkingRank := RankIndex(isParkingOrig, h.Rank)

	q := &BidirectionalQuery{
		h:    h,
		fw:   newSide(h.Up, isParkingRank, isCoreRank, fromCoreUp, potFw),
		bw:   newSide(h.Down, isParkingRank, isCoreRank, toCoreDown, potBw),
		rest: csp.NoRestriction,
	}
	q.fw.rest, q.bw.rest = csp.NoRestriction, csp.NoRestriction
	return q, nil
}

// SetRestriction configures the driving-time restriction for subsequent
// queries.
func (q *BidirectionalQuery) SetRestriction(r csp.Restriction) error {
	if r.PauseTime < 0 || r.MaxDrivingTime <= 0 {
		return ErrBadRestriction
	}
	q.rest = r
	q.fw.rest, q.bw.rest = r, r
	return nil
}

// ClearRestriction disables the restriction entirely.
func (q *BidirectionalQuery) ClearRestriction() {
	q.rest = csp.NoRestriction
	q.fw.rest, q.bw.rest = csp.NoRestriction, csp.NoRestriction
}

// Init resets the query and seeds it for a search from s to t, both
// given as original node ids.
func (q *BidirectionalQuery) Init(s, t graph.NodeId) error {
	q.s, q.t = s, t
	q.rs = graph.NodeId(q.h.Rank[s])
	q.rt = graph.NodeId(q.h.Rank[t])

	if err := q.fw.pot.InitNewTarget(q.rt); err != nil {
		return err
	}
	if err := q.bw.pot.InitNewTarget(q.rs); err != nil {
		return err
	}
	q.fw.reset()
	q.bw.reset()
	q.mu = graph.Infinity
	q.muValid = false
	q.fw.seed(q.rs)
	q.bw.seed(q.rt)
	return nil
}

// combine checks sd's freshly settled label against every label already
// settled on the other side at v, updating mu and the winning indices.
func (q *BidirectionalQuery) combine(v graph.NodeId, d csp.Dist1, labelIdx int32, isForward bool, other *side) {
	set := other.labels[v]
	if set == nil {
		return
	}
	for _, idx := range set.Settled() {
		od := set.At(idx).Dist
		if d[1]+od[1] >= q.rest.MaxDrivingTime {
			continue
		}
		total := d[0] + od[0]
		if !q.muValid || total < q.mu {
			q.mu = total
			q.muValid = true
			q.meetNode = v
			if isForward {
				q.fwMeetIdx, q.bwMeetIdx = labelIdx, idx
			} else {
				q.fwMeetIdx, q.bwMeetIdx = idx, labelIdx
			}
		}
	}
}

// settleOne pops and relaxes the best active label on sd.
func (q *BidirectionalQuery) settleOne(sd, other *side, isForward bool) {
	id, _, has := sd.queue.Pop()
	if !has {
		sd.finished = true
		return
	}
	v := graph.NodeId(id)
	set := sd.labels[v]
	labelIdx, has2 := set.PopMin()
	if !has2 {
		sd.retireNode(v)
		return
	}
	lbl := set.At(labelIdx)

	q.combine(v, lbl.Dist, labelIdx, isForward, other)

	if _, nextPrio, has3 := set.PeekMin(); has3 {
		sd.queue.Push(int32(v), nextPrio) // still resident; counters unchanged
	} else {
		sd.retireNode(v)
	}

	start, end := sd.g.Out(v)
	for i := start; i < end; i++ {
		to := sd.g.HeadAt(i)
		if to == v {
			continue
		}
		w := sd.g.WeightAt(i)
		nd := lbl.Dist.Link(w)

		if nd[1] >= sd.rest.MaxDrivingTime {
			continue
		}
		if q.muValid && nd[0]+other.lowerBound(to) >= q.mu {
			continue
		}

		candidates := [2]csp.Dist1{nd}
		numCandidates := 1
		if sd.isParking.Test(int(to)) {
			candidates[1] = nd.ResetAt(1, sd.rest.PauseTime)
			numCandidates = 2
		}

		h := sd.pot.Potential(to)
		for c := 0; c < numCandidates; c++ {
			cand := candidates[c]
			prio := csp.Priority1(cand, h, sd.rest)
			if prio >= graph.Infinity {
				continue
			}
			toSet := sd.labelSetAt(to)
			_, inserted := toSet.Insert(cand, prio, v, labelIdx, csp.Dist1Dominates)
			if !inserted {
				continue
			}
			sd.markTouched(to)
			if curPrio, present := sd.queue.PriorityOf(int32(to)); present {
				if prio < curPrio {
					sd.queue.DecreaseKey(int32(to), prio)
				}
			} else {
				sd.pushNode(to, prio)
			}
		}
	}
}

// noPathEarly implements §4.10's early exit: once one side is finished
// and the other retains no non-core frontier node and no frontier node
// within its own core-reachability set, no meeting is possible.
func (q *BidirectionalQuery) noPathEarly() bool {
	if q.muValid {
		return false
	}
	if q.fw.finished && q.bw.nonCoreQueued == 0 && q.bw.reachableQueued == 0 {
		return true
	}
	if q.bw.finished && q.fw.nonCoreQueued == 0 && q.fw.reachableQueued == 0 {
		return true
	}
	return false
}

// DistQuery alternates forward and backward settle steps until both
// sides are finished (or the early "no path" exit fires), then returns
// mu if a meeting was found.
func (q *BidirectionalQuery) DistQuery() (graph.Weight, bool) {
	if q.s == q.t {
		return 0, true
	}
	for !q.fw.finished || !q.bw.finished {
		if q.noPathEarly() {
			q.fw.finished, q.bw.finished = true, true
			return 0, false
		}
		if !q.fw.finished {
			q.settleOne(q.fw, q.bw, true)
			q.fw.updateFinished(q.mu, q.muValid)
		}
		if !q.bw.finished {
			q.settleOne(q.bw, q.fw, false)
			q.bw.updateFinished(q.mu, q.muValid)
		}
	}
	if !q.muValid {
		return 0, false
	}
	return q.mu, true
}

// CurrentBestPath reconstructs the path found by the last successful
// DistQuery, in rank space: the forward chain from s's rank to the
// meeting node, followed by the backward chain (reversed) to t's rank.
func (q *BidirectionalQuery) CurrentBestPath() ([]csp.PathStep, error) {
	if !q.muValid {
		return nil, ErrNoQueryRun
	}

	var fwSteps []csp.PathStep
	node, idx := q.meetNode, q.fwMeetIdx
	for {
		lbl := q.fw.labels[node].At(idx)
		step := csp.PathStep{Node: node, Dist: lbl.Dist}
		if lbl.PrevNode != graph.InvalidNode {
			prevLbl := q.fw.labels[lbl.PrevNode].At(lbl.PrevLabel)
			w := arcWeightIn(q.fw.g, lbl.PrevNode, node)
			step.BreakTaken = lbl.Dist[0] != prevLbl.Dist[0]+w
		}
		fwSteps = append(fwSteps, step)
		if lbl.PrevNode == graph.InvalidNode {
			break
		}
		node, idx = lbl.PrevNode, lbl.PrevLabel
	}
	for i, j := 0, len(fwSteps)-1; i < j; i, j = i+1, j-1 {
		fwSteps[i], fwSteps[j] = fwSteps[j], fwSteps[i]
	}

	var bwSteps []csp.PathStep
	node, idx = q.meetNode, q.bwMeetIdx
	for {
		lbl := q.bw.labels[node].At(idx)
		step := csp.PathStep{Node: node, Dist: lbl.Dist}
		if lbl.PrevNode != graph.InvalidNode {
			prevLbl := q.bw.labels[lbl.PrevNode].At(lbl.PrevLabel)
			w := arcWeightIn(q.bw.g, lbl.PrevNode, node)
			step.BreakTaken = lbl.Dist[0] != prevLbl.Dist[0]+w
		}
		bwSteps = append(bwSteps, step)
		if lbl.PrevNode == graph.InvalidNode {
			break
		}
		node, idx = lbl.PrevNode, lbl.PrevLabel
	}

	steps := fwSteps
	for i := 1; i < len(bwSteps); i++ {
		steps = append(steps, bwSteps[i])
	}
	return steps, nil
}

func arcWeightIn(g *graph.Graph, from, to graph.NodeId) graph.Weight {
	start, end := g.Out(from)
	for i := start; i < end; i++ {
		if g.HeadAt(i) == to {
			return g.WeightAt(i)
		}
	}
	return 0
}
