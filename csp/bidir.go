package csp

import (
	"time"

	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/graph"
	"github.com/tachygraph/hgvroute/label"
	"github.com/tachygraph/hgvroute/xheap"
)

// side is one direction's worth of label-setting state: its own graph
// (the original for forward, the edge-reversed graph for backward), its
// own CH potential pointing at the opposite endpoint, and its own queue
// and label arena.
type side struct {
	g         *graph.Graph
	isParking *bitset.BitSet
	pot       PotentialFunc
	rest      Restriction

	queue       *xheap.Heap
	labels      []*label.Set[Dist1]
	touchedMask *bitset.BitSet
	touched     []int32

	source   graph.NodeId
	finished bool
}

func newSide(g *graph.Graph, isParking *bitset.BitSet, pot PotentialFunc) *side {
	n := g.NumNodes()
	return &side{
		g:           g,
		isParking:   isParking,
		pot:         pot,
		queue:       xheap.New(n),
		labels:      make([]*label.Set[Dist1], n),
		touchedMask: bitset.New(n),
	}
}

func (sd *side) labelSetAt(v graph.NodeId) *label.Set[Dist1] {
	if sd.labels[v] == nil {
		sd.labels[v] = label.NewSet[Dist1]()
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
}

// seed pushes the zero-distance label at source, after pot.InitNewTarget
// has already been called by the caller.
func (sd *side) seed(source graph.NodeId) {
	sd.source = source
	h := sd.pot.Potential(source)
	prio := Priority1(Dist1{0, 0}, h, sd.rest)
	if prio >= graph.Infinity {
		sd.finished = true
		return
	}
	sd.labelSetAt(source).Insert(Dist1{0, 0}, prio, graph.InvalidNode, -1, Dist1Dominates)
	sd.markTouched(source)
	sd.queue.Push(int32(source), prio)
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

// lowerBound estimates this side's best possible distance to v: its best
// settled total if v has been settled, else an admissible estimate from
// the queue's current minimum key and this side's own potential at v.
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

// BidirectionalQuery is the bidirectional CSP-1 search: a forward search
// from s over g, a backward search from t over g's edge-reversal, meeting
// in the middle under a break-counter feasibility join (§4.9's deviation
// from the original reference, which checks only the summed total time).
type BidirectionalQuery struct {
	fw, bw *side
	gRev   *graph.Graph
	rest   Restriction

	s, t                 graph.NodeId
	mu                   graph.Weight
	muValid              bool
	meetNode             graph.NodeId
	fwMeetIdx, bwMeetIdx int32
}

// NewBidirectionalQuery allocates a query over g with parking set
// isParking. potFw is the CH potential that will be pointed at t;
// potBw is the CH potential that will be pointed at s.
func NewBidirectionalQuery(g *graph.Graph, isParking *bitset.BitSet, potFw, potBw PotentialFunc) (*BidirectionalQuery, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if isParking == nil {
		return nil, ErrNilParkingSet
	}
	gRev := g.Reverse()
	q := &BidirectionalQuery{
		fw:   newSide(g, isParking, potFw),
		bw:   newSide(gRev, isParking, potBw),
		gRev: gRev,
		rest: NoRestriction,
	}
	q.fw.rest, q.bw.rest = NoRestriction, NoRestriction
	return q, nil
}

// SetRestriction configures the driving-time restriction for subsequent
// queries.
func (q *BidirectionalQuery) SetRestriction(r Restriction) error {
	if err := r.validate(); err != nil {
		return err
	}
	q.rest = r
	q.fw.rest, q.bw.rest = r, r
	return nil
}

// ClearRestriction disables the restriction entirely.
func (q *BidirectionalQuery) ClearRestriction() {
	q.rest = NoRestriction
	q.fw.rest, q.bw.rest = NoRestriction, NoRestriction
}

// Clean discards both sides' explored state without touching the
// restriction or either potential. A query left mid-search by
// DistQueryWithTimeout's deadline must be Clean()ed — or re-Init()ed,
// which calls Clean() itself — before reuse.
func (q *BidirectionalQuery) Clean() {
	q.fw.reset()
	q.bw.reset()
	q.mu = graph.Infinity
	q.muValid = false
}

// Init resets the query and seeds it for a search from s to t.
func (q *BidirectionalQuery) Init(s, t graph.NodeId) error {
	if err := q.fw.pot.InitNewTarget(t); err != nil {
		return err
	}
	if err := q.bw.pot.InitNewTarget(s); err != nil {
		return err
	}
	q.Clean()
	q.s, q.t = s, t
	q.fw.seed(s)
	q.bw.seed(t)
	return nil
}

// combine checks sd's freshly settled label (node v, distance d, index
// labelIdx) against every label already settled on the other side at v,
// updating mu and the winning label indices on both sides.
func (q *BidirectionalQuery) combine(v graph.NodeId, d Dist1, labelIdx int32, isForward bool, other *side) {
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

// settleOne pops and relaxes the best active label on sd, pruning
// candidates against the opposing side's lower bound once mu is known.
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
		return
	}
	lbl := set.At(labelIdx)

	q.combine(v, lbl.Dist, labelIdx, isForward, other)

	if _, nextPrio, has3 := set.PeekMin(); has3 {
		sd.queue.Push(int32(v), nextPrio)
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

		candidates := [2]Dist1{nd}
		numCandidates := 1
		if sd.isParking.Test(int(to)) {
			candidates[1] = nd.ResetAt(1, sd.rest.PauseTime)
			numCandidates = 2
		}

		h := sd.pot.Potential(to)
		for c := 0; c < numCandidates; c++ {
			cand := candidates[c]
			prio := Priority1(cand, h, sd.rest)
			if prio >= graph.Infinity {
				continue
			}
			toSet := sd.labelSetAt(to)
			_, inserted := toSet.Insert(cand, prio, v, labelIdx, Dist1Dominates)
			if !inserted {
				continue
			}
			sd.markTouched(to)
			if curPrio, present := sd.queue.PriorityOf(int32(to)); present {
				if prio < curPrio {
					sd.queue.DecreaseKey(int32(to), prio)
				}
			} else {
				sd.queue.Push(int32(to), prio)
			}
		}
	}
}

func (sd *side) queueMin() (graph.Weight, bool) {
	_, prio, ok := sd.queue.Peek()
	if !ok {
		return 0, false
	}
	return graph.Weight(prio), true
}

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

// DistQuery alternates forward and backward settle steps until both sides
// are finished, then returns mu if a meeting was found.
func (q *BidirectionalQuery) DistQuery() (graph.Weight, bool) {
	if q.s == q.t {
		return 0, true
	}
	for !q.fw.finished || !q.bw.finished {
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

// DistQueryWithTimeout runs the same alternating forward/backward search
// as DistQuery, but polls the wall clock after every settle step (forward
// or backward) and aborts with ErrTimeout once deadline has passed. On
// timeout the query is left mid-search; call Clean (or Init again) before
// reusing it.
func (q *BidirectionalQuery) DistQueryWithTimeout(deadline time.Time) (graph.Weight, bool, error) {
	if q.s == q.t {
		return 0, true, nil
	}
	for !q.fw.finished || !q.bw.finished {
		if !q.fw.finished {
			q.settleOne(q.fw, q.bw, true)
			q.fw.updateFinished(q.mu, q.muValid)
			if time.Now().After(deadline) {
				return 0, false, ErrTimeout
			}
		}
		if !q.bw.finished {
			q.settleOne(q.bw, q.fw, false)
			q.bw.updateFinished(q.mu, q.muValid)
			if time.Now().After(deadline) {
				return 0, false, ErrTimeout
			}
		}
	}
	if !q.muValid {
		return 0, false, nil
	}
	return q.mu, true, nil
}

// PathStep is reused from the one-restriction package for bidirectional
// path reconstruction; see onerestriction.go.

// CurrentBestPath reconstructs the path found by the last successful
// DistQuery: the forward chain from s to the meeting node, followed by
// the backward chain (reversed, since it was built walking g_rev from t)
// from the meeting node to t.
func (q *BidirectionalQuery) CurrentBestPath() ([]PathStep, error) {
	if !q.muValid {
		return nil, ErrNoQueryRun
	}

	var fwSteps []PathStep
	node, idx := q.meetNode, q.fwMeetIdx
	for {
		lbl := q.fw.labels[node].At(idx)
		step := PathStep{Node: node, Dist: lbl.Dist}
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

	var bwSteps []PathStep
	node, idx = q.meetNode, q.bwMeetIdx
	for {
		lbl := q.bw.labels[node].At(idx)
		step := PathStep{Node: node, Dist: lbl.Dist}
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
