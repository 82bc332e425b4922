package harness

import (
	"errors"
	"fmt"

	"github.com/tachygraph/hgvroute/ch"
	"github.com/tachygraph/hgvroute/csp"
	"github.com/tachygraph/hgvroute/dijkstra"
	"github.com/tachygraph/hgvroute/graph"
	"github.com/tachygraph/hgvroute/xheap"
)

// ErrPropertyViolated wraps every failure a Check* function returns, so
// callers can distinguish a genuine property violation from a plumbing
// error (a nil graph, a bad restriction) in the oracle itself.
var ErrPropertyViolated = errors.New("harness: property violated")

// ScalarOracle computes the unrestricted scalar shortest distance from s
// to t, e.g. a *dijkstra.Query wrapped as a closure.
type ScalarOracle func(s, t graph.NodeId) (graph.Weight, bool)

// CSPOracle computes the one-restriction optimum from s to t under r.
type CSPOracle func(s, t graph.NodeId, r csp.Restriction) (graph.Weight, bool)

// CSP2Oracle computes the two-restriction optimum from s to t under short
// and long restrictions.
type CSP2Oracle func(s, t graph.NodeId, short, long csp.Restriction) (graph.Weight, bool)

// CheckUnrestrictedEquivalence verifies testable property 1: csp(s,t;
// INFINITY,0) must equal dijkstra(s,t) for every pair given.
func CheckUnrestrictedEquivalence(scalar ScalarOracle, oracle CSPOracle, pairs [][2]graph.NodeId) error {
	for _, p := range pairs {
		want, wantOK := scalar(p[0], p[1])
		got, gotOK := oracle(p[0], p[1], csp.NoRestriction)
		if wantOK != gotOK {
			return fmt.Errorf("%w: unrestricted equivalence at (%d,%d): scalar feasible=%v, csp feasible=%v",
				ErrPropertyViolated, p[0], p[1], wantOK, gotOK)
		}
		if wantOK && want != got {
			return fmt.Errorf("%w: unrestricted equivalence at (%d,%d): scalar=%d, csp=%d",
				ErrPropertyViolated, p[0], p[1], want, got)
		}
	}
	return nil
}

// CheckRestrictionMonotonicity verifies testable property 2: loosening the
// restriction (raising D, lowering B) can never raise the optimum, and can
// never turn a feasible route infeasible.
func CheckRestrictionMonotonicity(oracle CSPOracle, s, t graph.NodeId, tight, loose csp.Restriction) error {
	if loose.MaxDrivingTime < tight.MaxDrivingTime || loose.PauseTime > tight.PauseTime {
		return fmt.Errorf("harness: loose restriction %+v is not looser than tight %+v", loose, tight)
	}
	gotTight, okTight := oracle(s, t, tight)
	gotLoose, okLoose := oracle(s, t, loose)
	if okTight && !okLoose {
		return fmt.Errorf("%w: monotonicity: tight feasible (%d) but loose infeasible", ErrPropertyViolated, gotTight)
	}
	if okTight && okLoose && gotLoose > gotTight {
		return fmt.Errorf("%w: monotonicity: loose=%d > tight=%d", ErrPropertyViolated, gotLoose, gotTight)
	}
	return nil
}

// CheckTwoRestrictionDegeneration verifies testable property 3: with
// D_long = D_short and B_long = B_short, CSP-2's optimum must equal
// CSP-1's optimum under the same single restriction.
func CheckTwoRestrictionDegeneration(oracle2 CSP2Oracle, oracle1 CSPOracle, s, t graph.NodeId, r csp.Restriction) error {
	got2, ok2 := oracle2(s, t, r, r)
	got1, ok1 := oracle1(s, t, r)
	if ok1 != ok2 {
		return fmt.Errorf("%w: two-restriction degeneration: csp1 feasible=%v, csp2 feasible=%v",
			ErrPropertyViolated, ok1, ok2)
	}
	if ok1 && got1 != got2 {
		return fmt.Errorf("%w: two-restriction degeneration: csp1=%d, csp2=%d", ErrPropertyViolated, got1, got2)
	}
	return nil
}

// CheckCrossVariantAgreement verifies testable property 4: every named
// oracle must return the same (optimum, feasible) pair for identical
// inputs. len(oracles) must be at least 1; a single oracle trivially
// agrees with itself.
func CheckCrossVariantAgreement(oracles map[string]CSPOracle, s, t graph.NodeId, r csp.Restriction) error {
	type result struct {
		val graph.Weight
		ok  bool
	}
	var refName string
	var ref result
	first := true
	for name, oracle := range oracles {
		val, ok := oracle(s, t, r)
		if first {
			refName, ref, first = name, result{val, ok}, false
			continue
		}
		if ok != ref.ok || (ok && val != ref.val) {
			return fmt.Errorf("%w: cross-variant disagreement: %s=(%d,feasible=%v) %s=(%d,feasible=%v)",
				ErrPropertyViolated, refName, ref.val, ref.ok, name, val, ok)
		}
	}
	return nil
}

// CheckPathFeasibility verifies testable property 5's driving-time clause:
// every step's time-since-last-break component must stay strictly below
// the restriction's MaxDrivingTime (an uncapped restriction trivially
// passes). It does not independently re-derive total path weight, since
// Dist1's running total is exactly the quantity DistQuery already
// returned; callers compare that return value against the scenario's
// expected answer directly.
func CheckPathFeasibility(steps []csp.PathStep, r csp.Restriction) error {
	if r.MaxDrivingTime >= graph.Infinity {
		return nil
	}
	for i, st := range steps {
		if st.Dist[1] >= r.MaxDrivingTime {
			return fmt.Errorf("%w: path feasibility: step %d (node %d) driven=%d >= D=%d",
				ErrPropertyViolated, i, st.Node, st.Dist[1], r.MaxDrivingTime)
		}
	}
	return nil
}

// CheckHeapPopOrder verifies testable property 6: popping h in sequence
// must yield non-decreasing keys. It drains h completely, so pass a heap
// dedicated to this check (or a throwaway clone of one under test).
func CheckHeapPopOrder(h *xheap.Heap) error {
	last := int64(-1) << 62
	for h.Len() > 0 {
		id, prio, ok := h.Pop()
		if !ok {
			break
		}
		if prio < last {
			return fmt.Errorf("%w: heap pop order: id %d popped at priority %d after %d",
				ErrPropertyViolated, id, prio, last)
		}
		last = prio
	}
	return nil
}

// CheckPotentialAdmissible verifies testable property 7 over a hierarchy
// whose Up graph coincides with the original graph g (true of the
// identity hierarchies harness_test.go builds, where Up == g and rank is
// the identity): for every node v reachable to t, potential(v,t) must not
// exceed the true shortest distance from v to t, and for every edge
// (u,v) in h.Up, potential(u,t) must not exceed w(u,v)+potential(v,t).
func CheckPotentialAdmissible(g *graph.Graph, h *ch.Hierarchy, pot *ch.Potential, t graph.NodeId) error {
	if err := pot.InitNewTarget(t); err != nil {
		return err
	}

	gRev := g.Reverse()
	dq, err := dijkstra.NewQuery(gRev)
	if err != nil {
		return err
	}
	if err := dq.InitNewSource(t); err != nil {
		return err
	}

	n := g.NumNodes()
	for v := 0; v < n; v++ {
		nv := graph.NodeId(v)
		trueDist, reachable := dq.DistQuery(nv)
		if !reachable {
			continue
		}
		est := pot.Potential(nv)
		if est > trueDist {
			return fmt.Errorf("%w: potential inadmissible at node %d: potential=%d > true distance=%d",
				ErrPropertyViolated, v, est, trueDist)
		}
	}

	for u := 0; u < h.Up.NumNodes(); u++ {
		nu := graph.NodeId(u)
		pu := pot.Potential(nu)
		if pu >= graph.Infinity {
			continue
		}
		start, end := h.Up.Out(nu)
		for i := start; i < end; i++ {
			v := h.Up.HeadAt(i)
			w := h.Up.WeightAt(i)
			pv := pot.Potential(v)
			if pv >= graph.Infinity {
				continue
			}
			if pu > w+pv {
				return fmt.Errorf("%w: potential inconsistent at edge (%d,%d): potential(u)=%d > w=%d + potential(v)=%d",
					ErrPropertyViolated, u, v, pu, w, pv)
			}
		}
	}
	return nil
}
