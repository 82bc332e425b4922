package cspcorech_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/ch"
	"github.com/tachygraph/hgvroute/csp"
	"github.com/tachygraph/hgvroute/cspcorech"
	"github.com/tachygraph/hgvroute/graph"
)

func mustGraph(t *testing.T, firstOut []int32, head []graph.NodeId, weight []graph.Weight) *graph.Graph {
	t.Helper()
	g, err := graph.New(firstOut, head, weight)
	require.NoError(t, err)
	return g
}

func parkingSet(t *testing.T, n int, nodes ...int) *bitset.BitSet {
	t.Helper()
	bs := bitset.New(n)
	for _, v := range nodes {
		bs.Set(v)
	}
	return bs
}

// identityHierarchy wraps g as its own trivial hierarchy: Up == Down ==
// g, rank is the identity permutation. In S2 and S5 the target has no
// outgoing arcs, so the backward side settles only t and the optimum
// equals csp.BidirectionalQuery's; the fixtures' already-verified
// expectations carry over unchanged.
func identityHierarchy(t *testing.T, g *graph.Graph) *ch.Hierarchy {
	t.Helper()
	n := g.NumNodes()
	rank := make([]int32, n)
	for i := range rank {
		rank[i] = int32(i)
	}
	h, err := ch.NewHierarchy(g, g, rank)
	require.NoError(t, err)
	return h
}

// s2Graph is the S2 "Shortest path breaks constraint" fixture shared
// with csp/onerestriction_test.go and csp/bidir_test.go.
func s2Graph(t *testing.T) *graph.Graph {
	return mustGraph(t,
		[]int32{0, 1, 3, 4, 5, 5},
		[]graph.NodeId{1, 2, 3, 4, 4},
		[]graph.Weight{1, 4, 3, 2, 4},
	)
}

// TestMatchesS2AcrossCoreChoices checks testable property 4's
// cross-variant agreement: the Core-CH CSP-1 answer on S2 must match
// csp.BidirectionalQuery's, for every restriction in the table, and
// regardless of which nodes are (arbitrarily) marked core.
func TestMatchesS2AcrossCoreChoices(t *testing.T) {
	g := s2Graph(t)
	h := identityHierarchy(t, g)
	park := parkingSet(t, 5, 2, 3)

	cases := []struct {
		d, b graph.Weight
		want graph.Weight
	}{
		{5, 0, 8},
		{6, 0, 7},
		{5, 2, 10},
		{6, 2, 9},
	}
	coreChoices := []func() *bitset.BitSet{
		func() *bitset.BitSet { return bitset.New(5) }, // no core nodes
		func() *bitset.BitSet {
			c := bitset.New(5)
			c.Set(2)
			c.Set(3)
			return c
		},
		func() *bitset.BitSet {
			c := bitset.New(5)
			c.SetAll()
			return c
		},
	}

	for _, mkCore := range coreChoices {
		for _, c := range cases {
			q, err := cspcorech.NewBidirectionalQuery(h, mkCore(), park, csp.NoPotential{}, csp.NoPotential{})
			require.NoError(t, err)
			require.NoError(t, q.SetRestriction(csp.Restriction{MaxDrivingTime: c.d, PauseTime: c.b}))
			require.NoError(t, q.Init(0, 4))
			got, ok := q.DistQuery()
			require.True(t, ok)
			require.Equal(t, c.want, got, "D=%d B=%d", c.d, c.b)
		}
	}
}

// TestUnreachableNoPath checks infeasibility on S5, including the
// §4.10 early-exit path: marking every node core forces fromCoreUp and
// toCoreDown to cover everything, so this also exercises the ordinary
// (non-early) empty-queue termination; marking no node core exercises
// the early exit once one side drains with nothing reachable on the
// other.
func TestUnreachableNoPath(t *testing.T) {
	g := mustGraph(t,
		[]int32{0, 1, 2, 2},
		[]graph.NodeId{1, 2},
		[]graph.Weight{1, 5},
	)
	h := identityHierarchy(t, g)
	park := parkingSet(t, 3, 1)

	for _, core := range []*bitset.BitSet{bitset.New(3), func() *bitset.BitSet {
		c := bitset.New(3)
		c.SetAll()
		return c
	}()} {
		q, err := cspcorech.NewBidirectionalQuery(h, core, park, csp.NoPotential{}, csp.NoPotential{})
		require.NoError(t, err)
		require.NoError(t, q.SetRestriction(csp.Restriction{MaxDrivingTime: 4, PauseTime: 0}))
		require.NoError(t, q.Init(0, 2))
		_, ok := q.DistQuery()
		require.False(t, ok)
	}
}

// TestSameNode checks the degenerate s == t case short-circuits without
// touching either side's queue.
func TestSameNode(t *testing.T) {
	g := s2Graph(t)
	h := identityHierarchy(t, g)
	core := bitset.New(5)
	park := parkingSet(t, 5)

	q, err := cspcorech.NewBidirectionalQuery(h, core, park, csp.NoPotential{}, csp.NoPotential{})
	require.NoError(t, err)
	require.NoError(t, q.Init(2, 2))
	got, ok := q.DistQuery()
	require.True(t, ok)
	require.Equal(t, graph.Weight(0), got)
}

// TestRankPotentialMatchesNoPotential checks that wiring a real CH
// potential through the rank adapter yields the same answer as the
// zero-heuristic baseline (testable property 4's cross-variant
// agreement, specialized to A*-Core-CH-CSP vs Core-CH-CSP).
func TestRankPotentialMatchesNoPotential(t *testing.T) {
	g := s2Graph(t)
	h := identityHierarchy(t, g)
	core := bitset.New(5)
	core.Set(3)
	park := parkingSet(t, 5, 2, 3)

	potFw, err := ch.NewPotential(h)
	require.NoError(t, err)
	potBw, err := ch.NewPotential(h)
	require.NoError(t, err)
	rankFw := cspcorech.NewRankPotential(potFw, h)
	rankBw := cspcorech.NewRankPotential(potBw, h)

	q, err := cspcorech.NewBidirectionalQuery(h, core, park, rankFw, rankBw)
	require.NoError(t, err)
	require.NoError(t, q.SetRestriction(csp.Restriction{MaxDrivingTime: 6, PauseTime: 0}))
	require.NoError(t, q.Init(0, 4))
	got, ok := q.DistQuery()
	require.True(t, ok)
	require.Equal(t, graph.Weight(7), got)
}

// TestCurrentBestPathReconstructs checks that CurrentBestPath returns a
// path from s to t whose last step's total matches DistQuery's result.
func TestCurrentBestPathReconstructs(t *testing.T) {
	g := s2Graph(t)
	h := identityHierarchy(t, g)
	core := bitset.New(5)
	park := parkingSet(t, 5, 2, 3)

	q, err := cspcorech.NewBidirectionalQuery(h, core, park, csp.NoPotential{}, csp.NoPotential{})
	require.NoError(t, err)
	require.NoError(t, q.SetRestriction(csp.Restriction{MaxDrivingTime: 6, PauseTime: 0}))
	require.NoError(t, q.Init(0, 4))
	dist, ok := q.DistQuery()
	require.True(t, ok)

	steps, err := q.CurrentBestPath()
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	require.Equal(t, graph.NodeId(0), steps[0].Node)
	require.Equal(t, graph.NodeId(4), steps[len(steps)-1].Node)
	require.Equal(t, dist, steps[len(steps)-1].Dist[0])
}

// TestRankIndexTranslatesOriginalSpace checks RankIndex directly against
// a non-identity permutation.
func TestRankIndexTranslatesOriginalSpace(t *testing.T) {
	orig := bitset.New(4)
	orig.Set(0)
	orig.Set(3)
	rank := []int32{3, 2, 1, 0} // node i has rank 3-i
	out := cspcorech.RankIndex(orig, rank)
	require.True(t, out.Test(3)) // orig node 0 -> rank 3
	require.True(t, out.Test(0)) // orig node 3 -> rank 0
	require.False(t, out.Test(1))
	require.False(t, out.Test(2))
}
