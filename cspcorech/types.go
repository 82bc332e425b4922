package cspcorech

import (
	"errors"

	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/ch"
	"github.com/tachygraph/hgvroute/graph"
)

// Sentinel errors returned by this package.
var (
	ErrNilHierarchy   = errors.New("cspcorech: hierarchy is nil")
	ErrNilCoreSet     = errors.New("cspcorech: core bitset is nil")
	ErrNilParkingSet  = errors.New("cspcorech: parking bitset is nil")
	ErrBadRestriction = errors.New("cspcorech: pause time must be non-negative, max driving time must be positive")
	ErrNoQueryRun     = errors.New("cspcorech: path requested before a successful query")
)

// RankIndex re-indexes a bitset given in original node-id space into rank
// space, using the same rank permutation a Hierarchy carries. Callers
// typically hold a parking set produced by compile.Compile (original
// space); NewBidirectionalQuery uses this to translate it once at
// construction time.
func RankIndex(orig *bitset.BitSet, rank []int32) *bitset.BitSet {
	out := bitset.New(len(rank))
	for origID, r := range rank {
		if orig.Test(origID) {
			out.Set(int(r))
		}
	}
	return out
}

// RankPotential adapts a *ch.Potential — which is keyed by original node
// id and re-ranks internally — to operate directly in rank space, the
// space a Core-CH search's own Up/Down graphs are indexed in. Passing a
// rank straight into ch.Potential.Potential would silently re-rank an
// already-ranked value; this adapter translates rank to original via
// h.Order before delegating.
type RankPotential struct {
	pot *ch.Potential
	h   *ch.Hierarchy
}

// NewRankPotential wraps pot for use over h's rank space.
func NewRankPotential(pot *ch.Potential, h *ch.Hierarchy) *RankPotential {
	return &RankPotential{pot: pot, h: h}
}

// Potential returns h(rv, target): rv and the return value are both
// admissible lower bounds expressed over rank space, but the underlying
// computation is delegated to ch.Potential in original-node space.
func (rp *RankPotential) Potential(rv graph.NodeId) graph.Weight {
	orig := graph.NodeId(rp.h.Order[rv])
	return rp.pot.Potential(orig)
}

// InitNewTarget retargets the underlying potential at the original node
// corresponding to rank rt.
func (rp *RankPotential) InitNewTarget(rt graph.NodeId) error {
	orig := graph.NodeId(rp.h.Order[rt])
	return rp.pot.InitNewTarget(orig)
}
