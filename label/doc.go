// Package label implements the per-node Pareto label set used by the
// multi-restriction label-setting search: a mutable multiset of
// vector-valued distance labels, ordered by a scalar priority, supporting
// dominance-preserving insertion and settled-order iteration.
//
// A Set[D] is generic over the distance-tuple type D (csp's Dist1 for one
// restriction, Dist2 for two); callers supply the dominance predicate, so
// this package has no notion of what a distance tuple's components mean.
// Labels are never physically removed once created: insertion may mark an
// existing label dominated (excluding it from further consideration) but
// keeps it addressable, because an already-created successor label may
// still reference it as its predecessor for path reconstruction.
package label
