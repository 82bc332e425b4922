// Package csp implements the multi-restriction label-setting search (C9):
// the central algorithm of this repository. A query explores vector-valued
// distance labels — total time plus one or two "time since last break"
// counters — under Pareto dominance, inserting a break candidate whenever
// a parking node is reached, and converts each label's vector distance
// into a scalar admissible priority (optionally sharpened by a CH
// potential) to drive a single xheap.Heap queue keyed by node id.
//
// OneRestrictionQuery implements CSP-1 (a single driving-time restriction,
// Dist1 labels); TwoRestrictionQuery implements CSP-2 (two nested
// restrictions — a short break and a long break — Dist2 labels). Both
// accept a PotentialFunc: ch's CH potential for the A*-accelerated
// variants, or NoPotential for the plain label-setting search.
//
// BidirectionalQuery runs the CSP-1 search from both ends at once, with
// a backward lower-bound pruning refinement, joining at a meeting node
// only when the combined break counters remain feasible — a break-counter
// feasibility check the distilled reference implementation's equivalent
// omits; this package follows the governing specification, which requires
// it explicitly.
package csp
