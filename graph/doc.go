// Package graph implements a compressed sparse row (CSR) forward-star
// representation of a directed, non-negatively weighted road network.
//
// A Graph stores n nodes numbered 0..n-1 and m arcs as three parallel
// slices: FirstOut (length n+1), Head and Weight (length m each).
// Arc i of node v's outgoing star lives at index FirstOut[v]+i, with
// destination Head[FirstOut[v]+i] and cost Weight[FirstOut[v]+i].
//
// Complexity:
//
//	– Space: O(n + m), three flat slices, no per-node allocation.
//	– Outgoing iteration at v: O(out-degree(v)).
//	– Reverse(): O(n + m), one counting-sort pass.
//
// This layout is the layout every search in this repository (dijkstra,
// ch, corech, csp, cspcorech) consumes; it is built once, by Compile, from
// the mutable staging graph in package core, and never mutated afterward.
package graph
