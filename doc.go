// Package hgvroute is a shortest-path engine for heavy-goods-vehicle
// routing under mandatory driver-break regulations.
//
// Given a directed weighted road network, a set of parking nodes where a
// break may be taken, and one or two driving-time restrictions (maximum
// consecutive driving time before a break, and the break duration), the
// engine answers point-to-point queries with the minimum total travel
// time including inserted breaks.
//
// Subpackages, roughly leaf to root:
//
//	bitset/    — fixed-size bit vectors (parking set, core predicate)
//	xheap/     — 4-ary index-addressable min-heap
//	tsvector/  — lazy-reset timestamped vectors
//	label/     — per-node Pareto label sets
//	graph/     — CSR forward-star graph storage
//	dijkstra/  — scalar one-to-one shortest paths
//	ch/        — contraction hierarchy bidirectional search and potential
//	corech/    — core-CH bidirectional search
//	csp/       — multi-restriction (CSP-1/CSP-2) label-setting search
//	cspcorech/ — CSP over core-CH with CH potential
//	compile/   — staging graph -> CSR graph compilation
//	harness/   — cross-variant conformance checks
//
// core/, builder/ and gridgraph/ remain the construction-time staging
// layer: they assemble named, parking-annotated road networks that
// compile/ then turns into the CSR graphs the query engine consumes.
//
//	go get github.com/tachygraph/hgvroute
package hgvroute
