// Package compile converts a staged core.Graph into the immutable CSR
// graph.Graph the routing engine searches over, plus a bitset marking
// which nodes are parking locations.
//
// core.Graph is the mutable, string-keyed graph used to assemble a named
// road network by hand or with builder/gridgraph generators. Once assembly
// is done, Compile freezes it: vertex ids are assigned CSR node ids 0..n-1
// in core.Graph.Vertices()'s sorted order (the same deterministic order
// core already guarantees), edges become forward-star arcs, and any vertex
// whose Metadata["parking"] is true is recorded in the returned parking
// set.
package compile
