package compile

import (
	"errors"

	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/core"
	"github.com/tachygraph/hgvroute/graph"
)

// ParkingMetadataKey re-exports core.ParkingMetadataKey so existing
// callers of this package need not import core just to name it.
const ParkingMetadataKey = core.ParkingMetadataKey

// Sentinel errors returned by Compile.
var (
	ErrNilGraph      = errors.New("compile: staged graph is nil")
	ErrUnknownVertex = errors.New("compile: vertex not found in compiled result")
)

// Result is the frozen, CSR-addressable form of a staged core.Graph.
//
// Graph is what csp/ch/cspcorech search over. Parking marks which CSR
// node ids are parking locations, the set csp's ParkingSet parameter
// expects. NodeID/VertexID translate between the staging graph's string
// vertex ids and the compiled graph's integer node ids, for callers that
// build queries by name and want results back by name.
type Result struct {
	Graph   *graph.Graph
	Parking *bitset.BitSet

	ids     []string       // ids[nodeID] = original vertex id
	indexOf map[string]int // indexOf[vertex id] = nodeID
}

// NodeID returns the compiled node id for a staged vertex id.
func (r *Result) NodeID(vertexID string) (graph.NodeId, bool) {
	idx, ok := r.indexOf[vertexID]
	if !ok {
		return graph.InvalidNode, false
	}
	return graph.NodeId(idx), true
}

// VertexID returns the staged vertex id a compiled node id came from.
func (r *Result) VertexID(id graph.NodeId) (string, error) {
	if int(id) < 0 || int(id) >= len(r.ids) {
		return "", ErrUnknownVertex
	}
	return r.ids[id], nil
}
