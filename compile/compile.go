package compile

import (
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/core"
	"github.com/tachygraph/hgvroute/graph"
)

// Compile freezes a staged core.Graph into a CSR graph.Graph and a
// parking bitset.
//
// Node ids are assigned in core.Graph.Vertices()'s sorted order, so two
// calls against graphs built with the same vertex ids in any insertion
// order produce identical CSR layouts. An edge with Directed == false
// becomes two arcs (From->To and To->From); Directed == true becomes
// one arc From->To — mirroring how core.Graph.AddEdge already threads
// undirected edges into both adjacency-list directions.
//
// Complexity: O(V log V + E log E) for the two deterministic orderings,
// O(V + E) for the CSR assembly.
func Compile(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices() // sorted asc, deterministic
	n := len(ids)
	indexOf := make(map[string]int, n)
	for i, id := range ids {
		indexOf[id] = i
	}

	edges := g.Edges() // sorted by Edge.ID asc, deterministic

	degree := make([]int32, n)
	for _, e := range edges {
		degree[indexOf[e.From]]++
		if !e.Directed && e.From != e.To {
			degree[indexOf[e.To]]++
		}
	}

	firstOut := make([]int32, n+1)
	for v := 0; v < n; v++ {
		firstOut[v+1] = firstOut[v] + degree[v]
	}

	m := int(firstOut[n])
	head := make([]graph.NodeId, m)
	weight := make([]graph.Weight, m)
	cursor := make([]int32, n)
	copy(cursor, firstOut[:n])

	place := func(fromIdx, toIdx int, w int64) {
		slot := cursor[fromIdx]
		cursor[fromIdx]++
		head[slot] = graph.NodeId(toIdx)
		weight[slot] = graph.Weight(w)
	}
	for _, e := range edges {
		fromIdx, toIdx := indexOf[e.From], indexOf[e.To]
		place(fromIdx, toIdx, e.Weight)
		if !e.Directed && e.From != e.To {
			place(toIdx, fromIdx, e.Weight)
		}
	}

	csr, err := graph.New(firstOut, head, weight)
	if err != nil {
		return nil, err
	}

	parking := bitset.New(n)
	verts := g.InternalVertices()
	for i, id := range ids {
		if v, ok := verts[id]; ok && v.IsParking() {
			parking.Set(i)
		}
	}

	return &Result{Graph: csr, Parking: parking, ids: ids, indexOf: indexOf}, nil
}
