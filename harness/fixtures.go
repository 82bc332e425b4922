package harness

import (
	"github.com/tachygraph/hgvroute/bitset"
	"github.com/tachygraph/hgvroute/graph"
)

// Scenario is one named, fully self-contained CSP fixture: a graph in CSR
// form, its parking set, and an endpoint pair, reused by this package's own
// tests and available for any other package's tests to import directly.
type Scenario struct {
	Name     string
	FirstOut []int32
	Head     []graph.NodeId
	Weight   []graph.Weight
	Parking  []int
	S, T     graph.NodeId
}

// Graph builds the scenario's graph.
func (sc Scenario) Graph() (*graph.Graph, error) {
	return graph.New(sc.FirstOut, sc.Head, sc.Weight)
}

// ParkingSet builds the scenario's parking bitset, sized to its own node
// count (len(FirstOut)-1).
func (sc Scenario) ParkingSet() *bitset.BitSet {
	n := len(sc.FirstOut) - 1
	bs := bitset.New(n)
	for _, v := range sc.Parking {
		bs.Set(v)
	}
	return bs
}

// S1 "Simple": no restriction, unrestricted CSP-1 must agree with the
// plain scalar shortest path; with D=5, B=0 the route becomes infeasible.
var S1 = Scenario{
	Name:     "S1 Simple",
	FirstOut: []int32{0, 1, 2, 3, 5},
	Head:     []graph.NodeId{1, 2, 3, 0, 1},
	Weight:   []graph.Weight{2, 3, 3, 1, 5},
	Parking:  nil,
	S:        2,
	T:        1,
}

// S2 "Shortest path breaks constraint": the unrestricted shortest path
// (0,1,2,4, cost 7) reaches parking node 2 after 5 units of driving. With
// D=5 it is infeasible and the route detours via parking node 3; with D=6
// it stays optimal, with the break taken at 2.
var S2 = Scenario{
	Name:     "S2 Shortest path breaks constraint",
	FirstOut: []int32{0, 1, 3, 4, 5, 5},
	Head:     []graph.NodeId{1, 2, 3, 4, 4},
	Weight:   []graph.Weight{1, 4, 3, 2, 4},
	Parking:  []int{2, 3},
	S:        0,
	T:        4,
}

// S3 "Loop required to fulfill constraint": the only way to satisfy some
// restrictions is to double back through the parking node at 2.
var S3 = Scenario{
	Name:     "S3 Loop required to fulfill constraint",
	FirstOut: []int32{0, 1, 3, 4, 4},
	Head:     []graph.NodeId{1, 2, 3, 1},
	Weight:   []graph.Weight{2, 1, 3, 1},
	Parking:  []int{2},
	S:        0,
	T:        3,
}

// S4 "Ignore parking when restriction loose": with a generous pause
// budget, the unrestricted shortest path remains optimal even though it
// passes through parking.
var S4 = Scenario{
	Name:     "S4 Ignore parking when restriction loose",
	FirstOut: []int32{0, 1, 3, 4, 5, 5},
	Head:     []graph.NodeId{1, 2, 3, 4, 4},
	Weight:   []graph.Weight{1, 3, 1, 3, 1},
	Parking:  []int{2, 3},
	S:        0,
	T:        4,
}

// S5 "No path fulfills constraint": every route from s to t exceeds the
// restriction and no parking node offers a way out.
var S5 = Scenario{
	Name:     "S5 No path fulfills constraint",
	FirstOut: []int32{0, 1, 2, 2},
	Head:     []graph.NodeId{1, 2},
	Weight:   []graph.Weight{1, 5},
	Parking:  []int{1},
	S:        0,
	T:        2,
}

// S6 "Two-restriction degeneration" reuses S2's graph: with the short and
// long restrictions set equal, CSP-2 must degenerate to CSP-1.
var S6 = S2

// Scenarios lists every named fixture, in spec order.
var Scenarios = []Scenario{S1, S2, S3, S4, S5, S6}
