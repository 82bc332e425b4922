package dijkstra_test

import (
	"fmt"

	"github.com/tachygraph/hgvroute/dijkstra"
	"github.com/tachygraph/hgvroute/graph"
)

func ExampleQuery_DistQuery() {
	g, _ := graph.New(
		[]int32{0, 1, 2, 3, 5},
		[]graph.NodeId{1, 2, 3, 0, 1},
		[]graph.Weight{2, 3, 3, 1, 5},
	)
	q, _ := dijkstra.NewQuery(g)
	_ = q.InitNewSource(2)
	d, ok := q.DistQuery(1)
	fmt.Println(d, ok)
	// Output: 6 true
}
