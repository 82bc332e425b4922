// File: parking_test.go
package builder_test

import (
	"testing"

	"github.com/tachygraph/hgvroute/builder"
)

// TestBuildGraph_WithParkingEvery verifies that WithParkingEvery(n) flags
// every nth vertex, in Vertices()'s lexical order, via Metadata["parking"].
func TestBuildGraph_WithParkingEvery(t *testing.T) {
	g, err := builder.BuildGraph(
		nil,
		[]builder.BuilderOption{builder.WithParkingEvery(2)},
		builder.Path(5),
	)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	verts := g.InternalVertices()
	ids := sortedVertices(g)
	if len(ids) != 5 {
		t.Fatalf("got %d vertices; want 5", len(ids))
	}

	for i, id := range ids {
		want := i%2 == 0
		got := verts[id].IsParking()
		if got != want {
			t.Errorf("vertex %q (rank %d): parking=%v; want %v", id, i, got, want)
		}
	}
}

// TestBuildGraph_NoParkingByDefault verifies that omitting WithParkingEvery
// leaves every vertex unflagged.
func TestBuildGraph_NoParkingByDefault(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	for _, v := range g.InternalVertices() {
		if v.IsParking() {
			t.Errorf("vertex %q unexpectedly flagged as parking", v.ID)
		}
	}
}
