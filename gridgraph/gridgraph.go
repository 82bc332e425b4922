// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.Graph
//   - Identification of connected components of “land” cells
//   - Shortest-path expansions between components
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"github.com/tachygraph/hgvroute/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	offsets := make([][2]int, 0, 8)
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		ParkingEvery:    opts.ParkingEvery,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D is a convenience constructor equivalent to
// NewGridGraph(values, GridOptions{LandThreshold: 1, Conn: conn}): default
// land threshold, no parking cells, caller-chosen connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// neighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// vertexID formats the unique vertex identifier for cell (x,y).
// Used when converting to a core.Graph.
func (gg *GridGraph) vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// travelTime returns the road segment travel time for entering cell
// (x,y): the cell's own value, floored at 1 so every arc carries a
// positive cost regardless of how low LandThreshold is set.
func (gg *GridGraph) travelTime(x, y int) int64 {
	if v := gg.CellValues[y][x]; v > 1 {
		return int64(v)
	}
	return 1
}

// isParking reports whether (x,y), given its row-major land-cell rank,
// falls on a ParkingEvery boundary. ParkingEvery <= 0 disables parking.
func (gg *GridGraph) isParking(landRank int) bool {
	return gg.ParkingEvery > 0 && landRank%gg.ParkingEvery == 0
}

// ToCoreGraph converts the GridGraph into a weighted, undirected *core.Graph
// representing a road network: land cells become vertices, edges between
// neighboring land cells (per gg.Conn) carry a travel time derived from the
// destination cell's value, and every ParkingEvery-th land cell (row-major
// order) is flagged as a parking location via Metadata["parking"].
// Water cells (value < LandThreshold) are not part of the network.
// Complexity: O(W×H×d + E) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())

	isLand := func(x, y int) bool { return gg.CellValues[y][x] >= gg.LandThreshold }

	// Add land vertices, tracking row-major land rank for parking placement.
	landRank := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !isLand(x, y) {
				continue
			}
			id := gg.vertexID(x, y)
			_ = g.AddVertex(id)
			landRank++
		}
	}

	verts := g.InternalVertices()
	landRank = 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !isLand(x, y) {
				continue
			}
			id := gg.vertexID(x, y)
			v := verts[id]
			v.Metadata["x"] = x
			v.Metadata["y"] = y
			v.Metadata["value"] = gg.CellValues[y][x]
			if gg.isParking(landRank) {
				v.SetParking(true)
			}
			landRank++
		}
	}

	// Add edges between neighboring land cells.
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !isLand(x, y) {
				continue
			}
			uID := gg.vertexID(x, y)
			for _, d := range gg.NeighborOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || !isLand(nx, ny) {
					continue
				}
				vID := gg.vertexID(nx, ny)
				_, _ = g.AddEdge(uID, vID, gg.travelTime(nx, ny))
			}
		}
	}

	return g
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
