// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. ConnectedComponents identifies contiguous regions (“islands”) of
// cells sharing the same value, among cells at or above LandThreshold.
package gridgraph

import "sort"

// ConnectedComponents returns every connected component of land cells
// (value >= LandThreshold). A component is a maximal set of land cells of
// equal value reachable from one another through gg.Conn adjacency — two
// adjacent land cells of different values belong to different components.
// Each component is a slice of row-major flat cell indices (see
// GridGraph.index / GridGraph.Coordinate), sorted ascending; components
// are returned in the row-major order each was first visited. Components
// are indexed into by ExpandIsland.
//
// Complexity: O(W×H×d) time, Memory: O(W×H), where d = number of neighbors (4 or 8).
func (gg *GridGraph) ConnectedComponents() [][]int {
	// Early exit for empty grid
	if gg.Width == 0 || gg.Height == 0 {
		return nil
	}

	total := gg.Width * gg.Height
	visited := make([]bool, total)
	var components [][]int
	offsets := gg.NeighborOffsets()

	// Traverse every cell
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			value := gg.CellValues[y][x]
			if value < gg.LandThreshold {
				continue // water
			}
			startIdx := gg.index(x, y)
			if visited[startIdx] {
				continue
			}
			// BFS to collect one component of same-value land cells
			queue := []int{startIdx}
			visited[startIdx] = true

			for qi := 0; qi < len(queue); qi++ {
				idx := queue[qi]
				x0, y0 := gg.Coordinate(idx)

				// Explore neighbors sharing this component's value
				for _, d := range offsets {
					nx, ny := x0+d[0], y0+d[1]
					if !gg.InBounds(nx, ny) {
						continue
					}
					if gg.CellValues[ny][nx] != value {
						continue
					}
					nIdx := gg.index(nx, ny)
					if !visited[nIdx] {
						visited[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}

			sort.Ints(queue)
			components = append(components, queue)
		}
	}

	return components
}
