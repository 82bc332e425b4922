// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. ExpandIsland finds the minimum-cost path of water-to-land conversions
// connecting two components identified by ConnectedComponents.
package gridgraph

// ExpandIsland computes a minimal-cost path connecting any cell of the
// srcCompIdx-th component to any cell of the dstCompIdx-th component, where
// components are those returned by ConnectedComponents(). Moving into a land
// cell (value >= LandThreshold) costs 0; moving into a water cell costs 1.
// Returns the sequence of flat cell indices along the shortest path
// (including both endpoints) and its total cost.
// Returns ErrComponentIndex if either index is out of range, ErrNoPath if no
// water-cell conversion path connects the two components.
// O(W×H×d) time, O(W×H) memory.
func (gg *GridGraph) ExpandIsland(srcCompIdx, dstCompIdx int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcCompIdx < 0 || srcCompIdx >= len(comps) || dstCompIdx < 0 || dstCompIdx >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	src := comps[srcCompIdx]
	dst := comps[dstCompIdx]

	N := gg.Width * gg.Height
	dstSet := make(map[int]struct{}, len(dst))
	for _, idx := range dst {
		dstSet[idx] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// Custom deque for 0-1 BFS.
	capDeque := N + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	for _, idx := range src {
		dist[idx] = 0
		head = (head - 1 + capDeque) % capDeque
		deque[head] = idx
	}

	offsets := gg.NeighborOffsets()
	target := -1

	for head != tail {
		u := deque[head]
		head = (head + 1) % capDeque
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		x0, y0 := gg.Coordinate(u)
		for _, d := range offsets {
			nx, ny := x0+d[0], y0+d[1]
			if !gg.InBounds(nx, ny) {
				continue
			}
			v := gg.index(nx, ny)
			step := 0
			if gg.CellValues[ny][nx] < gg.LandThreshold {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = v
				} else {
					deque[tail] = v
					tail = (tail + 1) % capDeque
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}

	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}
	cost = dist[target]

	return path, cost, nil
}
