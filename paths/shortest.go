package paths

import "github.com/compviz/nodegraph/graphview"

// ShortestPaths collects every minimal-length path from start to end over
// forward (dependent) edges, restricted to the working set in nodes.
//
// The search is synchronized by layer: a node admits extensions from all
// same-depth predecessors, so parallel minimal routes through shared
// nodes are all enumerated. The search stops at the layer where end first
// appears; no longer paths are produced. Returns an empty slice when end
// is unreachable.
func ShortestPaths(v graphview.View, start, end graphview.NodeID, nodes []graphview.NodeID) ([][]graphview.NodeID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	if !v.HasNode(start) || !v.HasNode(end) {
		return nil, ErrNodeNotFound
	}
	if start == end {
		return [][]graphview.NodeID{{start}}, nil
	}

	inSet := make(map[graphview.NodeID]bool, len(nodes))
	for _, id := range nodes {
		if v.HasNode(id) {
			inSet[id] = true
		}
	}

	frontier := [][]graphview.NodeID{{start}}
	firstSeen := map[graphview.NodeID]int{start: 0}
	var found [][]graphview.NodeID

	for depth := 1; len(frontier) > 0; depth++ {
		var next [][]graphview.NodeID
		for _, path := range frontier {
			cur := path[len(path)-1]
			for _, dep := range forwardInSet(v, cur, inSet) {
				if dep == end {
					found = append(found, extend(path, dep))
					continue
				}
				if seenAt, seen := firstSeen[dep]; seen {
					if seenAt != depth {
						continue // reached earlier: a shorter route owns it
					}
				} else {
					firstSeen[dep] = depth
				}
				next = append(next, extend(path, dep))
			}
		}
		if len(found) > 0 {
			break // the minimal layer is complete; longer paths are moot
		}
		frontier = next
	}

	return found, nil
}
