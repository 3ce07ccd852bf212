package paths

import "github.com/compviz/nodegraph/graphview"

// Centrality computes approximate betweenness centrality over the working
// set: for every unordered pair (a, b) taken in working-set order, every
// node interior to a minimal a→b path earns 1/len(minimal paths); scores
// are normalized by the maximum observed (all zero when no paths exist).
//
// Only forward-direction shortest paths are considered, so a pair with no
// directed route contributes nothing even when structurally close.
//
// Time: O(V² · pathwork) — intended for graphs of a few hundred nodes.
func Centrality(v graphview.View, nodes []graphview.NodeID) (map[graphview.NodeID]float64, error) {
	if v == nil {
		return nil, ErrViewNil
	}

	scores := make(map[graphview.NodeID]float64, len(nodes))
	ids := make([]graphview.NodeID, 0, len(nodes))
	for _, id := range nodes {
		if _, dup := scores[id]; dup || !v.HasNode(id) {
			continue
		}
		scores[id] = 0
		ids = append(ids, id)
	}

	for i, a := range ids {
		for _, b := range ids[i+1:] {
			minimal, err := ShortestPaths(v, a, b, nodes)
			if err != nil {
				return nil, err
			}
			if len(minimal) == 0 {
				continue
			}
			share := 1.0 / float64(len(minimal))
			for _, path := range minimal {
				for _, node := range path[1 : len(path)-1] {
					scores[node] += share
				}
			}
		}
	}

	// Normalize by the maximum observed score.
	var max float64
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max > 0 {
		for id := range scores {
			scores[id] /= max
		}
	}

	return scores, nil
}
