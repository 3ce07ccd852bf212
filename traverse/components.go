package traverse

import "github.com/compviz/nodegraph/graphview"

// Island returns the full connected component containing start, treating
// every edge as undirected and ignoring any working-set restriction.
// The start node is included — an island is a node set, not a traversal.
//
// Time: O(V + E) over the component. Memory: O(V).
func Island(v graphview.View, start graphview.NodeID) ([]graphview.NodeID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	if !v.HasNode(start) {
		return nil, ErrStartNotFound
	}

	island := []graphview.NodeID{start}
	seen := map[graphview.NodeID]bool{start: true}
	for qi := 0; qi < len(island); qi++ {
		for _, nbr := range neighbors(v, island[qi], Both) {
			if !seen[nbr] {
				seen[nbr] = true
				island = append(island, nbr)
			}
		}
	}

	return island, nil
}

// Components partitions nodes into islands, restricted to edges whose both
// endpoints lie in nodes. Unknown IDs are ignored. Component order follows
// the first member's position in nodes; membership order is BFS order.
//
// Time: O(V + E) over the working set. Memory: O(V).
func Components(v graphview.View, nodes []graphview.NodeID) ([][]graphview.NodeID, error) {
	if v == nil {
		return nil, ErrViewNil
	}

	inSet := make(map[graphview.NodeID]bool, len(nodes))
	for _, id := range nodes {
		if v.HasNode(id) {
			inSet[id] = true
		}
	}

	seen := make(map[graphview.NodeID]bool, len(inSet))
	var comps [][]graphview.NodeID
	for _, id := range nodes {
		if !inSet[id] || seen[id] {
			continue
		}
		comp := []graphview.NodeID{id}
		seen[id] = true
		for qi := 0; qi < len(comp); qi++ {
			for _, nbr := range neighbors(v, comp[qi], Both) {
				if inSet[nbr] && !seen[nbr] {
					seen[nbr] = true
					comp = append(comp, nbr)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
