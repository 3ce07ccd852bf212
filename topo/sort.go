package topo

import "github.com/compviz/nodegraph/graphview"

// Sort computes a topological ordering of nodes using Kahn's algorithm
// restricted to the working set: in-degree counts only distinct in-set
// predecessors, so nodes fed exclusively from outside the set are roots.
//
// Cycles are tolerated: nodes left unsorted are appended in working-set
// encounter order and SortResult.Cyclic is set. Unknown IDs are ignored.
func Sort(v graphview.View, nodes []graphview.NodeID) (*SortResult, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	inSet := workingSet(v, nodes)

	indegree := make(map[graphview.NodeID]int, len(inSet))
	for _, id := range nodes {
		if inSet[id] {
			indegree[id] = len(predecessors(v, id, inSet))
		}
	}

	// Seed with zero-in-degree nodes in working-set order for
	// deterministic output.
	queue := make([]graphview.NodeID, 0, len(inSet))
	for _, id := range nodes {
		if inSet[id] && indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	res := &SortResult{Order: make([]graphview.NodeID, 0, len(inSet))}
	sorted := make(map[graphview.NodeID]bool, len(inSet))
	for qi := 0; qi < len(queue); qi++ {
		id := queue[qi]
		res.Order = append(res.Order, id)
		sorted[id] = true
		for _, dep := range dependents(v, id, inSet) {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	// Anything left is trapped in a cycle; append it rather than fail.
	if len(res.Order) != len(inSet) {
		for _, id := range nodes {
			if inSet[id] && !sorted[id] {
				res.Order = append(res.Order, id)
				res.Unsorted++
			}
		}
		res.Cyclic = true
	}

	return res, nil
}
