package topo

import "github.com/compviz/nodegraph/graphview"

// Roots returns the working-set nodes with no in-set predecessor, in
// working-set order. Nodes fed only from outside the set count as roots.
func Roots(v graphview.View, nodes []graphview.NodeID) ([]graphview.NodeID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	inSet := workingSet(v, nodes)

	var roots []graphview.NodeID
	for _, id := range nodes {
		if inSet[id] && len(predecessors(v, id, inSet)) == 0 {
			roots = append(roots, id)
		}
	}

	return roots, nil
}

// CriticalPath returns the longest node chain (by edge count) through the
// working set: a longest-path DFS from every root, keeping the single
// longest path overall. Ties keep the first path found.
func CriticalPath(v graphview.View, nodes []graphview.NodeID) ([]graphview.NodeID, error) {
	roots, err := Roots(v, nodes)
	if err != nil {
		return nil, err
	}
	inSet := workingSet(v, nodes)

	var longest []graphview.NodeID
	for _, root := range roots {
		if path := longestFrom(v, root, inSet); len(path) > len(longest) {
			longest = path
		}
	}

	return longest, nil
}

// LongestPathFrom returns the longest downstream chain starting at root,
// restricted to nodes. Unknown or out-of-set roots yield nil.
func LongestPathFrom(v graphview.View, root graphview.NodeID, nodes []graphview.NodeID) ([]graphview.NodeID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	inSet := workingSet(v, nodes)
	if !inSet[root] {
		return nil, nil
	}

	return longestFrom(v, root, inSet), nil
}

// longestFrom searches depth-first with a per-branch copy of the visited
// set. A shared visited set would undercount diamond patterns where a node
// is reachable via multiple branches, so every branch explores its own
// view of the graph. Exponential in the worst case; see the package doc.
func longestFrom(v graphview.View, root graphview.NodeID, inSet map[graphview.NodeID]bool) []graphview.NodeID {
	var longest []graphview.NodeID

	var walk func(cur graphview.NodeID, path []graphview.NodeID, visited map[graphview.NodeID]bool)
	walk = func(cur graphview.NodeID, path []graphview.NodeID, visited map[graphview.NodeID]bool) {
		branch := make([]graphview.NodeID, len(path), len(path)+1)
		copy(branch, path)
		branch = append(branch, cur)
		if len(branch) > len(longest) {
			longest = branch
		}
		visited[cur] = true

		for _, dep := range dependents(v, cur, inSet) {
			if visited[dep] {
				continue
			}
			branchVisited := make(map[graphview.NodeID]bool, len(visited)+1)
			for id := range visited {
				branchVisited[id] = true
			}
			walk(dep, branch, branchVisited)
		}
	}
	walk(root, nil, make(map[graphview.NodeID]bool))

	return longest
}
