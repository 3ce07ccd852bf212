package topo

import "github.com/compviz/nodegraph/graphview"

// cycleFrame is one node on the exploration stack together with its
// remaining dependent edges.
type cycleFrame struct {
	id   graphview.NodeID
	deps []graphview.NodeID
	next int
}

// Cycles enumerates cycles among nodes by depth-first search with an
// on-stack marker set: hitting a gray dependent reconstructs the cycle by
// walking parent pointers back to that ancestor, then reversing.
//
// The search restarts from every unvisited node, so disjoint cycles are all
// found; within one DFS tree at most one cycle is recorded. Each cycle is
// reported once, without repeating its first node. The walk uses an
// explicit stack, so deep graphs cannot exhaust the call stack.
func Cycles(v graphview.View, nodes []graphview.NodeID) ([][]graphview.NodeID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	inSet := workingSet(v, nodes)

	state := make(map[graphview.NodeID]int, len(inSet))
	var cycles [][]graphview.NodeID

	for _, root := range nodes {
		if !inSet[root] || state[root] != white {
			continue
		}
		parent := make(map[graphview.NodeID]graphview.NodeID)
		if cycle := huntCycle(v, root, inSet, state, parent); cycle != nil {
			cycles = append(cycles, cycle)
		}
	}

	return cycles, nil
}

// huntCycle explores one DFS tree from root and returns the first cycle
// found, or nil. Nodes it touched stay marked so later roots skip them.
func huntCycle(
	v graphview.View,
	root graphview.NodeID,
	inSet map[graphview.NodeID]bool,
	state map[graphview.NodeID]int,
	parent map[graphview.NodeID]graphview.NodeID,
) []graphview.NodeID {
	state[root] = gray
	stack := []cycleFrame{{id: root, deps: dependents(v, root, inSet)}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(f.deps) {
			state[f.id] = black
			stack = stack[:len(stack)-1]
			continue
		}
		dep := f.deps[f.next]
		f.next++

		switch state[dep] {
		case white:
			parent[dep] = f.id
			state[dep] = gray
			stack = append(stack, cycleFrame{id: dep, deps: dependents(v, dep, inSet)})
		case gray:
			// Back-edge: rebuild the cycle from the current node back to
			// the on-stack ancestor, then reverse into edge order.
			var cycle []graphview.NodeID
			for cur := f.id; cur != dep; cur = parent[cur] {
				cycle = append(cycle, cur)
			}
			cycle = append(cycle, dep)
			for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
				cycle[i], cycle[j] = cycle[j], cycle[i]
			}

			return cycle
		}
	}

	return nil
}
