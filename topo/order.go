package topo

import (
	"sort"

	"github.com/compviz/nodegraph/graphview"
)

// DependencyDepths computes, for every working-set node, the length of the
// longest in-set predecessor chain reaching it (0 for roots). Memoized, so
// each node and edge is resolved once; back-edges on the exploration stack
// contribute 0, keeping cyclic input non-fatal.
func DependencyDepths(v graphview.View, nodes []graphview.NodeID) (map[graphview.NodeID]int, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	inSet := workingSet(v, nodes)

	depth := make(map[graphview.NodeID]int, len(inSet))
	state := make(map[graphview.NodeID]int, len(inSet))

	for _, root := range nodes {
		if !inSet[root] || state[root] != white {
			continue
		}
		resolveDepth(v, root, inSet, state, depth)
	}

	return depth, nil
}

// resolveDepth runs an explicit-stack post-order walk: a node is finalized
// only after its predecessors, taking 1 + max over finalized predecessors.
func resolveDepth(
	v graphview.View,
	root graphview.NodeID,
	inSet map[graphview.NodeID]bool,
	state map[graphview.NodeID]int,
	depth map[graphview.NodeID]int,
) {
	stack := []graphview.NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		switch state[id] {
		case white:
			state[id] = gray
			for _, pred := range predecessors(v, id, inSet) {
				if state[pred] == white {
					stack = append(stack, pred)
				}
			}
		case gray:
			best := 0
			for _, pred := range predecessors(v, id, inSet) {
				// Gray predecessors are back-edges of a cycle: worth 0.
				if state[pred] == black && depth[pred]+1 > best {
					best = depth[pred] + 1
				}
			}
			depth[id] = best
			state[id] = black
			stack = stack[:len(stack)-1]
		default:
			stack = stack[:len(stack)-1]
		}
	}
}

// ExecutionOrder produces the order nodes should be processed in: a
// topological sort grouped by dependency depth, each depth group sorted by
// position (ascending Y, then X) as a deterministic tie-break, groups
// concatenated shallow to deep. The Cyclic flag carries over from Sort.
func ExecutionOrder(v graphview.View, nodes []graphview.NodeID) (*SortResult, error) {
	sorted, err := Sort(v, nodes)
	if err != nil {
		return nil, err
	}
	depth, err := DependencyDepths(v, nodes)
	if err != nil {
		return nil, err
	}

	groups := make(map[int][]graphview.NodeID)
	maxDepth := 0
	for _, id := range sorted.Order {
		d := depth[id]
		groups[d] = append(groups[d], id)
		if d > maxDepth {
			maxDepth = d
		}
	}

	ordered := make([]graphview.NodeID, 0, len(sorted.Order))
	for d := 0; d <= maxDepth; d++ {
		group := groups[d]
		sort.SliceStable(group, func(i, j int) bool {
			pi, pj := v.Position(group[i]), v.Position(group[j])
			if pi.Y != pj.Y {
				return pi.Y < pj.Y
			}

			return pi.X < pj.X
		})
		ordered = append(ordered, group...)
	}

	return &SortResult{Order: ordered, Cyclic: sorted.Cyclic, Unsorted: sorted.Unsorted}, nil
}
