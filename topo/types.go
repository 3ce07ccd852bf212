package topo

import (
	"errors"

	"github.com/compviz/nodegraph/graphview"
)

// ErrViewNil is returned if a nil view is passed.
var ErrViewNil = errors.New("topo: view is nil")

// Node visitation states for cycle-detecting DFS.
const (
	white = iota // not yet visited
	gray         // on the exploration stack
	black        // fully explored
)

// SortResult is a best-effort topological ordering.
type SortResult struct {
	// Order lists every working-set node. For acyclic input each edge's
	// source precedes its target; nodes trapped in cycles are appended in
	// working-set encounter order.
	Order []graphview.NodeID

	// Cyclic is set when at least one node could not be properly sorted.
	Cyclic bool

	// Unsorted counts the nodes appended after cycle detection.
	Unsorted int
}

// workingSet returns the membership map of nodes known to v,
// preserving nothing but membership — callers keep using the slice
// wherever encounter order matters.
func workingSet(v graphview.View, nodes []graphview.NodeID) map[graphview.NodeID]bool {
	set := make(map[graphview.NodeID]bool, len(nodes))
	for _, id := range nodes {
		if v.HasNode(id) {
			set[id] = true
		}
	}

	return set
}

// predecessors returns the distinct in-set sources occupying id's input
// slots, in slot order.
func predecessors(v graphview.View, id graphview.NodeID, inSet map[graphview.NodeID]bool) []graphview.NodeID {
	var preds []graphview.NodeID
	seen := make(map[graphview.NodeID]bool)
	for i, n := 0, v.InputCount(id); i < n; i++ {
		src, ok := v.Input(id, i)
		if !ok || !inSet[src] || seen[src] {
			continue
		}
		seen[src] = true
		preds = append(preds, src)
	}

	return preds
}

// dependents returns id's in-set dependents in host order.
func dependents(v graphview.View, id graphview.NodeID, inSet map[graphview.NodeID]bool) []graphview.NodeID {
	var deps []graphview.NodeID
	for _, dep := range v.Dependents(id) {
		if inSet[dep] {
			deps = append(deps, dep)
		}
	}

	return deps
}
