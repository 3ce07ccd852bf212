package memgraph

import (
	"github.com/pkg/errors"

	"github.com/compviz/nodegraph/graphview"
)

// compile-time check: Graph satisfies the collaborator contract.
var _ graphview.View = (*Graph)(nil)

// HasNode reports whether id exists in the graph.
func (g *Graph) HasNode(id graphview.NodeID) bool {
	_, ok := g.nodes[id]

	return ok
}

// InputCount returns the number of input slots on id, or 0 for unknown nodes.
func (g *Graph) InputCount(id graphview.NodeID) int {
	rec, ok := g.nodes[id]
	if !ok {
		return 0
	}

	return len(rec.inputs)
}

// Input returns the occupant of slot index on id; ok is false when the slot
// is empty, out of range, or id is unknown.
func (g *Graph) Input(id graphview.NodeID, index int) (graphview.NodeID, bool) {
	rec, ok := g.nodes[id]
	if !ok || index < 0 || index >= len(rec.inputs) {
		return graphview.None, false
	}
	src := rec.inputs[index]

	return src, src != graphview.None
}

// SetInput assigns src to slot index on id (None clears the slot) and keeps
// dependent sets consistent: src gains id as a dependent, and the previous
// occupant loses id once no slot of id still holds it.
// Complexity: O(slots of id) for the residual-occupancy check.
func (g *Graph) SetInput(id graphview.NodeID, index int, src graphview.NodeID) error {
	rec, ok := g.nodes[id]
	if !ok {
		return errors.Wrapf(graphview.ErrNodeNotFound, "target %q", id)
	}
	if index < 0 || index >= len(rec.inputs) {
		return errors.Wrapf(graphview.ErrInvalidIndex, "slot %d of %q (%d slots)", index, id, len(rec.inputs))
	}
	if src != graphview.None {
		if _, exists := g.nodes[src]; !exists {
			return errors.Wrapf(graphview.ErrNodeNotFound, "source %q", src)
		}
	}

	prev := rec.inputs[index]
	if prev == src {
		return nil // no-op assignment
	}
	rec.inputs[index] = src

	// Previous occupant keeps id as a dependent only while another slot
	// of id still holds it.
	if prev != graphview.None && !g.occupiesAnySlot(prev, rec) {
		g.nodes[prev].deps.Remove(id)
	}
	if src != graphview.None {
		g.nodes[src].deps.Add(id)
	}

	return nil
}

// Dependents returns a snapshot of the nodes referencing id through an input
// slot, in first-connection order.
func (g *Graph) Dependents(id graphview.NodeID) []graphview.NodeID {
	rec, ok := g.nodes[id]
	if !ok {
		return nil
	}
	vals := rec.deps.Values()
	out := make([]graphview.NodeID, 0, len(vals))
	for _, v := range vals {
		out = append(out, v.(graphview.NodeID))
	}

	return out
}

// Position returns id's placement, or the zero Position for unknown nodes.
func (g *Graph) Position(id graphview.NodeID) graphview.Position {
	rec, ok := g.nodes[id]
	if !ok {
		return graphview.Position{}
	}

	return rec.pos
}

// occupiesAnySlot reports whether any slot in rec still holds src.
func (g *Graph) occupiesAnySlot(src graphview.NodeID, rec *record) bool {
	for _, in := range rec.inputs {
		if in == src {
			return true
		}
	}

	return false
}
