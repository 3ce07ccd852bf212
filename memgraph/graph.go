package memgraph

import (
	stderrors "errors"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"

	"github.com/compviz/nodegraph/graphview"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates an attempt to add a node with an empty ID.
	ErrEmptyNodeID = stderrors.New("memgraph: node ID is empty")

	// ErrDuplicateNode indicates the node ID is already present.
	ErrDuplicateNode = stderrors.New("memgraph: duplicate node ID")

	// ErrBadSlotCount indicates a negative input-slot count.
	ErrBadSlotCount = stderrors.New("memgraph: negative input-slot count")
)

// record holds the per-node state: fixed input slots, the derived dependent
// set, and the editor position.
type record struct {
	inputs []graphview.NodeID  // slot index → source, None when empty
	deps   *linkedhashset.Set  // nodes holding this node in a slot
	pos    graphview.Position
}

// Graph is an in-memory node graph implementing graphview.View.
//
// The zero value is not usable; call New.
type Graph struct {
	nodes map[graphview.NodeID]*record
	order []graphview.NodeID // insertion order, for deterministic listing
}

// New creates an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{nodes: make(map[graphview.NodeID]*record)}
}

// AddNode registers a node with the given number of input slots, all empty.
// Returns ErrEmptyNodeID, ErrBadSlotCount, or ErrDuplicateNode on invalid
// input. Complexity: O(slots)
func (g *Graph) AddNode(id graphview.NodeID, slots int) error {
	if id == graphview.None {
		return ErrEmptyNodeID
	}
	if slots < 0 {
		return errors.Wrapf(ErrBadSlotCount, "node %q: %d slots", id, slots)
	}
	if _, exists := g.nodes[id]; exists {
		return errors.Wrapf(ErrDuplicateNode, "node %q", id)
	}
	g.nodes[id] = &record{
		inputs: make([]graphview.NodeID, slots),
		deps:   linkedhashset.New(),
	}
	g.order = append(g.order, id)

	return nil
}

// PlaceNode records the editor position of id.
// Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) PlaceNode(id graphview.NodeID, pos graphview.Position) error {
	rec, ok := g.nodes[id]
	if !ok {
		return errors.Wrapf(graphview.ErrNodeNotFound, "node %q", id)
	}
	rec.pos = pos

	return nil
}

// Nodes returns every node ID in insertion order.
// The slice is a copy the caller may keep.
func (g *Graph) Nodes() []graphview.NodeID {
	out := make([]graphview.NodeID, len(g.order))
	copy(out, g.order)

	return out
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }
