// This file declares NodeID, Position, the View collaborator interface,
// and the sentinel errors shared by every package that works against a View.
//
// Errors:
//
//	ErrNodeNotFound  - a referenced node does not exist in the view.
//	ErrInvalidIndex  - an input-slot index is out of range.
//	ErrHostOperation - the host rejected a slot mutation.
package graphview

import "errors"

// Sentinel errors shared across the view contract.
var (
	// ErrNodeNotFound indicates an operation referenced a node the view
	// does not know about.
	ErrNodeNotFound = errors.New("graphview: node not found")

	// ErrInvalidIndex indicates an input-slot index outside
	// [0, InputCount).
	ErrInvalidIndex = errors.New("graphview: input index out of range")

	// ErrHostOperation wraps a slot mutation rejected by the host.
	ErrHostOperation = errors.New("graphview: host operation failed")
)

// NodeID is the opaque identity of a node inside its host graph.
// Two NodeIDs are the same node exactly when they compare equal;
// the empty NodeID ("") means "no node" and marks an empty input slot.
type NodeID string

// None is the empty NodeID, used to clear an input slot.
const None NodeID = ""

// Position is a node's 2D placement in the host's graph editor.
// This library reads positions only as a deterministic tie-break
// (ascending Y, then X) and never writes them.
type Position struct {
	X int
	Y int
}

// View is the collaborator interface onto a host-owned node graph.
//
// Reads must be cheap and side-effect free. SetInput is the single
// mutation this library performs; a View may reject it (slot constraints,
// locked nodes, host errors), in which case it returns a non-nil error
// that callers surface wrapped in ErrHostOperation.
type View interface {
	// HasNode reports whether id exists in the graph.
	HasNode(id NodeID) bool

	// InputCount returns the number of input slots on id,
	// or 0 if id does not exist.
	InputCount(id NodeID) int

	// Input returns the occupant of slot index on id.
	// The second result is false when the slot is empty or out of range.
	Input(id NodeID, index int) (NodeID, bool)

	// SetInput assigns src to slot index on id; src == None clears the
	// slot. The view keeps dependent sets consistent with the assignment.
	SetInput(id NodeID, index int, src NodeID) error

	// Dependents returns the nodes referencing id through one of their
	// input slots. The returned slice is a snapshot the caller may keep;
	// iteration order is host-defined but stable between mutations.
	Dependents(id NodeID) []NodeID

	// Position returns id's placement, or the zero Position if id does
	// not exist.
	Position(id NodeID) Position
}
