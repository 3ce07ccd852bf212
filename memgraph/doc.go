// Package memgraph provides a self-contained, in-memory implementation of
// graphview.View — a stand-in for the compositing host, used by fixtures,
// tests and examples, and usable on its own for host-free analysis.
//
// Key properties:
//   - Maintains the slot↔dependent invariant on every SetInput: whenever
//     slot i of X holds Y, Dependents(Y) contains X, and X is removed from
//     Y's dependents only once no slot of X holds Y.
//   - Deterministic: Nodes() lists nodes in insertion order, and dependent
//     sets iterate in first-connection order, so traversal output is
//     reproducible run to run.
//   - Single-threaded: the host contract (one scripting actor at a time)
//     is assumed, so there is no internal locking.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrDuplicateNode - node ID already exists.
//	ErrBadSlotCount  - negative input-slot count.
//
// Slot and node lookups reuse the graphview sentinels
// (ErrNodeNotFound, ErrInvalidIndex).
package memgraph
