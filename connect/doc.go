// Package connect mutates a live, host-owned node graph: connecting,
// disconnecting, inserting, and rerouting input-slot assignments while
// keeping the slot↔dependent invariant intact.
//
// All operations are best-effort and return result values; nothing panics
// and cyclic or partially wired graphs are never fatal. Bulk operations
// (InsertAfter, Reroute) attempt every item independently and collect both
// successes and failures in a BulkResult — one bad slot never aborts the
// rest.
//
// The one concurrency-adjacent discipline is snapshot-before-mutate: any
// collection that would be iterated while being changed (a dependent set,
// an input-slot list) is materialized first. Mutating a live dependent set
// while walking it causes skipped or duplicated entries.
//
// Rewiring order is uniform across every call path: disconnect the old
// assignment, then connect the new one.
//
// Errors:
//
//	ErrViewNil       - nil view passed to NewEngine.
//	ErrNodeNotFound  - an operand node is absent from the view.
//	ErrInvalidIndex  - slot index out of range for the target.
//	ErrNotFound      - expected connection absent on disconnect.
//	ErrHostOperation - the host rejected a slot mutation (wrapped cause).
package connect
