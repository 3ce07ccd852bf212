// Package graphview declares the contract between this library and the
// application that owns the node graph.
//
// A compositing host exposes its graph as nodes with a fixed, positionally
// indexed set of input slots (each holding at most one upstream reference)
// and a derived, unordered set of dependents. graphview.View is the minimal
// surface this library needs from such a host: slot counts, indexed slot
// read/write, dependent-set reads, and node positions.
//
// The invariant every View must uphold: whenever slot i of node X holds Y,
// Dependents(Y) contains X. Views compute dependents themselves; this
// library treats them as authoritative and never re-derives them.
//
// Node lifecycle (creation and deletion) stays with the host. Implementations
// backed by a real application forward each call to the host API; memgraph
// provides a self-contained in-memory implementation.
package graphview
