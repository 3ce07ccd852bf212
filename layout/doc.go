// Package layout computes suggested editor positions for a working set of
// nodes. It never writes to the host — positions come back as a map for
// the caller to apply (or not) through whatever UI surface it owns.
//
// Hierarchical places nodes on rows by dependency depth, ordered within a
// row like topo.ExecutionOrder orders them; Grid packs nodes row-major
// into a near-square block. Both are deterministic for the same view and
// working set.
package layout
