// Package nodegraph is a toolkit for inspecting and rewiring compositing
// node graphs — the directed graphs of processing nodes that visual-effects
// applications expose through their scripting hosts.
//
// 🚀 What is nodegraph?
//
//	A correctness-first library for live, host-owned node graphs:
//		• graphview: the collaborator contract a host must satisfy
//		• memgraph:  an in-memory host stand-in for tests and fixtures
//		• connect:   connect / disconnect / insert / reroute with invariants intact
//		• traverse:  BFS, DFS, islands, components, ancestor & descendant sets
//		• topo:      topological sort, cycle detection, execution order, critical path
//		• paths:     connection paths, all-paths, all shortest paths, centrality
//		• stats:     read-only whole-graph reports
//		• layout:    suggested node positions (hierarchical, grid)
//		• builder:   deterministic graph fixtures
//
// ✨ Design points
//
//   - Nodes are owned by the host: this library only reads slots and
//     dependent sets, and rewrites input-slot assignments — it never
//     creates or destroys node identities.
//   - Every operation takes an explicit working set; edges leaving the set
//     are boundary conditions, not errors.
//   - Mutations are best-effort and return result values; traversal and
//     analysis tolerate cycles and report them instead of failing.
//   - Single-threaded by contract: the host's scripting model serializes
//     access, so there are no internal locks or suspension points.
//
// Quick ASCII example:
//
//	Read ──▶ Grade ──▶ Write
//	           │
//	           └─────▶ Viewer
//
//	a tiny comp script: one source, one correction, two consumers.
//
// Dive into the per-package docs for options, error sentinels, and
// complexity notes.
package nodegraph
