// Package topo analyzes dependency structure over a working set of nodes:
// topological ordering with cycle tolerance, cycle enumeration, execution
// ordering, and critical-path search.
//
// Every function takes an explicit working set. Edges leaving the set are
// boundary conditions: an out-of-set predecessor does not count toward
// in-degree, so its target is a root of the in-set ordering.
//
// Cycles are never fatal. Sort and ExecutionOrder always produce a
// best-effort full ordering and raise the Cyclic flag instead of failing;
// Cycles reports the offending node sequences.
//
// Complexity:
//
//   - Sort, Cycles, DependencyDepths: O(V + E) over the working set.
//   - ExecutionOrder: O(V log V + E) (position sort per depth group).
//   - CriticalPath: exponential in the worst case (per-branch visited
//     copies) — correctness over scale, intended for graphs of at most a
//     few hundred nodes.
package topo
