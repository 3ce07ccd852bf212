// Package builder assembles deterministic memgraph fixtures from small,
// composable constructors.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the graph, resolves
//     options, runs constructors in order.
//   - Constructors validate early and return sentinel errors; they never
//     panic.
//   - Determinism: the same options and constructor order always produce
//     the identical graph — node IDs, wiring, and positions included.
//
// Constructors name their nodes from the running node count, so composing
// Chain(3) then FanOut(2) yields N1..N3 then N4..N6. CompTree is the
// exception: it uses the fixed IDs Read, Grade, Write, Viewer.
package builder
