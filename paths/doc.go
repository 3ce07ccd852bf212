// Package paths searches for routes between nodes: undirected connection
// paths, exhaustive bounded path enumeration, all shortest directed paths,
// and approximate betweenness centrality built on top of them.
//
// ConnectionPath treats edges as undirected — it answers "are these nodes
// wired together at all, and how" — while AllPaths and ShortestPaths follow
// dependent (downstream) edges only.
//
// There is no cancellation mechanism; the MaxDepth, MaxPaths and MaxLength
// bounds are the sole safeguards against unbounded work on deep or cyclic
// graphs. Centrality is O(V²·pathwork): correctness over scale, intended
// for graphs of at most a few hundred nodes.
package paths
