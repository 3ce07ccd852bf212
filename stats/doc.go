// Package stats produces read-only, whole-graph reports: per-node degrees,
// connection counters, island partitions, and the longest dependency
// chains. It composes traverse and topo and adds no traversal logic of its
// own.
package stats
