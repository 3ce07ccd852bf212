// Package traverse implements bounded searches over a graphview.View:
// breadth-first and depth-first traversal, island discovery, connected
// components, and ancestor/descendant sets.
//
// Every call is a fresh, stateless search. Direction selects how edges are
// followed: Forward expands through dependent sets, Backward through
// occupied input slots, Both through their union per step.
//
// Filter semantics: a node failing the filter is marked visited (never
// revisited), excluded from the result, and not expanded — filtered nodes
// are traversal dead-ends, not passthroughs.
//
// Traversal results exclude the start node unless WithIncludeSelf() is
// given; depth and parent maps always cover the start.
//
// Cyclic input is fine: the visited set bounds every search, and MaxDepth
// offers an additional brake on deep graphs.
//
// Complexity:
//
//   - Time:   O(V + E) per traversal (V = reached nodes, E = their edges).
//   - Memory: O(V) for queue/stack and the visited set.
package traverse
