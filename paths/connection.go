package paths

import "github.com/compviz/nodegraph/graphview"

// ConnectionPath finds a route between start and end treating every edge as
// undirected: each step expands both dependents and occupied input slots.
// Returns the first (hence fewest-hop) path found, or ErrNoPath when none
// exists within WithMaxDepth edges.
//
// Time: O(V + E) over the reached region. Memory: O(V).
func ConnectionPath(v graphview.View, start, end graphview.NodeID, opts ...Option) ([]graphview.NodeID, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !v.HasNode(start) || !v.HasNode(end) {
		return nil, ErrNodeNotFound
	}
	if start == end {
		return []graphview.NodeID{start}, nil
	}

	type item struct {
		id    graphview.NodeID
		depth int
	}
	queue := []item{{id: start, depth: 0}}
	parent := map[graphview.NodeID]graphview.NodeID{start: graphview.None}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if o.MaxDepth > 0 && cur.depth >= o.MaxDepth {
			continue
		}
		for _, nbr := range undirected(v, cur.id) {
			if _, seen := parent[nbr]; seen {
				continue
			}
			parent[nbr] = cur.id
			if nbr == end {
				return rebuild(parent, start, end), nil
			}
			queue = append(queue, item{id: nbr, depth: cur.depth + 1})
		}
	}

	return nil, ErrNoPath
}

// undirected lists cur's neighbors ignoring edge direction:
// dependents first, then occupied input slots in slot order.
func undirected(v graphview.View, cur graphview.NodeID) []graphview.NodeID {
	out := v.Dependents(cur)
	for i, n := 0, v.InputCount(cur); i < n; i++ {
		if src, ok := v.Input(cur, i); ok {
			out = append(out, src)
		}
	}

	return out
}

// rebuild walks parent links from end back to start and reverses.
func rebuild(parent map[graphview.NodeID]graphview.NodeID, start, end graphview.NodeID) []graphview.NodeID {
	var path []graphview.NodeID
	for cur := end; cur != graphview.None; cur = parent[cur] {
		path = append(path, cur)
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
