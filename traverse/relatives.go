package traverse

import "github.com/compviz/nodegraph/graphview"

// Ancestors returns every node upstream of id (reachable through occupied
// input slots). Accepts the same options as BFS except that the direction
// is forced Backward. Use WithIncludeSelf to union id into the result.
func Ancestors(v graphview.View, id graphview.NodeID, opts ...Option) ([]graphview.NodeID, error) {
	res, err := BFS(v, id, append(opts, WithDirection(Backward))...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Descendants returns every node downstream of id (reachable through
// dependent edges). Direction is forced Forward; otherwise like Ancestors.
func Descendants(v graphview.View, id graphview.NodeID, opts ...Option) ([]graphview.NodeID, error) {
	res, err := BFS(v, id, append(opts, WithDirection(Forward))...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// CommonAncestors returns the nodes upstream of every id in ids, ordered by
// the first id's traversal. A single id yields its full ancestor set.
func CommonAncestors(v graphview.View, ids []graphview.NodeID, opts ...Option) ([]graphview.NodeID, error) {
	return common(v, ids, Backward, opts)
}

// CommonDescendants returns the nodes downstream of every id in ids,
// ordered by the first id's traversal.
func CommonDescendants(v graphview.View, ids []graphview.NodeID, opts ...Option) ([]graphview.NodeID, error) {
	return common(v, ids, Forward, opts)
}

// common intersects per-id reachability sets, keeping the first traversal's
// visit order for deterministic output.
func common(v graphview.View, ids []graphview.NodeID, dir Direction, opts []Option) ([]graphview.NodeID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	first, err := BFS(v, ids[0], append(opts, WithDirection(dir))...)
	if err != nil {
		return nil, err
	}
	result := first.Order

	for _, id := range ids[1:] {
		res, err := BFS(v, id, append(opts, WithDirection(dir))...)
		if err != nil {
			return nil, err
		}
		reach := make(map[graphview.NodeID]bool, len(res.Order))
		for _, n := range res.Order {
			reach[n] = true
		}

		kept := result[:0:0]
		for _, n := range result {
			if reach[n] {
				kept = append(kept, n)
			}
		}
		result = kept
		if len(result) == 0 {
			break
		}
	}

	return result, nil
}
