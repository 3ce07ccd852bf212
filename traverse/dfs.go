package traverse

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/compviz/nodegraph/graphview"
)

// frame is one pending DFS visit: a node, its depth, and its discoverer.
type frame struct {
	id     graphview.NodeID
	depth  int
	parent graphview.NodeID
}

// DFS runs preorder depth-first search over v from start with the same
// direction, depth, filter, and include-self semantics as BFS.
//
// The walk uses an explicit stack, so pathologically deep graphs cannot
// exhaust the call stack. Depth counts from the start at 0; expansion is
// truncated once depth exceeds MaxDepth.
func DFS(v graphview.View, start graphview.NodeID, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !v.HasNode(start) {
		return nil, ErrStartNotFound
	}

	res := &Result{
		Depth:  make(map[graphview.NodeID]int),
		Parent: make(map[graphview.NodeID]graphview.NodeID),
	}
	visited := make(map[graphview.NodeID]bool)

	stack := arraystack.New()
	stack.Push(frame{id: start, depth: 0, parent: graphview.None})

	for {
		top, ok := stack.Pop()
		if !ok {
			break
		}
		f := top.(frame)

		if visited[f.id] {
			continue
		}
		// Too deep on this branch; a shorter branch may still reach it.
		if o.MaxDepth > 0 && f.depth > o.MaxDepth {
			continue
		}

		visited[f.id] = true
		res.Depth[f.id] = f.depth
		if f.parent != graphview.None {
			res.Parent[f.id] = f.parent
		}

		// Dead-end on filter failure: visited, unreported, unexpanded.
		if o.Filter != nil && !o.Filter(f.id) {
			continue
		}

		if f.id != start || o.IncludeSelf {
			res.Order = append(res.Order, f.id)
		}

		// Push in reverse so the first neighbor is explored first,
		// matching recursive preorder.
		nbrs := neighbors(v, f.id, o.Direction)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i]] {
				stack.Push(frame{id: nbrs[i], depth: f.depth + 1, parent: f.id})
			}
		}
	}

	return res, nil
}
