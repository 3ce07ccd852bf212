package paths

import "github.com/compviz/nodegraph/graphview"

// AllPaths enumerates simple paths from start to end over forward
// (dependent) edges only, bounded by WithMaxLength nodes per path and
// stopping as soon as WithMaxPaths paths are collected.
// Returns an empty slice when no path exists.
//
// Exponential in the worst case; the bounds are the safety net.
func AllPaths(v graphview.View, start, end graphview.NodeID, opts ...Option) ([][]graphview.NodeID, error) {
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

	e := &enumerator{view: v, opts: o, end: end, onPath: make(map[graphview.NodeID]bool)}
	e.descend(start, []graphview.NodeID{start})

	return e.found, nil
}

// enumerator carries the DFS state for AllPaths.
type enumerator struct {
	view   graphview.View
	opts   Options
	end    graphview.NodeID
	onPath map[graphview.NodeID]bool // nodes of the current path
	found  [][]graphview.NodeID
}

// full reports whether the path budget is exhausted.
func (e *enumerator) full() bool {
	return e.opts.MaxPaths > 0 && len(e.found) >= e.opts.MaxPaths
}

// descend extends the current path at cur, recording it on reaching end
// and backtracking afterwards. Recursion depth is bounded by MaxLength.
func (e *enumerator) descend(cur graphview.NodeID, path []graphview.NodeID) {
	if e.full() {
		return
	}
	if e.opts.MaxLength > 0 && len(path) > e.opts.MaxLength {
		return
	}
	if cur == e.end {
		e.found = append(e.found, append([]graphview.NodeID(nil), path...))
		return
	}

	e.onPath[cur] = true
	for _, dep := range e.view.Dependents(cur) {
		if e.onPath[dep] {
			continue
		}
		e.descend(dep, append(path, dep))
		if e.full() {
			break
		}
	}
	delete(e.onPath, cur)
}
