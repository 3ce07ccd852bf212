package traverse

import "github.com/compviz/nodegraph/graphview"

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    graphview.NodeID
	depth int
}

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	view    graphview.View
	opts    Options
	start   graphview.NodeID
	queue   []queueItem
	visited map[graphview.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search over v from start, expanding edges per
// WithDirection and honoring WithMaxDepth, WithFilter, and WithIncludeSelf.
// Returns ErrViewNil or ErrStartNotFound for invalid input and
// ErrOptionViolation for bad options.
func BFS(v graphview.View, start graphview.NodeID, opts ...Option) (*Result, error) {
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

	w := &bfsWalker{
		view:    v,
		opts:    o,
		start:   start,
		visited: map[graphview.NodeID]bool{start: true},
		res: &Result{
			Depth:  map[graphview.NodeID]int{start: 0},
			Parent: make(map[graphview.NodeID]graphview.NodeID),
		},
	}
	w.queue = append(w.queue, queueItem{id: start, depth: 0})
	w.loop()

	return w.res, nil
}

// loop processes the queue until empty.
func (w *bfsWalker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		// Filtered nodes are dead-ends: already marked visited, never
		// reported, never expanded.
		if w.opts.Filter != nil && !w.opts.Filter(item.id) {
			continue
		}

		if item.id != w.start || w.opts.IncludeSelf {
			w.res.Order = append(w.res.Order, item.id)
		}

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors marks each unseen neighbor visited and queues it one
// level deeper.
func (w *bfsWalker) enqueueNeighbors(item queueItem) {
	for _, nbr := range neighbors(w.view, item.id, w.opts.Direction) {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.res.Depth[nbr] = item.depth + 1
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem{id: nbr, depth: item.depth + 1})
	}
}
