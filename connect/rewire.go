package connect

import (
	"log/slog"

	"github.com/compviz/nodegraph/graphview"
)

// InsertBetween splices newNode into the existing connection
// source→target[index]: the original link is disconnected, source feeds
// newNode's slot 0, and newNode takes over target's slot.
// Fails with ErrNotFound when source does not actually feed target there.
func (e *Engine) InsertBetween(source, newNode, target graphview.NodeID, index int) error {
	if err := e.checkNodes(source, newNode, target); err != nil {
		return err
	}
	if _, err := e.Disconnect(source, target, index); err != nil {
		return err
	}
	if err := e.Connect(source, newNode, 0); err != nil {
		return err
	}
	if err := e.Connect(newNode, target, index); err != nil {
		return err
	}

	e.log.Debug("inserted node between",
		slog.String("source", string(source)),
		slog.String("node", string(newNode)),
		slog.String("target", string(target)),
		slog.Int("slot", index))

	return nil
}

// InsertAfter splices newNode between source and every node source
// currently feeds: each snapshotted (dependent, slot) pair is rewired to
// newNode, then source is connected into newNode's slot 0.
//
// Pairs are attempted independently and collected in the BulkResult; a
// failed pair never aborts the rest.
func (e *Engine) InsertAfter(source, newNode graphview.NodeID) (*BulkResult, error) {
	if err := e.checkNodes(source, newNode); err != nil {
		return nil, err
	}

	// Snapshot before any mutation: rewiring while iterating the live
	// dependent set would skip or duplicate entries.
	pairs := e.occupiedBy(source)

	res := &BulkResult{}
	for _, p := range pairs {
		if _, err := e.Disconnect(source, p.Target, p.Slot); err != nil {
			res.Failed = append(res.Failed, Failure{Link: p, Err: err})
			continue
		}
		moved := Link{Source: newNode, Target: p.Target, Slot: p.Slot}
		if err := e.Connect(newNode, p.Target, p.Slot); err != nil {
			res.Failed = append(res.Failed, Failure{Link: moved, Err: err})
			continue
		}
		res.Rewired = append(res.Rewired, moved)
	}

	feed := Link{Source: source, Target: newNode, Slot: 0}
	if err := e.Connect(source, newNode, 0); err != nil {
		res.Failed = append(res.Failed, Failure{Link: feed, Err: err})
	} else {
		res.Rewired = append(res.Rewired, feed)
	}

	e.log.Debug("inserted node after",
		slog.String("source", string(source)),
		slog.String("node", string(newNode)),
		slog.Int("rewired", len(res.Rewired)),
		slog.Int("failed", len(res.Failed)))

	return res, nil
}

// Reroute replays oldNode's connection topology onto newNode: every
// occupied input slot (bounded by newNode's slot count) and every
// (dependent, slot) pair referencing oldNode. Both snapshots are taken
// before any mutation. With copyConnections false the snapshots are
// discarded and nothing changes.
//
// oldNode's own input slots are left untouched; removing the node is the
// caller's responsibility.
func (e *Engine) Reroute(oldNode, newNode graphview.NodeID, copyConnections bool) (*BulkResult, error) {
	if err := e.checkNodes(oldNode, newNode); err != nil {
		return nil, err
	}

	// Snapshot both sides of oldNode up front.
	inputs := e.occupiedInputs(oldNode)
	outputs := e.occupiedBy(oldNode)

	res := &BulkResult{}
	if !copyConnections {
		return res, nil
	}

	slots := e.view.InputCount(newNode)
	for _, in := range inputs {
		if in.Slot >= slots {
			continue // newNode has fewer inputs; surplus slots are dropped
		}
		l := Link{Source: in.Source, Target: newNode, Slot: in.Slot}
		if err := e.Connect(in.Source, newNode, in.Slot); err != nil {
			res.Failed = append(res.Failed, Failure{Link: l, Err: err})
			continue
		}
		res.Rewired = append(res.Rewired, l)
	}

	for _, out := range outputs {
		l := Link{Source: newNode, Target: out.Target, Slot: out.Slot}
		// Connect clears the old occupant first, so this single call
		// both detaches oldNode from the dependent and attaches newNode.
		if err := e.Connect(newNode, out.Target, out.Slot); err != nil {
			res.Failed = append(res.Failed, Failure{Link: l, Err: err})
			continue
		}
		res.Rewired = append(res.Rewired, l)
	}

	e.log.Debug("rerouted connections",
		slog.String("old", string(oldNode)),
		slog.String("new", string(newNode)),
		slog.Int("rewired", len(res.Rewired)),
		slog.Int("failed", len(res.Failed)))

	return res, nil
}

// occupiedBy snapshots every (dependent, slot) pair currently fed by id,
// in dependent order then slot order.
func (e *Engine) occupiedBy(id graphview.NodeID) []Link {
	var pairs []Link
	for _, dep := range e.view.Dependents(id) {
		for i, n := 0, e.view.InputCount(dep); i < n; i++ {
			if src, ok := e.view.Input(dep, i); ok && src == id {
				pairs = append(pairs, Link{Source: id, Target: dep, Slot: i})
			}
		}
	}

	return pairs
}

// occupiedInputs snapshots id's occupied input slots in slot order.
func (e *Engine) occupiedInputs(id graphview.NodeID) []Link {
	var ins []Link
	for i, n := 0, e.view.InputCount(id); i < n; i++ {
		if src, ok := e.view.Input(id, i); ok {
			ins = append(ins, Link{Source: src, Target: id, Slot: i})
		}
	}

	return ins
}
