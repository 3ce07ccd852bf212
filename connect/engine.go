package connect

import (
	"fmt"
	"log/slog"

	"github.com/compviz/nodegraph/graphview"
)

// Connect assigns source to slot index on target. An occupied slot is
// cleared first, then assigned — one logical, non-interleavable step from
// the caller's point of view.
// Returns ErrNodeNotFound, ErrInvalidIndex, or ErrHostOperation.
func (e *Engine) Connect(source, target graphview.NodeID, index int) error {
	if err := e.checkNodes(source, target); err != nil {
		return err
	}
	if err := e.checkIndex(target, index); err != nil {
		return err
	}

	// Disconnect the previous occupant first; rewiring order is uniform
	// across the package (disconnect old, then connect new).
	if prev, ok := e.view.Input(target, index); ok && prev != source {
		if err := e.view.SetInput(target, index, graphview.None); err != nil {
			return fmt.Errorf("%w: clearing %q[%d]: %v", ErrHostOperation, target, index, err)
		}
	}
	if err := e.view.SetInput(target, index, source); err != nil {
		return fmt.Errorf("%w: connect %q→%q[%d]: %v", ErrHostOperation, source, target, index, err)
	}

	e.log.Debug("connected nodes",
		slog.String("source", string(source)),
		slog.String("target", string(target)),
		slog.Int("slot", index))

	return nil
}

// Disconnect clears slot index on target, but only when its current
// occupant is source; otherwise (false, ErrNotFound). The boolean reports
// whether the graph changed.
func (e *Engine) Disconnect(source, target graphview.NodeID, index int) (bool, error) {
	if err := e.checkNodes(source, target); err != nil {
		return false, err
	}
	if err := e.checkIndex(target, index); err != nil {
		return false, err
	}

	if cur, ok := e.view.Input(target, index); !ok || cur != source {
		return false, fmt.Errorf("%w: %q does not feed %q[%d]", ErrNotFound, source, target, index)
	}
	if err := e.view.SetInput(target, index, graphview.None); err != nil {
		return false, fmt.Errorf("%w: disconnect %q from %q[%d]: %v", ErrHostOperation, source, target, index, err)
	}

	e.log.Debug("disconnected nodes",
		slog.String("source", string(source)),
		slog.String("target", string(target)),
		slog.Int("slot", index))

	return true, nil
}

// DisconnectAll clears every slot on target currently holding source.
// Slots are attempted independently; the boolean reports whether any slot
// changed and the error carries the first host rejection, if any.
func (e *Engine) DisconnectAll(source, target graphview.NodeID) (bool, error) {
	if err := e.checkNodes(source, target); err != nil {
		return false, err
	}

	changed := false
	var firstErr error
	for i, n := 0, e.view.InputCount(target); i < n; i++ {
		if cur, ok := e.view.Input(target, i); !ok || cur != source {
			continue
		}
		if err := e.view.SetInput(target, i, graphview.None); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: disconnect %q from %q[%d]: %v", ErrHostOperation, source, target, i, err)
			}
			continue
		}
		changed = true
	}
	if changed {
		e.log.Debug("disconnected all slots",
			slog.String("source", string(source)),
			slog.String("target", string(target)))
	}

	return changed, firstErr
}

// checkNodes verifies every id exists in the view.
func (e *Engine) checkNodes(ids ...graphview.NodeID) error {
	for _, id := range ids {
		if !e.view.HasNode(id) {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	return nil
}

// checkIndex verifies index addresses an existing slot on target.
func (e *Engine) checkIndex(target graphview.NodeID, index int) error {
	if n := e.view.InputCount(target); index < 0 || index >= n {
		return fmt.Errorf("%w: slot %d of %q (%d slots)", ErrInvalidIndex, index, target, n)
	}

	return nil
}
