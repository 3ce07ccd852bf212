package builder

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/compviz/nodegraph/graphview"
	"github.com/compviz/nodegraph/memgraph"
)

// add registers one node with its position, wrapping any graph error in
// ErrConstructFailed so callers branch on a single sentinel.
func add(g *memgraph.Graph, id graphview.NodeID, slots int, pos graphview.Position) error {
	if err := g.AddNode(id, slots); err != nil {
		return errors.Wrapf(ErrConstructFailed, "add %q: %v", id, err)
	}
	if err := g.PlaceNode(id, pos); err != nil {
		return errors.Wrapf(ErrConstructFailed, "place %q: %v", id, err)
	}

	return nil
}

// wire assigns src to slot index on dst, wrapping failures the same way.
func wire(g *memgraph.Graph, src, dst graphview.NodeID, index int) error {
	if err := g.SetInput(dst, index, src); err != nil {
		return errors.Wrapf(ErrConstructFailed, "wire %q→%q[%d]: %v", src, dst, index, err)
	}

	return nil
}

// nextID names the i-th node (1-based) generated after base existing nodes.
func nextID(cfg config, base, i int) graphview.NodeID {
	return graphview.NodeID(fmt.Sprintf("%s%d", cfg.prefix, base+i))
}

// Chain builds a linear pipeline of n nodes, each feeding the next through
// slot 0, stacked vertically. n ≥ 1.
func Chain(n int) Constructor {
	return func(g *memgraph.Graph, cfg config) error {
		if n < 1 {
			return errors.Wrapf(ErrTooFewNodes, "Chain(%d)", n)
		}
		base := g.Len()
		for i := 1; i <= n; i++ {
			pos := graphview.Position{X: 0, Y: (base + i - 1) * cfg.vSpacing}
			if err := add(g, nextID(cfg, base, i), cfg.slots, pos); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := wire(g, nextID(cfg, base, i), nextID(cfg, base, i+1), 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// FanOut builds one root feeding `leaves` sibling nodes through their
// slot 0, laid out left to right one row below the root. leaves ≥ 1.
func FanOut(leaves int) Constructor {
	return func(g *memgraph.Graph, cfg config) error {
		if leaves < 1 {
			return errors.Wrapf(ErrTooFewNodes, "FanOut(%d)", leaves)
		}
		base := g.Len()
		rowY := base * cfg.vSpacing
		root := nextID(cfg, base, 1)
		if err := add(g, root, cfg.slots, graphview.Position{X: 0, Y: rowY}); err != nil {
			return err
		}
		for i := 0; i < leaves; i++ {
			leaf := nextID(cfg, base, i+2)
			pos := graphview.Position{X: i * cfg.hSpacing, Y: rowY + cfg.vSpacing}
			if err := add(g, leaf, cfg.slots, pos); err != nil {
				return err
			}
			if err := wire(g, root, leaf, 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// Diamond builds the four-node diamond: one top node branching to two
// middles that merge into a two-slot bottom node.
func Diamond() Constructor {
	return func(g *memgraph.Graph, cfg config) error {
		base := g.Len()
		rowY := base * cfg.vSpacing
		top := nextID(cfg, base, 1)
		left := nextID(cfg, base, 2)
		right := nextID(cfg, base, 3)
		bottom := nextID(cfg, base, 4)

		mergeSlots := cfg.slots
		if mergeSlots < 2 {
			mergeSlots = 2
		}
		if err := add(g, top, cfg.slots, graphview.Position{X: cfg.hSpacing, Y: rowY}); err != nil {
			return err
		}
		if err := add(g, left, cfg.slots, graphview.Position{X: 0, Y: rowY + cfg.vSpacing}); err != nil {
			return err
		}
		if err := add(g, right, cfg.slots, graphview.Position{X: 2 * cfg.hSpacing, Y: rowY + cfg.vSpacing}); err != nil {
			return err
		}
		if err := add(g, bottom, mergeSlots, graphview.Position{X: cfg.hSpacing, Y: rowY + 2*cfg.vSpacing}); err != nil {
			return err
		}
		for _, w := range []struct {
			src, dst graphview.NodeID
			slot     int
		}{
			{top, left, 0}, {top, right, 0}, {left, bottom, 0}, {right, bottom, 1},
		} {
			if err := wire(g, w.src, w.dst, w.slot); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds an n-node directed ring through slot 0. n ≥ 2.
func Cycle(n int) Constructor {
	return func(g *memgraph.Graph, cfg config) error {
		if n < 2 {
			return errors.Wrapf(ErrTooFewNodes, "Cycle(%d)", n)
		}
		base := g.Len()
		for i := 1; i <= n; i++ {
			pos := graphview.Position{X: 0, Y: (base + i - 1) * cfg.vSpacing}
			if err := add(g, nextID(cfg, base, i), cfg.slots, pos); err != nil {
				return err
			}
		}
		for i := 1; i <= n; i++ {
			next := i%n + 1
			if err := wire(g, nextID(cfg, base, i), nextID(cfg, base, next), 0); err != nil {
				return err
			}
		}

		return nil
	}
}

// CompTree builds the canonical miniature comp script:
//
//	Read ──▶ Grade ──▶ Write
//	           └─────▶ Viewer
//
// Read has no inputs; Write sits left of Viewer on the same row, so
// position tie-breaks order Write before Viewer.
func CompTree() Constructor {
	return func(g *memgraph.Graph, cfg config) error {
		h, v := cfg.hSpacing, cfg.vSpacing
		steps := []struct {
			id    graphview.NodeID
			slots int
			pos   graphview.Position
		}{
			{"Read", 0, graphview.Position{X: 0, Y: 0}},
			{"Grade", 1, graphview.Position{X: 0, Y: v}},
			{"Write", 1, graphview.Position{X: 0, Y: 2 * v}},
			{"Viewer", 1, graphview.Position{X: h, Y: 2 * v}},
		}
		for _, s := range steps {
			if err := add(g, s.id, s.slots, s.pos); err != nil {
				return err
			}
		}
		for _, w := range []struct {
			src, dst graphview.NodeID
		}{
			{"Read", "Grade"}, {"Grade", "Write"}, {"Grade", "Viewer"},
		} {
			if err := wire(g, w.src, w.dst, 0); err != nil {
				return err
			}
		}

		return nil
	}
}
