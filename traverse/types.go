package traverse

import (
	"errors"
	"fmt"

	"github.com/compviz/nodegraph/graphview"
)

// Sentinel errors for traversal execution.
var (
	// ErrViewNil is returned if a nil view is passed.
	ErrViewNil = errors.New("traverse: view is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Direction selects which edges a traversal follows from each node.
type Direction int

const (
	// Forward follows dependent edges (downstream).
	Forward Direction = iota

	// Backward follows occupied input slots (upstream).
	Backward

	// Both follows the union of Forward and Backward per step.
	Both
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Option configures traversal behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// traversal is invoked.
type Option func(*Options)

// Options holds parameters customizing BFS/DFS execution.
type Options struct {
	// Direction selects edge expansion; defaults to Forward.
	Direction Direction

	// MaxDepth, if > 0, stops expanding beyond this depth from the start.
	// 0 disables the limit.
	MaxDepth int

	// Filter, if non-nil, is consulted per node: a node failing it becomes
	// a traversal dead-end (visited, unreported, unexpanded).
	Filter func(id graphview.NodeID) bool

	// IncludeSelf unions the start node into the result order.
	IncludeSelf bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Forward direction, no depth limit,
// no filter, and the start node excluded from results.
func DefaultOptions() Options {
	return Options{Direction: Forward, MaxDepth: 0, Filter: nil, IncludeSelf: false}
}

// WithDirection selects the edge direction to follow.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d < Forward || d > Both {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithMaxDepth stops expansion at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter installs a per-node predicate; nodes failing it are dead-ends.
func WithFilter(fn func(id graphview.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithIncludeSelf unions the start node into the result order.
// The filter still wins: a start node failing the filter stays excluded.
func WithIncludeSelf() Option {
	return func(o *Options) { o.IncludeSelf = true }
}

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence (start excluded unless IncludeSelf).
//   - Depth: distance in edges from the start, for every reached node.
//   - Parent: predecessor in the traversal tree (absent for the start).
type Result struct {
	Order  []graphview.NodeID
	Depth  map[graphview.NodeID]int
	Parent map[graphview.NodeID]graphview.NodeID
}

// resolve builds Options from opts, surfacing the first invalid one.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// neighbors lists the nodes adjacent to id in the given direction:
// dependents first, then occupied input slots in slot order.
func neighbors(v graphview.View, id graphview.NodeID, dir Direction) []graphview.NodeID {
	var out []graphview.NodeID
	if dir == Forward || dir == Both {
		out = append(out, v.Dependents(id)...)
	}
	if dir == Backward || dir == Both {
		for i, n := 0, v.InputCount(id); i < n; i++ {
			if src, ok := v.Input(id, i); ok {
				out = append(out, src)
			}
		}
	}

	return out
}
