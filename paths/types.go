package paths

import (
	"errors"
	"fmt"

	"github.com/compviz/nodegraph/graphview"
)

// Sentinel errors for path searches.
var (
	// ErrViewNil is returned if a nil view is passed.
	ErrViewNil = errors.New("paths: view is nil")

	// ErrNodeNotFound is returned when a path endpoint is absent.
	ErrNodeNotFound = errors.New("paths: node not found")

	// ErrNoPath is returned when no route exists within the bounds.
	ErrNoPath = errors.New("paths: no path found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// Default search bounds, matching the habitual scale of a comp script.
const (
	// DefaultMaxDepth bounds ConnectionPath's search depth in edges.
	DefaultMaxDepth = 100

	// DefaultMaxPaths caps how many paths AllPaths enumerates.
	DefaultMaxPaths = 100

	// DefaultMaxLength caps AllPaths path length, in nodes.
	DefaultMaxLength = 20
)

// Option configures path-search bounds via functional arguments.
type Option func(*Options)

// Options holds the bounds for path searches. Zero values mean "no limit";
// negative values are option violations surfaced on invocation.
type Options struct {
	// MaxDepth bounds ConnectionPath's breadth-first depth, in edges.
	MaxDepth int

	// MaxPaths caps the number of paths AllPaths returns.
	MaxPaths int

	// MaxLength caps the number of nodes per path in AllPaths.
	MaxLength int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the package default bounds.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth, MaxPaths: DefaultMaxPaths, MaxLength: DefaultMaxLength}
}

// WithMaxDepth bounds ConnectionPath's search depth in edges
// (0 = unlimited, negative = violation).
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxPaths caps how many paths AllPaths enumerates
// (0 = unlimited, negative = violation).
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithMaxLength caps path length for AllPaths, in nodes
// (0 = unlimited, negative = violation).
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
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

// forwardInSet lists cur's dependents restricted to the membership set;
// a nil set means no restriction.
func forwardInSet(v graphview.View, cur graphview.NodeID, inSet map[graphview.NodeID]bool) []graphview.NodeID {
	deps := v.Dependents(cur)
	if inSet == nil {
		return deps
	}
	kept := make([]graphview.NodeID, 0, len(deps))
	for _, dep := range deps {
		if inSet[dep] {
			kept = append(kept, dep)
		}
	}

	return kept
}

// extend returns a fresh path of p plus next.
func extend(p []graphview.NodeID, next graphview.NodeID) []graphview.NodeID {
	out := make([]graphview.NodeID, len(p), len(p)+1)
	copy(out, p)

	return append(out, next)
}
