package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/compviz/nodegraph/graphview"
	"github.com/compviz/nodegraph/topo"
)

// Sentinel errors for layout computation.
var (
	// ErrViewNil is returned if a nil view is passed.
	ErrViewNil = errors.New("layout: view is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")
)

// Default spacing between suggested positions, in editor pixels.
const (
	DefaultHSpacing = 100
	DefaultVSpacing = 80
)

// Option configures layout computation.
type Option func(*options)

type options struct {
	hSpacing int
	vSpacing int
	origin   graphview.Position
	err      error
}

// WithSpacing sets the horizontal and vertical distance between suggested
// positions. Both must be positive.
func WithSpacing(h, v int) Option {
	return func(o *options) {
		if h <= 0 || v <= 0 {
			o.err = fmt.Errorf("%w: spacing %d×%d", ErrOptionViolation, h, v)
			return
		}
		o.hSpacing, o.vSpacing = h, v
	}
}

// WithOrigin sets the top-left corner of the suggested block.
func WithOrigin(p graphview.Position) Option {
	return func(o *options) { o.origin = p }
}

func resolve(opts []Option) (options, error) {
	o := options{hSpacing: DefaultHSpacing, vSpacing: DefaultVSpacing}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// Hierarchical suggests positions with one row per dependency depth:
// roots on the top row, each node one row below its deepest predecessor,
// rows filled left to right in execution order. Cyclic input degrades
// gracefully the same way topo does.
func Hierarchical(v graphview.View, nodes []graphview.NodeID, opts ...Option) (map[graphview.NodeID]graphview.Position, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	order, err := topo.ExecutionOrder(v, nodes)
	if err != nil {
		return nil, err
	}
	depths, err := topo.DependencyDepths(v, nodes)
	if err != nil {
		return nil, err
	}

	out := make(map[graphview.NodeID]graphview.Position, len(order.Order))
	rowFill := make(map[int]int) // depth → next free column
	for _, id := range order.Order {
		d := depths[id]
		out[id] = graphview.Position{
			X: o.origin.X + rowFill[d]*o.hSpacing,
			Y: o.origin.Y + d*o.vSpacing,
		}
		rowFill[d]++
	}

	return out, nil
}

// Grid suggests positions packing the working set row-major into a
// near-square block, in working-set order. Unknown IDs are ignored.
func Grid(v graphview.View, nodes []graphview.NodeID, opts ...Option) (map[graphview.NodeID]graphview.Position, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	known := make([]graphview.NodeID, 0, len(nodes))
	seen := make(map[graphview.NodeID]bool, len(nodes))
	for _, id := range nodes {
		if v.HasNode(id) && !seen[id] {
			seen[id] = true
			known = append(known, id)
		}
	}
	if len(known) == 0 {
		return map[graphview.NodeID]graphview.Position{}, nil
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(known)))))
	out := make(map[graphview.NodeID]graphview.Position, len(known))
	for i, id := range known {
		out[id] = graphview.Position{
			X: o.origin.X + (i%cols)*o.hSpacing,
			Y: o.origin.Y + (i/cols)*o.vSpacing,
		}
	}

	return out, nil
}
