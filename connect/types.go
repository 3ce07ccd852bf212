package connect

import (
	"errors"
	"log/slog"

	"github.com/compviz/nodegraph/graphview"
)

// Sentinel errors for connectivity operations.
var (
	// ErrViewNil is returned if a nil view is passed to NewEngine.
	ErrViewNil = errors.New("connect: view is nil")

	// ErrNodeNotFound indicates an operand node the view does not know.
	ErrNodeNotFound = errors.New("connect: node not found")

	// ErrInvalidIndex indicates a slot index outside [0, InputCount).
	ErrInvalidIndex = errors.New("connect: input index out of range")

	// ErrNotFound indicates the expected connection was absent
	// on disconnect.
	ErrNotFound = errors.New("connect: expected connection absent")

	// ErrHostOperation wraps a slot mutation the host rejected.
	ErrHostOperation = errors.New("connect: host operation failed")
)

// Engine performs connectivity mutations against a graphview.View.
//
// Engine holds no graph state of its own; every operation reads the live
// view, so it is safe to keep one Engine per view for the lifetime of a
// session. The host's single-threaded scripting model is assumed — the
// Engine adds no locking.
type Engine struct {
	view graphview.View
	log  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for operation-level debug logging.
// A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates an Engine over v. Returns ErrViewNil for a nil view.
func NewEngine(v graphview.View, opts ...Option) (*Engine, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	e := &Engine{view: v, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Link is one realized or attempted slot assignment: Source feeding Target
// at Slot.
type Link struct {
	Source graphview.NodeID
	Target graphview.NodeID
	Slot   int
}

// Failure pairs an attempted link with the error that stopped it.
type Failure struct {
	Link Link
	Err  error
}

// BulkResult collects the outcome of a multi-link operation. Items are
// attempted independently; Rewired and Failed together cover every
// attempted link.
type BulkResult struct {
	Rewired []Link
	Failed  []Failure
}

// Ok reports whether every attempted link succeeded.
func (r *BulkResult) Ok() bool { return len(r.Failed) == 0 }

// Changed reports whether at least one link was realized.
func (r *BulkResult) Changed() bool { return len(r.Rewired) > 0 }
