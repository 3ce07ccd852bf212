package builder

import "errors"

// Sentinel errors returned by constructors and Build.
var (
	// ErrConstructFailed indicates Build was given a nil constructor or a
	// constructor failed to apply.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrTooFewNodes indicates a topology parameter below the minimum
	// (Chain needs ≥ 1, Cycle ≥ 2, FanOut ≥ 1 leaf).
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")

	// ErrOptionViolation indicates an invalid option value (empty prefix,
	// negative slot count or spacing).
	ErrOptionViolation = errors.New("builder: invalid option supplied")
)
