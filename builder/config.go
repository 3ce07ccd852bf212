package builder

import "fmt"

// config is the resolved, immutable builder configuration.
type config struct {
	prefix   string // node ID prefix for generated topologies
	slots    int    // input-slot count for generated nodes
	hSpacing int    // horizontal distance between sibling nodes
	vSpacing int    // vertical distance between depth rows

	err error // first invalid option, surfaced by Build
}

// Option configures fixture generation via functional arguments.
type Option func(*config)

// defaultConfig mirrors the host's habitual editor spacing: nodes one
// column (100px) apart horizontally and one row (80px) vertically.
func defaultConfig() config {
	return config{prefix: "N", slots: 1, hSpacing: 100, vSpacing: 80}
}

// newConfig resolves opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDPrefix sets the prefix for generated node IDs.
// An empty prefix is an option violation.
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		if prefix == "" {
			c.err = fmt.Errorf("%w: empty ID prefix", ErrOptionViolation)
			return
		}
		c.prefix = prefix
	}
}

// WithSlots sets the input-slot count for generated nodes (≥ 1).
func WithSlots(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: slot count %d", ErrOptionViolation, n)
			return
		}
		c.slots = n
	}
}

// WithSpacing sets the horizontal and vertical distance between generated
// node positions. Both must be positive.
func WithSpacing(h, v int) Option {
	return func(c *config) {
		if h <= 0 || v <= 0 {
			c.err = fmt.Errorf("%w: spacing %d×%d", ErrOptionViolation, h, v)
			return
		}
		c.hSpacing, c.vSpacing = h, v
	}
}
