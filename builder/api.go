package builder

import (
	"github.com/pkg/errors"

	"github.com/compviz/nodegraph/memgraph"
)

// Constructor applies one deterministic topology to a graph under the
// resolved config. Constructors must validate parameters early, return only
// sentinel errors, and never panic.
type Constructor func(g *memgraph.Graph, cfg config) error

// Build creates a memgraph.Graph, resolves opts, and applies every
// constructor in order. The first constructor error aborts the build and is
// wrapped with "builder: Build"; no partial cleanup is attempted.
func Build(opts []Option, cons ...Constructor) (*memgraph.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	g := memgraph.New()
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "Build: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "builder: Build")
		}
	}

	return g, nil
}

// MustBuild is Build for fixtures whose parameters are known good
// (tests, examples). It panics on error.
func MustBuild(opts []Option, cons ...Constructor) *memgraph.Graph {
	g, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
