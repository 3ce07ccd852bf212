package stats

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/compviz/nodegraph/graphview"
	"github.com/compviz/nodegraph/topo"
	"github.com/compviz/nodegraph/traverse"
)

// Sentinel errors for report generation.
var (
	// ErrViewNil is returned if a nil view is passed.
	ErrViewNil = errors.New("stats: view is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stats: invalid option supplied")
)

// DefaultTopPaths is how many critical paths a report keeps.
const DefaultTopPaths = 5

// Degree counts a node's connections: In is the number of occupied input
// slots, Out the size of the dependent set.
type Degree struct {
	In  int
	Out int
}

// Total is the combined degree.
func (d Degree) Total() int { return d.In + d.Out }

// ConnectionStats aggregates wiring counters over the working set.
type ConnectionStats struct {
	// TotalConnections is the number of occupied input slots.
	TotalConnections int

	// SourceNodes counts nodes with no occupied input slot.
	SourceNodes int

	// SinkNodes counts nodes with no dependents.
	SinkNodes int

	// MergePoints counts nodes with more than one occupied input slot.
	MergePoints int

	// BranchPoints counts nodes with more than one dependent.
	BranchPoints int
}

// PathInfo is one critical path: the chain, its root, and its length in
// nodes.
type PathInfo struct {
	Source graphview.NodeID
	Nodes  []graphview.NodeID
	Length int
}

// Report is the full analysis of a working set.
type Report struct {
	TotalNodes    int
	Connections   ConnectionStats
	Degrees       map[graphview.NodeID]Degree
	Islands       [][]graphview.NodeID
	CriticalPaths []PathInfo
}

// Option configures report generation.
type Option func(*options)

type options struct {
	topPaths int
	log      *slog.Logger
	err      error
}

// WithTopPaths sets how many critical paths the report keeps (≥ 1).
func WithTopPaths(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: TopPaths must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.topPaths = n
	}
}

// WithLogger sets the logger for the analysis duration log.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Analyze builds a Report over the working set: per-node degrees and
// connection counters, the island partition, and the top-N longest
// per-root dependency chains. Read-only; unknown IDs are ignored.
func Analyze(v graphview.View, nodes []graphview.NodeID, opts ...Option) (*Report, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o := options{topPaths: DefaultTopPaths, log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start := time.Now()

	known := make([]graphview.NodeID, 0, len(nodes))
	seen := make(map[graphview.NodeID]bool, len(nodes))
	for _, id := range nodes {
		if v.HasNode(id) && !seen[id] {
			seen[id] = true
			known = append(known, id)
		}
	}

	rep := &Report{
		TotalNodes: len(known),
		Degrees:    make(map[graphview.NodeID]Degree, len(known)),
	}
	for _, id := range known {
		deg := Degree{Out: len(v.Dependents(id))}
		for i, n := 0, v.InputCount(id); i < n; i++ {
			if _, ok := v.Input(id, i); ok {
				deg.In++
			}
		}
		rep.Degrees[id] = deg

		rep.Connections.TotalConnections += deg.In
		if deg.In == 0 {
			rep.Connections.SourceNodes++
		}
		if deg.Out == 0 {
			rep.Connections.SinkNodes++
		}
		if deg.In > 1 {
			rep.Connections.MergePoints++
		}
		if deg.Out > 1 {
			rep.Connections.BranchPoints++
		}
	}

	islands, err := traverse.Components(v, known)
	if err != nil {
		return nil, err
	}
	rep.Islands = islands

	paths, err := criticalPaths(v, known, o.topPaths)
	if err != nil {
		return nil, err
	}
	rep.CriticalPaths = paths

	o.log.Debug("graph analysis complete",
		slog.Int("nodes", rep.TotalNodes),
		slog.Int("islands", len(rep.Islands)),
		slog.Duration("elapsed", time.Since(start)))

	return rep, nil
}

// criticalPaths runs a longest-path search from every root and keeps the
// topN longest chains, length descending, first-found winning ties.
func criticalPaths(v graphview.View, nodes []graphview.NodeID, topN int) ([]PathInfo, error) {
	roots, err := topo.Roots(v, nodes)
	if err != nil {
		return nil, err
	}

	var paths []PathInfo
	for _, root := range roots {
		chain, err := topo.LongestPathFrom(v, root, nodes)
		if err != nil {
			return nil, err
		}
		if len(chain) == 0 {
			continue
		}
		paths = append(paths, PathInfo{Source: root, Nodes: chain, Length: len(chain)})
	}

	sort.SliceStable(paths, func(i, j int) bool { return paths[i].Length > paths[j].Length })
	if len(paths) > topN {
		paths = paths[:topN]
	}

	return paths, nil
}
