package paths_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/compviz/nodegraph/builder"
	"github.com/compviz/nodegraph/graphview"
	"github.com/compviz/nodegraph/memgraph"
	"github.com/compviz/nodegraph/paths"
)

// doubleDiamond builds A→{B,C}→D→{E,F}→G: four distinct A→G routes.
func doubleDiamond(t *testing.T) *memgraph.Graph {
	t.Helper()
	g := memgraph.New()
	for _, n := range []struct {
		id    graphview.NodeID
		slots int
	}{{"A", 0}, {"B", 1}, {"C", 1}, {"D", 2}, {"E", 1}, {"F", 1}, {"G", 2}} {
		if err := g.AddNode(n.id, n.slots); err != nil {
			t.Fatal(err)
		}
	}
	for _, w := range []struct {
		dst  graphview.NodeID
		slot int
		src  graphview.NodeID
	}{
		{"B", 0, "A"}, {"C", 0, "A"}, {"D", 0, "B"}, {"D", 1, "C"},
		{"E", 0, "D"}, {"F", 0, "D"}, {"G", 0, "E"}, {"G", 1, "F"},
	} {
		if err := g.SetInput(w.dst, w.slot, w.src); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestConnectionPath_Undirected routes across the branch: Write and Viewer
// only connect through their shared upstream Grade.
func TestConnectionPath_Undirected(t *testing.T) {
	g := builder.MustBuild(nil, builder.CompTree())
	path, err := paths.ConnectionPath(g, "Write", "Viewer")
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Write", "Grade", "Viewer"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestConnectionPath_SameNode(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain(1))
	path, err := paths.ConnectionPath(g, "N1", "N1")
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"N1"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

func TestConnectionPath_NoPath(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain(2))
	if err := g.AddNode("Orphan", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := paths.ConnectionPath(g, "N1", "Orphan"); !errors.Is(err, paths.ErrNoPath) {
		t.Errorf("disconnected: want ErrNoPath, got %v", err)
	}
}

func TestConnectionPath_MaxDepth(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain(4))
	if _, err := paths.ConnectionPath(g, "N1", "N4", paths.WithMaxDepth(2)); !errors.Is(err, paths.ErrNoPath) {
		t.Errorf("depth-capped: want ErrNoPath, got %v", err)
	}
	path, err := paths.ConnectionPath(g, "N1", "N4", paths.WithMaxDepth(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 4 {
		t.Errorf("path = %v; want 4 nodes", path)
	}
}

func TestConnectionPath_Errors(t *testing.T) {
	if _, err := paths.ConnectionPath(nil, "A", "B"); !errors.Is(err, paths.ErrViewNil) {
		t.Errorf("nil view: want ErrViewNil, got %v", err)
	}
	g := memgraph.New()
	if _, err := paths.ConnectionPath(g, "A", "B"); !errors.Is(err, paths.ErrNodeNotFound) {
		t.Errorf("missing endpoint: want ErrNodeNotFound, got %v", err)
	}
	if err := g.AddNode("A", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := paths.ConnectionPath(g, "A", "A", paths.WithMaxDepth(-1)); !errors.Is(err, paths.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestAllPaths_Enumerates finds all four routes through two stacked
// diamonds, each visiting the merge node.
func TestAllPaths_Enumerates(t *testing.T) {
	g := doubleDiamond(t)
	found, err := paths.AllPaths(g, "A", "G")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 4 {
		t.Fatalf("found %d paths; want 4: %v", len(found), found)
	}
	for _, p := range found {
		if len(p) != 5 || p[0] != "A" || p[2] != "D" || p[4] != "G" {
			t.Errorf("malformed path %v", p)
		}
	}
}

func TestAllPaths_MaxPathsCap(t *testing.T) {
	g := doubleDiamond(t)
	found, err := paths.AllPaths(g, "A", "G", paths.WithMaxPaths(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 3 {
		t.Errorf("found %d paths; want the cap of 3", len(found))
	}
}

func TestAllPaths_MaxLengthCap(t *testing.T) {
	g := doubleDiamond(t)
	found, err := paths.AllPaths(g, "A", "G", paths.WithMaxLength(4))
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 0 {
		t.Errorf("found %v; every route has 5 nodes, cap is 4", found)
	}
}

// TestAllPaths_DirectedOnly never walks an edge backwards.
func TestAllPaths_DirectedOnly(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain(2))
	found, err := paths.AllPaths(g, "N2", "N1")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 0 {
		t.Errorf("found %v; downstream→upstream must yield nothing", found)
	}
}

// TestShortestPaths_Diamond must return both minimal routes; a
// first-visit-wins search would drop one side of the merge.
func TestShortestPaths_Diamond(t *testing.T) {
	g := builder.MustBuild(nil, builder.Diamond())
	minimal, err := paths.ShortestPaths(g, "N1", "N4", g.Nodes())
	if err != nil {
		t.Fatal(err)
	}
	if len(minimal) != 2 {
		t.Fatalf("got %d minimal paths; want 2: %v", len(minimal), minimal)
	}
	for _, p := range minimal {
		if len(p) != 3 || p[0] != "N1" || p[2] != "N4" {
			t.Errorf("malformed minimal path %v", p)
		}
	}
}

// TestShortestPaths_StopsAtMinimalLayer ignores longer routes when a
// direct edge exists.
func TestShortestPaths_StopsAtMinimalLayer(t *testing.T) {
	g := memgraph.New()
	for _, n := range []struct {
		id    graphview.NodeID
		slots int
	}{{"A", 0}, {"B", 1}, {"C", 2}} {
		if err := g.AddNode(n.id, n.slots); err != nil {
			t.Fatal(err)
		}
	}
	// A→C direct plus the detour A→B→C.
	for _, w := range []struct {
		dst  graphview.NodeID
		slot int
		src  graphview.NodeID
	}{{"B", 0, "A"}, {"C", 0, "A"}, {"C", 1, "B"}} {
		if err := g.SetInput(w.dst, w.slot, w.src); err != nil {
			t.Fatal(err)
		}
	}

	minimal, err := paths.ShortestPaths(g, "A", "C", g.Nodes())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]graphview.NodeID{{"A", "C"}}
	if !reflect.DeepEqual(minimal, want) {
		t.Errorf("minimal = %v; want %v", minimal, want)
	}
}

func TestShortestPaths_Unreachable(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain(2))
	minimal, err := paths.ShortestPaths(g, "N2", "N1", g.Nodes())
	if err != nil {
		t.Fatal(err)
	}
	if len(minimal) != 0 {
		t.Errorf("minimal = %v; want none against edge direction", minimal)
	}
}

// TestCentrality_ChainMiddle gives the only interior node the maximum
// score after normalization.
func TestCentrality_ChainMiddle(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain(3))
	scores, err := paths.Centrality(g, g.Nodes())
	if err != nil {
		t.Fatal(err)
	}
	if got := scores["N2"]; math.Abs(got-1.0) > 1e-9 {
		t.Errorf("scores[N2] = %v; want 1.0", got)
	}
	if scores["N1"] != 0 || scores["N3"] != 0 {
		t.Errorf("endpoints must score 0: %v", scores)
	}
}

// TestCentrality_SplitShare halves the credit between two parallel
// minimal routes.
func TestCentrality_SplitShare(t *testing.T) {
	g := builder.MustBuild(nil, builder.Diamond())
	scores, err := paths.Centrality(g, g.Nodes())
	if err != nil {
		t.Fatal(err)
	}
	// N2 and N3 each carry half of the single N1→N4 pair; after
	// normalization both sit at the maximum.
	if math.Abs(scores["N2"]-scores["N3"]) > 1e-9 {
		t.Errorf("branch scores must match: %v", scores)
	}
	if math.Abs(scores["N2"]-1.0) > 1e-9 {
		t.Errorf("scores[N2] = %v; want 1.0 after normalization", scores["N2"])
	}
}
