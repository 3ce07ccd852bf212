package traverse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/compviz/nodegraph/builder"
	"github.com/compviz/nodegraph/graphview"
	"github.com/compviz/nodegraph/memgraph"
	"github.com/compviz/nodegraph/traverse"
)

// comp returns the canonical Read→Grade→{Write,Viewer} fixture.
func comp(t *testing.T) *memgraph.Graph {
	t.Helper()
	g, err := builder.Build(nil, builder.CompTree())
	if err != nil {
		t.Fatal(err)
	}

	return g
}

// diamond returns A→{B,C}→D with D merging both branches.
func diamond(t *testing.T) *memgraph.Graph {
	t.Helper()
	g := memgraph.New()
	for _, n := range []struct {
		id    graphview.NodeID
		slots int
	}{{"A", 0}, {"B", 1}, {"C", 1}, {"D", 2}} {
		if err := g.AddNode(n.id, n.slots); err != nil {
			t.Fatal(err)
		}
	}
	for _, w := range []struct {
		dst  graphview.NodeID
		slot int
		src  graphview.NodeID
	}{{"B", 0, "A"}, {"C", 0, "A"}, {"D", 0, "B"}, {"D", 1, "C"}} {
		if err := g.SetInput(w.dst, w.slot, w.src); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := traverse.BFS(nil, "A"); !errors.Is(err, traverse.ErrViewNil) {
		t.Errorf("nil view: want ErrViewNil, got %v", err)
	}
	g := memgraph.New()
	if _, err := traverse.BFS(g, "missing"); !errors.Is(err, traverse.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	if err := g.AddNode("A", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := traverse.BFS(g, "A", traverse.WithMaxDepth(-1)); !errors.Is(err, traverse.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := traverse.BFS(g, "A", traverse.WithDirection(traverse.Direction(9))); !errors.Is(err, traverse.ErrOptionViolation) {
		t.Errorf("bad direction: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Directions covers forward, backward, and both expansion.
func TestBFS_Directions(t *testing.T) {
	g := comp(t)

	res, err := traverse.BFS(g, "Read")
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Grade", "Write", "Viewer"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("forward Order = %v; want %v", res.Order, want)
	}
	if res.Depth["Write"] != 2 || res.Depth["Grade"] != 1 || res.Depth["Read"] != 0 {
		t.Errorf("forward depths wrong: %v", res.Depth)
	}
	if res.Parent["Write"] != "Grade" {
		t.Errorf("Parent[Write] = %v; want Grade", res.Parent["Write"])
	}

	back, err := traverse.BFS(g, "Write", traverse.WithDirection(traverse.Backward))
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Grade", "Read"}; !reflect.DeepEqual(back.Order, want) {
		t.Errorf("backward Order = %v; want %v", back.Order, want)
	}

	both, err := traverse.BFS(g, "Grade", traverse.WithDirection(traverse.Both))
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Write", "Viewer", "Read"}; !reflect.DeepEqual(both.Order, want) {
		t.Errorf("both Order = %v; want %v", both.Order, want)
	}
}

// TestBFS_IncludeSelf verifies the start node joins the result only on
// request, and never appears twice.
func TestBFS_IncludeSelf(t *testing.T) {
	g := comp(t)
	res, err := traverse.BFS(g, "Read", traverse.WithIncludeSelf())
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Read", "Grade", "Write", "Viewer"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	seen := map[graphview.NodeID]int{}
	for _, id := range res.Order {
		seen[id]++
		if seen[id] > 1 {
			t.Errorf("duplicate %q in Order", id)
		}
	}
}

// TestBFS_FilterDeadEnd verifies a filtered node is neither reported nor
// expanded through.
func TestBFS_FilterDeadEnd(t *testing.T) {
	g := comp(t)
	res, err := traverse.BFS(g, "Read", traverse.WithFilter(func(id graphview.NodeID) bool {
		return id != "Grade"
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 0 {
		t.Errorf("Order = %v; want empty (Grade blocks the only route)", res.Order)
	}
}

// TestBFS_MaxDepth limits expansion distance.
func TestBFS_MaxDepth(t *testing.T) {
	g := comp(t)
	res, err := traverse.BFS(g, "Read", traverse.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Grade"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Cycle terminates on cyclic graphs.
func TestBFS_Cycle(t *testing.T) {
	g, err := builder.Build(nil, builder.Cycle(3))
	if err != nil {
		t.Fatal(err)
	}
	res, err := traverse.BFS(g, "N1")
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"N2", "N3"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestDFS_Preorder checks preorder over the diamond: first branch fully
// explored before the second.
func TestDFS_Preorder(t *testing.T) {
	g := diamond(t)
	res, err := traverse.DFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth["D"] != 2 {
		t.Errorf("Depth[D] = %d; want 2", res.Depth["D"])
	}
}

// TestDFS_MaxDepth truncates branches beyond the limit.
func TestDFS_MaxDepth(t *testing.T) {
	g, err := builder.Build(nil, builder.Chain(4))
	if err != nil {
		t.Fatal(err)
	}
	res, err := traverse.DFS(g, "N1", traverse.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"N2", "N3"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestIsland_IgnoresDirection collects the whole component.
func TestIsland_IgnoresDirection(t *testing.T) {
	g := comp(t)
	// A disjoint pair that must never leak into the island.
	if err := g.AddNode("Lone1", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode("Lone2", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.SetInput("Lone2", 0, "Lone1"); err != nil {
		t.Fatal(err)
	}

	island, err := traverse.Island(g, "Write")
	if err != nil {
		t.Fatal(err)
	}
	want := map[graphview.NodeID]bool{"Read": true, "Grade": true, "Write": true, "Viewer": true}
	if len(island) != len(want) {
		t.Fatalf("island = %v; want all four comp nodes", island)
	}
	for _, id := range island {
		if !want[id] {
			t.Errorf("unexpected island member %q", id)
		}
	}
}

// TestComponents_RestrictedToSet splits a chain when the middle node is
// excluded from the working set.
func TestComponents_RestrictedToSet(t *testing.T) {
	g, err := builder.Build(nil, builder.Chain(3))
	if err != nil {
		t.Fatal(err)
	}
	comps, err := traverse.Components(g, []graphview.NodeID{"N1", "N3"})
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 2 {
		t.Fatalf("components = %v; want two singletons", comps)
	}
}

// TestAncestorsDescendants covers direction forcing and include-self.
func TestAncestorsDescendants(t *testing.T) {
	g := comp(t)

	anc, err := traverse.Ancestors(g, "Write")
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Grade", "Read"}; !reflect.DeepEqual(anc, want) {
		t.Errorf("Ancestors(Write) = %v; want %v", anc, want)
	}

	ancSelf, err := traverse.Ancestors(g, "Write", traverse.WithIncludeSelf())
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Write", "Grade", "Read"}; !reflect.DeepEqual(ancSelf, want) {
		t.Errorf("Ancestors(Write, self) = %v; want %v", ancSelf, want)
	}

	desc, err := traverse.Descendants(g, "Read")
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Grade", "Write", "Viewer"}; !reflect.DeepEqual(desc, want) {
		t.Errorf("Descendants(Read) = %v; want %v", desc, want)
	}
}

// TestCommonAncestors intersects upstream sets in first-traversal order.
func TestCommonAncestors(t *testing.T) {
	g := comp(t)
	common, err := traverse.CommonAncestors(g, []graphview.NodeID{"Write", "Viewer"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []graphview.NodeID{"Grade", "Read"}; !reflect.DeepEqual(common, want) {
		t.Errorf("CommonAncestors = %v; want %v", common, want)
	}

	none, err := traverse.CommonAncestors(g, nil)
	if err != nil || none != nil {
		t.Errorf("empty input: got %v, %v; want nil, nil", none, err)
	}
}
