package traverse_test

import (
	"fmt"

	"github.com/compviz/nodegraph/builder"
	"github.com/compviz/nodegraph/traverse"
)

// ExampleBFS walks downstream from the Read node of a miniature comp
// script and prints every node it can influence.
func ExampleBFS() {
	g := builder.MustBuild(nil, builder.CompTree())

	res, _ := traverse.BFS(g, "Read")
	for _, id := range res.Order {
		fmt.Printf("%s (depth %d)\n", id, res.Depth[id])
	}
	// Output:
	// Grade (depth 1)
	// Write (depth 2)
	// Viewer (depth 2)
}

// ExampleAncestors lists everything feeding the Write node, nearest
// first.
func ExampleAncestors() {
	g := builder.MustBuild(nil, builder.CompTree())

	anc, _ := traverse.Ancestors(g, "Write")
	fmt.Println(anc)
	// Output:
	// [Grade Read]
}
