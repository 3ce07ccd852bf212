package connect_test

import (
	"fmt"

	"github.com/compviz/nodegraph/builder"
	"github.com/compviz/nodegraph/connect"
)

// ExampleEngine_InsertBetween splices a new node into an existing wire:
// Grade→Write becomes Grade→Blur→Write.
func ExampleEngine_InsertBetween() {
	g := builder.MustBuild(nil, builder.CompTree())
	e, _ := connect.NewEngine(g)

	_ = g.AddNode("Blur", 1)
	_ = e.InsertBetween("Grade", "Blur", "Write", 0)

	src, _ := g.Input("Write", 0)
	fmt.Println("Write reads from:", src)
	src, _ = g.Input("Blur", 0)
	fmt.Println("Blur reads from:", src)
	// Output:
	// Write reads from: Blur
	// Blur reads from: Grade
}
