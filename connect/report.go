package connect

import "github.com/compviz/nodegraph/graphview"

// InputConnection describes one input slot of a node.
type InputConnection struct {
	Slot      int
	Source    graphview.NodeID // None when the slot is empty
	Connected bool
}

// OutputConnection describes one downstream consumer of a node.
type OutputConnection struct {
	Dependent graphview.NodeID
	Slot      int // slot on the dependent holding this node
}

// Connections is the full wiring report for a single node.
type Connections struct {
	Node    graphview.NodeID
	Inputs  []InputConnection
	Outputs []OutputConnection
}

// NodeConnections reports every input slot (occupied or not) and every
// downstream (dependent, slot) pair of id. Read-only.
func (e *Engine) NodeConnections(id graphview.NodeID) (*Connections, error) {
	if err := e.checkNodes(id); err != nil {
		return nil, err
	}

	c := &Connections{Node: id}
	for i, n := 0, e.view.InputCount(id); i < n; i++ {
		src, ok := e.view.Input(id, i)
		c.Inputs = append(c.Inputs, InputConnection{Slot: i, Source: src, Connected: ok})
	}
	for _, l := range e.occupiedBy(id) {
		c.Outputs = append(c.Outputs, OutputConnection{Dependent: l.Target, Slot: l.Slot})
	}

	return c, nil
}
