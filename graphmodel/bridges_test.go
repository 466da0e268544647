package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsminer/fsminer/graphmodel"
)

func TestMarkBridgesChainAllBridges(t *testing.T) {
	g := graphmodel.NewGraph("chain")
	a, b, c := g.AddNode(6), g.AddNode(6), g.AddNode(6)
	e1, _ := g.AddEdge(a, b, 1)
	e2, _ := g.AddEdge(b, c, 1)
	g.MarkBridges()
	assert.True(t, g.Bridged())
	assert.True(t, g.Edge(e1).Bridge)
	assert.True(t, g.Edge(e2).Bridge)
}

func TestMarkBridgesRingHasNoBridges(t *testing.T) {
	g := hexagon()
	g.MarkBridges()
	for _, e := range g.Edges {
		assert.False(t, e.Bridge)
	}
}

func TestMarkBridgesMixedRingAndTail(t *testing.T) {
	g := hexagon()
	tail := g.AddNode(7)
	tailEdge, _ := g.AddEdge(0, tail, 1)
	g.MarkBridges()
	assert.True(t, g.Edge(tailEdge).Bridge)
	for i := 0; i < 6; i++ {
		assert.False(t, g.Edge(i).Bridge)
	}
}

func TestMarkBridgesIgnoresParallelEdges(t *testing.T) {
	g := graphmodel.NewGraph("multi")
	a, b := g.AddNode(6), g.AddNode(6)
	e1, _ := g.AddEdge(a, b, 1)
	e2, _ := g.AddEdge(a, b, 2)
	g.MarkBridges()
	assert.False(t, g.Edge(e1).Bridge)
	assert.False(t, g.Edge(e2).Bridge)
}
