package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/graphmodel"
)

func TestAddNodeAddEdge(t *testing.T) {
	g := graphmodel.NewGraph("g1")
	a := g.AddNode(1)
	b := g.AddNode(2)
	eIdx, err := g.AddEdge(a, b, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, eIdx)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Contains(t, g.Node(a).Edges, eIdx)
	assert.Contains(t, g.Node(b).Edges, eIdx)
}

func TestAddEdgeRejectsSelfLoopAndBadIndex(t *testing.T) {
	g := graphmodel.NewGraph("g1")
	a := g.AddNode(1)
	_, err := g.AddEdge(a, a, 1)
	assert.ErrorIs(t, err, graphmodel.ErrSelfLoop)

	_, err = g.AddEdge(a, 99, 1)
	assert.ErrorIs(t, err, graphmodel.ErrNodeIndex)
}

func TestPrepareSortsIncidentEdges(t *testing.T) {
	g := graphmodel.NewGraph("g1")
	center := g.AddNode(1)
	b := g.AddNode(3)
	c := g.AddNode(2)
	d := g.AddNode(2)
	_, _ = g.AddEdge(center, b, 20)
	_, _ = g.AddEdge(center, c, 10)
	_, _ = g.AddEdge(center, d, 10)
	g.Prepare()
	assert.True(t, g.Prepared())

	edges := g.Node(center).Edges
	require.Len(t, edges, 3)
	// Sorted by (edge type, dst type, dst index): edges to c and d (type
	// 10) sort before the edge to b (type 20); among the two type-10
	// edges, c (type 2) ties with d (type 2) so the lower dst index wins.
	assert.Equal(t, graphmodel.Type(10), g.Edge(edges[0]).Type)
	assert.Equal(t, graphmodel.Type(10), g.Edge(edges[1]).Type)
	assert.Equal(t, graphmodel.Type(20), g.Edge(edges[2]).Type)
}

func TestMaskNodeAndEdgeTypesPreservesFlags(t *testing.T) {
	g := graphmodel.NewGraph("g1")
	a := g.AddNode(graphmodel.Type(0b1011) | graphmodel.TypeWildcard)
	b := g.AddNode(1)
	eIdx, _ := g.AddEdge(a, b, graphmodel.Type(0b1111))

	g.MaskNodeTypes(graphmodel.Type(0b0001))
	g.MaskEdgeTypes(graphmodel.Type(0b0101))

	assert.True(t, g.Node(a).Type.IsWildcard())
	assert.Equal(t, graphmodel.Type(0b0001), g.Node(a).Type.Base())
	assert.Equal(t, graphmodel.Type(0b0101), g.Edge(eIdx).Type.Base())
}

func TestTypeMatches(t *testing.T) {
	wild := graphmodel.TypeWildcard | graphmodel.Type(5)
	carbon := graphmodel.Type(6)
	assert.True(t, wild.Matches(carbon))
	assert.True(t, carbon.Matches(wild))
	assert.False(t, carbon.Matches(graphmodel.Type(7)))
	assert.True(t, carbon.Matches(graphmodel.Type(6)))
}

func TestDegree(t *testing.T) {
	g := graphmodel.NewGraph("g1")
	a := g.AddNode(1)
	b := g.AddNode(1)
	c := g.AddNode(1)
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(a, c, 1)
	assert.Equal(t, 2, g.Degree(a))
	assert.Equal(t, 1, g.Degree(b))
	assert.Equal(t, 0, g.Degree(99))
}
