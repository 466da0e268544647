package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsminer/fsminer/graphmodel"
)

func TestBuildExtIndexCountsBothOrientations(t *testing.T) {
	g := graphmodel.NewGraph("g1")
	a := g.AddNode(6) // carbon
	b := g.AddNode(8) // oxygen
	_, _ = g.AddEdge(a, b, 1)

	idx := graphmodel.BuildExtIndex([]*graphmodel.Graph{g})

	ent, ok := idx.Lookup(6, 1, 8)
	assert.True(t, ok)
	assert.Equal(t, 1, ent.Count)
	assert.Equal(t, 1, ent.MaxSrcDegree)

	ent2, ok2 := idx.Lookup(8, 1, 6)
	assert.True(t, ok2)
	assert.Equal(t, 1, ent2.Count)
}

func TestExtIndexWildcardLookup(t *testing.T) {
	g := graphmodel.NewGraph("g1")
	a := g.AddNode(6)
	b := g.AddNode(8)
	_, _ = g.AddEdge(a, b, 1)
	idx := graphmodel.BuildExtIndex([]*graphmodel.Graph{g})

	assert.True(t, idx.Possible(graphmodel.TypeWildcard, 1, 8))
	assert.False(t, idx.Possible(6, 1, 99))
}

func TestExtIndexMaxSrcDegree(t *testing.T) {
	g := graphmodel.NewGraph("star")
	center := g.AddNode(6)
	for i := 0; i < 3; i++ {
		leaf := g.AddNode(8)
		_, _ = g.AddEdge(center, leaf, 1)
	}
	idx := graphmodel.BuildExtIndex([]*graphmodel.Graph{g})
	ent, ok := idx.Lookup(6, 1, 8)
	assert.True(t, ok)
	assert.Equal(t, 3, ent.Count)
	assert.Equal(t, 3, ent.MaxSrcDegree)
}
