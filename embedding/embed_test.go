package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// linearHost builds host graph A-B-C (three distinct node types).
func linearHost() *graphmodel.Graph {
	g := graphmodel.NewGraph("host")
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	_, _ = g.AddEdge(a, b, 100)
	_, _ = g.AddEdge(b, c, 100)

	return g
}

func singleEdgeSub(srcType, edgeType, dstType graphmodel.Type) *graphmodel.Graph {
	s := graphmodel.NewGraph("sub")
	a := s.AddNode(srcType)
	b := s.AddNode(dstType)
	_, _ = s.AddEdge(a, b, edgeType)

	return s
}

func TestEmbedSingleEdgeFindsOneMatch(t *testing.T) {
	host := linearHost()
	sub := singleEdgeSub(1, 100, 2)

	list, err := embedding.Embed(host, sub, embedding.Focus)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, 1, embedding.Len(list))
	assert.Equal(t, []int{0, 1}, list.Nodes)
	assert.Equal(t, []int{0}, list.Edges)
}

func TestEmbedNoMatchForWrongType(t *testing.T) {
	host := linearHost()
	sub := singleEdgeSub(1, 100, 99)

	list, err := embedding.Embed(host, sub, embedding.Focus)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestEmbedSingleNodeFragment(t *testing.T) {
	host := linearHost()
	sub := graphmodel.NewGraph("sub")
	sub.AddNode(2)

	list, err := embedding.Embed(host, sub, embedding.Focus)
	require.NoError(t, err)
	assert.Equal(t, 1, embedding.Len(list))
	assert.Equal(t, []int{1}, list.Nodes)
}

func TestContainsShortCircuits(t *testing.T) {
	host := linearHost()
	sub := singleEdgeSub(1, 100, 2)

	ok, err := embedding.Contains(host, sub)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = embedding.Contains(host, singleEdgeSub(1, 100, 99))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmbedRejectsNilArgs(t *testing.T) {
	_, err := embedding.Embed(nil, singleEdgeSub(1, 1, 1), embedding.Focus)
	assert.ErrorIs(t, err, embedding.ErrNilHost)

	_, err = embedding.Embed(linearHost(), nil, embedding.Focus)
	assert.ErrorIs(t, err, embedding.ErrNilSub)
}

func TestEmbedFindsAllSymmetricMatches(t *testing.T) {
	// A triangle host has three automorphic embeddings of a single
	// same-typed edge.
	host := graphmodel.NewGraph("triangle")
	a, b, c := host.AddNode(6), host.AddNode(6), host.AddNode(6)
	_, _ = host.AddEdge(a, b, 1)
	_, _ = host.AddEdge(b, c, 1)
	_, _ = host.AddEdge(c, a, 1)

	sub := singleEdgeSub(6, 1, 6)
	list, err := embedding.Embed(host, sub, embedding.Focus)
	require.NoError(t, err)
	// Each of the 3 edges matches in both directions: 6 embeddings.
	assert.Equal(t, 6, embedding.Len(list))
}
