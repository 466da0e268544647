package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/graphmodel"
)

// hexagon builds a 6-ring (benzene skeleton without substituents).
func hexagon() *graphmodel.Graph {
	g := graphmodel.NewGraph("benzene")
	ids := make([]int, 6)
	for i := range ids {
		ids[i] = g.AddNode(6) // carbon
	}
	for i := 0; i < 6; i++ {
		_, _ = g.AddEdge(ids[i], ids[(i+1)%6], 1)
	}

	return g
}

func TestMarkRingsFindsHexagon(t *testing.T) {
	g := hexagon()
	require.NoError(t, g.MarkRings(3, 7))
	assert.Equal(t, 1, g.RingCount())
	for _, e := range g.Edges {
		assert.True(t, e.OnRing(0), "every edge of a single hexagon is on the one ring found")
	}
}

func TestMarkRingsRespectsSizeWindow(t *testing.T) {
	g := hexagon()
	require.NoError(t, g.MarkRings(7, 10))
	assert.Equal(t, 0, g.RingCount())
}

func TestMarkRingsRejectsBadWindow(t *testing.T) {
	g := hexagon()
	assert.ErrorIs(t, g.MarkRings(5, 3), graphmodel.ErrBadRingSize)
	assert.ErrorIs(t, g.MarkRings(2, 3), graphmodel.ErrBadRingSize)
}

func TestMarkRingsTreeHasNoRings(t *testing.T) {
	g := graphmodel.NewGraph("chain")
	a, b, c := g.AddNode(6), g.AddNode(6), g.AddNode(6)
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, c, 1)
	require.NoError(t, g.MarkRings(3, 7))
	assert.Equal(t, 0, g.RingCount())
}

func TestMarkRingsOverflowFallsBackGracefully(t *testing.T) {
	// A "ladder" of many independent small rings exceeds MaxRings.
	g := graphmodel.NewGraph("ladder")
	top := g.AddNode(6)
	bottom := g.AddNode(6)
	prevTop, prevBottom := top, bottom
	_, _ = g.AddEdge(top, bottom, 1)
	for i := 0; i < graphmodel.MaxRings+5; i++ {
		nt := g.AddNode(6)
		nb := g.AddNode(6)
		_, _ = g.AddEdge(prevTop, nt, 1)
		_, _ = g.AddEdge(prevBottom, nb, 1)
		_, _ = g.AddEdge(nt, nb, 1)
		prevTop, prevBottom = nt, nb
	}
	err := g.MarkRings(3, 7)
	assert.ErrorIs(t, err, graphmodel.ErrTooManyRings)
	assert.Equal(t, graphmodel.MaxRings, g.RingCount())
}
