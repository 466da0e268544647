package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/graphmodel"
)

// path builds A(1)-B(2)-C(3), node types 1,2,3, edge type 10 both hops.
func path(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.NewGraph("path")
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	_, err := g.AddEdge(a, b, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 10)
	require.NoError(t, err)

	return g
}

// triangle builds a symmetric 3-cycle of identically typed nodes.
func triangle(t *testing.T) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.NewGraph("triangle")
	a := g.AddNode(6)
	b := g.AddNode(6)
	c := g.AddNode(6)
	_, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(c, a, 1)
	require.NoError(t, err)

	return g
}

func TestCurrentCodeWordSortsByKind(t *testing.T) {
	g := path(t)
	cw, err := canon.CurrentCodeWord(g, canon.Breadth1)
	require.NoError(t, err)
	assert.Equal(t, graphmodel.Type(1), cw.Root)
	require.Len(t, cw.Quads, 2)
	assert.Equal(t, 0, cw.Quads[0].Src)
	assert.Equal(t, 1, cw.Quads[1].Src)
}

func TestBestCodeWordDeterministicAcrossIsomorphs(t *testing.T) {
	g1 := path(t)

	g2 := graphmodel.NewGraph("path-relabeled")
	c := g2.AddNode(3)
	a := g2.AddNode(1)
	b := g2.AddNode(2)
	_, err := g2.AddEdge(b, a, 10)
	require.NoError(t, err)
	_, err = g2.AddEdge(b, c, 10)
	require.NoError(t, err)

	best1, err := canon.BestCodeWord(g1, canon.Breadth1)
	require.NoError(t, err)
	best2, err := canon.BestCodeWord(g2, canon.Breadth1)
	require.NoError(t, err)
	assert.True(t, best1.Equal(best2), "isomorphic subgraphs must share a minimum code word")
}

func TestIsCanonicOnTriangleSymmetry(t *testing.T) {
	g := triangle(t)
	verdict, err := canon.IsCanonic(g, canon.Depth, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, verdict, "every root of a symmetric triangle is canonic")
	for i := 0; i < g.NodeCount(); i++ {
		assert.LessOrEqual(t, g.Node(i).Orbit, i)
	}
}

func TestIsCanonicDetectsNonCanonicNumbering(t *testing.T) {
	// B-A-C with A typed lower than B: relabeling so the smaller-typed
	// node is not discovery position 0 should not be canonic for a CF
	// that orders by ascending dst type from the root.
	g := graphmodel.NewGraph("reordered")
	b := g.AddNode(2)
	a := g.AddNode(1)
	c := g.AddNode(3)
	_, err := g.AddEdge(b, a, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 10)
	require.NoError(t, err)

	verdict, err := canon.IsCanonic(g, canon.Breadth1, 10)
	require.NoError(t, err)
	assert.NotEqual(t, 1, verdict, "node 0 typed 2 cannot be canonic when a lower-typed root exists")
}

func TestIsCanonicEmptyAndDisconnected(t *testing.T) {
	empty := graphmodel.NewGraph("empty")
	_, err := canon.IsCanonic(empty, canon.Breadth1, 0)
	assert.ErrorIs(t, err, canon.ErrEmptySubgraph)

	g := graphmodel.NewGraph("disconnected")
	g.AddNode(1)
	g.AddNode(2)
	_, err = canon.IsCanonic(g, canon.Breadth1, 0)
	assert.ErrorIs(t, err, canon.ErrDisconnected)
}

func TestMakeCanonicProducesValidPermutation(t *testing.T) {
	g := graphmodel.NewGraph("reordered")
	b := g.AddNode(2)
	a := g.AddNode(1)
	c := g.AddNode(3)
	_, err := g.AddEdge(b, a, 10)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, 10)
	require.NoError(t, err)

	perm, err := canon.MakeCanonic(g, canon.Breadth1, -1)
	require.NoError(t, err)
	require.Len(t, perm.NodePerm, 3)
	require.Len(t, perm.EdgePerm, 2)

	seen := make(map[int]bool)
	for _, p := range perm.NodePerm {
		assert.False(t, seen[p], "NodePerm must be a bijection")
		seen[p] = true
	}
}

func TestSignatureSetDedupAndOrder(t *testing.T) {
	var set canon.SignatureSet
	sig := canon.ExtensionSignature{Src: 0, EdgeType: 10, DstType: 2}
	assert.True(t, set.Add(sig))
	assert.False(t, set.Add(sig), "duplicate signature must not be re-added")
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(sig))
	assert.False(t, set.Contains(canon.ExtensionSignature{Src: 1, EdgeType: 10, DstType: 2}))
}

func TestExtensionsUsesGrowthStateRestriction(t *testing.T) {
	g := path(t)
	extIdx := graphmodel.BuildExtIndex([]*graphmodel.Graph{g})
	growth := canon.NewGrowthState(0)
	growth.MaxSource = 1

	set := canon.Extensions(g, canon.Breadth1, growth, extIdx)
	for _, sig := range set.All() {
		assert.GreaterOrEqual(t, sig.Src, growth.MaxSource)
	}
	assert.Greater(t, set.Len(), 0)
}
