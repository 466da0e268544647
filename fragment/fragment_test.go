package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/fragment"
	"github.com/fsminer/fsminer/graphmodel"
	"github.com/fsminer/fsminer/mis"
)

// linearHosts returns two copies of A(1)-B(2)-C(3), edge type 10.
func linearHosts(t *testing.T) []*graphmodel.Graph {
	t.Helper()
	mk := func(name string) *graphmodel.Graph {
		g := graphmodel.NewGraph(name)
		a := g.AddNode(1)
		b := g.AddNode(2)
		c := g.AddNode(3)
		_, err := g.AddEdge(a, b, 10)
		require.NoError(t, err)
		_, err = g.AddEdge(b, c, 10)
		require.NoError(t, err)
		g.Prepare()

		return g
	}

	return []*graphmodel.Graph{mk("h1"), mk("h2")}
}

func TestSeedAndExtend(t *testing.T) {
	hosts := linearHosts(t)
	groups := []embedding.Group{embedding.Focus, embedding.Focus}

	seed, err := fragment.Seed(1, hosts, groups, canon.Breadth1)
	require.NoError(t, err)
	assert.Equal(t, 1, seed.NodeCount())
	assert.Equal(t, 2, embedding.Len(seed.Emb))

	child, err := seed.Extend(canon.ExtensionSignature{Src: 0, EdgeType: 10, DstType: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, child.NodeCount())
	assert.Equal(t, 2, embedding.Len(child.Emb))
	assert.Same(t, seed, child.Parent)
}

func TestComputeSupportGraphs(t *testing.T) {
	hosts := linearHosts(t)
	groups := []embedding.Group{embedding.Focus, embedding.Complement}
	seed, err := fragment.Seed(1, hosts, groups, canon.Breadth1)
	require.NoError(t, err)

	require.NoError(t, seed.ComputeSupport(fragment.Graphs, mis.AlgoExact))
	assert.Equal(t, 1, seed.Supp[0])
	assert.Equal(t, 1, seed.Supp[1])
}

func TestComputeSupportMinImage(t *testing.T) {
	hosts := linearHosts(t)
	groups := []embedding.Group{embedding.Focus, embedding.Focus}
	seed, err := fragment.Seed(1, hosts, groups, canon.Breadth1)
	require.NoError(t, err)

	require.NoError(t, seed.ComputeSupport(fragment.MinImage, mis.AlgoExact))
	assert.Equal(t, 2, seed.Supp[0])
}

func TestIsClosedDetectsNonClosedParent(t *testing.T) {
	hosts := linearHosts(t)
	groups := []embedding.Group{embedding.Focus, embedding.Focus}
	seed, err := fragment.Seed(1, hosts, groups, canon.Breadth1)
	require.NoError(t, err)

	require.NoError(t, seed.ComputeSupport(fragment.Graphs, mis.AlgoExact))
	extIdx := graphmodel.BuildExtIndex(hosts)
	closed, err := seed.IsClosed(extIdx, fragment.Graphs, mis.AlgoExact)
	require.NoError(t, err)
	assert.False(t, closed, "A always co-occurs with A-B at the same support")
}

func TestDetectPerfectExtension(t *testing.T) {
	hosts := linearHosts(t)
	groups := []embedding.Group{embedding.Focus, embedding.Focus}
	seed, err := fragment.Seed(1, hosts, groups, canon.Breadth1)
	require.NoError(t, err)

	extIdx := graphmodel.BuildExtIndex(hosts)
	child, err := seed.DetectPerfectExtension(extIdx)
	require.NoError(t, err)
	require.NotNil(t, child, "A always extends uniquely to A-B in both hosts")
	assert.True(t, seed.Flags.Has(fragment.Perfect))
}

func TestExtendRingOnTriangleHost(t *testing.T) {
	host := graphmodel.NewGraph("triangle")
	a := host.AddNode(6)
	b := host.AddNode(6)
	c := host.AddNode(6)
	_, err := host.AddEdge(a, b, 1)
	require.NoError(t, err)
	_, err = host.AddEdge(b, c, 1)
	require.NoError(t, err)
	_, err = host.AddEdge(c, a, 1)
	require.NoError(t, err)
	host.Prepare()

	seed, err := fragment.Seed(6, []*graphmodel.Graph{host}, []embedding.Group{embedding.Focus}, canon.Depth)
	require.NoError(t, err)

	child, err := seed.ExtendRing(0, []graphmodel.Type{1, 1, 1}, []graphmodel.Type{6, 6})
	require.NoError(t, err)
	assert.Equal(t, 3, child.NodeCount())
	assert.Greater(t, embedding.Len(child.Emb), 0, "the ring must close back onto the anchor in a symmetric triangle host")
}

func TestExtendChainValidity(t *testing.T) {
	// Two hosts: one with a 2-hop chain from the anchor, one with a
	// 3-hop chain, so the reported lengths differ.
	short := graphmodel.NewGraph("short")
	a := short.AddNode(1)
	b := short.AddNode(2)
	c := short.AddNode(2)
	_, _ = short.AddEdge(a, b, 10)
	_, _ = short.AddEdge(b, c, 10)
	short.Prepare()

	long := graphmodel.NewGraph("long")
	a2 := long.AddNode(1)
	b2 := long.AddNode(2)
	c2 := long.AddNode(2)
	d2 := long.AddNode(2)
	_, _ = long.AddEdge(a2, b2, 10)
	_, _ = long.AddEdge(b2, c2, 10)
	_, _ = long.AddEdge(c2, d2, 10)
	long.Prepare()

	seed, err := fragment.Seed(1, []*graphmodel.Graph{short, long}, []embedding.Group{embedding.Focus, embedding.Focus}, canon.Breadth1)
	require.NoError(t, err)

	child, lengths, err := seed.ExtendChain(0, 10, 2, 5)
	require.NoError(t, err)
	require.NotNil(t, child)
	assert.True(t, fragment.ChainValid(lengths))
	assert.True(t, child.Flags.Has(fragment.ChainStart))
}

func TestAdaptRenumbersAndRemaps(t *testing.T) {
	hosts := linearHosts(t)
	groups := []embedding.Group{embedding.Focus, embedding.Focus}
	seed, err := fragment.Seed(1, hosts, groups, canon.Breadth1)
	require.NoError(t, err)
	child, err := seed.Extend(canon.ExtensionSignature{Src: 0, EdgeType: 10, DstType: 2})
	require.NoError(t, err)

	before := embedding.Len(child.Emb)
	require.NoError(t, child.Adapt())
	assert.True(t, child.Flags.Has(fragment.Adapted))
	assert.Equal(t, before, embedding.Len(child.Emb))

	require.NoError(t, child.Adapt()) // second call is a no-op
}

func TestEquivalentDetectsIsomorphicSubgraphs(t *testing.T) {
	hosts := linearHosts(t)
	groups := []embedding.Group{embedding.Focus, embedding.Focus}
	seed, err := fragment.Seed(1, hosts, groups, canon.Breadth1)
	require.NoError(t, err)
	child, err := seed.Extend(canon.ExtensionSignature{Src: 0, EdgeType: 10, DstType: 2})
	require.NoError(t, err)

	same, err := fragment.Equivalent(child, child, canon.Breadth1)
	require.NoError(t, err)
	assert.True(t, same)
}
