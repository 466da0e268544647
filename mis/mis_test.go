package mis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
	"github.com/fsminer/fsminer/mis"
)

func triangleOverlap() *mis.Graph {
	g := mis.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	return g
}

func TestForcedReductionViaGreedyIsolated(t *testing.T) {
	g := mis.NewGraph(3) // all isolated
	sel := mis.Greedy(g)
	assert.Len(t, sel, 3)
}

func TestGreedyOnTriangleSelectsOne(t *testing.T) {
	g := triangleOverlap()
	sel := mis.Greedy(g)
	assert.Len(t, sel, 1, "a triangle's maximum independent set has size 1")
}

func TestExactOnPathSelectsTwo(t *testing.T) {
	g := mis.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	sel := mis.Exact(g)
	assert.Len(t, sel, 2, "a 3-node path's MIS is the two endpoints")
}

func TestExactAtLeastAsGoodAsGreedy(t *testing.T) {
	g := mis.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 0)
	assert.GreaterOrEqual(t, len(mis.Exact(g)), len(mis.Greedy(g)))
}

func host(name string) *graphmodel.Graph {
	g := graphmodel.NewGraph(name)
	g.AddNode(1)
	g.AddNode(1)

	return g
}

func TestByHostGroupsAndSkipsPacked(t *testing.T) {
	h1 := host("h1")
	e1 := &embedding.Embedding{Nodes: []int{0, 1}, Edges: []int{0}, Host: h1, Group: embedding.Focus}
	e2 := &embedding.Embedding{Nodes: []int{1, 0}, Edges: []int{0}, Host: h1, Group: embedding.Focus}
	packed := &embedding.Embedding{Host: h1, Group: embedding.Focus} // Nodes==nil
	list := embedding.Append(embedding.Append(e1, e2), packed)

	reps, graphs, groups := mis.ByHost(list, mis.Olap)
	require.Len(t, reps, 1)
	require.Len(t, graphs, 1)
	assert.Equal(t, embedding.Focus, groups[0])
	assert.Equal(t, 2, graphs[0].N, "packed placeholder must not count as a node")
}

func TestSupportSumsAcrossHosts(t *testing.T) {
	h1, h2 := host("h1"), host("h2")
	e1 := &embedding.Embedding{Nodes: []int{0, 1}, Edges: []int{0}, Host: h1, Group: embedding.Focus}
	e2 := &embedding.Embedding{Nodes: []int{0, 1}, Edges: []int{0}, Host: h2, Group: embedding.Complement}
	list := embedding.Append(e1, e2)

	focus, compl := mis.Support(list, mis.Olap, mis.AlgoExact)
	assert.Equal(t, 1, focus)
	assert.Equal(t, 1, compl)
}

func TestHarmfulOverlapRequiresRoleMismatch(t *testing.T) {
	h1 := host("h1")
	// Same two embeddings, identical role assignment: no harmful overlap.
	e1 := &embedding.Embedding{Nodes: []int{0, 1}, Edges: []int{0}, Host: h1, Group: embedding.Focus}
	e2 := &embedding.Embedding{Nodes: []int{0, 1}, Edges: []int{0}, Host: h1, Group: embedding.Focus}
	list := embedding.Append(e1, e2)

	_, graphs, _ := mis.ByHost(list, mis.Harmful)
	require.Len(t, graphs, 1)
	assert.Equal(t, 0, graphs[0].Degree(0), "identical role assignment is not a harmful overlap")

	// Swap roles: node 0 plays role 1 and vice versa -> harmful overlap.
	e3 := &embedding.Embedding{Nodes: []int{1, 0}, Edges: []int{0}, Host: h1, Group: embedding.Focus}
	list2 := embedding.Append(e1, e3)
	_, graphs2, _ := mis.ByHost(list2, mis.Harmful)
	assert.Equal(t, 1, graphs2[0].Degree(0))
}
