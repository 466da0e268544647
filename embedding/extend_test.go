package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

func TestExtendNewNode(t *testing.T) {
	host := linearHost() // A(0)-B(1)-C(2), edge types 100
	emb := &embedding.Embedding{Nodes: []int{0, 1}, Edges: []int{0}, Host: host, Group: embedding.Focus}

	list, err := embedding.Extend(emb, 1, -1, 100, 3)
	require.NoError(t, err)
	require.Equal(t, 1, embedding.Len(list))
	assert.Equal(t, []int{0, 1, 2}, list.Nodes)
	assert.Equal(t, []int{0, 1}, list.Edges)
}

func TestExtendNewNodeExcludesUsedHostNode(t *testing.T) {
	host := linearHost()
	// Fragment already covers both A and B; extending from B toward A's
	// type must not re-use node 0.
	emb := &embedding.Embedding{Nodes: []int{0, 1}, Edges: []int{0}, Host: host, Group: embedding.Focus}
	list, err := embedding.Extend(emb, 1, -1, 100, 1)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestExtendRingClosing(t *testing.T) {
	host := graphmodel.NewGraph("triangle")
	a, b, c := host.AddNode(6), host.AddNode(6), host.AddNode(6)
	_, _ = host.AddEdge(a, b, 1)
	_, _ = host.AddEdge(b, c, 1)
	_, _ = host.AddEdge(c, a, 1)

	emb := &embedding.Embedding{Nodes: []int{0, 1, 2}, Edges: []int{0, 1}, Host: host, Group: embedding.Focus}
	list, err := embedding.Extend(emb, 2, 0, 1, 6)
	require.NoError(t, err)
	require.Equal(t, 1, embedding.Len(list))
	assert.Equal(t, []int{0, 1, 2}, list.Nodes)
	assert.Equal(t, []int{0, 1, 2}, list.Edges)
}

func TestExtendRejectsPacked(t *testing.T) {
	packed := &embedding.Embedding{Host: linearHost()}
	_, err := embedding.Extend(packed, 0, -1, 100, 1)
	assert.ErrorIs(t, err, embedding.ErrPacked)
}
