// File: adapt.go
// Role: adapt() — renumber a freshly grown fragment into canonical
// order, preserving its parent's prefix, and remap every embedding to
// match (spec §9: ADAPTED flag, "first successful call only").
package fragment

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// Adapt renumbers f.Sub into kind-canonical order, keeping the first
// len(f.Parent.Sub.Edges) edges fixed (0 if f has no parent), and
// remaps every embedding's Nodes/Edges accordingly. A no-op if
// already adapted.
func (f *Fragment) Adapt() error {
	if f.Flags.Has(Adapted) {
		return nil
	}

	keep := 0
	if f.Parent != nil {
		keep = len(f.Parent.Sub.Edges)
	}

	perm, err := canon.MakeCanonic(f.Sub, f.Kind, keep)
	if err != nil {
		return err
	}

	applyPermToSub(f.Sub, perm)
	f.Emb = remapEmbeddings(f.Emb, perm)
	f.Flags = f.Flags.Set(Adapted)

	return nil
}

// applyPermToSub rewrites sub's node and edge arrays in place under
// perm: node at old index i moves to perm.NodePerm[i], edge at old
// index j moves to perm.EdgePerm[j].
func applyPermToSub(sub *graphmodel.Graph, perm canon.Permutation) {
	newNodes := make([]*graphmodel.Node, len(sub.Nodes))
	for old, n := range sub.Nodes {
		newNodes[perm.NodePerm[old]] = n
	}
	newEdges := make([]*graphmodel.Edge, len(sub.Edges))
	for old, e := range sub.Edges {
		e.Src = perm.NodePerm[e.Src]
		e.Dst = perm.NodePerm[e.Dst]
		newEdges[perm.EdgePerm[old]] = e
	}
	sub.Nodes = newNodes
	sub.Edges = newEdges
	for _, n := range sub.Nodes {
		for i, eIdx := range n.Edges {
			n.Edges[i] = perm.EdgePerm[eIdx]
		}
	}
}

func remapEmbeddings(list *embedding.Embedding, perm canon.Permutation) *embedding.Embedding {
	var head, tail *embedding.Embedding
	for e := list; e != nil; e = e.Succ {
		if e.Packed() {
			cp := *e
			cp.Succ = nil
			appendEmb(&head, &tail, &cp)

			continue
		}
		nodes := make([]int, len(e.Nodes))
		for old, v := range e.Nodes {
			nodes[perm.NodePerm[old]] = v
		}
		edges := make([]int, len(e.Edges))
		for old, v := range e.Edges {
			edges[perm.EdgePerm[old]] = v
		}
		cp := &embedding.Embedding{Nodes: nodes, Edges: edges, Host: e.Host, Group: e.Group}
		appendEmb(&head, &tail, cp)
	}

	return head
}

func appendEmb(head, tail **embedding.Embedding, e *embedding.Embedding) {
	if *head == nil {
		*head = e
		*tail = e

		return
	}
	(*tail).Succ = e
	*tail = e
}
