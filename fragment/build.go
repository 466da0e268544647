// File: build.go
// Role: constructing seed fragments and growing single-edge children.
package fragment

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// Seed builds a one-node fragment of the given type and embeds it
// against every (host, group) pair, starting a fresh search root.
func Seed(nodeType graphmodel.Type, hosts []*graphmodel.Graph, groups []embedding.Group, kind canon.Kind) (*Fragment, error) {
	sub := graphmodel.NewGraph("")
	sub.AddNode(nodeType)

	var list *embedding.Embedding
	for i, h := range hosts {
		e, err := embedding.Embed(h, sub, groups[i])
		if err != nil {
			return nil, err
		}
		list = embedding.Append(list, e)
	}

	return &Fragment{Sub: sub, Emb: list, Flags: Valid | Closed, Kind: kind}, nil
}

// Extend grows a single-edge child matching sig from every embedding
// in f.Emb. The child's subgraph is f.Sub plus one new node (sig's
// destination type) and one new edge (sig's source role to that new
// node, of sig's edge type); its embedding list is the union, across
// every parent embedding, of embedding.Extend's results.
func (f *Fragment) Extend(sig canon.ExtensionSignature) (*Fragment, error) {
	if f.Emb == nil {
		return nil, ErrNoEmbeddings
	}

	child := cloneSub(f.Sub)
	newNode := child.AddNode(sig.DstType)
	newEdge, err := child.AddEdge(sig.Src, newNode, sig.EdgeType)
	if err != nil {
		return nil, err
	}

	var list *embedding.Embedding
	extCount := 0
	var firstParentEmb *embedding.Embedding
	for e := f.Emb; e != nil; e = e.Succ {
		if e.Packed() {
			continue
		}
		res, err := embedding.Extend(e, sig.Src, -1, sig.EdgeType, sig.DstType)
		if err != nil {
			return nil, err
		}
		if res != nil && firstParentEmb == nil {
			firstParentEmb = e
		}
		extCount += embedding.Len(res)
		list = embedding.Append(list, res)
	}

	return &Fragment{
		Sub:       child,
		Emb:       list,
		Parent:    f,
		ParentEmb: firstParentEmb,
		Idx:       newEdge,
		Src:       sig.Src,
		Dst:       newNode,
		Size:      0,
		Supp:      [5]int{0, 0, 0, 0, extCount},
		Flags:     Valid | Closed,
		Kind:      f.Kind,
	}, nil
}

// cloneSub deep-copies a subgraph so a child fragment never mutates
// its parent's.
func cloneSub(sub *graphmodel.Graph) *graphmodel.Graph {
	g := graphmodel.NewGraph(sub.Name)
	for i := 0; i < sub.NodeCount(); i++ {
		g.AddNode(sub.Node(i).Type)
	}
	for _, e := range sub.Edges {
		_, _ = g.AddEdge(e.Src, e.Dst, e.Type)
	}

	return g
}
