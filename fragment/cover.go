// File: cover.go
// Role: cover-based growth for the embedding-level switch (spec §4.4
// "Embedding-level switch") — extend and support-test a fragment by
// containment alone, without retaining per-host embeddings, then
// materialize back to full embeddings once the search passes emblvl.
package fragment

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// ExtendCover grows a single-edge child matching sig the same way
// Extend does, but tests the result by containment against f's known
// hosts instead of enumerating embeddings, leaving the child with a
// Cover and no live embedding list. f's own known hosts are used as
// the candidate set (Cover if f already has one, else the distinct
// hosts of f.Emb), since a child can only occur where its parent
// already does.
func (f *Fragment) ExtendCover(sig canon.ExtensionSignature) (*Fragment, error) {
	hosts, groups, err := f.knownHosts()
	if err != nil {
		return nil, err
	}

	child := cloneSub(f.Sub)
	newNode := child.AddNode(sig.DstType)
	newEdge, err := child.AddEdge(sig.Src, newNode, sig.EdgeType)
	if err != nil {
		return nil, err
	}

	cover, err := embedding.Build(hosts, groups, child)
	if err != nil {
		return nil, err
	}

	return &Fragment{
		Sub:    child,
		Cover:  cover,
		Parent: f,
		Idx:    newEdge,
		Src:    sig.Src,
		Dst:    newNode,
		Size:   0,
		Supp:   [5]int{0, 0, 0, 0, 0},
		Flags:  Valid | Closed | Packed,
		Kind:   f.Kind,
	}, nil
}

// Materialize converts a cover-only fragment into one with a live
// embedding list, by matching f.Sub against every host already known
// (via Cover) to contain it. A no-op if f already has live embeddings.
func (f *Fragment) Materialize() error {
	if f.Emb != nil || f.Cover == nil {
		return nil
	}

	var list *embedding.Embedding
	for i, h := range f.Cover.Hosts {
		e, err := embedding.Embed(h, f.Sub, f.Cover.Groups[i])
		if err != nil {
			return err
		}
		list = embedding.Append(list, e)
	}

	f.Emb = list
	f.Cover = nil
	f.Flags = f.Flags.Clear(Packed)

	return nil
}

// knownHosts returns the hosts and groups already known to contain f,
// preferring its Cover when present.
func (f *Fragment) knownHosts() ([]*graphmodel.Graph, []embedding.Group, error) {
	if f.Cover != nil {
		return f.Cover.Hosts, f.Cover.Groups, nil
	}
	if f.Emb == nil {
		return nil, nil, ErrNoEmbeddings
	}

	var hosts []*graphmodel.Graph
	var groups []embedding.Group
	seen := make(map[*graphmodel.Graph]bool)
	for e := f.Emb; e != nil; e = e.Succ {
		if seen[e.Host] {
			continue
		}
		seen[e.Host] = true
		hosts = append(hosts, e.Host)
		groups = append(groups, e.Group)
	}

	return hosts, groups, nil
}
