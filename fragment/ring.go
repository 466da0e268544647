// File: ring.go
// Role: ring extension — attaching a new cycle of brand-new nodes to
// one existing fragment node (the new-pendant-ring case). Built by
// chaining embedding.Extend's new-node mode around the cycle and
// closing it with a ring-closing Extend back to the anchor role; this
// reuses the same injective backtracking embedding already performs,
// so correctness does not depend on consulting host ring bits — that
// is left as a future pruning optimization, not a correctness gap.
//
// Multi-point ring fusion (a ring sharing more than one node with the
// existing fragment) and equivalent-ring-variant enumeration
// (choosing among rotations/reflections that describe the same ring)
// are out of scope here.
package fragment

import (
	"errors"

	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// ErrRingTooSmall indicates a ring extension was requested with fewer
// than 3 nodes.
var ErrRingTooSmall = errors.New("fragment: ring size must be >= 3")

// ExtendRing grows a ring of len(edgeTypes) nodes (the anchor plus
// len(edgeTypes)-1 new ones) anchored at fragment role anchor, with edgeTypes[i] connecting ring position i
// to i+1 (position len-1 closing back to anchor) and nodeTypes[i] the
// type of the i-th newly introduced node (nodeTypes has one fewer
// entry than edgeTypes, since the anchor itself is not new).
func (f *Fragment) ExtendRing(anchor int, edgeTypes, nodeTypes []graphmodel.Type) (*Fragment, error) {
	k := len(edgeTypes)
	if k < 3 || len(nodeTypes) != k-1 {
		return nil, ErrRingTooSmall
	}
	if f.Emb == nil {
		return nil, ErrNoEmbeddings
	}

	child := cloneSub(f.Sub)
	roles := make([]int, k-1)
	prev := anchor
	firstNewEdge := -1
	for i := 0; i < k-1; i++ {
		n := child.AddNode(nodeTypes[i])
		eIdx, err := child.AddEdge(prev, n, edgeTypes[i])
		if err != nil {
			return nil, err
		}
		if firstNewEdge < 0 {
			firstNewEdge = eIdx
		}
		roles[i] = n
		prev = n
	}
	if _, err := child.AddEdge(prev, anchor, edgeTypes[k-1]); err != nil {
		return nil, err
	}

	var list *embedding.Embedding
	extCount := 0
	var firstParentEmb *embedding.Embedding
	for e := f.Emb; e != nil; e = e.Succ {
		if e.Packed() {
			continue
		}
		partials := []*embedding.Embedding{e}
		for i := 0; i < k-1; i++ {
			var next []*embedding.Embedding
			for _, p := range partials {
				role := anchor
				if i > 0 {
					role = len(p.Nodes) - 1
				}
				res, err := embedding.Extend(p, role, -1, edgeTypes[i], nodeTypes[i])
				if err != nil {
					return nil, err
				}
				for r := res; r != nil; r = r.Succ {
					cp := *r
					cp.Succ = nil
					next = append(next, &cp)
				}
			}
			partials = next
		}
		for _, p := range partials {
			lastRole := len(p.Nodes) - 1
			res, err := embedding.Extend(p, lastRole, anchor, edgeTypes[k-1], 0)
			if err != nil {
				return nil, err
			}
			if res != nil && firstParentEmb == nil {
				firstParentEmb = e
			}
			extCount += embedding.Len(res)
			list = embedding.Append(list, res)
		}
	}

	return &Fragment{
		Sub:       child,
		Emb:       list,
		Parent:    f,
		ParentEmb: firstParentEmb,
		Idx:       firstNewEdge,
		Src:       anchor,
		Dst:       roles[0],
		Size:      k,
		Supp:      [5]int{0, 0, 0, 0, extCount},
		Flags:     Valid | Closed,
		Ris:       append([]int(nil), roles...),
		Kind:      f.Kind,
	}, nil
}
