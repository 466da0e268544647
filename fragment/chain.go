// File: chain.go
// Role: variable-length chain extension — a run of one or more
// (edgeType, nodeType) repetitions between an anchor and wherever the
// pattern stops matching in each host. The fragment records the
// shortest length observed (Size = -length) and is marked ChainStart;
// a chain is only reported as valid when at least two distinct
// lengths were observed across embeddings (spec §4.3's chain-validity
// rule) — a single consistent length is indistinguishable from a
// literal fixed-length subgraph and belongs to ordinary extension.
package fragment

import (
	"errors"

	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// ErrChainTooShort indicates a chain extension was requested with a
// non-positive maximum length.
var ErrChainTooShort = errors.New("fragment: chain maxLen must be >= 1")

// chainLength walks e's host, starting from role anchor, repeatedly
// matching (edgeType, nodeType) edges not yet used by e, up to
// maxLen steps, and returns the number of steps actually taken plus
// the embedding extended that far.
func chainLength(e *embedding.Embedding, anchor int, edgeType, nodeType graphmodel.Type, maxLen int) (int, *embedding.Embedding) {
	cur := e
	role := anchor
	for n := 0; n < maxLen; n++ {
		res, err := embedding.Extend(cur, role, -1, edgeType, nodeType)
		if err != nil || res == nil {
			return n, cur
		}
		cur = res // first match only: a chain walk does not branch
		role = len(cur.Nodes) - 1
	}

	return maxLen, cur
}

// ExtendChain grows a variable-length chain of (edgeType, nodeType)
// repetitions from fragment role anchor, up to maxLen steps per
// embedding. The child fragment's subgraph is built to the shortest
// length observed across f's embeddings; ChainValid reports whether
// at least two distinct lengths were actually seen.
func (f *Fragment) ExtendChain(anchor int, edgeType, nodeType graphmodel.Type, maxLen int) (*Fragment, []int, error) {
	if maxLen < 1 {
		return nil, nil, ErrChainTooShort
	}
	if f.Emb == nil {
		return nil, nil, ErrNoEmbeddings
	}

	lengths := make(map[int]int) // length -> occurrence count, for ChainValid
	minLen := maxLen + 1
	var extended []*embedding.Embedding
	var sources []*embedding.Embedding
	for e := f.Emb; e != nil; e = e.Succ {
		if e.Packed() {
			continue
		}
		n, cur := chainLength(e, anchor, edgeType, nodeType, maxLen)
		if n == 0 {
			continue
		}
		lengths[n]++
		if n < minLen {
			minLen = n
		}
		extended = append(extended, cur)
		sources = append(sources, e)
	}
	if len(extended) == 0 {
		return nil, nil, nil
	}

	child := cloneSub(f.Sub)
	prev := anchor
	firstEdge := -1
	for i := 0; i < minLen; i++ {
		n := child.AddNode(nodeType)
		eIdx, err := child.AddEdge(prev, n, edgeType)
		if err != nil {
			return nil, nil, err
		}
		if firstEdge < 0 {
			firstEdge = eIdx
		}
		prev = n
	}

	var list *embedding.Embedding
	extCount := 0
	var firstParentEmb *embedding.Embedding
	for i, e := range extended {
		// truncate this embedding's walk to exactly minLen steps so every
		// child embedding has the same role count as the subgraph.
		trimmed := &embedding.Embedding{
			Nodes: append([]int(nil), e.Nodes[:f.NodeCount()+minLen]...),
			Edges: append([]int(nil), e.Edges[:len(f.Sub.Edges)+minLen]...),
			Host:  e.Host,
			Group: e.Group,
		}
		if firstParentEmb == nil {
			firstParentEmb = sources[i]
		}
		extCount++
		list = embedding.Append(list, trimmed)
	}

	lengthsSeen := make([]int, 0, len(lengths))
	for l := range lengths {
		lengthsSeen = append(lengthsSeen, l)
	}

	cf := &Fragment{
		Sub:       child,
		Emb:       list,
		Parent:    f,
		ParentEmb: firstParentEmb,
		Idx:       firstEdge,
		Src:       anchor,
		Dst:       prev,
		Size:      -minLen,
		Supp:      [5]int{0, 0, 0, 0, extCount},
		Flags:     Valid | Closed | ChainStart,
		Kind:      f.Kind,
	}

	return cf, lengthsSeen, nil
}

// ChainValid reports whether the distinct chain lengths observed when
// building a chain fragment satisfy the at-least-two-distinct-lengths
// rule.
func ChainValid(lengthsSeen []int) bool {
	return len(lengthsSeen) >= 2
}
