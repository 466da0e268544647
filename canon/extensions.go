// File: extensions.go
// Role: single-edge restricted-extension candidate generation, and
// the sorted/deduped signature set used to decide which candidates
// actually yield distinct children (spec §4.2/§9: "a sorted array of
// distinct child fragments, binary-searched").
//
// Ring and chain extensions require walking a representative
// embedding's host ring bits and are implemented in fragment, which
// owns the embedding coupling; this package only ever reasons about
// the subgraph's own topology plus the database-wide ExtIndex.
package canon

import (
	"sort"

	"github.com/fsminer/fsminer/graphmodel"
)

// ExtensionSignature identifies one candidate single-edge extension:
// grow a new edge of EdgeType from node Src (by discovery position)
// to a brand-new node of type DstType.
type ExtensionSignature struct {
	Src      int
	EdgeType graphmodel.Type
	DstType  graphmodel.Type
}

func (a ExtensionSignature) less(b ExtensionSignature) bool {
	if a.Src != b.Src {
		return a.Src < b.Src
	}
	if a.EdgeType != b.EdgeType {
		return a.EdgeType < b.EdgeType
	}

	return a.DstType < b.DstType
}

// SignatureSet is a sorted, deduplicated collection of
// ExtensionSignature, supporting O(log n) membership tests so a
// search loop can skip re-deriving an already-seen child.
type SignatureSet struct {
	items []ExtensionSignature
}

// Add inserts sig if not already present, keeping items sorted.
// Reports whether sig was newly added.
func (s *SignatureSet) Add(sig ExtensionSignature) bool {
	i := sort.Search(len(s.items), func(i int) bool { return !s.items[i].less(sig) })
	if i < len(s.items) && s.items[i] == sig {
		return false
	}
	s.items = append(s.items, ExtensionSignature{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = sig

	return true
}

// Contains reports whether sig is already recorded.
func (s *SignatureSet) Contains(sig ExtensionSignature) bool {
	i := sort.Search(len(s.items), func(i int) bool { return !s.items[i].less(sig) })

	return i < len(s.items) && s.items[i] == sig
}

// Len reports the number of distinct signatures recorded.
func (s *SignatureSet) Len() int { return len(s.items) }

// All returns the sorted signatures, for callers that need to iterate
// (e.g. to build child fragments in a deterministic order).
func (s *SignatureSet) All() []ExtensionSignature { return s.items }

// Extensions enumerates every single-edge restricted-extension
// candidate for sub: for each node eligible under kind/growth, every
// (edge type, destination type) pair the database's ExtIndex records
// for that source type. Candidates that the index proves cannot occur
// anywhere are never generated, so a caller at or above
// Miner's emblvl need not re-embed to discard them (spec §4.4).
func Extensions(sub *graphmodel.Graph, kind Kind, growth *GrowthState, extIdx *graphmodel.ExtIndex) SignatureSet {
	var set SignatureSet
	n := sub.NodeCount()
	for pos := 0; pos < n; pos++ {
		if !growth.Eligible(kind, pos) {
			continue
		}
		srcType := sub.Node(pos).Type
		for _, key := range extIdx.BySource(srcType) {
			set.Add(ExtensionSignature{Src: pos, EdgeType: key.Edge, DstType: key.Dst})
		}
	}

	return set
}
