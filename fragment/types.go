// File: types.go
// Role: Flags, SupportKind, and the Fragment struct itself.
package fragment

import (
	"errors"

	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// Sentinel errors.
var (
	// ErrNoEmbeddings indicates a fragment has neither a live embedding
	// list nor a cover to build a subgraph or compute support from.
	ErrNoEmbeddings = errors.New("fragment: no embeddings")

	// ErrPackedRole indicates an operation needing node-role detail was
	// attempted on a packed fragment; Unpack it first.
	ErrPackedRole = errors.New("fragment: embeddings are packed")
)

// Flags is the fragment state bitmask (spec §9 "Fragment flags
// transitions").
type Flags uint16

const (
	// Valid starts true; cleared when CF pruning finds the fragment
	// non-canonical, but the search subtree below it still continues.
	Valid Flags = 1 << iota
	// Closed starts true; cleared when a child extension is observed
	// with identical support, or by an explicit isClosed test.
	Closed
	// ChainStart marks a fragment that begins a variable-length chain.
	ChainStart
	// SiblingsPossible marks a fragment with at least one sibling that
	// may be equivalent to it under the active CF.
	SiblingsPossible
	// Perfect is set by the first successful perfect-extension test.
	Perfect
	// Reverted is set by revert() after full perfect-extension pruning.
	Reverted
	// Adapted is set by the first successful ring/chain adapt(); later
	// calls are no-ops.
	Adapted
	// OrbitsKnown is set by a successful canonical-form test.
	OrbitsKnown
	// Packed is set when the per-host embedding count exceeds maxepg,
	// or upon an explicit pack().
	Packed
)

// Has reports whether all bits of want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Set returns f with bits added set.
func (f Flags) Set(added Flags) Flags { return f | added }

// Clear returns f with bits removed cleared.
func (f Flags) Clear(removed Flags) Flags { return f &^ removed }

// SupportKind selects one of the four support measures (spec §4.3).
type SupportKind int

const (
	// Graphs counts distinct host graphs per group.
	Graphs SupportKind = iota
	// MinImage takes, per group, the minimum over fragment roles of
	// the number of distinct host nodes mapped to that role.
	MinImage
	// MisOlap sums per-host maximum-independent-set sizes on the plain
	// overlap graph.
	MisOlap
	// MisHarm sums per-host maximum-independent-set sizes on the
	// role-mismatch ("harmful") overlap graph.
	MisHarm
)

// Fragment is one node of the search tree: a subgraph, where it
// occurs, how it was reached from its parent, and its current
// pruning-pipeline state.
type Fragment struct {
	// Sub is the fragment's subgraph, built when the fragment is
	// created (nil only for a zero Fragment value).
	Sub *graphmodel.Graph

	// Emb is the live embedding list, or nil if Cover is in use
	// instead (Packed flag distinguishes "some hosts packed" from
	// "fully packed to a cover").
	Emb *embedding.Embedding

	// Cover is the packed host-existence summary, populated once
	// per-host embedding detail has been discarded.
	Cover *embedding.Cover

	// Parent is the fragment this one was grown from (nil for a seed).
	Parent *Fragment
	// ParentEmb is the specific parent embedding the extending edge
	// was matched against when this fragment was first produced.
	ParentEmb *embedding.Embedding
	// Idx is the index of the first newly added edge in Sub.
	Idx int
	// Src, Dst are the subgraph-role endpoints of the extension.
	Src, Dst int
	// Size is 0 for a single-edge extension, positive for a ring of
	// that many nodes, negative for a variable-length chain of |Size|
	// nodes.
	Size int

	// Supp holds [focus-support, compl-support, focus-embcnt,
	// compl-embcnt, parent-embedding-extension-counter].
	Supp [5]int

	// Flags is the current state bitmask.
	Flags Flags

	// Ris holds, for ring extensions, the fragment roles of the ring's
	// new nodes in ring order (the anchor is not included); nil for
	// non-ring fragments. It records no
	// insertion positions or maximum legal position.
	Ris []int

	// Kind is the canonical form this fragment's search operates
	// under.
	Kind canon.Kind
}

// NodeCount returns the fragment subgraph's node count, or 0 if Sub
// has not been built yet.
func (f *Fragment) NodeCount() int {
	if f.Sub == nil {
		return 0
	}

	return f.Sub.NodeCount()
}
