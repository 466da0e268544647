// File: types.go
// Role: Quad, CodeWord, Kind, CF, GrowthState declarations.
package canon

import (
	"errors"

	"github.com/fsminer/fsminer/graphmodel"
)

// Sentinel errors for canonical-form operations.
var (
	// ErrEmptySubgraph indicates an operation requires at least one node.
	ErrEmptySubgraph = errors.New("canon: subgraph has no nodes")

	// ErrDisconnected indicates a subgraph is not connected, violating
	// the fragment-subgraph invariant (spec §3).
	ErrDisconnected = errors.New("canon: subgraph is not connected")
)

// Kind selects one of the two concrete canonical forms.
type Kind int

const (
	// Breadth1 orders edges by (src, edgeType, dstType, dst) and
	// restricts new sources to indices >= the max source seen so far.
	Breadth1 Kind = iota
	// Breadth2 orders edges by (src, edgeType, dst, dstType); same
	// source restriction as Breadth1.
	Breadth2
	// Depth restricts new sources to nodes on the current rightmost
	// path of the discovery tree (gSpan-style DFS code).
	Depth
)

// String returns a short human-readable name, used in diagnostics and
// NORMFORM output headers.
func (k Kind) String() string {
	switch k {
	case Breadth1:
		return "CnFBreadth1"
	case Breadth2:
		return "CnFBreadth2"
	case Depth:
		return "CnFDepth"
	default:
		return "CnFUnknown"
	}
}

// Quad is one edge's contribution to a code word: source and
// destination node indices (in the CF's chosen order) plus their
// connecting edge type and destination node type.
type Quad struct {
	Src, Dst         int
	EdgeType, DstType graphmodel.Type
}

// less compares two quads under this CF's field-priority rule.
func (k Kind) less(a, b Quad) bool {
	if a.Src != b.Src {
		return a.Src < b.Src
	}
	if a.EdgeType != b.EdgeType {
		return a.EdgeType < b.EdgeType
	}
	switch k {
	case Breadth2:
		if a.Dst != b.Dst {
			return a.Dst < b.Dst
		}

		return a.DstType < b.DstType
	default: // Breadth1, Depth
		if a.DstType != b.DstType {
			return a.DstType < b.DstType
		}

		return a.Dst < b.Dst
	}
}

// CodeWord is a root type followed by a CF-ordered sequence of Quads;
// two code words of the same CF compare lexicographically root-first,
// then quad by quad using that CF's field priority.
type CodeWord struct {
	Root  graphmodel.Type
	Quads []Quad
}

// Less reports whether cw sorts strictly before other under kind.
func (cw CodeWord) Less(other CodeWord, kind Kind) bool {
	if cw.Root != other.Root {
		return cw.Root < other.Root
	}
	n := len(cw.Quads)
	if len(other.Quads) < n {
		n = len(other.Quads)
	}
	for i := 0; i < n; i++ {
		a, b := cw.Quads[i], other.Quads[i]
		if kind.less(a, b) {
			return true
		}
		if kind.less(b, a) {
			return false
		}
	}

	return len(cw.Quads) < len(other.Quads)
}

// Equal reports whether two code words are identical quad-for-quad.
func (cw CodeWord) Equal(other CodeWord) bool {
	if cw.Root != other.Root || len(cw.Quads) != len(other.Quads) {
		return false
	}
	for i := range cw.Quads {
		if cw.Quads[i] != other.Quads[i] {
			return false
		}
	}

	return true
}

// CF is a concrete canonical form: a Kind plus the methods that
// derive from it. CF has no mutable state of its own; all per-search
// state lives in a GrowthState.
type CF struct {
	Kind Kind
}

// New returns the canonical form implementation for kind.
func New(kind Kind) *CF { return &CF{Kind: kind} }

// GrowthState is the small amount of state a restricted-extension
// search threads through one fragment's growth: the maximum source
// index used so far (Breadth1/Breadth2) and the current rightmost
// path (Depth). Reusable across a parent fragment's children to avoid
// per-call allocation (spec §9).
type GrowthState struct {
	MaxSource     int
	RightmostPath []int
}

// NewGrowthState seeds growth from a single root node index (always 0
// for a freshly rooted subgraph).
func NewGrowthState(root int) *GrowthState {
	return &GrowthState{MaxSource: root, RightmostPath: []int{root}}
}

// Eligible reports whether node may serve as the source of a new
// extension edge, under kind's restriction.
func (s *GrowthState) Eligible(kind Kind, node int) bool {
	switch kind {
	case Depth:
		for _, n := range s.RightmostPath {
			if n == node {
				return true
			}
		}

		return false
	default: // Breadth1, Breadth2
		return node >= s.MaxSource
	}
}

// Advance updates the growth state after accepting an extension edge
// from src to dst (dst may be a brand-new node or, for a ring-closing
// edge, an already-discovered one).
func (s *GrowthState) Advance(kind Kind, src, dst int, newNode bool) {
	if src > s.MaxSource {
		s.MaxSource = src
	}
	if !newNode {
		return
	}

	idx := -1
	for i, n := range s.RightmostPath {
		if n == src {
			idx = i
		}
	}
	if idx < 0 {
		s.RightmostPath = append(s.RightmostPath, dst)

		return
	}
	s.RightmostPath = append(append([]int(nil), s.RightmostPath[:idx+1]...), dst)
}

// Clone returns an independent copy of s.
func (s *GrowthState) Clone() *GrowthState {
	return &GrowthState{
		MaxSource:     s.MaxSource,
		RightmostPath: append([]int(nil), s.RightmostPath...),
	}
}
