// File: canonize.go
// Role: CodeWord construction and the canonicity test/normalizer built
// on top of the search engine in search.go.
package canon

import "github.com/fsminer/fsminer/graphmodel"

// CurrentCodeWord builds the code word implied by sub's existing node
// numbering: each edge is written from its lower to its higher node
// index (graphmodel does not require Src < Dst, so the endpoints are
// swapped where needed), so no discovery walk is needed — only a sort
// by the CF's field priority. O(E log E).
func CurrentCodeWord(sub *graphmodel.Graph, kind Kind) (CodeWord, error) {
	if sub.NodeCount() == 0 {
		return CodeWord{}, ErrEmptySubgraph
	}

	quads := make([]Quad, len(sub.Edges))
	for i, e := range sub.Edges {
		src, dst := e.Src, e.Dst
		if src > dst {
			src, dst = dst, src
		}
		quads[i] = Quad{Src: src, Dst: dst, EdgeType: e.Type, DstType: sub.Node(dst).Type}
	}
	sortQuads(quads, kind)

	return CodeWord{Root: sub.Node(0).Type, Quads: quads}, nil
}

func sortQuads(q []Quad, kind Kind) {
	for i := 1; i < len(q); i++ {
		for j := i; j > 0 && kind.less(q[j], q[j-1]); j-- {
			q[j], q[j-1] = q[j-1], q[j]
		}
	}
}

// BestCodeWord searches every restricted discovery order, from every
// candidate root, for the lexicographically smallest code word
// reachable under kind. This is the (cw §4.2) minimum against which a
// numbering's canonicity is judged.
func BestCodeWord(sub *graphmodel.Graph, kind Kind) (CodeWord, error) {
	cw, _, err := bestCodeWordWithOrbits(sub, kind, false)

	return cw, err
}

func bestCodeWordWithOrbits(sub *graphmodel.Graph, kind Kind, collectOrbits bool) (CodeWord, [][]int, error) {
	n := sub.NodeCount()
	if n == 0 {
		return CodeWord{}, nil, ErrEmptySubgraph
	}
	if n == 1 {
		return CodeWord{Root: sub.Node(0).Type}, [][]int{{0}}, nil
	}
	if !sub.Connected() {
		return CodeWord{}, nil, ErrDisconnected
	}

	s := newSearchState(sub, kind)
	var bestRootQuads []Quad
	var bestOrders [][]int
	var bestRootType graphmodel.Type

	for root := 0; root < n; root++ {
		s.seedRoot(root)
		s.bestQuads = nil
		s.bestOrder = nil
		s.step(collectOrbits)
		if s.bestQuads == nil {
			continue // root cannot reach all edges (shouldn't happen on a connected sub)
		}

		rootType := sub.Node(root).Type
		switch {
		case bestRootQuads == nil:
			bestRootType, bestRootQuads, bestOrders = rootType, s.bestQuads, s.bestOrder
		default:
			cur := CodeWord{Root: bestRootType, Quads: bestRootQuads}
			cand := CodeWord{Root: rootType, Quads: s.bestQuads}
			if cand.Less(cur, kind) {
				bestRootType, bestRootQuads, bestOrders = rootType, s.bestQuads, s.bestOrder
			} else if collectOrbits && cand.Equal(cur) {
				bestOrders = append(bestOrders, s.bestOrder...)
			}
		}
	}

	return CodeWord{Root: bestRootType, Quads: bestRootQuads}, bestOrders, nil
}

// IsCanonic compares sub's current numbering against the minimum code
// word reachable under kind. It returns +1 when the numbering is
// already canonic (and fills each node's Orbit with the smallest
// original index its position maps to under any minimum-achieving
// automorphism), -1 when the first `fixed` quads already diverge from
// the minimum (the whole growth subtree can be pruned), or 0 when a
// later quad diverges.
func IsCanonic(sub *graphmodel.Graph, kind Kind, fixed int) (int, error) {
	current, err := CurrentCodeWord(sub, kind)
	if err != nil {
		return 0, err
	}

	best, orders, err := bestCodeWordWithOrbits(sub, kind, true)
	if err != nil {
		return 0, err
	}

	if current.Equal(best) {
		fillOrbits(sub, orders)

		return 1, nil
	}

	limit := fixed
	if limit > len(current.Quads) {
		limit = len(current.Quads)
	}
	if limit > len(best.Quads) {
		limit = len(best.Quads)
	}
	for i := 0; i < limit; i++ {
		if current.Quads[i] != best.Quads[i] {
			return -1, nil
		}
	}
	if current.Root != best.Root && fixed > 0 {
		return -1, nil
	}

	return 0, nil
}

func fillOrbits(sub *graphmodel.Graph, orders [][]int) {
	n := sub.NodeCount()
	orbit := make([]int, n)
	for i := range orbit {
		orbit[i] = i
	}
	for _, order := range orders {
		for pos, nodeIdx := range order {
			if nodeIdx < orbit[pos] {
				orbit[pos] = nodeIdx
			}
		}
	}
	for i := 0; i < n; i++ {
		sub.Node(i).Orbit = orbit[i]
	}
}

// Permutation describes how MakeCanonic renumbered a subgraph:
// NodePerm[oldIdx] = newIdx, EdgePerm[oldEdgeIdx] = newEdgeIdx.
type Permutation struct {
	NodePerm []int
	EdgePerm []int
}

// MakeCanonic finds a canonic renumbering of sub that preserves the
// relative order of its first `keep` edges (keep<0 allows full
// reordering, used for a freshly merged or seeded subgraph). The
// first `keep` edges are assumed already CF-ordered, which holds by
// construction for every fragment produced by the search engine;
// callers that may violate it (ring/chain adaptation) re-validate via
// IsCanonic before relying on the result.
func MakeCanonic(sub *graphmodel.Graph, kind Kind, keep int) (Permutation, error) {
	n := sub.NodeCount()
	if n == 0 {
		return Permutation{}, ErrEmptySubgraph
	}
	if !sub.Connected() {
		return Permutation{}, ErrDisconnected
	}
	root := 0
	if keep < 0 {
		_, orders, err := bestCodeWordWithOrbits(sub, kind, true)
		if err != nil {
			return Permutation{}, err
		}
		if len(orders) > 0 {
			root = orders[0][0]
		}
	}
	if keep < 0 || keep > len(sub.Edges) {
		keep = 0
	}

	s := newSearchState(sub, kind)
	s.seedRoot(root)

	// Replay the preserved prefix in its existing array order; by the
	// canonical-fragment invariant this reproduces identity discovery
	// positions 0..k for the nodes it touches.
	for i := 0; i < keep; i++ {
		e := sub.Edges[i]
		srcPos, srcOK := s.discPos[e.Src], s.discPos[e.Src] >= 0
		var c candidate
		switch {
		case !srcOK && s.discPos[e.Dst] < 0:
			// first edge from a disconnected-looking replay; treat src as
			// the already-known root continuation point.
			c = candidate{i, Quad{Src: 0, Dst: s.n, EdgeType: e.Type, DstType: sub.Node(e.Dst).Type}, e.Dst}
		case srcOK && s.discPos[e.Dst] < 0:
			c = candidate{i, Quad{Src: srcPos, Dst: s.n, EdgeType: e.Type, DstType: sub.Node(e.Dst).Type}, e.Dst}
		default:
			dstPos := s.discPos[e.Dst]
			lo, hi, hiNode := srcPos, dstPos, e.Dst
			if dstPos < srcPos {
				lo, hi, hiNode = dstPos, srcPos, e.Src
			}
			c = candidate{i, Quad{Src: lo, Dst: hi, EdgeType: e.Type, DstType: sub.Node(hiNode).Type}, -1}
		}
		s.apply(c)
	}

	s.bestQuads = nil
	s.bestOrder = nil
	s.step(true)
	if len(s.bestOrder) == 0 {
		return Permutation{}, ErrDisconnected
	}

	nodePerm := make([]int, n)
	for pos, oldIdx := range s.bestOrder[0] {
		nodePerm[oldIdx] = pos
	}

	edgePerm := make([]int, len(sub.Edges))
	used := make([]bool, len(sub.Edges))
	for newPos, q := range s.bestQuads {
		origIdx := findOriginalEdge(sub, nodePerm, q, used)
		edgePerm[origIdx] = newPos
		used[origIdx] = true
	}

	return Permutation{NodePerm: nodePerm, EdgePerm: edgePerm}, nil
}

func findOriginalEdge(sub *graphmodel.Graph, nodePerm []int, q Quad, used []bool) int {
	for i, e := range sub.Edges {
		if used[i] {
			continue
		}
		a, b := nodePerm[e.Src], nodePerm[e.Dst]
		lo, hi := a, b
		if b < a {
			lo, hi = b, a
		}
		if lo == q.Src && hi == q.Dst && e.Type == q.EdgeType {
			return i
		}
	}

	return -1
}
