// File: search.go
// Role: the shared backtracking engine behind CodeWord/IsCanonic/
// MakeCanonic. Every valid discovery order is, by the classical
// DFS-code minimality theorem, reachable while always respecting the
// restriction (Breadth: source index >= max source seen; Depth:
// source on the rightmost path) — so minimizing over restricted
// orders finds the true canonical code word, not an approximation.
package canon

import "github.com/fsminer/fsminer/graphmodel"

type candidate struct {
	edgeIdx int
	quad    Quad
	newNode int // sub-node index of a brand new node, or -1
}

type searchState struct {
	sub      *graphmodel.Graph
	kind     Kind
	n        int
	discPos  []int // sub node idx -> discovery position, -1 if unassigned
	order    []int // discovery position -> sub node idx
	usedEdge []bool
	quads    []Quad
	gs       *GrowthState

	bestQuads []Quad
	bestOrder [][]int // every order[] achieving bestQuads (for orbit computation)
}

func newSearchState(sub *graphmodel.Graph, kind Kind) *searchState {
	n := sub.NodeCount()
	discPos := make([]int, n)
	for i := range discPos {
		discPos[i] = -1
	}

	return &searchState{
		sub:      sub,
		kind:     kind,
		discPos:  discPos,
		usedEdge: make([]bool, len(sub.Edges)),
	}
}

// seedRoot resets per-root state and begins discovery at root.
func (s *searchState) seedRoot(root int) {
	for i := range s.discPos {
		s.discPos[i] = -1
	}
	for i := range s.usedEdge {
		s.usedEdge[i] = false
	}
	s.quads = s.quads[:0]
	s.discPos[root] = 0
	s.order = []int{root}
	s.n = 1
	s.gs = NewGrowthState(0)
}

func (s *searchState) candidates() []candidate {
	var cands []candidate
	for eIdx, e := range s.sub.Edges {
		if s.usedEdge[eIdx] {
			continue
		}
		srcPos, srcOK := s.discPos[e.Src], s.discPos[e.Src] >= 0
		dstPos, dstOK := s.discPos[e.Dst], s.discPos[e.Dst] >= 0

		switch {
		case srcOK && dstOK:
			lo, hi, hiNode := srcPos, dstPos, e.Dst
			if dstPos < srcPos {
				lo, hi, hiNode = dstPos, srcPos, e.Src
			}
			if !s.gs.Eligible(s.kind, lo) {
				continue
			}
			q := Quad{Src: lo, Dst: hi, EdgeType: e.Type, DstType: s.sub.Node(hiNode).Type}
			cands = append(cands, candidate{eIdx, q, -1})
		case srcOK && !dstOK:
			if !s.gs.Eligible(s.kind, srcPos) {
				continue
			}
			q := Quad{Src: srcPos, Dst: s.n, EdgeType: e.Type, DstType: s.sub.Node(e.Dst).Type}
			cands = append(cands, candidate{eIdx, q, e.Dst})
		case dstOK && !srcOK:
			if !s.gs.Eligible(s.kind, dstPos) {
				continue
			}
			q := Quad{Src: dstPos, Dst: s.n, EdgeType: e.Type, DstType: s.sub.Node(e.Src).Type}
			cands = append(cands, candidate{eIdx, q, e.Src})
		default:
			continue
		}
	}

	return cands
}

// step explores every admissible next edge, recording the smallest
// complete code word (and, when collectOrbits, every order achieving
// it) into s.bestQuads/s.bestOrder.
func (s *searchState) step(collectOrbits bool) {
	if len(s.quads) == len(s.sub.Edges) {
		s.considerComplete(collectOrbits)

		return
	}

	cands := s.candidates()
	if len(cands) == 0 {
		return
	}

	minIdx := 0
	for i := 1; i < len(cands); i++ {
		if s.kind.less(cands[i].quad, cands[minIdx].quad) {
			minIdx = i
		}
	}
	minQuad := cands[minIdx].quad

	for _, c := range cands {
		if c.quad != minQuad {
			continue
		}
		if s.prunedByPrefix(c.quad) {
			continue
		}
		saved := s.gs.Clone()
		s.apply(c)
		s.step(collectOrbits)
		s.undo(c)
		s.gs = saved
	}
}

func (s *searchState) prunedByPrefix(next Quad) bool {
	if s.bestQuads == nil {
		return false
	}
	pos := len(s.quads)
	if pos >= len(s.bestQuads) {
		return false
	}
	if s.kind.less(next, s.bestQuads[pos]) {
		return false
	}
	if s.kind.less(s.bestQuads[pos], next) {
		return true
	}

	return false
}

func (s *searchState) apply(c candidate) {
	s.quads = append(s.quads, c.quad)
	s.usedEdge[c.edgeIdx] = true
	if c.newNode >= 0 {
		s.discPos[c.newNode] = s.n
		s.order = append(s.order, c.newNode)
		s.n++
	}
	s.gs.Advance(s.kind, c.quad.Src, c.quad.Dst, c.newNode >= 0)
}

func (s *searchState) undo(c candidate) {
	if c.newNode >= 0 {
		s.n--
		s.order = s.order[:len(s.order)-1]
		s.discPos[c.newNode] = -1
	}
	s.usedEdge[c.edgeIdx] = false
	s.quads = s.quads[:len(s.quads)-1]
}

func (s *searchState) considerComplete(collectOrbits bool) {
	switch {
	case s.bestQuads == nil:
		s.bestQuads = append([]Quad(nil), s.quads...)
		if collectOrbits {
			s.bestOrder = [][]int{append([]int(nil), s.order...)}
		}
	default:
		cmp := compareQuads(s.quads, s.bestQuads, s.kind)
		if cmp < 0 {
			s.bestQuads = append([]Quad(nil), s.quads...)
			if collectOrbits {
				s.bestOrder = [][]int{append([]int(nil), s.order...)}
			}
		} else if cmp == 0 && collectOrbits {
			s.bestOrder = append(s.bestOrder, append([]int(nil), s.order...))
		}
	}
}

func compareQuads(a, b []Quad, kind Kind) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if kind.less(a[i], b[i]) {
			return -1
		}
		if kind.less(b[i], a[i]) {
			return 1
		}
	}
	if len(a) < len(b) {
		return -1
	}
	if len(a) > len(b) {
		return 1
	}

	return 0
}
