// File: rings.go
// Role: ring perception. MarkRings builds one spanning forest per
// connected component and derives the fundamental cycle of every
// non-tree edge (the classic "smallest set of smallest rings"
// construction used by cheminformatics ring perceivers), keeping
// those whose length falls in [min,max] and assigning each a
// distinct bit in every member edge's RingBits.
package graphmodel

// MarkRings enumerates simple rings of length within [min,max] and
// sets a distinct RingBits bit on every edge of each ring found, up
// to MaxRings. If more than MaxRings qualifying rings exist, the
// first MaxRings (in edge-index order of the defining non-tree edge)
// are marked and ErrTooManyRings is returned; callers should fall
// back to bridge-only pruning for this graph (spec §7, capacity
// error class).
// Complexity: O(V+E) for the spanning forest, O(R·L) for the R
// fundamental cycles of average length L.
func (g *Graph) MarkRings(min, max int) error {
	if min < 3 || min > max {
		return ErrBadRingSize
	}

	for _, e := range g.Edges {
		e.RingBits = 0
	}
	g.ringCount = 0

	n := len(g.Nodes)
	visited := make([]bool, n)
	parentNode := make([]int, n)
	parentEdge := make([]int, n)
	depth := make([]int, n)
	treeEdge := make([]bool, len(g.Edges))
	for i := range parentNode {
		parentNode[i] = -1
		parentEdge[i] = -1
	}

	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		depth[s] = 0
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, eIdx := range g.Nodes[u].Edges {
				e := g.Edges[eIdx]
				v := e.Other(u)
				if visited[v] {
					continue
				}
				visited[v] = true
				parentNode[v] = u
				parentEdge[v] = eIdx
				depth[v] = depth[u] + 1
				treeEdge[eIdx] = true
				queue = append(queue, v)
			}
		}
	}

	overflow := false
	for eIdx, e := range g.Edges {
		if treeEdge[eIdx] {
			continue
		}
		cycle := g.fundamentalCycle(eIdx, parentNode, parentEdge, depth)
		if cycle == nil {
			continue
		}
		if len(cycle) < min || len(cycle) > max {
			continue
		}
		if g.ringCount >= MaxRings {
			overflow = true
			break
		}
		bit := uint64(1) << uint(g.ringCount)
		for _, ce := range cycle {
			g.Edges[ce].RingBits |= bit
		}
		g.ringCount++
		_ = e
	}

	if overflow {
		return ErrTooManyRings
	}

	return nil
}

// fundamentalCycle returns the edge indices of the cycle closed by
// non-tree edge eIdx: walk both endpoints up the spanning tree to
// their common ancestor, collecting tree edges, then append eIdx.
func (g *Graph) fundamentalCycle(eIdx int, parentNode, parentEdge, depth []int) []int {
	e := g.Edges[eIdx]
	u, v := e.Src, e.Dst
	var up, vp []int
	for depth[u] > depth[v] {
		up = append(up, parentEdge[u])
		u = parentNode[u]
	}
	for depth[v] > depth[u] {
		vp = append(vp, parentEdge[v])
		v = parentNode[v]
	}
	for u != v {
		if u < 0 || v < 0 {
			return nil
		}
		up = append(up, parentEdge[u])
		u = parentNode[u]
		vp = append(vp, parentEdge[v])
		v = parentNode[v]
	}

	cycle := make([]int, 0, len(up)+len(vp)+1)
	cycle = append(cycle, up...)
	for i := len(vp) - 1; i >= 0; i-- {
		cycle = append(cycle, vp[i])
	}
	cycle = append(cycle, eIdx)

	return cycle
}

// RingCount returns the number of rings marked by the last MarkRings.
func (g *Graph) RingCount() int { return g.ringCount }
