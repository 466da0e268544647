// File: split.go
// Role: connected-component decomposition, used by the search engine
// to reject or separately mine disconnected database entries.
package graphmodel

// Split separates g into its connected components, each returned as
// an independent Graph with freshly renumbered node/edge indices.
// Complexity: O(V+E).
func (g *Graph) Split() []*Graph {
	n := len(g.Nodes)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}

	var comps [][]int
	for s := 0; s < n; s++ {
		if comp[s] != -1 {
			continue
		}
		id := len(comps)
		comp[s] = id
		stack := []int{s}
		members := []int{s}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, eIdx := range g.Nodes[u].Edges {
				e := g.Edges[eIdx]
				v := e.Other(u)
				if comp[v] != -1 {
					continue
				}
				comp[v] = id
				stack = append(stack, v)
				members = append(members, v)
			}
		}
		comps = append(comps, members)
	}

	if len(comps) <= 1 {
		return []*Graph{g}
	}

	out := make([]*Graph, len(comps))
	for ci, members := range comps {
		sub := NewGraph(g.Name)
		remap := make(map[int]int, len(members))
		for _, old := range members {
			remap[old] = sub.AddNode(g.Nodes[old].Type)
		}
		seen := make(map[int]bool)
		for _, old := range members {
			for _, eIdx := range g.Nodes[old].Edges {
				if seen[eIdx] {
					continue
				}
				seen[eIdx] = true
				e := g.Edges[eIdx]
				_, _ = sub.AddEdge(remap[e.Src], remap[e.Dst], e.Type)
			}
		}
		out[ci] = sub
	}

	return out
}

// Connected reports whether g has at most one connected component
// (an empty graph counts as connected).
func (g *Graph) Connected() bool {
	return len(g.Split()) <= 1
}
