// File: graph.go
// Role: primitive node/edge mutation, incident-edge sorting, and
// type masking — the only ways higher layers may change a Graph.
package graphmodel

import "sort"

// AddNode appends a new node of the given type and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(t Type) int {
	idx := len(g.Nodes)
	g.Nodes = append(g.Nodes, newNode(t, idx))
	g.prepared = false

	return idx
}

// AddEdge appends a new edge between src and dst and returns its
// index. Self-loops are rejected (ErrSelfLoop); out-of-range
// endpoints are rejected (ErrNodeIndex).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst int, t Type) (int, error) {
	if src < 0 || src >= len(g.Nodes) || dst < 0 || dst >= len(g.Nodes) {
		return -1, ErrNodeIndex
	}
	if src == dst {
		return -1, ErrSelfLoop
	}

	idx := len(g.Edges)
	g.Edges = append(g.Edges, newEdge(src, dst, t))
	g.Nodes[src].Edges = append(g.Nodes[src].Edges, idx)
	g.Nodes[dst].Edges = append(g.Nodes[dst].Edges, idx)
	g.prepared = false

	return idx, nil
}

// Prepare sorts each node's incident-edge list lexicographically by
// (edge type, opposite-node type, opposite-node index), giving every
// node a deterministic incident-edge order. Idempotent; re-run after
// any AddEdge.
// Complexity: O(E log E) worst case (sum of per-node sorts).
func (g *Graph) Prepare() {
	for _, n := range g.Nodes {
		nodeIdx := g.indexOf(n)
		edges := n.Edges
		sort.Slice(edges, func(i, j int) bool {
			ei, ej := g.Edges[edges[i]], g.Edges[edges[j]]
			if ei.Type != ej.Type {
				return ei.Type < ej.Type
			}
			oi, oj := ei.Other(nodeIdx), ej.Other(nodeIdx)
			ti, tj := g.Nodes[oi].Type, g.Nodes[oj].Type
			if ti != tj {
				return ti < tj
			}

			return oi < oj
		})
	}
	g.prepared = true
}

// Prepared reports whether Prepare has run since the last mutation.
func (g *Graph) Prepared() bool { return g.prepared }

// indexOf finds n's index by identity scan; used only by Prepare,
// which runs once per graph at setup, not in any hot path.
func (g *Graph) indexOf(n *Node) int {
	for i, m := range g.Nodes {
		if m == n {
			return i
		}
	}

	return -1
}

// MaskNodeTypes zeroes the bits of every node's base type outside m,
// preserving the WILDCARD/SPECIAL flags. Used to fold a type
// alphabet down before mining (e.g. ignore isotope sub-bits).
func (g *Graph) MaskNodeTypes(m Type) {
	for _, n := range g.Nodes {
		n.Type = n.Type.Mask(m)
	}
}

// MaskEdgeTypes zeroes the bits of every edge's base type outside m.
func (g *Graph) MaskEdgeTypes(m Type) {
	for _, e := range g.Edges {
		e.Type = e.Type.Mask(m)
	}
}

// Degree returns the number of edges incident to node v (self-loops,
// were they permitted, would count twice; this graph forbids them).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= len(g.Nodes) {
		return 0
	}

	return len(g.Nodes[v].Edges)
}
