// File: bridges.go
// Role: mark every edge whose removal disconnects its graph (Tarjan's
// bridge-finding DFS). Required before CHAIN or perfect-extension
// pruning can be driven, since both consult Edge.Bridge.
package graphmodel

// MarkBridges computes Edge.Bridge for every edge via a single DFS
// with discovery/low-link numbers. Safe to call multiple times; a
// later call recomputes from scratch (e.g. after structural edits).
// Complexity: O(V+E).
func (g *Graph) MarkBridges() {
	n := len(g.Nodes)
	disc := make([]int, n)
	low := make([]int, n)
	visited := make([]bool, n)
	for i := range disc {
		disc[i] = -1
	}
	timer := 0

	var dfs func(u, parentEdge int)
	dfs = func(u, parentEdge int) {
		visited[u] = true
		disc[u] = timer
		low[u] = timer
		timer++

		for _, eIdx := range g.Nodes[u].Edges {
			if eIdx == parentEdge {
				continue
			}
			e := g.Edges[eIdx]
			v := e.Other(u)
			if visited[v] {
				if disc[v] < low[u] {
					low[u] = disc[v]
				}
				continue
			}
			dfs(v, eIdx)
			if low[v] < low[u] {
				low[u] = low[v]
			}
			if low[v] > disc[u] {
				e.Bridge = true
			}
		}
	}

	for i := 0; i < n; i++ {
		if !visited[i] {
			dfs(i, -1)
		}
	}
	g.bridged = true
}

// Bridged reports whether MarkBridges has run since construction.
func (g *Graph) Bridged() bool { return g.bridged }
