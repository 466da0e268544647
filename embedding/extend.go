// File: extend.go
// Role: Extend — every one-edge extension of a single Embedding
// matching a given (source role, destination role, edge type, node
// type) signature (spec §4.1). dstRole < 0 requests a new-node
// extension; dstRole >= 0 requests a ring-closing edge between two
// roles already present in emb.
package embedding

import "github.com/fsminer/fsminer/graphmodel"

// Extend returns every one-edge extension of emb consistent with the
// given signature, as a freshly allocated list (emb itself is never
// mutated). For a new-node extension the candidate host node must not
// already be used by emb (injectivity); for a ring-closing extension
// the candidate host edge must not already be used by emb.
func Extend(emb *Embedding, srcRole, dstRole int, edgeType, nodeType graphmodel.Type) (*Embedding, error) {
	if emb.Packed() {
		return nil, ErrPacked
	}
	host := emb.Host
	srcHost := emb.Nodes[srcRole]

	var head, tail *Embedding
	appendResult := func(newNode int, newEdge int) {
		nodes := emb.Nodes
		if newNode >= 0 {
			nodes = append(append([]int(nil), emb.Nodes...), newNode)
		}
		edges := append(append([]int(nil), emb.Edges...), newEdge)
		e := &Embedding{Nodes: nodes, Edges: edges, Host: host, Group: emb.Group}
		if head == nil {
			head = e
			tail = e
		} else {
			tail.Succ = e
			tail = e
		}
	}

	used := make(map[int]bool, len(emb.Nodes))
	for _, n := range emb.Nodes {
		used[n] = true
	}
	usedEdges := make(map[int]bool, len(emb.Edges))
	for _, e := range emb.Edges {
		usedEdges[e] = true
	}

	if dstRole < 0 {
		for _, eIdx := range host.Node(srcHost).Edges {
			e := host.Edge(eIdx)
			if usedEdges[eIdx] {
				continue
			}
			if !edgeType.Matches(e.Type) {
				continue
			}
			cand := e.Other(srcHost)
			if used[cand] {
				continue
			}
			if !nodeType.Matches(host.Node(cand).Type) {
				continue
			}
			appendResult(cand, eIdx)
		}

		return head, nil
	}

	dstHost := emb.Nodes[dstRole]
	for _, eIdx := range host.Node(srcHost).Edges {
		if usedEdges[eIdx] {
			continue
		}
		e := host.Edge(eIdx)
		if e.Other(srcHost) != dstHost {
			continue
		}
		if !edgeType.Matches(e.Type) {
			continue
		}
		appendResult(-1, eIdx)
	}

	return head, nil
}
