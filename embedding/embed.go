// File: embed.go
// Role: Embed/Contains — classical VF-style backtracking subgraph
// matching (spec §4.1). Sub nodes are matched in index order; for
// each new role the candidate host nodes are drawn from the incident
// list of an already-placed neighbor whenever one exists. Every edge
// of that list is tried; the scan does not stop early when type
// compatibility fails.
package embedding

import "github.com/fsminer/fsminer/graphmodel"

// Embed returns a linked list of every embedding of sub into host,
// tagged with the given group. Returns ErrNilHost/ErrNilSub for nil
// arguments (panicking only for fragment-engine invariant violations
// is reserved for higher layers; at this leaf, bad arguments are
// ordinary errors). An empty sub (no nodes) embeds nowhere and
// returns (nil, nil).
func Embed(host, sub *graphmodel.Graph, group Group) (*Embedding, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if sub == nil {
		return nil, ErrNilSub
	}
	if sub.NodeCount() == 0 {
		return nil, nil
	}

	m := &matcher{host: host, sub: sub, group: group}
	nodeMap := make([]int, sub.NodeCount())
	used := make([]bool, host.NodeCount())
	for i := range nodeMap {
		nodeMap[i] = -1
	}
	m.search(0, nodeMap, used)

	return m.head, nil
}

// Contains reports whether host has at least one embedding of sub,
// short-circuiting on the first match (cover/cheap-existence test).
func Contains(host, sub *graphmodel.Graph) (bool, error) {
	if host == nil {
		return false, ErrNilHost
	}
	if sub == nil {
		return false, ErrNilSub
	}
	if sub.NodeCount() == 0 {
		return false, nil
	}

	m := &matcher{host: host, sub: sub, stopAtFirst: true}
	nodeMap := make([]int, sub.NodeCount())
	used := make([]bool, host.NodeCount())
	for i := range nodeMap {
		nodeMap[i] = -1
	}
	m.search(0, nodeMap, used)

	return m.head != nil, nil
}

type matcher struct {
	host, sub   *graphmodel.Graph
	group       Group
	head, tail  *Embedding
	stopAtFirst bool
	found       bool
}

// precedingEdges returns the indices of sub edges whose endpoints are
// {i, j} with j < i, i.e. constraints role i must satisfy against
// already-placed roles.
func (m *matcher) precedingEdges(i int) []int {
	var out []int
	for k, e := range m.sub.Edges {
		if e.Src == i && e.Dst < i {
			out = append(out, k)
		} else if e.Dst == i && e.Src < i {
			out = append(out, k)
		}
	}

	return out
}

func (m *matcher) search(i int, nodeMap []int, used []bool) {
	if m.found && m.stopAtFirst {
		return
	}
	if i == len(nodeMap) {
		m.emit(nodeMap)
		return
	}

	subNode := m.sub.Node(i)
	pre := m.precedingEdges(i)

	tryCandidate := func(h int) {
		if m.found && m.stopAtFirst {
			return
		}
		if used[h] || !subNode.Type.Matches(m.host.Node(h).Type) {
			return
		}
		if !m.satisfiesAll(i, h, nodeMap, pre) {
			return
		}
		nodeMap[i] = h
		used[h] = true
		m.search(i+1, nodeMap, used)
		used[h] = false
		nodeMap[i] = -1
	}

	if len(pre) > 0 {
		anchorEdge := m.sub.Edge(pre[0])
		anchorRole := anchorEdge.Src
		if anchorRole == i {
			anchorRole = anchorEdge.Dst
		}
		anchorHost := nodeMap[anchorRole]
		for _, hostEdgeIdx := range m.host.Node(anchorHost).Edges {
			cand := m.host.Edge(hostEdgeIdx).Other(anchorHost)
			tryCandidate(cand)
			if m.found && m.stopAtFirst {
				return
			}
		}
	} else {
		for h := 0; h < m.host.NodeCount(); h++ {
			tryCandidate(h)
			if m.found && m.stopAtFirst {
				return
			}
		}
	}
}

// satisfiesAll checks that candidate host node h, assigned to sub
// role i, has a matching host edge for every sub edge connecting i to
// an earlier role.
func (m *matcher) satisfiesAll(i, h int, nodeMap []int, pre []int) bool {
	for _, k := range pre {
		e := m.sub.Edge(k)
		other := e.Src
		if other == i {
			other = e.Dst
		}
		otherHost := nodeMap[other]
		if !m.hostEdgeBetween(h, otherHost, e.Type) {
			return false
		}
	}

	return true
}

func (m *matcher) hostEdgeBetween(a, b int, edgeType graphmodel.Type) bool {
	for _, eIdx := range m.host.Node(a).Edges {
		e := m.host.Edge(eIdx)
		if e.Other(a) == b && edgeType.Matches(e.Type) {
			return true
		}
	}

	return false
}

func (m *matcher) emit(nodeMap []int) {
	m.found = true
	if m.stopAtFirst {
		m.head = &Embedding{}
		return
	}

	nodes := append([]int(nil), nodeMap...)
	edges := make([]int, len(m.sub.Edges))
	for k, e := range m.sub.Edges {
		host := nodes[e.Src]
		other := nodes[e.Dst]
		edges[k] = m.findHostEdge(host, other, e.Type)
	}

	emb := &Embedding{Nodes: nodes, Edges: edges, Host: m.host, Group: m.group}
	if m.head == nil {
		m.head = emb
		m.tail = emb
	} else {
		m.tail.Succ = emb
		m.tail = emb
	}
}

func (m *matcher) findHostEdge(a, b int, edgeType graphmodel.Type) int {
	for _, eIdx := range m.host.Node(a).Edges {
		e := m.host.Edge(eIdx)
		if e.Other(a) == b && edgeType.Matches(e.Type) {
			return eIdx
		}
	}

	return -1
}
