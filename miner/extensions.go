// File: extensions.go
// Role: ALLEXTS candidate generation (bypasses the CF's restricted-
// growth frontier entirely) and ring-candidate discovery from a
// fragment's representative embedding.
package miner

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/fragment"
	"github.com/fsminer/fsminer/graphmodel"
)

// allExtensions enumerates single-edge candidates at every node of sub,
// ignoring the CF's source-eligibility restriction (spec §6 ALLEXTS:
// "disables CF restriction"). Breadth1's node>=MaxSource rule with
// MaxSource pinned at 0 accepts every node regardless of the search's
// actual kind, which is exactly the relaxation ALLEXTS asks for.
func (m *Miner) allExtensions(sub *graphmodel.Graph) canon.SignatureSet {
	unrestricted := &canon.GrowthState{MaxSource: 0}

	return canon.Extensions(sub, canon.Breadth1, unrestricted, m.extIdx)
}

// ringCandidate is one concrete ring shape discovered from a
// representative embedding's host: a cycle of len(EdgeTypes) nodes
// through Anchor, len(EdgeTypes)-1 of them new (typed by NodeTypes).
type ringCandidate struct {
	Anchor    int
	EdgeTypes []graphmodel.Type
	NodeTypes []graphmodel.Type
}

// discoverRings inspects f's first live embedding's host for ring bits
// incident to every growth-eligible fragment node, and derives one
// ringCandidate per ring walk (each ring is walked in both directions
// from the anchor). With MergeRings, a candidate whose full edge-type
// sequence equals one already found is dropped; candidates that share
// only their first step are all kept.
func (m *Miner) discoverRings(f *fragment.Fragment, growth *canon.GrowthState) []ringCandidate {
	rep := firstLiveEmbedding(f)
	if rep == nil {
		return nil
	}
	host := rep.Host

	var out []ringCandidate
	seenFirstStep := make(map[string]bool)

	for pos := 0; pos < f.NodeCount(); pos++ {
		if !growth.Eligible(f.Kind, pos) {
			continue
		}
		hostNode := rep.Nodes[pos]
		var bits []int
		for _, eIdx := range host.Node(hostNode).Edges {
			e := host.Edge(eIdx)
			for k := 0; k < graphmodel.MaxRings; k++ {
				if e.OnRing(k) {
					bits = append(bits, k)
				}
			}
		}
		for _, k := range dedupInts(bits) {
			for _, dir := range []bool{false, true} {
				cand, ok := walkRing(host, hostNode, k, dir)
				if !ok || len(cand.EdgeTypes) < 3 {
					continue
				}
				cand.Anchor = pos
				sig := ringSignature(cand)
				if m.cfg.Options.Flags.MergeRings && seenFirstStep[sig] {
					continue
				}
				seenFirstStep[sig] = true
				out = append(out, cand)
			}
		}
	}

	return out
}

func dedupInts(xs []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}

	return out
}

func ringSignature(c ringCandidate) string {
	s := make([]byte, 0, 8*len(c.EdgeTypes))
	for _, t := range c.EdgeTypes {
		s = append(s, byte(t), byte(t>>8), byte(t>>16), byte(t>>24))
	}

	return string(s)
}

// walkRing follows ring bit k starting at hostNode in one direction,
// collecting (edge type, node type) pairs until the walk returns to
// hostNode, producing a candidate suitable for fragment.ExtendRing.
func walkRing(host *graphmodel.Graph, hostNode, bit int, reverse bool) (ringCandidate, bool) {
	var edgeTypes, nodeTypes []graphmodel.Type
	cur := hostNode
	prevEdge := -1
	visited := map[int]bool{hostNode: true}

	for steps := 0; steps < graphmodel.MaxRings*4; steps++ {
		next, nextEdge, ok := nextRingStep(host, cur, bit, prevEdge, reverse)
		if !ok {
			return ringCandidate{}, false
		}
		e := host.Edge(nextEdge)
		edgeTypes = append(edgeTypes, e.Type)
		if next == hostNode {
			return ringCandidate{EdgeTypes: edgeTypes, NodeTypes: nodeTypes}, true
		}
		if visited[next] {
			return ringCandidate{}, false
		}
		visited[next] = true
		nodeTypes = append(nodeTypes, host.Node(next).Type)
		cur, prevEdge = next, nextEdge
	}

	return ringCandidate{}, false
}

func nextRingStep(host *graphmodel.Graph, cur, bit, prevEdge int, reverse bool) (int, int, bool) {
	var candidates []int
	for _, eIdx := range host.Node(cur).Edges {
		if eIdx == prevEdge {
			continue
		}
		if host.Edge(eIdx).OnRing(bit) {
			candidates = append(candidates, eIdx)
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}
	idx := 0
	if reverse {
		idx = len(candidates) - 1
	}
	eIdx := candidates[idx]

	return host.Edge(eIdx).Other(cur), eIdx, true
}

// firstLiveEmbedding returns f's first unpacked embedding, or nil if
// every embedding has been packed (or there are none).
func firstLiveEmbedding(f *fragment.Fragment) *embedding.Embedding {
	for e := f.Emb; e != nil; e = e.Succ {
		if !e.Packed() {
			return e
		}
	}

	return nil
}
