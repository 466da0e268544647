// File: extidx.go
// Role: the extension-edge index — a database-wide aggregation of
// (src-type, edge-type, dst-type) triples with the maximum observed
// source degree, consulted by the cover-based ("embedding-free")
// search below Miner's emblvl threshold (spec §4.4) to reject
// extensions that provably cannot occur anywhere, without walking
// any embedding.
package graphmodel

// ExtKey identifies one (source type, edge type, destination type)
// triple. Both orientations of an undirected edge are indexed
// separately, so ExtKey is directional even though Graph is not.
type ExtKey struct {
	Src  Type
	Edge Type
	Dst  Type
}

// ExtEntry is the aggregate recorded for one ExtKey.
type ExtEntry struct {
	// Count is the number of edge endpoints across the whole
	// database matching this triple.
	Count int

	// MaxSrcDegree is the largest degree observed on any source node
	// participating in this triple.
	MaxSrcDegree int
}

// ExtIndex is the built extension-edge index for a graph database.
type ExtIndex struct {
	entries map[ExtKey]*ExtEntry
}

// BuildExtIndex aggregates (src-type, edge-type, dst-type) triples
// (in both orientations) across every graph in the database.
// Complexity: O(sum of E over all graphs).
func BuildExtIndex(graphs []*Graph) *ExtIndex {
	idx := &ExtIndex{entries: make(map[ExtKey]*ExtEntry)}
	for _, g := range graphs {
		for _, e := range g.Edges {
			idx.observe(g, e.Src, e.Dst, e.Type)
			idx.observe(g, e.Dst, e.Src, e.Type)
		}
	}

	return idx
}

func (idx *ExtIndex) observe(g *Graph, src, dst int, edgeType Type) {
	key := ExtKey{Src: g.Nodes[src].Type, Edge: edgeType, Dst: g.Nodes[dst].Type}
	ent, ok := idx.entries[key]
	if !ok {
		ent = &ExtEntry{}
		idx.entries[key] = ent
	}
	ent.Count++
	if deg := g.Degree(src); deg > ent.MaxSrcDegree {
		ent.MaxSrcDegree = deg
	}
}

// Lookup returns the aggregate for a (src,edge,dst) triple, honoring
// wildcard source/destination types by returning the first matching
// entry found (exact match is tried first since it is the common
// case and needs no scan).
func (idx *ExtIndex) Lookup(src, edge, dst Type) (ExtEntry, bool) {
	if ent, ok := idx.entries[ExtKey{Src: src, Edge: edge, Dst: dst}]; ok {
		return *ent, true
	}
	if !src.IsWildcard() && !edge.IsWildcard() && !dst.IsWildcard() {
		return ExtEntry{}, false
	}
	for k, ent := range idx.entries {
		if typeKeyMatches(src, k.Src) && typeKeyMatches(edge, k.Edge) && typeKeyMatches(dst, k.Dst) {
			return *ent, true
		}
	}

	return ExtEntry{}, false
}

func typeKeyMatches(query, actual Type) bool {
	return query.IsWildcard() || query.Base() == actual.Base()
}

// Possible reports whether any edge of this (src,edge,dst) signature
// exists anywhere in the database — a cheap existence test used to
// prune cover-based extension candidates before any re-embedding.
func (idx *ExtIndex) Possible(src, edge, dst Type) bool {
	_, ok := idx.Lookup(src, edge, dst)

	return ok
}

// BySource returns every (edge type, dst type) pair observed anywhere
// in the database with the given source type, sorted by (edge, dst)
// for deterministic candidate generation. Used by canon.Extensions to
// enumerate single-edge restricted extensions at an eligible node
// without a full Lookup per candidate pair.
func (idx *ExtIndex) BySource(src Type) []ExtKey {
	var keys []ExtKey
	for k := range idx.entries {
		if typeKeyMatches(src, k.Src) {
			keys = append(keys, k)
		}
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && extKeyLess(keys[j], keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}

	return keys
}

func extKeyLess(a, b ExtKey) bool {
	if a.Edge != b.Edge {
		return a.Edge < b.Edge
	}

	return a.Dst < b.Dst
}
