// File: overlap.go
// Role: builds one overlap graph per host graph from a fragment's
// embedding list, for MIS_OLAP (shared host node) or MIS_HARM (shared
// host node in different fragment roles).
package mis

import (
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// Harm selects which overlap relation to build: Olap connects any two
// embeddings sharing a host node; Harmful connects only pairs where
// the shared host node plays different fragment roles in each.
type Harm bool

const (
	// Olap is the plain overlap relation (shared host node, any role).
	Olap Harm = false
	// Harmful is the role-mismatch relation.
	Harmful Harm = true
)

type hostBucket struct {
	host  *embedding.Embedding // first embedding seen for this host, representative
	embs  []*embedding.Embedding
	group embedding.Group
}

// ByHost groups an embedding list by host graph and builds each
// host's overlap graph, in first-seen host order. Packed placeholder
// embeddings (no Nodes/Edges) are skipped: MIS support requires
// unpacked embeddings, same as MIN_IMAGE (spec §4.3).
func ByHost(list *embedding.Embedding, kind Harm) (reps []*embedding.Embedding, graphs []*Graph, groups []embedding.Group) {
	buckets := make(map[*graphmodel.Graph]*hostBucket)
	var order []*graphmodel.Graph

	for e := list; e != nil; e = e.Succ {
		if e.Packed() {
			continue
		}
		b, ok := buckets[e.Host]
		if !ok {
			b = &hostBucket{host: e, group: e.Group}
			buckets[e.Host] = b
			order = append(order, e.Host)
		}
		b.embs = append(b.embs, e)
	}

	for _, host := range order {
		b := buckets[host]
		graphs = append(graphs, buildOverlap(b.embs, kind))
		reps = append(reps, b.host)
		groups = append(groups, b.group)
	}

	return reps, graphs, groups
}

func buildOverlap(embs []*embedding.Embedding, kind Harm) *Graph {
	g := NewGraph(len(embs))
	for i := 0; i < len(embs); i++ {
		for j := i + 1; j < len(embs); j++ {
			if overlaps(embs[i], embs[j], kind) {
				g.AddEdge(i, j)
			}
		}
	}

	return g
}

func overlaps(a, b *embedding.Embedding, kind Harm) bool {
	for i, na := range a.Nodes {
		for j, nb := range b.Nodes {
			if na != nb {
				continue
			}
			if kind == Harmful {
				if i != j {
					return true
				}

				continue
			}

			return true
		}
	}

	return false
}
