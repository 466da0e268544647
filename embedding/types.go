// File: types.go
// Role: Embedding and Group declarations, list helpers.
package embedding

import (
	"errors"

	"github.com/fsminer/fsminer/graphmodel"
)

// Sentinel errors for embedding construction.
var (
	// ErrNilHost indicates a nil host graph was passed to Embed/Contains.
	ErrNilHost = errors.New("embedding: host graph is nil")

	// ErrNilSub indicates a nil subgraph was passed to Embed/Contains.
	ErrNilSub = errors.New("embedding: subgraph is nil")

	// ErrPacked indicates an operation needs node/edge role data but
	// was given a packed Embedding; Unpack it first.
	ErrPacked = errors.New("embedding: embedding is packed")
)

// Group tags which partition a host graph belongs to.
type Group uint8

const (
	// Focus marks a host graph in the focus group.
	Focus Group = iota
	// Complement marks a host graph in the complement group.
	Complement
)

// Embedding is one occurrence of a fragment's subgraph in a host
// graph: Nodes[i] is the host node playing subgraph role i, Edges[j]
// the host edge playing subgraph edge-role j. A packed Embedding has
// both slices nil and only Host/Group/Succ meaningful.
type Embedding struct {
	Nodes []int
	Edges []int
	Host  *graphmodel.Graph
	Group Group
	Succ  *Embedding
}

// Packed reports whether e is a placeholder ("host contains the
// subgraph at least once") rather than a fully resolved occurrence.
func (e *Embedding) Packed() bool { return e == nil || e.Nodes == nil }

// Len returns the number of embeddings in the list headed by e.
func Len(list *Embedding) int {
	n := 0
	for e := list; e != nil; e = e.Succ {
		n++
	}

	return n
}

// Append concatenates list b onto the end of list a (O(len(a))) and
// returns the resulting head. Either list may be nil.
func Append(a, b *Embedding) *Embedding {
	if a == nil {
		return b
	}
	tail := a
	for tail.Succ != nil {
		tail = tail.Succ
	}
	tail.Succ = b

	return a
}

// Hosts returns the distinct host graphs referenced by list, in
// first-seen order.
func Hosts(list *Embedding) []*graphmodel.Graph {
	seen := make(map[*graphmodel.Graph]bool)
	var out []*graphmodel.Graph
	for e := list; e != nil; e = e.Succ {
		if !seen[e.Host] {
			seen[e.Host] = true
			out = append(out, e.Host)
		}
	}

	return out
}

// CountByGroup returns the number of distinct host graphs in each
// group and the total embedding count in each group: (focusHosts,
// complHosts, focusEmbeddings, complEmbeddings).
func CountByGroup(list *Embedding) (focusHosts, complHosts, focusEmb, complEmb int) {
	seen := make(map[*graphmodel.Graph]bool)
	for e := list; e != nil; e = e.Succ {
		if e.Group == Focus {
			focusEmb++
		} else {
			complEmb++
		}
		if seen[e.Host] {
			continue
		}
		seen[e.Host] = true
		if e.Group == Focus {
			focusHosts++
		} else {
			complHosts++
		}
	}

	return
}
