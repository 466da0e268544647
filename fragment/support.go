// File: support.go
// Role: computeSupport (spec §4.3) — fills Supp[0..3] under one of
// the four support measures.
package fragment

import (
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
	"github.com/fsminer/fsminer/mis"
)

// ComputeSupport fills f.Supp[0..3] under kind. MinImage temporarily
// unpacks a packed fragment's embeddings and repacks afterward, per
// spec §4.3.
func (f *Fragment) ComputeSupport(kind SupportKind, algo mis.Algorithm) error {
	switch kind {
	case Graphs:
		return f.computeGraphsSupport()
	case MinImage:
		return f.computeMinImageSupport()
	case MisOlap:
		return f.computeMISSupport(mis.Olap, algo)
	case MisHarm:
		return f.computeMISSupport(mis.Harmful, algo)
	default:
		return f.computeGraphsSupport()
	}
}

func (f *Fragment) computeGraphsSupport() error {
	if f.Emb == nil && f.Cover == nil {
		return ErrNoEmbeddings
	}
	if f.Cover != nil {
		focus, compl := f.Cover.Counts()
		f.Supp[0], f.Supp[1] = focus, compl

		return nil
	}
	focusHosts, complHosts, focusEmb, complEmb := embedding.CountByGroup(f.Emb)
	f.Supp[0], f.Supp[1], f.Supp[2], f.Supp[3] = focusHosts, complHosts, focusEmb, complEmb

	return nil
}

func (f *Fragment) computeMISSupport(kind mis.Harm, algo mis.Algorithm) error {
	if f.Emb == nil {
		return ErrNoEmbeddings
	}
	focus, compl := mis.Support(f.Emb, kind, algo)
	f.Supp[0], f.Supp[1] = focus, compl

	return nil
}

// computeMinImageSupport: for each fragment role i, count distinct
// host nodes mapped to role i across all embeddings of a group; the
// group's support is the minimum over roles.
func (f *Fragment) computeMinImageSupport() error {
	list := f.Emb
	wasPacked := false
	if list == nil && f.Cover != nil {
		return ErrPackedRole // nothing left to unpack role detail from
	}
	if hasPacked(list) {
		wasPacked = true
		unpacked, err := embedding.Unpack(list, f.Sub)
		if err != nil {
			return err
		}
		list = unpacked
	}

	roles := f.NodeCount()
	focusSeen := make([]map[hostNodeKey]bool, roles)
	complSeen := make([]map[hostNodeKey]bool, roles)
	for r := 0; r < roles; r++ {
		focusSeen[r] = make(map[hostNodeKey]bool)
		complSeen[r] = make(map[hostNodeKey]bool)
	}

	for e := list; e != nil; e = e.Succ {
		for r, hostNode := range e.Nodes {
			key := hostNodeKey{host: e.Host, node: hostNode}
			if e.Group == embedding.Focus {
				focusSeen[r][key] = true
			} else {
				complSeen[r][key] = true
			}
		}
	}

	f.Supp[0] = minCount(focusSeen)
	f.Supp[1] = minCount(complSeen)

	if wasPacked {
		f.Emb = embedding.Pack(list)
		f.Flags = f.Flags.Set(Packed)
	}

	return nil
}

func hasPacked(list *embedding.Embedding) bool {
	for e := list; e != nil; e = e.Succ {
		if e.Packed() {
			return true
		}
	}

	return false
}

// hostNodeKey identifies one node of one host graph.
type hostNodeKey struct {
	host *graphmodel.Graph
	node int
}

func minCount(seen []map[hostNodeKey]bool) int {
	if len(seen) == 0 {
		return 0
	}
	min := -1
	for _, s := range seen {
		if min < 0 || len(s) < min {
			min = len(s)
		}
	}
	if min < 0 {
		return 0
	}

	return min
}
