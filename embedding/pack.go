// File: pack.go
// Role: Pack/Unpack — trade an embedding list's per-host enumeration
// for a single placeholder per host, regenerated on demand.
//
// Open question (spec §9): the source documents packing of the
// *first* host graph's embeddings as unsupported. This implementation
// retains that restriction — the first host encountered keeps its
// live embeddings, and only the second host onward is collapsed to a
// placeholder — rather than lifting it, since lifting it is only
// "may" in the spec and the conservative behavior is cheap to keep.
package embedding

import "github.com/fsminer/fsminer/graphmodel"

// Pack collapses list to one live group (the first host encountered)
// plus one placeholder Embedding per subsequent distinct host.
func Pack(list *Embedding) *Embedding {
	if list == nil {
		return nil
	}

	var head, tail *Embedding
	seen := make(map[*graphmodel.Graph]bool)
	firstHost := list.Host

	appendEmb := func(e *Embedding) {
		if head == nil {
			head = e
			tail = e
		} else {
			tail.Succ = e
			tail = e
		}
	}

	for e := list; e != nil; e = e.Succ {
		if e.Host == firstHost {
			cp := *e
			cp.Succ = nil
			appendEmb(&cp)
			continue
		}
		if seen[e.Host] {
			continue
		}
		seen[e.Host] = true
		appendEmb(&Embedding{Host: e.Host, Group: e.Group})
	}

	return head
}

// Unpack regenerates a fully-resolved embedding list from a (possibly
// partially) packed one by re-embedding sub into every packed host;
// live embeddings already present are kept as-is.
func Unpack(list *Embedding, sub *graphmodel.Graph) (*Embedding, error) {
	var head, tail *Embedding
	appendList := func(l *Embedding) {
		if l == nil {
			return
		}
		if head == nil {
			head = l
		} else {
			tail.Succ = l
		}
		tail = l
		for tail.Succ != nil {
			tail = tail.Succ
		}
	}

	for e := list; e != nil; e = e.Succ {
		if !e.Packed() {
			cp := *e
			cp.Succ = nil
			appendList(&cp)
			continue
		}
		re, err := Embed(e.Host, sub, e.Group)
		if err != nil {
			return nil, err
		}
		appendList(re)
	}

	return head, nil
}
