// File: perfect.go
// Role: the perfect-extension test and revert() (spec §9 flag
// transitions). A perfect extension is a single-edge candidate that
// every one of f's embeddings supports exactly once: since it cannot
// change which embeddings survive, it can be applied directly without
// considering it (or its siblings) as a branching point.
package fragment

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// DetectPerfectExtension returns the unique child produced by a
// perfect single-edge extension of f, if one exists, setting f's
// Perfect flag. A candidate is perfect when every one of f's
// (unpacked) embeddings yields exactly one extension under it and no
// embedding is excluded, so the child's embedding count equals f's.
func (f *Fragment) DetectPerfectExtension(extIdx *graphmodel.ExtIndex) (*Fragment, error) {
	if f.Emb == nil {
		return nil, nil
	}

	growth := canon.NewGrowthState(0)
	candidates := canon.Extensions(f.Sub, f.Kind, growth, extIdx)
	parentCount := embedding.Len(f.Emb)

	for _, sig := range candidates.All() {
		forced := true
		for e := f.Emb; e != nil && forced; e = e.Succ {
			if e.Packed() {
				forced = false

				break
			}
			res, err := embedding.Extend(e, sig.Src, -1, sig.EdgeType, sig.DstType)
			if err != nil {
				return nil, err
			}
			if embedding.Len(res) != 1 {
				forced = false
			}
		}
		if !forced {
			continue
		}

		child, err := f.Extend(sig)
		if err != nil {
			return nil, err
		}
		if embedding.Len(child.Emb) != parentCount {
			continue
		}

		f.Flags = f.Flags.Set(Perfect)

		return child, nil
	}

	return nil, nil
}

// Revert marks f as having abandoned a perfect-extension chain begun
// from it: the chain's fragments were explored directly without
// branching, but turned out not to extend the reported result set
// (e.g. a later support check failed), so f resumes ordinary
// sibling branching instead of being treated as fully subsumed by
// that chain.
func (f *Fragment) Revert() {
	f.Flags = f.Flags.Set(Reverted).Clear(Perfect)
}
