// File: closed.go
// Role: isClosed — a fragment is closed iff no one-step extension
// preserves both focus and complement support (spec §4.3).
package fragment

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/graphmodel"
	"github.com/fsminer/fsminer/mis"
)

// IsClosed enumerates every single-edge restricted extension of f and
// reports whether any of them has identical (Supp[0], Supp[1]) to f —
// in which case f is not closed. As soon as one is found its support
// is computed and, if it matches, false is returned immediately
// without evaluating the remaining candidates.
func (f *Fragment) IsClosed(extIdx *graphmodel.ExtIndex, kind SupportKind, algo mis.Algorithm) (bool, error) {
	growth := canon.NewGrowthState(0) // single fragment role restriction baseline
	candidates := canon.Extensions(f.Sub, f.Kind, growth, extIdx)

	for _, sig := range candidates.All() {
		child, err := f.Extend(sig)
		if err != nil {
			return false, err
		}
		if child.Emb == nil {
			continue
		}
		if err := child.ComputeSupport(kind, algo); err != nil {
			return false, err
		}
		if child.Supp[0] == f.Supp[0] && child.Supp[1] == f.Supp[1] {
			f.Flags = f.Flags.Clear(Closed)

			return false, nil
		}
	}

	return true, nil
}
