// File: unclosable.go
// Role: unclosable-ring detection (spec §4.3) — a node past the CF's
// restricted-growth frontier that carries exactly one ring-marked edge
// can never have that ring closed, since closing it needs a second
// extension from the same node and the CF will never again offer one.
package fragment

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/graphmodel"
)

// HasUnclosableRings marks f.Sub's own rings (within [rgMin,rgMax]) and
// reports whether any node ineligible under growth/kind carries exactly
// one ring-marked edge.
func (f *Fragment) HasUnclosableRings(kind canon.Kind, growth *canon.GrowthState, rgMin, rgMax int) (bool, error) {
	if f.Sub == nil || f.Sub.NodeCount() < 3 {
		return false, nil
	}
	if err := f.Sub.MarkRings(rgMin, rgMax); err != nil && err != graphmodel.ErrTooManyRings {
		return false, err
	}

	for pos := 0; pos < f.Sub.NodeCount(); pos++ {
		if growth.Eligible(kind, pos) {
			continue
		}
		ringEdges := 0
		for _, eIdx := range f.Sub.Node(pos).Edges {
			if f.Sub.Edge(eIdx).RingBits != 0 {
				ringEdges++
			}
		}
		if ringEdges == 1 {
			return true, nil
		}
	}

	return false, nil
}
