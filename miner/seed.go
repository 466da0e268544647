// File: seed.go
// Role: seeding — one root per distinct focus-group node type, swept
// in ascending (post-recode) type-code order (spec §4.4 step 2).
package miner

import (
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
)

// seedTypes returns the distinct focus-group node base types eligible
// as a search root, in ascending code order, skipping Config's
// excluded-type list. recodeTypes has already renumbered focus types
// by descending frequency, so ascending order here visits the most
// common focus substructure first.
func (m *Miner) seedTypes() []graphmodel.Type {
	if m.cfg.SeedType != nil {
		return []graphmodel.Type{*m.cfg.SeedType}
	}

	seen := make(map[graphmodel.Type]bool)
	var types []graphmodel.Type
	for i, h := range m.hosts {
		if m.groups[i] != embedding.Focus {
			continue
		}
		for j := 0; j < h.NodeCount(); j++ {
			t := h.Node(j).Type.Base()
			if seen[t] || m.excluded(t) {
				continue
			}
			seen[t] = true
			types = append(types, t)
		}
	}

	for i := 1; i < len(types); i++ {
		for j := i; j > 0 && types[j] < types[j-1]; j-- {
			types[j], types[j-1] = types[j-1], types[j]
		}
	}

	return types
}

func (m *Miner) excluded(t graphmodel.Type) bool {
	for _, ex := range m.cfg.ExcludedTypes {
		if ex.Base() == t {
			return true
		}
	}

	return false
}
