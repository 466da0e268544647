// File: setup.go
// Role: New — load the database, split by group, mark bridges/rings,
// recode node types by descending focus frequency, build the
// extension-edge index (spec §4.4 step 1, "Setup").
package miner

import (
	"sort"

	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/graphmodel"
	"github.com/fsminer/fsminer/repository"
)

// New drains cfg.Source, prepares every host graph for mining, and
// returns a Miner ready for Run. cfg.Options is validated and
// normalized before any other setup step runs.
func New(cfg Config) (*Miner, error) {
	if cfg.Source == nil {
		return nil, ErrNoSource
	}
	if cfg.Writer == nil {
		return nil, ErrNoWriter
	}
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}
	cfg.Options = cfg.Options.Normalize()
	cfg.ChainMaxLen = defaultChainMaxLen(cfg.ChainMaxLen)

	m := &Miner{cfg: cfg, logger: cfg.Logger}

	if err := m.loadHosts(); err != nil {
		return nil, err
	}
	m.recodeTypes()

	for _, h := range m.hosts {
		h.Prepare()
		if cfg.Options.Flags.Chain || cfg.Options.Flags.PrPerfect {
			h.MarkBridges()
		}
		if cfg.Options.Flags.Ring {
			if err := h.MarkRings(cfg.Options.Params.RgMin, cfg.Options.Params.RgMax); err != nil {
				m.logger.Warn().Str("host", h.Name).Err(err).Msg("ring marking capacity exceeded, falling back to bridge-only for this host")
			}
		}
	}

	m.extIdx = graphmodel.BuildExtIndex(m.hosts)
	if !cfg.Options.Flags.PrCanonic {
		m.repo = repository.New(cfg.Kind)
	}

	m.logger.Info().Int("hosts", len(m.hosts)).Msg("miner setup complete")

	return m, nil
}

func (m *Miner) loadHosts() error {
	for {
		rec, ok, err := m.cfg.Source.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		g := groupOf(rec.Group)
		m.hosts = append(m.hosts, rec.Graph)
		m.groups = append(m.groups, g)
		if g == embedding.Focus {
			m.totalFocus++
		} else {
			m.totalCompl++
		}
	}
}

func groupOf(g int) embedding.Group {
	if g == 0 {
		return embedding.Focus
	}

	return embedding.Complement
}

// recodeTypes counts focus-group node-type base-code frequencies and
// rewrites every host's node types so that the most frequent focus
// type becomes the smallest code — the order the CF's source-index
// restriction relies on to make common substructures reach their
// minimum code word first (spec §4.4 "sort types by descending
// frequency... re-encode").
func (m *Miner) recodeTypes() {
	freq := make(map[graphmodel.Type]int)
	for i, h := range m.hosts {
		if m.groups[i] != 0 {
			continue
		}
		for j := 0; j < h.NodeCount(); j++ {
			freq[h.Node(j).Type.Base()]++
		}
	}
	if len(freq) == 0 {
		return
	}

	types := make([]graphmodel.Type, 0, len(freq))
	for t := range freq {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if freq[types[i]] != freq[types[j]] {
			return freq[types[i]] > freq[types[j]]
		}

		return types[i] < types[j]
	})

	remap := make(map[graphmodel.Type]graphmodel.Type, len(types))
	for newCode, old := range types {
		remap[old] = graphmodel.Type(newCode)
	}

	for _, h := range m.hosts {
		for j := 0; j < h.NodeCount(); j++ {
			n := h.Node(j)
			flags := n.Type &^ graphmodel.TypeBaseMask
			if recoded, ok := remap[n.Type.Base()]; ok {
				n.Type = recoded | flags
			}
		}
	}
}
