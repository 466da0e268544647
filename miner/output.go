// File: output.go
// Role: post-order reporting — decide whether a finished fragment
// qualifies for output, then buffer it for Run to flush once the
// whole search, over every root, completes (spec §4.4 step 4,
// §7 output format).
package miner

import (
	"strconv"
	"strings"

	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/fragment"
	"github.com/fsminer/fsminer/graphmodel"
	"github.com/fsminer/fsminer/repository"
)

// finalize decides whether f qualifies for output under the active
// size, support, closedness and ring-closure filters, and if so
// buffers it.
func (m *Miner) finalize(f *fragment.Fragment) error {
	if !f.Flags.Has(fragment.Valid) {
		return nil
	}

	p := m.cfg.Options.Params
	size := f.Sub.NodeCount()
	if size < p.Min {
		return nil
	}
	if p.Max > 0 && size > p.Max {
		return nil
	}
	if !m.supportOK(f) || !m.complementOK(f) {
		return nil
	}
	if m.cfg.Options.Flags.Closed && !f.Flags.Has(fragment.Closed) {
		return nil
	}
	if m.cfg.Options.Flags.CloseRings && !m.cfg.Options.Flags.PrUnclose {
		noGrowth := &canon.GrowthState{MaxSource: f.NodeCount()}
		bad, err := f.HasUnclosableRings(m.cfg.Kind, noGrowth, p.RgMin, p.RgMax)
		if err != nil {
			return err
		}
		if bad {
			return nil
		}
	}

	return m.report(f)
}

func (m *Miner) report(f *fragment.Fragment) error {
	m.nextID++
	id := m.nextID

	desc, err := m.describe(f)
	if err != nil {
		return err
	}

	focusRel, complRel := m.relativeSupport(f)

	m.reported = append(m.reported, reportedFragment{
		id:          id,
		description: desc,
		focusSupp:   f.Supp[0],
		complSupp:   f.Supp[1],
		focusRel:    focusRel,
		complRel:    complRel,
		hostNames:   m.hostNamesFor(f),
	})

	return nil
}

// describe renders f.Sub via the configured Describer, or falls back
// to a compact code-word rendering (using NodeNames/EdgeNames for
// readability when configured) when no Describer was supplied.
func (m *Miner) describe(f *fragment.Fragment) (string, error) {
	if m.cfg.Describer != nil {
		return m.cfg.Describer.Describe(f.Sub)
	}
	if m.cfg.NodeNames == nil {
		cw, err := canon.CurrentCodeWord(f.Sub, m.cfg.Kind)
		if err != nil {
			return "", err
		}

		return repository.Key(cw), nil
	}

	var b strings.Builder
	b.WriteString(m.typeName(f.Sub.Node(0).Type))
	for _, e := range f.Sub.Edges {
		b.WriteByte('-')
		b.WriteString(m.edgeName(e.Type))
		b.WriteByte('-')
		b.WriteString(m.typeName(f.Sub.Node(e.Dst).Type))
	}

	return b.String(), nil
}

func (m *Miner) typeName(t graphmodel.Type) string {
	if m.cfg.NodeNames != nil {
		if n, err := m.cfg.NodeNames.GetName(t); err == nil {
			return n
		}
	}

	return strconv.FormatUint(uint64(t.Base()), 10)
}

func (m *Miner) edgeName(t graphmodel.Type) string {
	if m.cfg.EdgeNames != nil {
		if n, err := m.cfg.EdgeNames.GetName(t); err == nil {
			return n
		}
	}

	return strconv.FormatUint(uint64(t.Base()), 10)
}

func (m *Miner) relativeSupport(f *fragment.Fragment) (focusRel, complRel float64) {
	if m.totalFocus > 0 {
		focusRel = float64(f.Supp[0]) / float64(m.totalFocus)
	}
	if m.totalCompl > 0 {
		complRel = float64(f.Supp[1]) / float64(m.totalCompl)
	}

	return focusRel, complRel
}

func (m *Miner) hostNamesFor(f *fragment.Fragment) []string {
	if f.Cover != nil {
		names := make([]string, len(f.Cover.Hosts))
		for i, h := range f.Cover.Hosts {
			names[i] = h.Name
		}

		return names
	}
	if f.Emb == nil {
		return nil
	}
	hosts := embedding.Hosts(f.Emb)
	names := make([]string, len(hosts))
	for i, h := range hosts {
		names[i] = h.Name
	}

	return names
}

// flush writes every buffered fragment, in accumulation (post-order)
// order, to the configured Writer/IdentifierWriter.
func (m *Miner) flush() error {
	for _, r := range m.reported {
		if err := m.cfg.Writer.WriteFragment(r.id, r.description, r.focusSupp, r.complSupp, r.focusRel, r.complRel); err != nil {
			return err
		}
		if m.cfg.Identifiers != nil {
			if err := m.cfg.Identifiers.WriteIdentifiers(r.id, r.hostNames); err != nil {
				return err
			}
		}
	}
	if err := m.cfg.Writer.Close(); err != nil {
		return err
	}
	if m.cfg.Identifiers != nil {
		return m.cfg.Identifiers.Close()
	}

	return nil
}
