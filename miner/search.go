// File: search.go
// Role: the recursive canonical-form-restricted extension search and
// its pruning pipeline (spec §4.4 step 3), run once per seed root.
package miner

import (
	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/fragment"
	"github.com/fsminer/fsminer/mis"
)

// mine sweeps every seed type, growing and reporting each resulting
// tree in turn.
func (m *Miner) mine() error {
	for _, t := range m.seedTypes() {
		if m.stop.Load() {
			return ErrAborted
		}

		f, err := fragment.Seed(t, m.hosts, m.groups, m.cfg.Kind)
		if err != nil {
			return err
		}
		if err := f.ComputeSupport(m.cfg.SupportKind, m.algoFor(f)); err != nil {
			return err
		}
		if !m.supportOK(f) {
			continue
		}

		if err := m.mineFrom(f, canon.NewGrowthState(0)); err != nil {
			return err
		}
	}

	return nil
}

// mineFrom explores every extension of f, recursing into every
// accepted child, then reports f itself in post-order.
func (m *Miner) mineFrom(f *fragment.Fragment, growth *canon.GrowthState) error {
	if m.stop.Load() {
		return ErrAborted
	}

	flags := m.cfg.Options.Flags

	if flags.PrPerfect {
		solved, err := m.followPerfect(f, growth)
		if err != nil {
			return err
		}
		if solved {
			return m.finalize(f)
		}
	}

	sigs := m.candidateSignatures(f, growth)

	var perfectSig *canon.ExtensionSignature
	if flags.PrPartial {
		pf, err := f.DetectPerfectExtension(m.extIdx)
		if err != nil {
			return err
		}
		if pf != nil {
			sig := signatureOf(pf)
			perfectSig = &sig
		}
	}

	var accepted []*fragment.Fragment

sigLoop:
	for _, sig := range sigs {
		child, err := m.buildChild(f, sig)
		if err != nil {
			return err
		}
		if child == nil || (child.Emb == nil && child.Cover == nil) {
			continue
		}
		if err := child.ComputeSupport(m.cfg.SupportKind, m.algoFor(child)); err != nil {
			return err
		}
		m.markIncidentalClose(f, child)

		isPerfectSig := perfectSig != nil && sig == *perfectSig

		if !m.supportOK(child) {
			if isPerfectSig {
				break sigLoop
			}

			continue
		}

		if flags.Ring && flags.PrUnclose {
			bad, err := child.HasUnclosableRings(m.cfg.Kind, growth, m.cfg.Options.Params.RgMin, m.cfg.Options.Params.RgMax)
			if err != nil {
				return err
			}
			if bad {
				if isPerfectSig {
					break sigLoop
				}

				continue
			}
		}

		if err := child.Adapt(); err != nil {
			return err
		}

		if flags.PrEquiv && m.equivalentToAny(child, accepted) {
			if isPerfectSig {
				break sigLoop
			}

			continue
		}
		if flags.PrEquiv {
			_ = fragment.MarkSiblingsPossible(child, m.cfg.Kind)
		}

		accepted = append(accepted, child)

		if isPerfectSig {
			break sigLoop
		}
	}

	if flags.Ring {
		for _, rc := range m.discoverRings(f, growth) {
			child, err := f.ExtendRing(rc.Anchor, rc.EdgeTypes, rc.NodeTypes)
			if err != nil || child == nil || child.Emb == nil {
				continue
			}
			if err := child.ComputeSupport(m.cfg.SupportKind, m.algoFor(child)); err != nil {
				return err
			}
			m.markIncidentalClose(f, child)
			if !m.supportOK(child) {
				continue
			}
			if flags.PrUnclose {
				bad, err := child.HasUnclosableRings(m.cfg.Kind, growth, m.cfg.Options.Params.RgMin, m.cfg.Options.Params.RgMax)
				if err != nil {
					return err
				}
				if bad {
					continue
				}
			}
			if err := child.Adapt(); err != nil {
				return err
			}
			if flags.PrEquiv && m.equivalentToAny(child, accepted) {
				continue
			}
			accepted = append(accepted, child)
		}
	}

	for _, child := range accepted {
		ok, err := m.acceptCanonical(child, f)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		childGrowth := growth.Clone()
		childGrowth.Advance(m.cfg.Kind, child.Src, child.Dst, true)
		if err := m.mineFrom(child, childGrowth); err != nil {
			return err
		}
	}

	return m.finalize(f)
}

// followPerfect tests f's own perfect single-edge extension. If one
// exists and survives support thresholds, f's entire ordinary sibling
// branching is skipped in favor of that one child (spec §9 PR_PERFECT
// "full" pruning); reports solved=true in that case, meaning the
// caller should not generate f's ordinary candidates at all. If the
// perfect candidate fails its support check, f reverts to ordinary
// branching.
func (m *Miner) followPerfect(f *fragment.Fragment, growth *canon.GrowthState) (bool, error) {
	child, err := f.DetectPerfectExtension(m.extIdx)
	if err != nil || child == nil {
		return false, err
	}
	if err := child.ComputeSupport(m.cfg.SupportKind, m.algoFor(child)); err != nil {
		return false, err
	}
	m.markIncidentalClose(f, child)
	if !m.supportOK(child) {
		f.Revert()

		return false, nil
	}

	if err := child.Adapt(); err != nil {
		return false, err
	}
	ok, err := m.acceptCanonical(child, f)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}

	childGrowth := growth.Clone()
	childGrowth.Advance(m.cfg.Kind, child.Src, child.Dst, true)
	if err := m.mineFrom(child, childGrowth); err != nil {
		return false, err
	}

	return true, nil
}

func (m *Miner) candidateSignatures(f *fragment.Fragment, growth *canon.GrowthState) []canon.ExtensionSignature {
	if m.cfg.Options.Flags.AllExts {
		set := m.allExtensions(f.Sub)

		return set.All()
	}
	set := canon.Extensions(f.Sub, m.cfg.Kind, growth, m.extIdx)

	return set.All()
}

// buildChild grows sig from f, preferring a variable-length chain when
// CHAIN is enabled and the resulting walk actually sees more than one
// distinct length; otherwise an ordinary single-edge extension, below
// the embedding-level switch a cover-only one (spec §4.4 "Embedding-
// level switch").
//
// The switch only ever applies to the plain single-edge path: ring,
// chain and equivalent-sibling pruning all need per-host node/edge
// role detail that a Cover doesn't carry, so those modes keep running
// on full embeddings regardless of EmbLvl.
func (m *Miner) buildChild(f *fragment.Fragment, sig canon.ExtensionSignature) (*fragment.Fragment, error) {
	if m.cfg.Options.Flags.Chain {
		child, lengths, err := f.ExtendChain(sig.Src, sig.EdgeType, sig.DstType, m.cfg.ChainMaxLen)
		if err != nil {
			return nil, err
		}
		if child != nil && fragment.ChainValid(lengths) {
			return child, nil
		}
	}

	if m.belowEmbLvl(f) {
		return f.ExtendCover(sig)
	}

	if f.Emb == nil && f.Cover != nil {
		if err := f.Materialize(); err != nil {
			return nil, err
		}
	}

	return f.Extend(sig)
}

// belowEmbLvl reports whether f sits below the configured embedding
// level: EmbLvl <= 0 means "always embed" (the documented default),
// otherwise a fragment whose current size hasn't yet reached EmbLvl
// grows by containment-tested cover instead of full embeddings.
// Ring/Chain/PrEquiv modes opt out since they need embedding detail,
// and so does any support measure besides Graphs, since MinImage/MIS
// support need per-host node roles a Cover doesn't carry.
func (m *Miner) belowEmbLvl(f *fragment.Fragment) bool {
	flags := m.cfg.Options.Flags
	if flags.Ring || flags.Chain || flags.PrEquiv {
		return false
	}
	if m.cfg.SupportKind != fragment.Graphs {
		return false
	}
	lvl := m.cfg.Options.Params.EmbLvl

	return lvl > 0 && f.Sub.EdgeCount() < lvl
}

func (m *Miner) markIncidentalClose(parent, child *fragment.Fragment) {
	if child.Supp[0] == parent.Supp[0] && child.Supp[1] == parent.Supp[1] {
		parent.Flags = parent.Flags.Clear(fragment.Closed)
	}
}

func (m *Miner) equivalentToAny(child *fragment.Fragment, siblings []*fragment.Fragment) bool {
	for _, s := range siblings {
		if !s.Flags.Has(fragment.SiblingsPossible) {
			continue
		}
		eq, err := fragment.Equivalent(s, child, m.cfg.Kind)
		if err == nil && eq {
			return true
		}
	}

	return false
}

// acceptCanonical applies whichever duplicate-rejection scheme is
// active: CF-restricted canonicity testing, or repository-based
// code-word deduplication when PR_CANONIC is off.
func (m *Miner) acceptCanonical(child, parent *fragment.Fragment) (bool, error) {
	if m.cfg.Options.Flags.PrCanonic {
		v, err := canon.IsCanonic(child.Sub, m.cfg.Kind, len(parent.Sub.Edges))
		if err != nil {
			return false, err
		}
		if v == -1 {
			return false, nil
		}
		if v == 0 {
			child.Flags = child.Flags.Clear(fragment.Valid)
		}

		return true, nil
	}

	cw, err := canon.BestCodeWord(child.Sub, m.cfg.Kind)
	if err != nil {
		return false, err
	}

	return m.repo.Add(cw), nil
}

func signatureOf(pf *fragment.Fragment) canon.ExtensionSignature {
	e := pf.Sub.Edge(pf.Idx)

	return canon.ExtensionSignature{Src: pf.Src, EdgeType: e.Type, DstType: pf.Sub.Node(pf.Dst).Type}
}

// supportOK reports whether f's focus support clears s_min. Support is
// anti-monotone under extension (a child's support never exceeds its
// parent's), so a focus support already below s_min can never recover
// in any descendant: this is the safe downward-closure prune used
// throughout the search (spec §4.4 step 3, "support pruning").
//
// It deliberately does not check s_max: that bounds complement
// support from above, and since complement support only ever shrinks
// on further extension, a fragment currently over s_max may still
// have a descendant that falls back under it. s_max is an output
// filter only (spec §4.4 step 4), applied in finalize via
// complementOK, never used to stop recursion.
func (m *Miner) supportOK(f *fragment.Fragment) bool {
	p := m.cfg.Options.Params

	return float64(f.Supp[0]) >= p.SMin
}

// complementOK reports whether f's complement support clears s_max
// (spec §4.4 Output, testable invariant #2: f.supp[1] <= s_max);
// SMax < 0 means unbounded.
func (m *Miner) complementOK(f *fragment.Fragment) bool {
	p := m.cfg.Options.Params
	if p.SMax < 0 {
		return true
	}

	return float64(f.Supp[1]) <= p.SMax
}

// algoFor picks the MIS solver for f, falling back from AlgoExact to
// AlgoGreedy when f's live embedding count would exceed the
// configured budget (an approximation: the true per-host overlap
// graph is never larger than this total, so no overlap graph over the
// budget is ever solved exactly, though the fallback may also trigger
// when no single host's overlap graph exceeds the budget).
func (m *Miner) algoFor(f *fragment.Fragment) mis.Algorithm {
	if m.cfg.Algorithm != mis.AlgoExact {
		return m.cfg.Algorithm
	}
	if embedding.Len(f.Emb) > m.cfg.Options.Params.MISBudget {
		m.logger.Warn().
			Int("embeddings", embedding.Len(f.Emb)).
			Int("budget", m.cfg.Options.Params.MISBudget).
			Msg("mis budget exceeded, falling back to greedy for this fragment")

		return mis.AlgoGreedy
	}

	return mis.AlgoExact
}
