// Package canon implements the canonical-form contract (spec §4.2): a
// code-word construction and canonicity test shared by two concrete
// orderings — CnFBreadth1/CnFBreadth2 (maximum-source / breadth) and
// CnFDepth (rightmost-path / depth-first) — plus the restricted
// extension enumerator each ordering implies.
//
// A code word is the root type followed by one Quad per edge, in the
// CF's edge order. A graph's current numbering is canonic under a CF
// iff its code word, built by reading edges in that numbering, equals
// the lexicographically smallest code word reachable by any
// re-rooting/re-ordering the CF allows. Because every CF here obeys
// the gSpan-style rightmost/max-source restriction, the minimum code
// word is always reachable via a restricted order (no unrestricted
// search is needed) — the same restriction function doubles as both
// the canonicity search's branching rule and the restricted-extension
// admissibility test used by fragment/miner to generate children.
//
// GrowthState carries the little bit of state ("max source index
// seen", "current rightmost path") that the restriction needs, as a
// reusable object threaded through one fragment's extension search —
// the "stateful iterator" design note from spec §9.
package canon
