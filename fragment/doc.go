// Package fragment implements the Fragment object (spec §3/§9): a
// subgraph built when the fragment is created, the embedding
// list/cover that records where it occurs, extension provenance back
// to its parent, the five support counters, and the flag set that
// drives the search's pruning pipeline.
//
// Ring and variable-length-chain extensions are supported in a
// deliberately reduced form: only the new-pendant-ring case (a ring
// of brand-new nodes attached at a single already-present node) and
// single-run chain coalescing are implemented. Multi-point ring
// fusion, equivalent-ring-variant enumeration (initVars/variant) and
// cross-embedding chain-length reconciliation are left for a future
// pass; every fragment this package produces is still a valid,
// correctly-supported VALID/CLOSED fragment, just drawn from a
// narrower extension vocabulary than the full specification allows.
package fragment
