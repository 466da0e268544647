// Package repository implements the duplicate-fragment store used
// when canonical-form pruning is disabled (spec §4.2/§9): a fragment
// is looked up by its code word under whichever CF the search is
// using, and only a fragment not already present is kept — in effect
// a map-based fallback for the same "has this subgraph already been
// produced" question CF pruning answers structurally.
package repository
