// Package embedding tracks where a fragment's subgraph occurs inside
// the graphs of a database: one Embedding is a concrete injective
// structure-preserving map of the subgraph into a host graph.
//
// Embeddings for one fragment form a singly linked list (Embedding.Succ),
// grouped first by host graph and then in arbitrary order within a
// graph. A Packed embedding retains only its host-graph reference —
// "this host contains the subgraph at least once" — and is
// regenerated on demand by Unpack.
//
// Molecular-style inputs encode bond order in the edge type rather
// than true parallel edges; Embed and Extend therefore resolve each
// subgraph edge to a single host edge once both endpoints are fixed.
// Host graphs with genuine parallel edges between the same two nodes
// are out of scope (see DESIGN.md).
package embedding
