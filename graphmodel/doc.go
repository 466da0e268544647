// Package graphmodel defines the attributed, undirected graph used
// throughout fsminer: Node, Edge, and Graph, plus the primitive
// mutations (ring marking, bridge marking, type masking, connected-
// component splitting) that every higher layer builds on.
//
// Nodes and edges carry a bit-packed 32-bit type code: a 30-bit base
// type plus a WILDCARD bit and a SPECIAL (chain-marker) bit. Graph
// indices (the position of a Node/Edge in Graph.Nodes/Graph.Edges) are
// their identity for the lifetime of the Graph; fragments and
// embeddings refer to nodes and edges by these indices, never by
// pointer identity across graphs.
//
// This package knows nothing about fragments, embeddings, or
// canonical form — it only maintains one graph's own structure.
package graphmodel
