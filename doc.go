// Package fsminer is the module root for a frequent connected subgraph
// miner over attributed, undirected graph databases.
//
// A database of graphs is split into a focus group and a complement
// group by a threshold on a numeric attribute. The miner enumerates
// every connected subgraph ("fragment") occurring in at least s_min
// focus graphs and at most s_max complement graphs, within configured
// size bounds, reporting each fragment exactly once.
//
// Subpackages, leaves first:
//
//	graphmodel/  — Node, Edge, Graph: typed attributes, ring/bridge marking
//	embedding/   — per-fragment occurrence lists; embed/extend; packing
//	canon/       — canonical form: code words, restricted extensions, ring variants
//	mis/         — overlap-graph construction and maximum-independent-set support
//	fragment/    — the Fragment object: subgraph, embeddings, support, flags
//	repository/  — duplicate-fragment hash store used when CF pruning is off
//	typemgr/     — node/edge type-code managers (collaborator)
//	config/      — mode flags and numeric parameters
//	miner/       — the search engine: setup, seeding, recursion, pruning, output
//	ioiface/     — collaborator interfaces: graph sources, describers, writers
//	cmd/fsminer/ — composition root binary
//
// Data flows top-down: miner drives fragment, which drives canon to
// produce extensions against embedding/graphmodel. graphmodel and
// embedding use only primitive node/edge mutation. repository and mis
// are auxiliary services called from miner/fragment.
package fsminer
