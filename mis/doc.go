// Package mis computes maximum-independent-set support over embedding
// overlap graphs (spec §4.3): one overlap graph per host graph, nodes
// are a fragment's embeddings in that host, edges mark overlap
// (shared host node for MIS_OLAP, shared host node playing different
// fragment roles for MIS_HARM). A group's support is the sum, over
// its hosts, of the overlap graph's maximum independent set size.
//
// Both Greedy and Exact preselect forced nodes — isolated nodes and
// leaves — as a safe reduction before the harder search begins: an
// isolated node belongs to every maximum independent set, and a leaf
// is always at least as good a choice as its sole neighbor.
package mis
