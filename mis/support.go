// File: support.go
// Role: the MIS_OLAP/MIS_HARM group-support contract: sum, over each
// group's hosts, the chosen solver's independent-set size.
package mis

import "github.com/fsminer/fsminer/embedding"

// Algorithm selects which MIS solver backs a support computation.
type Algorithm int

const (
	// AlgoGreedy runs the cheap, non-optimal heuristic.
	AlgoGreedy Algorithm = iota
	// AlgoExact runs branch-and-bound for the true maximum.
	AlgoExact
)

// Support computes (focusSupport, complSupport) for an embedding list
// under the given overlap relation and solver: for every host
// contributing at least one unpacked embedding, add the solver's
// independent-set size to that host's group total.
func Support(list *embedding.Embedding, kind Harm, algo Algorithm) (focus, compl int) {
	_, graphs, groups := ByHost(list, kind)
	for i, g := range graphs {
		var size int
		switch algo {
		case AlgoExact:
			size = len(Exact(g))
		default:
			size = len(Greedy(g))
		}
		if groups[i] == embedding.Focus {
			focus += size
		} else {
			compl += size
		}
	}

	return focus, compl
}
