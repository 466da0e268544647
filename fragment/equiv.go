// File: equiv.go
// Role: equivalence check between sibling fragments — two children of
// the same parent that turn out to be isomorphic should be coalesced
// (only one carried forward), which is what the SIBLINGS-possible
// flag and the code-word comparison below support.
package fragment

import "github.com/fsminer/fsminer/canon"

// Equivalent reports whether a and b are isomorphic subgraphs: their
// best code words under kind compare equal. Used to detect redundant
// siblings produced by distinct extension signatures that happen to
// yield the same fragment (e.g. two different insertion points on a
// symmetric subgraph).
func Equivalent(a, b *Fragment, kind canon.Kind) (bool, error) {
	ca, err := canon.BestCodeWord(a.Sub, kind)
	if err != nil {
		return false, err
	}
	cb, err := canon.BestCodeWord(b.Sub, kind)
	if err != nil {
		return false, err
	}

	return ca.Equal(cb), nil
}

// MarkSiblingsPossible sets the SiblingsPossible flag on f when f's
// subgraph has a nontrivial automorphism (some node's orbit reaches
// beyond itself), a necessary precondition for any sibling of f to be
// equivalent to it.
func MarkSiblingsPossible(f *Fragment, kind canon.Kind) error {
	verdict, err := canon.IsCanonic(f.Sub, kind, len(f.Sub.Edges))
	if err != nil {
		return err
	}
	if verdict != 1 {
		return nil
	}
	for i := 0; i < f.Sub.NodeCount(); i++ {
		if f.Sub.Node(i).Orbit != i {
			f.Flags = f.Flags.Set(SiblingsPossible)

			break
		}
	}
	f.Flags = f.Flags.Set(OrbitsKnown)

	return nil
}
