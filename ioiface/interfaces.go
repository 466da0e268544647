// File: interfaces.go
// Role: the collaborator contracts Miner depends on at its edges.
package ioiface

import "github.com/fsminer/fsminer/graphmodel"

// Record pairs one host graph with the group it was assigned to and
// its database identifier (the name reported in fragment output).
type Record struct {
	Name  string
	Group int // 0 = focus, 1 = complement; mirrors embedding.Group's values
	Graph *graphmodel.Graph
}

// GraphSource supplies the input database. Real implementations parse
// a line notation or table format and assign focus/complement by a
// numeric attribute threshold; this package is agnostic to that
// format, only to the Record shape it must produce.
type GraphSource interface {
	// Next returns the next record, or ok=false once exhausted.
	Next() (rec Record, ok bool, err error)
}

// Describer renders a fragment's subgraph as an external textual
// notation for output (the domain-specific inverse of GraphSource).
type Describer interface {
	Describe(sub *graphmodel.Graph) (string, error)
}

// Writer emits one reported fragment's line: description plus support
// counters.
type Writer interface {
	WriteFragment(id int, description string, focusSupp, complSupp int, focusRel, complRel float64) error
	Close() error
}

// IdentifierWriter optionally emits the "id:list" sidecar: one line
// per reported fragment naming every host graph it occurs in.
type IdentifierWriter interface {
	WriteIdentifiers(id int, hostNames []string) error
	Close() error
}
