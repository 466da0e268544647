// File: repository.go
// Role: Store — a hash-table of already-seen fragments, keyed by
// code word, for the non-CF-pruning search mode.
package repository

import (
	"strconv"
	"strings"

	"github.com/fsminer/fsminer/canon"
)

// Store deduplicates fragments by their best code word under a fixed
// CF kind.
type Store struct {
	kind canon.Kind
	seen map[string]bool
}

// New returns an empty Store for the given CF kind.
func New(kind canon.Kind) *Store {
	return &Store{kind: kind, seen: make(map[string]bool)}
}

// Key renders a code word as a deterministic string suitable for map
// lookup (CodeWord itself is not comparable as a map key: it embeds a
// slice).
func Key(cw canon.CodeWord) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(cw.Root), 36))
	for _, q := range cw.Quads {
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(q.Src))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(q.Dst))
		b.WriteByte(',')
		b.WriteString(strconv.FormatUint(uint64(q.EdgeType), 36))
		b.WriteByte(',')
		b.WriteString(strconv.FormatUint(uint64(q.DstType), 36))
	}

	return b.String()
}

// Seen reports whether a code word has already been recorded.
func (s *Store) Seen(cw canon.CodeWord) bool {
	return s.seen[Key(cw)]
}

// Add records a code word as seen, reporting whether it was new (a
// fragment whose code word is already present is a duplicate and
// should be dropped from the search).
func (s *Store) Add(cw canon.CodeWord) bool {
	k := Key(cw)
	if s.seen[k] {
		return false
	}
	s.seen[k] = true

	return true
}

// Len reports the number of distinct code words recorded.
func (s *Store) Len() int { return len(s.seen) }

// Kind reports the CF kind this store's keys were computed under.
func (s *Store) Kind() canon.Kind { return s.kind }
