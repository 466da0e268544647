// File: typemgr.go
// Role: Manager — the name<->Type code collaborator, built with
// functional options in the teacher's style (panic on meaningless
// construction arguments; options mutate an unexported config before
// use begins).
package typemgr

import (
	"errors"
	"fmt"

	"github.com/fsminer/fsminer/graphmodel"
)

// Sentinel errors.
var (
	// ErrUnknownName indicates a lookup for a name never registered.
	ErrUnknownName = errors.New("typemgr: unknown type name")

	// ErrUnknownCode indicates a lookup for a code never registered.
	ErrUnknownCode = errors.New("typemgr: unknown type code")

	// ErrFixedVocabulary indicates GetCode was called on a Manager
	// built with WithFixedVocabulary for a name not already present.
	ErrFixedVocabulary = errors.New("typemgr: vocabulary is fixed; unknown name rejected")
)

// Option customizes a Manager at construction time.
type Option func(*Manager)

// WithFixedVocabulary marks the manager closed: GetCode rejects any
// name not already present instead of minting a new code.
func WithFixedVocabulary() Option {
	return func(m *Manager) { m.fixed = true }
}

// WithSeedNames pre-registers names in order, assigning codes
// 0..len(names)-1. Panics if names contains a duplicate (programmer
// error, not a runtime condition).
func WithSeedNames(names ...string) Option {
	return func(m *Manager) {
		for _, n := range names {
			if _, ok := m.byName[n]; ok {
				panic(fmt.Sprintf("typemgr: WithSeedNames: duplicate name %q", n))
			}
			m.add(n)
		}
	}
}

// Manager is the bidirectional name<->Type mapping for one type
// dimension (node types, or edge types — callers keep one Manager
// per dimension).
type Manager struct {
	byName map[string]graphmodel.Type
	byCode map[graphmodel.Type]string
	next   graphmodel.Type
	fixed  bool
}

// New returns a Manager configured by opts, applied in order.
func New(opts ...Option) *Manager {
	m := &Manager{byName: make(map[string]graphmodel.Type), byCode: make(map[graphmodel.Type]string)}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) add(name string) graphmodel.Type {
	code := m.next
	m.next++
	m.byName[name] = code
	m.byCode[code] = name

	return code
}

// GetCode returns the Type code for name, registering a new one if
// the vocabulary is extendable and name is not yet known.
func (m *Manager) GetCode(name string) (graphmodel.Type, error) {
	if code, ok := m.byName[name]; ok {
		return code, nil
	}
	if m.fixed {
		return 0, fmt.Errorf("%w: %q", ErrFixedVocabulary, name)
	}

	return m.add(name), nil
}

// GetName returns the registered name for code.
func (m *Manager) GetName(code graphmodel.Type) (string, error) {
	name, ok := m.byCode[code.Base()]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}

	return name, nil
}

// Len reports the number of distinct registered names.
func (m *Manager) Len() int { return len(m.byName) }

// Fixed reports whether this Manager rejects unknown names.
func (m *Manager) Fixed() bool { return m.fixed }
