// File: types.go
// Role: Config and Miner declarations, sentinel errors, MinerError.
package miner

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/fsminer/fsminer/canon"
	"github.com/fsminer/fsminer/config"
	"github.com/fsminer/fsminer/embedding"
	"github.com/fsminer/fsminer/fragment"
	"github.com/fsminer/fsminer/graphmodel"
	"github.com/fsminer/fsminer/ioiface"
	"github.com/fsminer/fsminer/mis"
	"github.com/fsminer/fsminer/repository"
	"github.com/fsminer/fsminer/typemgr"
)

// Sentinel errors.
var (
	// ErrNoSource indicates Config.Source was nil.
	ErrNoSource = errors.New("miner: no graph source configured")

	// ErrNoWriter indicates Config.Writer was nil.
	ErrNoWriter = errors.New("miner: no fragment writer configured")

	// ErrAborted indicates the search was cancelled before completion.
	ErrAborted = errors.New("miner: search aborted")
)

// MinerError wraps a fatal internal error with the run's correlation
// ID (spec §7: "on any fatal error... emits a single diagnostic
// line").
type MinerError struct {
	RunID string
	Err   error
}

func (e *MinerError) Error() string { return fmt.Sprintf("miner: run %s: fatal: %v", e.RunID, e.Err) }
func (e *MinerError) Unwrap() error { return e.Err }

// Config is everything one Miner run needs: the validated/normalized
// options, the external collaborators, and the CF/support algorithm
// selection that the distilled mode flags alone don't pin down.
type Config struct {
	Options config.Options

	Source      ioiface.GraphSource
	Writer      ioiface.Writer
	Identifiers ioiface.IdentifierWriter // optional
	Describer   ioiface.Describer       // optional; when nil, the fallback description below is used

	// NodeNames and EdgeNames, if set, render a fragment's fallback
	// description (used when Describer is nil) with human-readable
	// names instead of raw type codes.
	NodeNames *typemgr.Manager
	EdgeNames *typemgr.Manager

	Logger zerolog.Logger

	// Kind is the canonical form driving the search.
	Kind canon.Kind
	// NormKind is a second CF carried with the configuration. The
	// miner does not read it or Options.Flags.NormForm: output is never
	// re-canonicalized, and the fallback description is always
	// rendered under Kind.
	NormKind canon.Kind

	// SupportKind and Algorithm select the support measure and MIS
	// solver (spec §4.3; the distilled flag set names no support-type
	// switch, so it is a direct Config field rather than a YAML flag).
	SupportKind fragment.SupportKind
	Algorithm   mis.Algorithm

	// SeedType, if non-nil, restricts seeding to a single node type
	// instead of the default "one root per distinct type" sweep.
	SeedType *graphmodel.Type
	// ExcludedTypes are node types never used as a seed root (spec
	// §4.4's "excluded/excluded-seed lists").
	ExcludedTypes []graphmodel.Type

	// ChainMaxLen bounds a single chain walk (spec leaves this
	// unspecified; defaults to 64 if zero).
	ChainMaxLen int
}

// Miner is one configured, ready-to-run search over a loaded database.
type Miner struct {
	cfg    Config
	logger zerolog.Logger

	hosts  []*graphmodel.Graph
	groups []embedding.Group

	totalFocus, totalCompl int

	extIdx *graphmodel.ExtIndex
	repo   *repository.Store // non-nil only when PR_CANONIC is off

	stop atomic.Bool

	nextID   int
	reported []reportedFragment
}

// reportedFragment is one accepted output row, held until Run returns
// so Writer/IdentifierWriter calls happen in deterministic post-order
// after the whole search, over every root, finishes.
type reportedFragment struct {
	id          int
	description string
	focusSupp   int
	complSupp   int
	focusRel    float64
	complRel    float64
	hostNames   []string
}

// Cancel requests cooperative abort; the currently running search
// unwinds at the next node boundary (spec §5).
func (m *Miner) Cancel() { m.stop.Store(true) }

func defaultChainMaxLen(n int) int {
	if n <= 0 {
		return 64
	}

	return n
}
