// File: config.go
// Role: Flags and Options — Miner's mode switches and numeric
// parameters (spec §5/§9), loadable from YAML.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps one or more aggregated validation failures;
// use errors.Is to detect the category, inspect Error() for detail.
var ErrInvalidConfig = errors.New("config: invalid option combination")

// Flags holds every mode switch as an explicit boolean field (rather
// than a bitmask) so YAML unmarshaling gets field names for free.
type Flags struct {
	Edge       bool `yaml:"edge"`
	Ring       bool `yaml:"ring"`
	Chain      bool `yaml:"chain"`
	EqVars     bool `yaml:"eqvars"`
	Orbits     bool `yaml:"orbits"`
	Classes    bool `yaml:"classes"`
	AllExts    bool `yaml:"allexts"`
	Closed     bool `yaml:"closed"`
	CloseRings bool `yaml:"closerings"`
	MergeRings bool `yaml:"mergerings"`
	PrUnclose  bool `yaml:"pr_unclose"`
	PrPartial  bool `yaml:"pr_partial"`
	PrPerfect  bool `yaml:"pr_perfect"`
	PrEquiv    bool `yaml:"pr_equiv"`
	PrCanonic  bool `yaml:"pr_canonic"`
	Unembed    bool `yaml:"unembed"`
	NormForm   bool `yaml:"normform"`
}

// Params holds the numeric search parameters.
type Params struct {
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	RgMin  int     `yaml:"rgmin"`
	RgMax  int     `yaml:"rgmax"`
	EmbLvl int     `yaml:"emblvl"`
	MaxEPG int     `yaml:"maxepg"`
	SMin   float64 `yaml:"s_min"`
	SMax   float64 `yaml:"s_max"`
	// MISBudget caps the node count Exact will branch-and-bound over
	// before falling back to Greedy (an ambient safety valve not named
	// in the distilled spec, added so a pathological overlap graph
	// cannot stall the search).
	MISBudget int `yaml:"mis_budget"`
}

// Options is the full configuration: flags plus numeric parameters.
type Options struct {
	Flags  Flags  `yaml:"flags"`
	Params Params `yaml:"params"`
}

// Default returns the documented defaults: EDGE on, every other flag
// off, min=1, max=unbounded (0), rgmin=3, rgmax=7, emblvl=0 (always
// embed), maxepg=0 (unlimited), s_min=1, s_max=unbounded, a
// conservative MISBudget.
func Default() Options {
	return Options{
		Flags: Flags{Edge: true},
		Params: Params{
			Min: 1, Max: 0,
			RgMin: 3, RgMax: 7,
			EmbLvl: 0, MaxEPG: 0,
			SMin: 1, SMax: -1,
			MISBudget: 10000,
		},
	}
}

// Load reads and parses a YAML configuration file's bytes, starting
// from Default() so unset fields keep their documented defaults, and
// validates the result.
func Load(data []byte) (Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// Validate aggregates every invalid-combination error found, rather
// than stopping at the first (spec §9: "configuration" error kind —
// "invalid option combination, unreachable support").
func (o *Options) Validate() error {
	var msgs []string

	if o.Params.Min < 0 {
		msgs = append(msgs, "min must be >= 0")
	}
	if o.Params.Max > 0 && o.Params.Max < o.Params.Min {
		msgs = append(msgs, "max must be >= min when max is bounded (nonzero)")
	}
	if o.Params.RgMin < 3 {
		msgs = append(msgs, "rgmin must be >= 3")
	}
	if o.Params.RgMax < o.Params.RgMin {
		msgs = append(msgs, "rgmax must be >= rgmin")
	}
	if o.Params.EmbLvl < 0 {
		msgs = append(msgs, "emblvl must be >= 0")
	}
	if o.Params.MaxEPG < 0 {
		msgs = append(msgs, "maxepg must be >= 0")
	}
	if o.Params.SMin < 0 {
		msgs = append(msgs, "s_min must be >= 0")
	}
	if o.Params.MISBudget <= 0 {
		msgs = append(msgs, "mis_budget must be > 0")
	}

	if o.Flags.Ring && o.Params.RgMin < 3 {
		msgs = append(msgs, "RING requires rgmin >= 3")
	}
	if o.Flags.Chain && !o.Flags.Edge {
		msgs = append(msgs, "CHAIN requires EDGE (bridges are detected along edge extensions)")
	}
	if o.Flags.EqVars && !o.Flags.Ring {
		msgs = append(msgs, "EQVARS requires RING")
	}
	if o.Flags.Classes {
		if !o.Flags.PrCanonic {
			msgs = append(msgs, "CLASSES requires PR_CANONIC")
		}
		if o.Flags.PrPerfect {
			msgs = append(msgs, "CLASSES and PR_PERFECT are mutually exclusive")
		}
	}
	if o.Flags.PrPartial && o.Flags.PrPerfect {
		msgs = append(msgs, "PR_PARTIAL and PR_PERFECT are mutually exclusive")
	}
	if o.Flags.MergeRings && o.Flags.EqVars {
		msgs = append(msgs, "MERGERINGS and EQVARS are mutually exclusive (EQVARS implies ¬MERGERINGS)")
	}
	if o.Flags.CloseRings && !o.Flags.Ring {
		msgs = append(msgs, "CLOSERINGS requires RING")
	}

	if len(msgs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrInvalidConfig, msgs)
}

// Normalize applies the forced-flag implications the spec documents
// (spec §5: "EQVARS... forced on by RING ∧ PR_CANONIC ∧ ¬MERGERINGS";
// "CLASSES... disables perfect-extension pruning, forces PR_EQUIV,
// forces ALLEXTS"), returning the adjusted copy. Call after Validate
// succeeds but before the flags drive the search.
func (o Options) Normalize() Options {
	if o.Flags.Ring && o.Flags.PrCanonic && !o.Flags.MergeRings {
		o.Flags.EqVars = true
	}
	if o.Flags.Classes {
		o.Flags.PrPerfect = false
		o.Flags.PrEquiv = true
		o.Flags.AllExts = true
	}

	return o
}
