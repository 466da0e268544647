package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsminer/fsminer/config"
)

func TestDefaultValidates(t *testing.T) {
	opts := config.Default()
	require.NoError(t, opts.Validate())
}

func TestValidateAggregatesMultipleErrors(t *testing.T) {
	opts := config.Default()
	opts.Params.RgMin = 2
	opts.Params.RgMax = 1
	opts.Params.MISBudget = 0
	err := opts.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "rgmin")
	assert.Contains(t, err.Error(), "rgmax")
	assert.Contains(t, err.Error(), "mis_budget")
}

func TestClassesRequiresCanonic(t *testing.T) {
	opts := config.Default()
	opts.Flags.Classes = true
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLASSES requires PR_CANONIC")
}

func TestPrPartialAndPrPerfectMutuallyExclusive(t *testing.T) {
	opts := config.Default()
	opts.Flags.PrPartial = true
	opts.Flags.PrPerfect = true
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestNormalizeForcesEqVars(t *testing.T) {
	opts := config.Default()
	opts.Flags.Ring = true
	opts.Flags.PrCanonic = true
	opts.Params.RgMin = 3
	opts.Params.RgMax = 7
	require.NoError(t, opts.Validate())

	normalized := opts.Normalize()
	assert.True(t, normalized.Flags.EqVars)
}

func TestNormalizeClassesImplications(t *testing.T) {
	opts := config.Default()
	opts.Flags.Classes = true
	opts.Flags.PrCanonic = true
	normalized := opts.Normalize()
	assert.False(t, normalized.Flags.PrPerfect)
	assert.True(t, normalized.Flags.PrEquiv)
	assert.True(t, normalized.Flags.AllExts)
}

func TestLoadParsesYAML(t *testing.T) {
	yamlDoc := []byte(`
flags:
  edge: true
  ring: true
  pr_canonic: true
params:
  min: 2
  max: 10
  rgmin: 3
  rgmax: 6
  s_min: 3
  mis_budget: 500
`)
	opts, err := config.Load(yamlDoc)
	require.NoError(t, err)
	assert.True(t, opts.Flags.Ring)
	assert.Equal(t, 2, opts.Params.Min)
	assert.Equal(t, 500, opts.Params.MISBudget)
}

func TestLoadRejectsInvalidCombination(t *testing.T) {
	yamlDoc := []byte(`
flags:
  classes: true
`)
	_, err := config.Load(yamlDoc)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
