// SPDX-License-Identifier: MIT

package observer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/dmrgwatch/observer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Missing returns defaults when the file does not exist.
func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := observer.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, observer.DefaultConfig(), cfg)
}

// TestReadConfig_Missing fails on a missing file instead of falling back.
func TestReadConfig_Missing(t *testing.T) {
	_, err := observer.ReadConfig(filepath.Join(t.TempDir(), "typo.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "observer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("orth_weight: 3\n"), 0o644))
	cfg, err := observer.ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.OrthWeight)
	assert.Equal(t, observer.DefaultEnergyErrGoal, cfg.EnergyErrGoal)
}

// TestLoadConfig_Partial keeps defaults for absent keys.
func TestLoadConfig_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "observer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("energy_err_goal: 1.0e-8\nprint_eigs: false\n"), 0o644))

	cfg, err := observer.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-8, cfg.EnergyErrGoal)
	assert.Equal(t, observer.DefaultOrthWeight, cfg.OrthWeight)
	assert.False(t, cfg.PrintEigs)
}

// TestParseConfig_Errors covers malformed YAML and non-finite values.
func TestParseConfig_Errors(t *testing.T) {
	_, err := observer.ParseConfig([]byte("energy_err_goal: [1, 2"))
	assert.Error(t, err)

	_, err = observer.ParseConfig([]byte("energy_err_goal: .nan\n"))
	var verr observer.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "energy_err_goal", verr.Field)

	_, err = observer.ParseConfig([]byte("orth_weight: .inf\n"))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "orth_weight", verr.Field)
}

// TestConfig_Options applies a parsed config to a new observer.
func TestConfig_Options(t *testing.T) {
	cfg, err := observer.ParseConfig([]byte("energy_err_goal: 0.5\north_weight: 20\nprint_eigs: false\n"))
	require.NoError(t, err)

	o := observer.New(append(cfg.Options(), observer.WithOutput(&bytes.Buffer{}))...)
	assert.Equal(t, 0.5, o.EnergyErrGoal())
	assert.Equal(t, 20.0, o.OrthWeight())
	assert.False(t, o.PrintEigs())
}
