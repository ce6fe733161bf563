// SPDX-License-Identifier: MIT

package observer

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of Options:
//
//	energy_err_goal: 1.0e-8
//	orth_weight: 20
//	print_eigs: false
//
// Missing keys keep their defaults.
type Config struct {
	EnergyErrGoal float64 `yaml:"energy_err_goal"`
	OrthWeight    float64 `yaml:"orth_weight"`
	PrintEigs     bool    `yaml:"print_eigs"`
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("observer: validation error: %s: %s", e.Field, e.Message)
}

// DefaultConfig returns a Config holding the package defaults.
func DefaultConfig() Config {
	return Config{
		EnergyErrGoal: DefaultEnergyErrGoal,
		OrthWeight:    DefaultOrthWeight,
		PrintEigs:     DefaultPrintEigs,
	}
}

// LoadConfig reads a YAML observer config from path.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (Config, error) {
	cfg, err := ReadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	return cfg, err
}

// ReadConfig is LoadConfig for an explicitly named file: a missing file is
// an error matching os.ErrNotExist.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("observer: failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("observer: failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects non-finite numbers. Non-positive values are legal and
// disable the corresponding feature.
func (c Config) Validate() error {
	if math.IsNaN(c.EnergyErrGoal) || math.IsInf(c.EnergyErrGoal, 0) {
		return ValidationError{Field: "energy_err_goal", Message: "must be finite"}
	}
	if math.IsNaN(c.OrthWeight) || math.IsInf(c.OrthWeight, 0) {
		return ValidationError{Field: "orth_weight", Message: "must be finite"}
	}

	return nil
}

// Options converts c into constructor options for New.
func (c Config) Options() []Option {
	return []Option{
		WithEnergyErrGoal(c.EnergyErrGoal),
		WithOrthWeight(c.OrthWeight),
		WithPrintEigs(c.PrintEigs),
	}
}
