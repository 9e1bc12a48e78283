// Package config loads kspace run files.
//
// A run file is YAML (or JSON, chosen by the .json extension) with four
// optional sections:
//
//	lattice:
//	  preset: square            # square | chain | honeycomb-kitaev
//	  strength: 1.0             # square / chain hopping; default label J
//	  # or explicit:
//	  sites: [[0, 0]]
//	  vectors: [[1, 0], [0, 1]]
//	  bonds:
//	    - {from: 1, to: 1, strength: 1.0, wrap: [1, 0]}
//	    - {from: 1, to: 1, label: J, wrap: [0, 1]}
//	path:
//	  points: [[0, 0], [3.14159, 0], [3.14159, 3.14159]]
//	  labels: [G, X, M]
//	  resolution: 20            # per segment, or resolutions: [..]
//	fermi: {points: 100, fermi_energy: 0, seed: 1, workers: 4}
//	bands: {policy: heisenberg-kitaev, resolution: 0, epsilon_degenerate: 1e-6}
//
// Missing keys keep the package defaults (fermi.DefaultOptions,
// lt.DefaultOptions). A preset lattice without a path gets its standard
// high-symmetry path.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownPreset is returned for a lattice preset name that is not known.
	ErrUnknownPreset = errors.New("config: unknown lattice preset")

	// ErrUnknownPolicy is returned for a bond policy name that is not known.
	ErrUnknownPolicy = errors.New("config: unknown bond policy")

	// ErrMissingPath is returned when an explicit lattice has no path.
	ErrMissingPath = errors.New("config: no k-space path")

	// ErrInvalid is returned for values the builders cannot use.
	ErrInvalid = errors.New("config: invalid value")
)

// DefaultResolution is the per-segment sample count of preset paths.
const DefaultResolution = 20

// File is a decoded run file.
type File struct {
	Lattice LatticeSection `mapstructure:"lattice"`
	Path    PathSection    `mapstructure:"path"`
	Fermi   FermiSection   `mapstructure:"fermi"`
	Bands   BandsSection   `mapstructure:"bands"`
}

// LatticeSection selects a preset or spells out a lattice.
type LatticeSection struct {
	Preset   string        `mapstructure:"preset"`
	Strength *float64      `mapstructure:"strength"`
	Sites    [][]float64   `mapstructure:"sites"`
	Vectors  [][]float64   `mapstructure:"vectors"`
	Bonds    []BondSection `mapstructure:"bonds"`
}

// BondSection is one bond; Label wins over Strength when both are set.
type BondSection struct {
	From     int      `mapstructure:"from"`
	To       int      `mapstructure:"to"`
	Strength *float64 `mapstructure:"strength"`
	Label    string   `mapstructure:"label"`
	Wrap     []int    `mapstructure:"wrap"`
}

// PathSection describes the k-space path.
type PathSection struct {
	Points      [][]float64 `mapstructure:"points"`
	Labels      []string    `mapstructure:"labels"`
	Resolution  int         `mapstructure:"resolution"`
	Resolutions []int       `mapstructure:"resolutions"`
}

// FermiSection mirrors fermi.Options plus the point count.
type FermiSection struct {
	Points           int       `mapstructure:"points"`
	FermiEnergy      float64   `mapstructure:"fermi_energy"`
	EnforceHermitian bool      `mapstructure:"enforce_hermitian"`
	Epsilon          float64   `mapstructure:"epsilon"`
	EpsilonK         float64   `mapstructure:"epsilon_k"`
	SlowdownFactor   float64   `mapstructure:"slowdown_factor"`
	Lower            []float64 `mapstructure:"lower"`
	Upper            []float64 `mapstructure:"upper"`
	MaxNewtonSteps   int       `mapstructure:"max_newton_steps"`
	RefoldToFirstBZ  bool      `mapstructure:"refold_to_first_bz"`
	MaxAttempts      int       `mapstructure:"max_attempts"`
	Seed             int64     `mapstructure:"seed"`
	Workers          int       `mapstructure:"workers"`
}

// BandsSection mirrors lt.Options plus the bond policy.
type BandsSection struct {
	Policy            string  `mapstructure:"policy"`
	Resolution        int     `mapstructure:"resolution"`
	EnforceHermitian  bool    `mapstructure:"enforce_hermitian"`
	EpsilonDegenerate float64 `mapstructure:"epsilon_degenerate"`
	Workers           int     `mapstructure:"workers"`
}

// Load reads and decodes the run file at path on top of Default().
// Unknown keys are an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	return Parse(data, strings.ToLower(filepath.Ext(path)) == ".json")
}

// Parse decodes data (JSON when isJSON, YAML otherwise) on top of Default().
func Parse(data []byte, isJSON bool) (*File, error) {
	raw := map[string]any{}
	if isJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse run file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse run file: %w", err)
		}
	}

	f := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      f,
	})
	if err != nil {
		return nil, err
	}
	if err = dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode run file: %w", err)
	}

	return f, nil
}
