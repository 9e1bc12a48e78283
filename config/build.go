package config

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/kspace/fermi"
	"github.com/katalvlaran/kspace/interaction"
	"github.com/katalvlaran/kspace/kpath"
	"github.com/katalvlaran/kspace/lattice"
	"github.com/katalvlaran/kspace/lt"
)

// BuildLattice returns the preset or explicit lattice. Explicit sites take
// precedence over a preset.
//
// Errors: ErrUnknownPreset, lattice.* from Validate.
func (f *File) BuildLattice() (*lattice.Lattice, error) {
	sec := f.Lattice
	if len(sec.Sites) == 0 {
		return presetLattice(sec)
	}

	l := &lattice.Lattice{
		Sites:   make([]lattice.Vec, len(sec.Sites)),
		Vectors: make([]lattice.Vec, len(sec.Vectors)),
		Bonds:   make([]lattice.Bond, len(sec.Bonds)),
	}
	for i, s := range sec.Sites {
		l.Sites[i] = append(lattice.Vec(nil), s...)
	}
	for i, v := range sec.Vectors {
		l.Vectors[i] = append(lattice.Vec(nil), v...)
	}
	for i, b := range sec.Bonds {
		l.Bonds[i] = lattice.Bond{
			From:     b.From,
			To:       b.To,
			Strength: bondStrength(b.Label, b.Strength),
			Wrap:     append([]int(nil), b.Wrap...),
		}
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("lattice: %w", err)
	}

	return l, nil
}

func presetLattice(sec LatticeSection) (*lattice.Lattice, error) {
	s := bondStrength("", sec.Strength)
	switch sec.Preset {
	case PresetSquare, "":
		return lattice.Square(s), nil
	case PresetChain:
		return lattice.Chain(s), nil
	case PresetHoneycombKitaev:
		return lattice.HoneycombKitaev(), nil
	default:
		return nil, fmt.Errorf("%q: %w", sec.Preset, ErrUnknownPreset)
	}
}

// bondStrength prefers label, then value, then the Heisenberg label "J".
func bondStrength(label string, value *float64) lattice.Strength {
	switch {
	case label != "":
		return lattice.Label(label)
	case value != nil:
		return lattice.Numeric(*value)
	default:
		return lattice.Label("J")
	}
}

// BuildPath returns the configured path or the preset's standard one.
//
// Errors: ErrMissingPath, kpath.*.
func (f *File) BuildPath() (*kpath.Path, error) {
	sec := f.Path
	if len(sec.Points) == 0 {
		if len(f.Lattice.Sites) != 0 {
			return nil, ErrMissingPath
		}
		return presetPath(f.Lattice.Preset, sec.Resolution)
	}

	points := make([]lattice.Vec, len(sec.Points))
	for i, p := range sec.Points {
		points[i] = append(lattice.Vec(nil), p...)
	}
	if len(sec.Resolutions) > 0 {
		return kpath.NewWithResolutions(points, sec.Labels, sec.Resolutions)
	}
	res := sec.Resolution
	if res == 0 {
		res = DefaultResolution
	}

	return kpath.New(points, sec.Labels, res)
}

func presetPath(preset string, res int) (*kpath.Path, error) {
	if res == 0 {
		res = DefaultResolution
	}
	switch preset {
	case PresetSquare, PresetChain, "":
		return kpath.New(
			[]lattice.Vec{{0, 0}, {math.Pi, 0}, {math.Pi, math.Pi}, {0, 0}},
			[]string{"Γ", "X", "M", "Γ"},
			res,
		)
	case PresetHoneycombKitaev:
		return kpath.New(
			[]lattice.Vec{{0, 0}, {4 * math.Pi / 3, 0}, {math.Pi, math.Pi / math.Sqrt(3)}, {0, 0}},
			[]string{"Γ", "K", "M", "Γ"},
			res,
		)
	default:
		return nil, fmt.Errorf("%q: %w", preset, ErrUnknownPreset)
	}
}

// Policy returns the bond-matrix policy of the bands section.
//
// Errors: ErrUnknownPolicy.
func (f *File) Policy() (interaction.BondMatrixFn, error) {
	switch f.Bands.Policy {
	case PolicyHeisenberg, "":
		return interaction.Heisenberg, nil
	case PolicyHeisenbergKitaev:
		return interaction.HeisenbergKitaev, nil
	default:
		return nil, fmt.Errorf("%q: %w", f.Bands.Policy, ErrUnknownPolicy)
	}
}

// FermiOptions converts the fermi section; log may be nil.
//
// Errors: ErrInvalid for bounds that are not 2-vectors, fermi.ErrBadOption.
func (f *File) FermiOptions(log *slog.Logger) (fermi.Options, error) {
	sec := f.Fermi
	defaults := fermi.DefaultOptions()
	lower, err := bound(sec.Lower, defaults.Lower)
	if err != nil {
		return fermi.Options{}, fmt.Errorf("fermi lower: %w", err)
	}
	upper, err := bound(sec.Upper, defaults.Upper)
	if err != nil {
		return fermi.Options{}, fmt.Errorf("fermi upper: %w", err)
	}

	o := fermi.Options{
		FermiEnergy:      sec.FermiEnergy,
		EnforceHermitian: sec.EnforceHermitian,
		Epsilon:          sec.Epsilon,
		EpsilonK:         sec.EpsilonK,
		SlowdownFactor:   sec.SlowdownFactor,
		Lower:            lower,
		Upper:            upper,
		MaxNewtonSteps:   sec.MaxNewtonSteps,
		RefoldToFirstBZ:  sec.RefoldToFirstBZ,
		MaxAttempts:      sec.MaxAttempts,
		Seed:             sec.Seed,
		Workers:          sec.Workers,
		Logger:           log,
	}
	if err := o.Validate(); err != nil {
		return fermi.Options{}, err
	}
	if sec.Points < 0 {
		return fermi.Options{}, fmt.Errorf("fermi points %d: %w", sec.Points, ErrInvalid)
	}

	return o, nil
}

func bound(v []float64, fallback fermi.Point) (fermi.Point, error) {
	switch len(v) {
	case 0:
		return fallback, nil
	case 2:
		return fermi.Point{v[0], v[1]}, nil
	default:
		return fermi.Point{}, fmt.Errorf("%d entries, want 2: %w", len(v), ErrInvalid)
	}
}

// LTOptions converts the bands section; log may be nil.
//
// Errors: lt.ErrBadOption.
func (f *File) LTOptions(log *slog.Logger) (lt.Options, error) {
	sec := f.Bands
	o := lt.Options{
		Resolution:        sec.Resolution,
		EnforceHermitian:  sec.EnforceHermitian,
		EpsilonDegenerate: sec.EpsilonDegenerate,
		Workers:           sec.Workers,
		Logger:            log,
	}
	if err := o.Validate(); err != nil {
		return lt.Options{}, err
	}

	return o, nil
}
