package config

import (
	"github.com/katalvlaran/kspace/fermi"
	"github.com/katalvlaran/kspace/lt"
)

// Preset and policy names.
const (
	PresetSquare          = "square"
	PresetChain           = "chain"
	PresetHoneycombKitaev = "honeycomb-kitaev"

	PolicyHeisenberg       = "heisenberg"
	PolicyHeisenbergKitaev = "heisenberg-kitaev"
)

// Default is the run file used when a section or key is absent: the
// half-filled square lattice with the package default options. Empty fermi
// bounds stand for fermi.DefaultOptions().Lower/Upper.
func Default() *File {
	fo := fermi.DefaultOptions()
	lo := lt.DefaultOptions()

	return &File{
		Lattice: LatticeSection{Preset: PresetSquare},
		Fermi: FermiSection{
			Points:           100,
			FermiEnergy:      fo.FermiEnergy,
			EnforceHermitian: fo.EnforceHermitian,
			Epsilon:          fo.Epsilon,
			EpsilonK:         fo.EpsilonK,
			SlowdownFactor:   fo.SlowdownFactor,
			MaxNewtonSteps:   fo.MaxNewtonSteps,
			RefoldToFirstBZ:  fo.RefoldToFirstBZ,
			MaxAttempts:      fo.MaxAttempts,
			Seed:             fo.Seed,
			Workers:          fo.Workers,
		},
		Bands: BandsSection{
			Policy:            PolicyHeisenberg,
			Resolution:        lo.Resolution,
			EnforceHermitian:  lo.EnforceHermitian,
			EpsilonDegenerate: lo.EpsilonDegenerate,
			Workers:           lo.Workers,
		},
	}
}
