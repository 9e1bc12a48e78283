// Package kspace computes momentum-space properties of crystal lattice
// models.
//
// 🚀 What is kspace?
//
//	A small numerical toolkit built on gonum that brings together:
//		• Lattices: basis sites, lattice vectors, bonds with numeric or
//		  labelled strengths, presets and reciprocal vectors
//		• Paths: labelled polylines through k-space with per-segment resolution
//		• Interaction matrices: J(k) / H(k) assembled from bond policies
//		• Eigen-decomposition: cyclic Jacobi for complex Hermitian matrices
//		• Fermi surfaces: seeded multi-start damped Newton sampling
//		• Luttinger-Tisza: band structures with a per-eigenspace spin-length
//		  constraint diagnostic
//
// Under the hood, everything is organized into subpackages:
//
//	lattice/:     Lattice, Bond, Strength, presets, Reciprocal
//	kpath/:       Path, sampling and resolution redistribution
//	matrix/:      validators, Hermitize, EigenHermitian
//	interaction/: bond-matrix policies and the momentum-space Assembler
//	fermi/:       Sample, Residual, Refold
//	lt/:          GroupDegenerate, EvaluateConstraint, Compute
//	render/:      gonum/plot figures for bands and Fermi surfaces
//	config/:      YAML/JSON run files
//	cmd/kspace/:  command-line front end
//
// The numerical packages return plain data and are safe for concurrent use;
// Options.Workers bounds their internal fan-out.
package kspace

// Version is the release of the kspace module.
const Version = "0.1.0"
