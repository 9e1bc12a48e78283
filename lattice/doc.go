// Package lattice describes periodic (or finite) crystal lattices as plain data:
// basis site positions, lattice vectors and bonds between sites.
//
// What is a Lattice?
//
//	A Lattice is the data provider consumed by the momentum-space tools of
//	kspace. It carries:
//	  • Sites:   ordered basis positions, each a real vector in D dimensions
//	  • Vectors: ordered lattice (translation) vectors, possibly empty
//	  • Bonds:   (from, to, strength, wrap) couplings between basis sites
//
// Bond endpoints are 1-based site indices. The wrap vector counts how many
// lattice translations the bond crosses, so the real-space displacement of a
// bond is
//
//	δ = r_to − r_from + Σ_a wrap[a]·A[a]
//
// Strength is a tagged union: Numeric(v) or Label(s). Labels are resolved by
// the bond-matrix policies in package interaction; an unknown label is not an
// error and simply carries the value 0.
//
// Predefined lattices:
//
//	Square(s):           one site, two unit vectors, nearest-neighbour bonds
//	HoneycombKitaev():   two sites, tx/ty/tz bonds for Kitaev-type models
//
// Reciprocal returns the reciprocal vectors b_i with b_i·a_j = 2π·δ_ij.
package lattice
