// SPDX-License-Identifier: MIT

package lattice

import "errors"

// Every message is prefixed with "lattice: ..." so logs can be grepped.
// Facades wrap with fmt.Errorf("Op: %w", ErrX); callers match via errors.Is.
var (
	// ErrNoSites is returned when a lattice has an empty basis.
	ErrNoSites = errors.New("lattice: no basis sites")

	// ErrNoBonds is returned when an operation needs at least one bond.
	ErrNoBonds = errors.New("lattice: no bonds")

	// ErrDimensionMismatch indicates that a site, lattice vector, wrap vector
	// or momentum does not match the lattice dimension.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrSiteIndex indicates a bond endpoint outside 1..NumSites().
	ErrSiteIndex = errors.New("lattice: bond site index out of range")

	// ErrSingularVectors is returned by Reciprocal when the lattice vectors
	// are linearly dependent or do not form a full basis.
	ErrSingularVectors = errors.New("lattice: lattice vectors do not span the space")
)
