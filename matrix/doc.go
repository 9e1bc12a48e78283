// Package matrix provides the complex Hermitian numeric policy used by kspace:
// validation, Hermitization and a Jacobi eigen-decomposition on gonum's
// mat.CDense.
//
// The package provides:
//
//   - Validators (ValidateSquare, ValidateFinite, ValidateHermitian) that
//     return plain sentinels so facades can wrap them uniformly.
//   - Hermitize, which averages a matrix with its conjugate transpose to
//     remove floating-point asymmetry.
//   - EigenHermitian / EigenvaluesHermitian: cyclic complex Jacobi rotations
//     returning eigenvalues in ascending order and orthonormal eigenvectors
//     as the columns of a CDense.
//
// gonum ships no complex Hermitian eigensolver; Jacobi is exact to machine
// precision for the small dense matrices (tens of rows) that momentum-space
// interaction matrices produce, and copes with degenerate spectra.
package matrix
