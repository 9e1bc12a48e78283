package kpath

import "errors"

var (
	// ErrTooFewPoints is returned when a path has fewer than two breakpoints.
	ErrTooFewPoints = errors.New("kpath: need at least two breakpoints")

	// ErrLabelCount is returned when labels are given but do not match the breakpoints.
	ErrLabelCount = errors.New("kpath: label count does not match breakpoints")

	// ErrResolution is returned for a non-positive per-segment resolution or
	// a total resolution smaller than the number of segments.
	ErrResolution = errors.New("kpath: resolution must be positive")

	// ErrDimensionMismatch indicates breakpoints of different dimensions.
	ErrDimensionMismatch = errors.New("kpath: dimension mismatch")
)
