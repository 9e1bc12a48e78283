package fermi

import "errors"

var (
	// ErrInfeasible is returned when a point is not found within
	// Options.MaxAttempts random starts.
	ErrInfeasible = errors.New("fermi: no Fermi-surface point within the attempt budget")

	// ErrBadOption is returned by Options.Validate.
	ErrBadOption = errors.New("fermi: invalid option")
)
