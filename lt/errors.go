package lt

import "errors"

var (
	// ErrBadCluster is returned by EvaluateConstraint for an empty cluster,
	// ragged eigenvectors or a length that is not a multiple of the spin
	// dimension.
	ErrBadCluster = errors.New("lt: malformed eigenvector cluster")

	// ErrBadOption is returned by Options.Validate.
	ErrBadOption = errors.New("lt: invalid option")
)
