package flow

import "errors"

var (
	// ErrStepNotReady indicates the current step's asset is not ready to
	// advance past.
	ErrStepNotReady = errors.New("current step is not ready")
	// ErrUnknownStep indicates a goto target that is not in the sequence.
	ErrUnknownStep = errors.New("unknown step")
	// ErrAtBoundary indicates navigation past either end of the sequence.
	ErrAtBoundary = errors.New("no step in that direction")
)
