package asset

import "errors"

var (
	// ErrUnknownSlot indicates a generate request for a slot that doesn't exist.
	ErrUnknownSlot = errors.New("unknown asset slot")
	// ErrVersionNotFound indicates the requested version is not in the history.
	ErrVersionNotFound = errors.New("version not found in history")
	// ErrNoVersionsForSlot indicates a version operation on a slot that
	// keeps no history.
	ErrNoVersionsForSlot = errors.New("slot does not keep version history")
)
