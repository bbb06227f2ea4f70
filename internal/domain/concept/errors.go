package concept

import "errors"

var (
	// ErrNoText indicates the text capability returned no text at all.
	ErrNoText = errors.New("no text returned from model")
	// ErrInvalidJSON indicates the response couldn't be parsed even after
	// both repair attempts.
	ErrInvalidJSON = errors.New("model returned invalid JSON")
	// ErrMissingConcepts indicates parseable JSON without a concepts array.
	ErrMissingConcepts = errors.New("model response missing concepts array")
)
