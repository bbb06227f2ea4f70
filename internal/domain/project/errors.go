package project

import "errors"

var (
	// ErrProjectNotFound indicates no project with the given id exists.
	ErrProjectNotFound = errors.New("project not found")
	// ErrConceptNotFound indicates the project has no such concept.
	ErrConceptNotFound = errors.New("concept not found")
)
