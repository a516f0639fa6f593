package matching

import "errors"

// Input validation errors surfaced to the caller with no partial result.
var (
	// ErrNoProject indicates a matching run without a project
	ErrNoProject = errors.New("matching requires a project")
	// ErrNoCandidates indicates an empty candidate pool
	ErrNoCandidates = errors.New("matching requires a non-empty candidate pool")
)
