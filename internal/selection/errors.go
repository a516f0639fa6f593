// Package selection reduces scored matches to a bounded team under
// manual-lock constraints.
package selection

// InvalidInputError represents a caller error that yields no partial result.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}
