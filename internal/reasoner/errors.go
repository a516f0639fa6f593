// Package reasoner consumes the external LLM Reasoner collaborator that
// scores candidates against a project. The collaborator is untrusted:
// every response is schema-validated and contract-checked, and any failure
// carries a named reason so callers can branch to the deterministic
// fallback path explicitly.
package reasoner

import "fmt"

// FailureReason names why the Reasoner path could not produce a usable
// result. Tests force each branch deterministically through these values.
type FailureReason string

// Failure reasons for the Reasoner path
const (
	FailureUnavailable       FailureReason = "reasoner_unavailable"
	FailureTimeout           FailureReason = "reasoner_timeout"
	FailureInvalidResponse   FailureReason = "reasoner_invalid_response"
	FailureContractViolation FailureReason = "reasoner_contract_violation"
)

// Error represents a Reasoner path failure with a named reason.
type Error struct {
	Reason FailureReason
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reasoner failure (%s): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("reasoner failure (%s)", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
