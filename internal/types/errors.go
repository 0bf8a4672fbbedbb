//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// PreconditionError represents malformed or missing required input detected
// before any external call is made.
type PreconditionError struct {
	Message string
	Cause   error
}

func (e *PreconditionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("precondition error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("precondition error: %s", e.Message)
}

func (e *PreconditionError) Unwrap() error {
	return e.Cause
}
