package render

import "fmt"

// OrchestrationError represents an environment failure that prevents a render
// round from starting at all.
type OrchestrationError struct {
	Message string
	Cause   error
}

func (e *OrchestrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *OrchestrationError) Unwrap() error {
	return e.Cause
}

// RendererError represents a single theme's renderer invocation failing or
// producing no output file.
type RendererError struct {
	Theme   string
	Message string
	Cause   error
}

func (e *RendererError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("renderer failed for theme %s: %s: %v", e.Theme, e.Message, e.Cause)
	}
	return fmt.Sprintf("renderer failed for theme %s: %s", e.Theme, e.Message)
}

func (e *RendererError) Unwrap() error {
	return e.Cause
}
