package preview

import "fmt"

// RenderError represents a preview rendering failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("preview error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("preview error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
