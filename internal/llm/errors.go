package llm

import "fmt"

// BackendError reports that the external generation backend failed, or that
// it returned data that cannot be mapped onto the expected shape. It may be
// transient; retrying is a caller-level concern.
type BackendError struct {
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backend error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}
