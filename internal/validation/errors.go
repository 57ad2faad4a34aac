package validation

import "fmt"

// FieldError reports that a generated text field violated a structural or
// linguistic rule. It names the offending field and the rule that rejected
// it; there is never a partial correction.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
