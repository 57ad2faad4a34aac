package generators

import "fmt"

// InputError reports an empty or whitespace-only required input. It is the
// caller's fault and never worth retrying.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("required input %q is empty or blank", e.Field)
}
