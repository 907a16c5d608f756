package ecc

import "fmt"

// InputError represents a rejected caller-supplied value.
// It lets callers tell an invalid input apart from a signature that simply
// does not verify.
type InputError struct {
	Op     string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError.
func NewInputError(op, reason string, err error) *InputError {
	return &InputError{
		Op:     op,
		Reason: reason,
		Err:    err,
	}
}
