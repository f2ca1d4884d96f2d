package errs

import (
	"errors"
	"fmt"
)

// ErrObjectAlreadyExists is the sentinel for uniqueness conflicts.
var ErrObjectAlreadyExists = errors.New("object already exists")

// ObjectAlreadyExistsError reports that a create violated a uniqueness
// constraint, such as registering an email twice.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without an underlying cause.
func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Value:     value,
	}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError
// wrapping the error describing the underlying constraint violation.
func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, value is: %v (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v", ErrObjectAlreadyExists, e.ParamName, e.Value))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
