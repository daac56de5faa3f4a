package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no vulnerability exists for the requested id
var ErrNotFound = errors.New("vulnerability not found")

// ValidationError reports bad or missing input on create/update
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports a status change the workflow does not permit
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}
