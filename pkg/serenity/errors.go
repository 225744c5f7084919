package serenity

import (
	"errors"
	"fmt"

	"github.com/serenity-wellness/serenity/pkg/serenity/fault"
)

// ErrInvalidOption indicates an Options field or environment override
// that cannot be interpreted.
var ErrInvalidOption = errors.New("invalid option")

// ProgrammingError is the panic value for caller mistakes such as an unknown
// resource family or a malformed navigation request.
type ProgrammingError = fault.ProgrammingError

// InfrastructureError represents a failure outside the app's own logic
// (manifest unreadable, metrics registration refused, SDL failed to start).
// These errors are typically fatal at startup.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_manifest", "init_sdl")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("serenity: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("serenity: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsProgrammingError checks if an error carries a programming error, as
// returned by fault.Catch.
func IsProgrammingError(err error) bool {
	return fault.IsProgrammingError(err)
}
