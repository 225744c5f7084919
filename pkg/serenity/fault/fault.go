// Package fault defines the programming-error type shared by the serenity core.
//
// A programming error is a static mismatch between a screen and the domains it
// declares (an unknown resource family, an out-of-range seed, a request that
// does not match its destination). These are never runtime conditions, so they
// are raised with panic and only recovered at test or tooling boundaries.
package fault

import (
	"errors"
	"fmt"
)

// ProgrammingError reports a violated construction-time invariant.
type ProgrammingError struct {
	Op  string // Operation that detected the violation (e.g., "catalog.lookup")
	Err error  // Underlying sentinel, usually wrapped with detail
}

func (e *ProgrammingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("serenity: programming error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("serenity: programming error: %s", e.Op)
}

func (e *ProgrammingError) Unwrap() error {
	return e.Err
}

// Panic raises a ProgrammingError for op.
func Panic(op string, err error) {
	panic(&ProgrammingError{Op: op, Err: err})
}

// Catch runs fn and converts a ProgrammingError panic into a returned error.
// Any other panic is re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var pe *ProgrammingError
		if e, ok := r.(error); ok && errors.As(e, &pe) {
			err = pe
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// IsProgrammingError checks if an error is a ProgrammingError.
func IsProgrammingError(err error) bool {
	var pe *ProgrammingError
	return errors.As(err, &pe)
}
