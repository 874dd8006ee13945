// Package errdefs holds the two error kinds every engine operation returns.
//
// A StateError means the operation is not permitted in the game's current
// state. An IllegalOperationError means the request was well sequenced but
// structurally invalid. Neither is retried; callers report them as an
// illegal move and ask again.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	ErrState            = errors.New("illegal move attempted")
	ErrIllegalOperation = errors.New("illegal operation")
)

// StateError is returned when the current state is outside the operation's valid set
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s in state %q", e.Op, ErrState, e.State)
}

func (e *StateError) Is(target error) bool {
	return target == ErrState
}

// IllegalOperationError is returned for occupied destinations, wrong goods types,
// insufficient resources, unknown coordinates and similar invalid requests
type IllegalOperationError struct {
	Op     string
	Reason string
}

func (e *IllegalOperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *IllegalOperationError) Is(target error) bool {
	return target == ErrIllegalOperation
}

// Illegal builds an IllegalOperationError with a formatted reason
func Illegal(op, format string, args ...interface{}) error {
	return &IllegalOperationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// OutOfRange reports a coordinate outside a board's valid spaces
func OutOfRange(op string, coord fmt.Stringer) error {
	return Illegal(op, "coordinate %s out of range", coord)
}

func IsState(err error) bool {
	return errors.Is(err, ErrState)
}

func IsIllegal(err error) bool {
	return errors.Is(err, ErrIllegalOperation)
}
