package errs

import (
	"errors"
	"fmt"
)

// Caller-recoverable error kinds shared by the lifecycle managers.
// The HTTP layer maps these to 4xx responses.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
)

// InvalidTransitionError reports a lifecycle operation whose guard failed
// because the entity is not in a state that permits the requested transition.
type InvalidTransitionError struct {
	Entity    string
	Current   string
	Requested string
	Reason    string
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s cannot transition from %q to %q", e.Entity, e.Current, e.Requested)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func NewInvalidTransition(entity, current, requested string) error {
	return &InvalidTransitionError{Entity: entity, Current: current, Requested: requested}
}

func NewInvalidTransitionReason(entity, current, requested, reason string) error {
	return &InvalidTransitionError{Entity: entity, Current: current, Requested: requested, Reason: reason}
}

// CapacityExceededError reports a participant limit that is already reached.
type CapacityExceededError struct {
	Limit int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("cannot add more participants: maximum required participants (%d) already reached", e.Limit)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

func NewCapacityExceeded(limit int) error {
	return &CapacityExceededError{Limit: limit}
}
