package scheduling

import (
	"errors"
	"fmt"
)

// ValidationError covers malformed input and instants outside the
// professional's declared availability.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Code: "validationError", Message: msg}
}

// ConflictError means the targeted instant was already reserved by the time
// the atomic reservation resolved. The caller should re-query availability and
// pick a different instant rather than retry the same one.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{Code: "conflictError", Message: msg}
}

// IllegalStateError means an approval or rejection was attempted on a booking
// that is no longer pending.
type IllegalStateError struct {
	Code    string
	Message string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewIllegalStateError(msg string) error {
	return &IllegalStateError{Code: "illegalStateError", Message: msg}
}

// NotFoundError means the booking id is unknown.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Code: "notFoundError", Message: msg}
}

// ErrNoSlotAvailable is returned by NextAvailable when the booking window
// holds no free slot.
var ErrNoSlotAvailable = errors.New("no slot available within the booking window")

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsIllegalState reports whether err is an IllegalStateError.
func IsIllegalState(err error) bool {
	var ie *IllegalStateError
	return errors.As(err, &ie)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
