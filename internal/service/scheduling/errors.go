package scheduling

import "fmt"

// ValidationError marks malformed input: empty identifiers, inverted
// intervals, out-of-bounds slot durations.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// ConflictError marks a placement the staff member cannot take: the interval
// overlaps an existing SCHEDULED appointment, or no availability window
// covers it. The caller may retry with a different slot.
type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string {
	return e.msg
}

func conflictError(msg string) error {
	return &ConflictError{msg: msg}
}

// PolicyError marks an operation rejected by a business rule: the cutoff
// window was breached, or the transition is not allowed from the
// appointment's current status.
type PolicyError struct {
	msg string
}

func (e *PolicyError) Error() string {
	return e.msg
}

func policyErrorf(format string, args ...any) error {
	return &PolicyError{msg: fmt.Sprintf(format, args...)}
}

// PermissionError marks a caller without the required relationship or role
// to the appointment.
type PermissionError struct{}

func (e *PermissionError) Error() string {
	return "not enough permissions"
}

// BlockedError rejects a booking from a client blocked for repeated
// no-shows. Only an administrative unblock clears it.
type BlockedError struct {
	NoShowCount int
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("blocked from booking after %d no-shows", e.NoShowCount)
}
