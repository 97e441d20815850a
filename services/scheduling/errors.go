package scheduling

import "fmt"

// SchedulingError tags an expected scheduling failure with a stable code.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSlotTaken reports a booking attempt on an occupied slot.
	ErrSlotTaken = &SchedulingError{Code: "conflict", Message: "slot already booked"}
	// ErrNotFound reports a cancellation or lookup on a slot with no booking.
	ErrNotFound = &SchedulingError{Code: "notFound", Message: "no appointment for slot"}
	// ErrStoreUnavailable reports a storage or connectivity failure.
	ErrStoreUnavailable = &SchedulingError{Code: "storeUnavailable", Message: "appointment store unavailable"}
	// ErrUnparseableInput reports free-text date/time intake that matched no
	// accepted format. Intake fails closed on it rather than guessing.
	ErrUnparseableInput = &SchedulingError{Code: "unparseableInput", Message: "could not understand date/time input"}
	// ErrInvalidIdentity reports a malformed slot identity. Internal only:
	// the public decode path substitutes the default identity instead.
	ErrInvalidIdentity = &SchedulingError{Code: "invalidIdentity", Message: "malformed slot identity"}
)
