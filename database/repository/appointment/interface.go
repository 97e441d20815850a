package appointmentRepo

import (
	"context"
	"errors"

	"sapdoc/models"
)

// ErrDuplicateSlot is returned by Insert when an appointment already
// occupies the slot. The check and the write happen as one atomic store
// operation; callers must never pre-check and then insert.
var ErrDuplicateSlot = errors.New("appointment slot already booked")

// ErrNotFound is returned when no appointment exists for a slot.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository is the ledger of current bookings, keyed by
// canonical slot ID.
type AppointmentRepository interface {
	EnsureIndexes(ctx context.Context) error
	Exists(ctx context.Context, slotID string) (bool, error)
	// Insert stores a new appointment, failing with ErrDuplicateSlot if the
	// slot is already taken.
	Insert(ctx context.Context, appt *models.Appointment) error
	// Remove deletes the appointment for slotID and returns its snapshot,
	// failing with ErrNotFound if none exists.
	Remove(ctx context.Context, slotID string) (*models.Appointment, error)
	GetBySlotID(ctx context.Context, slotID string) (*models.Appointment, error)
	// ListByDate returns the appointments for one date ordered by time of day.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// ListByDateRange returns appointments with startDate <= date <= endDate
	// ordered by (date, time).
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]models.Appointment, error)
	// ListAll returns every appointment ordered by (date, time).
	ListAll(ctx context.Context) ([]models.Appointment, error)
}
