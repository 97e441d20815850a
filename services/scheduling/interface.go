package scheduling

import (
	"context"

	"sapdoc/models"
)

// Service exposes the scheduling engine operations. Each method maps to one
// externally callable tool; the conversational layer owns turning free text
// into one of these calls.
type Service interface {
	// GetAvailableSlots returns at most MaxAvailableSlots free slots between
	// startDate and endDate (endDate empty = startDate plus the calendar
	// horizon). Downstream failures yield an empty list, never an error;
	// callers must treat empty as "no slots found".
	GetAvailableSlots(ctx context.Context, startDate, endDate string) []models.AvailableSlot
	// FindNearestAvailableSlot returns the first free slot at or after
	// startDate (empty = today), or nil when none exists.
	FindNearestAvailableSlot(ctx context.Context, startDate string) *models.AvailableSlot
	// BookSlot books the slot named by slotIDText for patientName. The slot
	// ID is normalized first; malformed IDs fall back to the default slot
	// identity rather than being rejected.
	BookSlot(ctx context.Context, slotIDText, patientName, description string) BookingOutcome
	// BookSlotNatural books from a free-text date and time pair.
	BookSlotNatural(ctx context.Context, dateText, timeText, patientName, description string) BookingOutcome
	// BookSlotSmart books from a single "DATE at TIME" style string.
	BookSlotSmart(ctx context.Context, dateTimeText, patientName, description string) BookingOutcome
	// CancelSlot cancels the appointment occupying the slot, if any.
	CancelSlot(ctx context.Context, slotIDText string) CancellationOutcome
	// ListAppointments returns the appointments for one date, ordered by time.
	ListAppointments(ctx context.Context, date string) ([]AppointmentView, error)
	// ListAllAppointments returns every appointment ordered by (date, time).
	ListAllAppointments(ctx context.Context) ([]AppointmentView, error)
	// OfficeInfo returns the static calendar projection. No ledger access.
	OfficeInfo() OfficeInfo
}

// ReminderScheduler queues a patient reminder for a booked appointment.
type ReminderScheduler interface {
	Schedule(ctx context.Context, appt models.Appointment) error
}
