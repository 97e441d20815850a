package scheduling

import (
	"time"

	"sapdoc/models"
)

// OutcomeStatus is the closed set of results a booking or cancellation
// request can end in.
type OutcomeStatus string

const (
	OutcomeConfirmed   OutcomeStatus = "confirmed"
	OutcomeConflict    OutcomeStatus = "conflict"
	OutcomeCancelled   OutcomeStatus = "cancelled"
	OutcomeNotFound    OutcomeStatus = "notFound"
	OutcomeSystemError OutcomeStatus = "systemError"
	OutcomeUnparseable OutcomeStatus = "unparseable"
	OutcomeInvalid     OutcomeStatus = "invalidRequest"
)

// BookingOutcome is the structured result of a booking attempt. Message is
// ready for conversational display; the remaining fields let callers build
// their own phrasing.
type BookingOutcome struct {
	Status        OutcomeStatus `json:"status"`
	Message       string        `json:"message"`
	SlotID        string        `json:"slot_id,omitempty"`
	PatientName   string        `json:"patient_name,omitempty"`
	Date          string        `json:"date,omitempty"`
	FormattedDate string        `json:"formatted_date,omitempty"`
	DayName       string        `json:"day_name,omitempty"`
	Time          string        `json:"time,omitempty"`
	Time12h       string        `json:"time_12h,omitempty"`
}

// CancellationOutcome is the structured result of a cancellation attempt.
type CancellationOutcome struct {
	Status      OutcomeStatus `json:"status"`
	Message     string        `json:"message"`
	SlotID      string        `json:"slot_id,omitempty"`
	PatientName string        `json:"patient_name,omitempty"`
	Date        string        `json:"date,omitempty"`
	Time12h     string        `json:"time_12h,omitempty"`
}

// AppointmentView decorates a stored appointment with display strings for
// list endpoints.
type AppointmentView struct {
	models.Appointment
	FormattedDate string `json:"formatted_date"`
	DayName       string `json:"day_name"`
}

// OfficeHours describes when the office is open.
type OfficeHours struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

// OfficeInfo is the static calendar projection exposed to callers.
type OfficeInfo struct {
	OfficeHours        OfficeHours `json:"office_hours"`
	AvailableDays      []string    `json:"available_days"`
	TimeSlots          []string    `json:"time_slots"`
	AdvanceBooking     string      `json:"advance_booking"`
	CancellationPolicy string      `json:"cancellation_policy"`
}

// FormatTime12h converts "HH:MM" to 12-hour display form ("2:30 PM").
// Input that does not parse is returned unchanged.
func FormatTime12h(timeOfDay string) string {
	t, err := time.Parse(slotTimeLayout, timeOfDay)
	if err != nil {
		return timeOfDay
	}
	return t.Format("3:04 PM")
}

// formatDateLong renders "YYYY-MM-DD" as a long date and weekday name for
// display. Dates that do not parse come back as-is with an empty day name.
func formatDateLong(date string) (string, string) {
	d, err := time.Parse(slotDateLayout, date)
	if err != nil {
		return date, ""
	}
	return d.Format("January 2, 2006"), d.Weekday().String()
}
