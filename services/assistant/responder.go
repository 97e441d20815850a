package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sapdoc/services/scheduling"
)

// Responder turns a classified patient message into scheduling calls and a
// conversational reply. It holds no state of its own; every answer comes
// from the scheduling service.
type Responder struct {
	Scheduler scheduling.Service
	// NowFn overrides the clock in tests. Nil means time.Now.
	NowFn func() time.Time
}

func (r *Responder) now() time.Time {
	if r.NowFn != nil {
		return r.NowFn()
	}
	return time.Now()
}

// Respond answers one patient message.
func (r *Responder) Respond(ctx context.Context, message string) string {
	switch Classify(message) {
	case IntentAvailability:
		return r.respondAvailability(ctx)
	case IntentBooking:
		return bookingGuidance
	case IntentCancellation:
		return cancellationGuidance
	case IntentOfficeInfo:
		return r.respondOfficeInfo()
	case IntentListAppointments:
		return r.respondAppointments(ctx)
	case IntentHelp:
		return helpText
	default:
		return unknownText
	}
}

func (r *Responder) respondAvailability(ctx context.Context) string {
	today := r.now().Format("2006-01-02")
	slots := r.Scheduler.GetAvailableSlots(ctx, today, "")
	if len(slots) == 0 {
		return "I'm sorry, but I don't see any available appointments in the next two weeks. " +
			"You could check next month's availability or contact our office for urgent appointments."
	}

	var b strings.Builder
	nearest := slots[0]
	fmt.Fprintf(&b, "The nearest available appointment is %s at %s.\n",
		nearest.FormattedDate, scheduling.FormatTime12h(nearest.Time))
	if len(slots) > 1 {
		b.WriteString("Other available times:\n")
		for _, slot := range slots[1:] {
			fmt.Fprintf(&b, "- %s at %s\n", slot.FormattedDate, scheduling.FormatTime12h(slot.Time))
		}
	}
	fmt.Fprintf(&b, "To book one of these, tell me which time works and give me your name, for example: \"Book %s at %s for John Smith\".",
		nearest.FormattedDate, scheduling.FormatTime12h(nearest.Time))
	return b.String()
}

func (r *Responder) respondOfficeInfo() string {
	info := r.Scheduler.OfficeInfo()
	var b strings.Builder
	fmt.Fprintf(&b, "Our office is open %s to %s on %s.\n",
		info.OfficeHours.Start, info.OfficeHours.End, strings.Join(info.OfficeHours.Days, ", "))
	fmt.Fprintf(&b, "Appointments can be booked %s. Cancellation policy: %s.\n",
		info.AdvanceBooking, info.CancellationPolicy)
	b.WriteString("Available time slots:\n")
	for _, slot := range info.TimeSlots {
		fmt.Fprintf(&b, "- %s\n", scheduling.FormatTime12h(slot))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Responder) respondAppointments(ctx context.Context) string {
	appts, err := r.Scheduler.ListAllAppointments(ctx)
	if err != nil {
		return "I couldn't load the appointment list right now. Please try again or contact our office."
	}
	if len(appts) == 0 {
		return "There are currently no booked appointments in the system. " +
			"Would you like to book one or check available times?"
	}

	var b strings.Builder
	b.WriteString("Current appointments:\n")
	shown := appts
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, appt := range shown {
		fmt.Fprintf(&b, "- %s at %s: %s\n",
			appt.FormattedDate, scheduling.FormatTime12h(appt.Time), appt.PatientName)
	}
	if len(appts) > 5 {
		fmt.Fprintf(&b, "...and %d more appointments.", len(appts)-5)
	}
	return strings.TrimRight(b.String(), "\n")
}

const bookingGuidance = `I'd be glad to help you book an appointment. I need your full name and a preferred date and time, ` +
	`for example: "Book appointment for Sarah Johnson on June 18, 2025 at 10:30 AM". ` +
	`Not sure about availability? Ask me for the nearest available appointment first.`

const cancellationGuidance = `To cancel an appointment, give me its slot ID (shown on your confirmation, ` +
	`for example 2025-06-18-10:30) or visit the View Appointments page to cancel it directly. ` +
	`We prefer 24 hours notice when possible.`

const helpText = `Hello! I'm the scheduling assistant. I can find available appointments ` +
	`("What's the nearest available appointment?"), help you book ("Book appointment for John Smith ` +
	`on June 18, 2025 at 10:30 AM"), show booked appointments, and share office hours and policies.`

const unknownText = `I didn't quite understand that. I can help you find available appointments, ` +
	`book or cancel an appointment, show booked appointments, or share office information. ` +
	`Try asking "What's the nearest available appointment?".`
