package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "sapdoc/database/repository/appointment"
	"sapdoc/models"
	"sapdoc/utils"

	"go.uber.org/zap"
)

// DefaultSchedulingService is the production scheduling engine.
type DefaultSchedulingService struct {
	Repo     appointmentRepo.AppointmentRepository
	Calendar OfficeCalendar
	// Reminders is optional; when set, a reminder is queued on every
	// successful booking.
	Reminders ReminderScheduler
	// NowFn overrides the clock in tests. Nil means time.Now.
	NowFn func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.NowFn != nil {
		return s.NowFn()
	}
	return time.Now()
}

// GetAvailableSlots computes free slots for the range. Any downstream
// failure is logged and yields an empty list, never an error.
func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, startDate, endDate string) []models.AvailableSlot {
	logger := utils.GetLogger()

	start, err := time.Parse(slotDateLayout, startDate)
	if err != nil {
		logger.Warn("GetAvailableSlots: invalid start date",
			zap.String("startDate", startDate), zap.Error(err))
		return []models.AvailableSlot{}
	}

	end := start.AddDate(0, 0, s.Calendar.HorizonDays)
	if endDate != "" {
		end, err = time.Parse(slotDateLayout, endDate)
		if err != nil {
			logger.Warn("GetAvailableSlots: invalid end date",
				zap.String("endDate", endDate), zap.Error(err))
			return []models.AvailableSlot{}
		}
	}

	appts, err := s.Repo.ListByDateRange(ctx, start.Format(slotDateLayout), end.Format(slotDateLayout))
	if err != nil {
		logger.Error("GetAvailableSlots: failed to load booked slots", zap.Error(err))
		return []models.AvailableSlot{}
	}

	booked := make(map[string]struct{}, len(appts))
	for _, appt := range appts {
		booked[EncodeSlotID(appt.Date, appt.Time)] = struct{}{}
	}

	return GenerateAvailableSlots(s.Calendar, start, end, booked, s.now())
}

// FindNearestAvailableSlot returns the first free slot at or after
// startDate, or nil when the window holds none.
func (s *DefaultSchedulingService) FindNearestAvailableSlot(ctx context.Context, startDate string) *models.AvailableSlot {
	if startDate == "" {
		startDate = s.now().Format(slotDateLayout)
	}
	slots := s.GetAvailableSlots(ctx, startDate, "")
	if len(slots) == 0 {
		return nil
	}
	return &slots[0]
}

// BookSlot books a slot under the uniqueness invariant: the ledger insert is
// atomic, so of two concurrent requests for one slot exactly one confirms.
func (s *DefaultSchedulingService) BookSlot(ctx context.Context, slotIDText, patientName, description string) BookingOutcome {
	logger := utils.GetLogger()

	patientName = strings.TrimSpace(patientName)
	if patientName == "" {
		logger.Warn("BookSlot: missing patient name", zap.String("slotID", slotIDText))
		return BookingOutcome{
			Status:  OutcomeInvalid,
			Message: "A patient name is required to book an appointment.",
		}
	}

	now := s.now()
	slotID := NormalizeSlotID(slotIDText, now)
	date, timeOfDay := DecodeSlotID(slotID, now)

	appt := &models.Appointment{
		SlotID:      slotID,
		Date:        date,
		Time:        timeOfDay,
		PatientName: patientName,
		Description: description,
	}

	if err := s.Repo.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			logger.Info("BookSlot: slot already booked", zap.String("slotID", slotID))
			return BookingOutcome{
				Status:  OutcomeConflict,
				SlotID:  slotID,
				Date:    date,
				Time:    timeOfDay,
				Time12h: FormatTime12h(timeOfDay),
				Message: fmt.Sprintf(
					"Sorry, the appointment slot for %s at %s is already booked. Please choose a different time slot.",
					date, FormatTime12h(timeOfDay)),
			}
		}
		logger.Error("BookSlot: failed to book slot",
			zap.String("slotID", slotID), zap.String("patient", patientName), zap.Error(err))
		return BookingOutcome{
			Status:  OutcomeSystemError,
			SlotID:  slotID,
			Message: "Unable to book the appointment due to a system error. Please try again or contact our office directly.",
		}
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, *appt); err != nil {
			// The booking stands; a missed reminder is not worth failing it.
			logger.Warn("BookSlot: failed to queue reminder",
				zap.String("slotID", slotID), zap.Error(err))
		}
	}

	formattedDate, dayName := formatDateLong(date)
	return BookingOutcome{
		Status:        OutcomeConfirmed,
		SlotID:        slotID,
		PatientName:   patientName,
		Date:          date,
		FormattedDate: formattedDate,
		DayName:       dayName,
		Time:          timeOfDay,
		Time12h:       FormatTime12h(timeOfDay),
		Message: fmt.Sprintf(
			"Appointment successfully booked for %s on %s (%s) at %s. Appointment ID: %s. Please arrive 15 minutes early.",
			patientName, formattedDate, dayName, FormatTime12h(timeOfDay), slotID),
	}
}

// BookSlotNatural books from a free-text date and time pair. Intake fails
// closed: input matching no accepted format is reported back, not guessed.
func (s *DefaultSchedulingService) BookSlotNatural(ctx context.Context, dateText, timeText, patientName, description string) BookingOutcome {
	slotID, err := ParseNaturalDateTime(dateText, timeText)
	if err != nil {
		utils.GetLogger().Info("BookSlotNatural: unparseable input",
			zap.String("date", dateText), zap.String("time", timeText), zap.Error(err))
		return BookingOutcome{
			Status: OutcomeUnparseable,
			Message: fmt.Sprintf(
				"I couldn't understand the date %q and time %q. Please use formats like 'June 18, 2025' for the date and '10:30 AM' for the time.",
				dateText, timeText),
		}
	}
	return s.BookSlot(ctx, slotID, patientName, description)
}

// BookSlotSmart books from a single "DATE at TIME" style string.
func (s *DefaultSchedulingService) BookSlotSmart(ctx context.Context, dateTimeText, patientName, description string) BookingOutcome {
	slotID, err := ExtractDateTime(dateTimeText, s.now())
	if err != nil {
		utils.GetLogger().Info("BookSlotSmart: unparseable input",
			zap.String("input", dateTimeText), zap.Error(err))
		return BookingOutcome{
			Status: OutcomeUnparseable,
			Message: fmt.Sprintf(
				"I couldn't parse the date and time from %q. Please use formats like 'June 18, 2025 at 10:30 AM'.",
				dateTimeText),
		}
	}
	return s.BookSlot(ctx, slotID, patientName, description)
}

// CancelSlot removes the appointment occupying a slot and reports whose
// booking was cancelled. Legacy-form slot IDs are collapsed to canonical
// before lookup; text that is not a recognized slot ID is looked up as
// given and reported not found rather than silently remapped.
func (s *DefaultSchedulingService) CancelSlot(ctx context.Context, slotIDText string) CancellationOutcome {
	logger := utils.GetLogger()

	slotID := slotIDText
	if date, timeOfDay, err := decodeSlotIDStrict(slotIDText); err == nil {
		slotID = EncodeSlotID(date, timeOfDay)
	}

	appt, err := s.Repo.Remove(ctx, slotID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			logger.Info("CancelSlot: no appointment for slot", zap.String("slotID", slotID))
			return CancellationOutcome{
				Status:  OutcomeNotFound,
				SlotID:  slotID,
				Message: "No appointment found with that slot ID.",
			}
		}
		logger.Error("CancelSlot: failed to cancel appointment",
			zap.String("slotID", slotID), zap.Error(err))
		return CancellationOutcome{
			Status:  OutcomeSystemError,
			SlotID:  slotID,
			Message: "Unable to cancel the appointment due to a system error. Please try again or contact our office directly.",
		}
	}

	return CancellationOutcome{
		Status:      OutcomeCancelled,
		SlotID:      slotID,
		PatientName: appt.PatientName,
		Date:        appt.Date,
		Time12h:     FormatTime12h(appt.Time),
		Message: fmt.Sprintf("Appointment for %s on %s at %s has been cancelled.",
			appt.PatientName, appt.Date, FormatTime12h(appt.Time)),
	}
}

// ListAppointments returns the appointments for one date decorated for
// display, ordered by time of day.
func (s *DefaultSchedulingService) ListAppointments(ctx context.Context, date string) ([]AppointmentView, error) {
	appts, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		utils.GetLogger().Error("ListAppointments: failed to list appointments",
			zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("listing appointments for %s: %w", date, ErrStoreUnavailable)
	}
	return decorate(appts), nil
}

// ListAllAppointments returns every appointment decorated for display,
// ordered by (date, time).
func (s *DefaultSchedulingService) ListAllAppointments(ctx context.Context) ([]AppointmentView, error) {
	appts, err := s.Repo.ListAll(ctx)
	if err != nil {
		utils.GetLogger().Error("ListAllAppointments: failed to list appointments", zap.Error(err))
		return nil, fmt.Errorf("listing appointments: %w", ErrStoreUnavailable)
	}
	return decorate(appts), nil
}

// OfficeInfo projects the injected calendar configuration.
func (s *DefaultSchedulingService) OfficeInfo() OfficeInfo {
	days := s.Calendar.DayNames()
	return OfficeInfo{
		OfficeHours: OfficeHours{
			Start: s.Calendar.OpensAt,
			End:   s.Calendar.ClosesAt,
			Days:  days,
		},
		AvailableDays:      days,
		TimeSlots:          s.Calendar.SlotTimes,
		AdvanceBooking:     fmt.Sprintf("up to %d weeks in advance", s.Calendar.DisplayedHorizonWeeks),
		CancellationPolicy: s.Calendar.CancellationPolicy,
	}
}

func decorate(appts []models.Appointment) []AppointmentView {
	views := make([]AppointmentView, 0, len(appts))
	for _, appt := range appts {
		formattedDate, dayName := formatDateLong(appt.Date)
		views = append(views, AppointmentView{
			Appointment:   appt,
			FormattedDate: formattedDate,
			DayName:       dayName,
		})
	}
	return views
}
