package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sapdoc/config"
	"sapdoc/models"

	"github.com/hibiken/asynq"
)

// TypeAppointmentReminder is the asynq task type for patient reminders.
const TypeAppointmentReminder = "appointment:reminder"

// reminderLeadTime is how far ahead of the appointment the reminder fires.
const reminderLeadTime = 24 * time.Hour

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	SlotID      string `json:"slot_id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ReminderScheduler queues appointment reminders on the asynq queue backed
// by Redis.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler constructs a scheduler against the configured
// reminder queue Redis DB.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// Schedule queues a reminder 24 hours before the appointment, or
// immediately when the appointment is nearer than that. The worker
// re-checks the ledger at delivery time, so a later cancellation simply
// makes the task a no-op.
func (s *ReminderScheduler) Schedule(ctx context.Context, appt models.Appointment) error {
	payload, err := json.Marshal(ReminderPayload{
		SlotID:      appt.SlotID,
		PatientName: appt.PatientName,
		Date:        appt.Date,
		Time:        appt.Time,
	})
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment time for slot %s: %w", appt.SlotID, err)
	}

	remindAt := startsAt.Add(-reminderLeadTime)
	if remindAt.Before(time.Now()) {
		remindAt = time.Now()
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(remindAt)); err != nil {
		return fmt.Errorf("enqueue reminder for slot %s: %w", appt.SlotID, err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
