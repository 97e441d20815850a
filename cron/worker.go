package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sapdoc/config"
	appointmentRepo "sapdoc/database/repository/appointment"
	"sapdoc/services/notification"
	"sapdoc/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(repo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeAppointmentReminder, handleReminderTask(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers one queued reminder. A reminder whose booking
// no longer exists is skipped: cancellation does not chase queued tasks.
func handleReminderTask(repo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		var payload notification.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal reminder payload: %w", err)
		}

		exists, err := repo.Exists(ctx, payload.SlotID)
		if err != nil {
			return fmt.Errorf("check appointment %s: %w", payload.SlotID, err)
		}
		if !exists {
			logger.Info("ReminderWorker: appointment cancelled, skipping reminder",
				zap.String("slotID", payload.SlotID))
			return nil
		}

		logger.Info("ReminderWorker: reminder sent",
			zap.String("slotID", payload.SlotID),
			zap.String("patient", payload.PatientName),
			zap.String("date", payload.Date),
			zap.String("time", payload.Time))
		return nil
	}
}
