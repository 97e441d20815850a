// File: sapdoc/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sapdoc/config"
	"sapdoc/cron"
	"sapdoc/database"
	appointmentRepo "sapdoc/database/repository/appointment"
	"sapdoc/handlers"
	"sapdoc/middleware"
	"sapdoc/routes"
	"sapdoc/services/assistant"
	"sapdoc/services/bridge"
	"sapdoc/services/notification"
	"sapdoc/services/scheduling"
	"sapdoc/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	if err := apptRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	reminderScheduler := notification.NewReminderScheduler()
	defer reminderScheduler.Close()
	cron.InitReminderWorker(apptRepo)

	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:      apptRepo,
		Calendar:  scheduling.CalendarFromConfig(config.AppConfig),
		Reminders: reminderScheduler,
	}

	responder := &assistant.Responder{Scheduler: schedulingService}

	sessionStore := bridge.NewRedisSessionStore(utils.GetSessionCacheClient())
	forwarder, err := bridge.NewForwarder(config.AppConfig.AgentURL, sessionStore)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid agent URL %q: %v", config.AppConfig.AgentURL, err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Scheduling: handlers.NewSchedulingHandler(schedulingService),
		Assistant:  handlers.NewAssistantHandler(responder),
		AgentProxy: forwarder.Handler(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.MongoClient, map[string]*redis.Client{
		"cache":    utils.GetCacheClient(),
		"sessions": utils.GetSessionCacheClient(),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
