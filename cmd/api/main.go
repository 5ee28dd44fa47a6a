package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "paytrack/internal/application/service"

	// Domain Layer
	"paytrack/internal/domain/notification"

	// Infrastructure Layer
	"paytrack/internal/infrastructure/config"
	"paytrack/internal/infrastructure/database/sqlite"
	lineClient "paytrack/internal/infrastructure/line"
	"paytrack/internal/infrastructure/platform"

	// Interfaces Layer
	"paytrack/internal/interfaces/api/handler"
	"paytrack/internal/interfaces/api/router"

	// Packages
	appLogger "paytrack/internal/pkg/logger"
)

func gracefulShutdown(apiServer *http.Server, cronPlatform *platform.CronPlatform, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the notification platform first so no deliveries race the shutdown
	log.Println("Stopping notification platform...")
	cronPlatform.Stop()

	// Close database connection
	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// Shutdown HTTP server
	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := appLogger.New(cfg.LogLevel, cfg.Environment)
	appLog.Info("Logger initialized.")

	// --- Infrastructure ---
	db := sqlite.NewDB(cfg.DBPath)
	userRepo := sqlite.NewUserRepository(db)
	reminderRepo := sqlite.NewReminderRepository(db)
	assetRepo := sqlite.NewAssetRepository(db)
	transactionRepo := sqlite.NewTransactionRepository(db)
	goalRepo := sqlite.NewGoalRepository(db)
	appLog.Info("Database and repositories initialized.")

	line := lineClient.NewClient(cfg.LineChannelSecret, cfg.LineChannelToken, appLog)
	cronPlatform := platform.New(cfg.PlatformOS, cfg.DefaultRecipient, line, appLog)

	// --- Application Services ---
	// Initialize services (order matters for dependency injection workaround)
	notificationSvc := appService.NewNotificationService(cronPlatform, notification.HandlerBehavior{
		ShowAlert: true,
		PlaySound: true,
		SetBadge:  true,
	}, appLog)
	userSvc := appService.NewUserService(userRepo, reminderRepo, notificationSvc, cfg.DefaultNotifyTime, appLog)
	reminderSvc := appService.NewReminderService(reminderRepo, userRepo, notificationSvc, cfg.DefaultNotifyTime, appLog)
	assetSvc := appService.NewAssetService(assetRepo, appLog)
	transactionSvc := appService.NewTransactionService(transactionRepo, appLog)
	goalSvc := appService.NewGoalService(goalRepo, appLog)
	reportSvc := appService.NewReportService(transactionRepo, reminderRepo, assetRepo, appLog)
	// The platform resolves delivery targets through the reminder service at
	// fire time; wired here to close the construction cycle.
	cronPlatform.SetRecipientResolver(reminderSvc.RecipientFor)
	appLog.Info("Application services initialized.")

	// --- Permission check & schedule sync ---
	if granted := notificationSvc.RequestNotificationPermissions(context.Background()); !granted {
		appLog.Warn("Notification delivery unavailable; reminders will be stored but not pushed")
	}
	appLog.Info("Synchronizing reminder schedules...")
	if err := reminderSvc.SyncSchedules(context.Background()); err != nil {
		// Log the error but continue starting the server
		appLog.Error("Failed to synchronize schedules on startup", err)
	} else {
		appLog.Info("Reminder schedules synchronized.")
	}

	// --- API Handlers ---
	userHandler := handler.NewUserHandler(userSvc, appLog)
	reminderHandler := handler.NewReminderHandler(reminderSvc, appLog)
	assetHandler := handler.NewAssetHandler(assetSvc, appLog)
	transactionHandler := handler.NewTransactionHandler(transactionSvc, appLog)
	goalHandler := handler.NewGoalHandler(goalSvc, appLog)
	reportHandler := handler.NewReportHandler(reportSvc, appLog)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		UserHandler:         userHandler,
		ReminderHandler:     reminderHandler,
		AssetHandler:        assetHandler,
		TransactionHandler:  transactionHandler,
		GoalHandler:         goalHandler,
		ReportHandler:       reportHandler,
		NotificationHandler: notificationHandler,
		Logger:              appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, cronPlatform, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
