package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"thesishub-backend/internal/config"
	"thesishub-backend/internal/jobs"
	"thesishub-backend/internal/logger"
	"thesishub-backend/internal/repository/postgres"
	"thesishub-backend/internal/scheduler"
	"thesishub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'sweep-expirations', 'sweep-expiring-soon', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ThesisHub Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply migrations
	if err := postgres.RunMigrations(context.Background(), db); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	noteService := service.NewNotificationService(store.NotificationRepository, nil)
	accessService := service.NewAccessService(
		store.AccessRequestRepository,
		store.UserRepository,
		store.ThesisRepository,
		noteService,
		emailService,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(accessService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped")
}

// runJobOnce executes a single named job for manual runs and debugging
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "sweep-expirations":
		jobRunner.SweepExpirations()
	case "sweep-expiring-soon":
		jobRunner.SweepExpiringSoon()
	case "all":
		jobRunner.RunAllSweeps()
	default:
		logger.Error("Unknown job name", "job", jobName)
		log.Fatalf("Unknown job name: %s. Valid jobs: sweep-expirations, sweep-expiring-soon, all", jobName)
	}
}
