package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "thesishub-backend/internal/api/http"
	"thesishub-backend/internal/config"
	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/logger"
	"thesishub-backend/internal/notify"
	"thesishub-backend/internal/repository/postgres"
	"thesishub-backend/internal/security"
	"thesishub-backend/internal/service"
	"thesishub-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ThesisHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Access lifecycle configuration", "expiration_days", cfg.Access.ExpirationDays, "warn_window_days", cfg.Access.WarnWindowDays)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
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
	logger.Info("Database migrations applied")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Object Storage
	var objectStore storage.ObjectStore
	var mockStore *storage.MockStore
	if cfg.Storage.Type == "" || cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStore, err = storage.NewMockStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		objectStore = mockStore
	} else {
		logger.Info("Using MinIO storage", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
		minioStore, err := storage.NewMinioStore(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
		if err != nil {
			logger.Error("Failed to initialize MinIO storage", "error", err)
			log.Fatalf("Failed to initialize MinIO storage: %v", err)
		}
		objectStore = minioStore
	}

	// Initialize Notification Fan-out
	bus := notify.NewBus()
	bus.Subscribe(func(note domain.Notification) {
		logger.Debug("Notification emitted", "user_id", note.UserID, "type", note.Type, "title", note.Title)
	})
	publishers := notify.Multi{bus}
	if cfg.Redis.Addr != "" {
		logger.Info("Publishing notifications to Redis", "addr", cfg.Redis.Addr, "channel", cfg.Redis.Channel)
		redisPub := notify.NewRedisPublisher(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.Channel)
		defer redisPub.Close()
		publishers = append(publishers, redisPub)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)

	// Initialize Services
	noteSvc := service.NewNotificationService(store.NotificationRepository, publishers)
	accessSvc := service.NewAccessService(
		store.AccessRequestRepository,
		store.UserRepository,
		store.ThesisRepository,
		noteSvc,
		emailSvc,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	thesisSvc := service.NewThesisService(store.ThesisRepository, objectStore, accessSvc, cfg.Access.ExpirationDays)
	adminSvc := service.NewAdminService(store.AccessRequestRepository, store.UserRepository, store.ThesisRepository)
	shelfSvc := service.NewBookshelfService(store.BookshelfRepository, store.ThesisRepository)

	// Initialize HTTP API
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)
	handlers := httpapi.Handlers{
		Auth:          httpapi.NewAuthHandler(authSvc),
		Access:        httpapi.NewAccessHandler(accessSvc),
		Thesis:        httpapi.NewThesisHandler(thesisSvc),
		Notifications: httpapi.NewNotificationHandler(noteSvc),
		Admin:         httpapi.NewAdminHandler(adminSvc, accessSvc, cfg.Access.ExpirationDays, cfg.Access.WarnWindowDays),
		Bookshelves:   httpapi.NewBookshelfHandler(shelfSvc),
	}
	if mockStore != nil {
		handlers.Files = httpapi.NewFilesHandler(mockStore)
	}
	router := httpapi.NewRouter(handlers, authMiddleware)

	// Start HTTP server
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}
