package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"gymdash/internal/config"
	"gymdash/internal/db"
	"gymdash/internal/email"
	"gymdash/internal/jobs"
	"gymdash/internal/logger"
	"gymdash/internal/seed"
	"gymdash/internal/server"
	"gymdash/internal/storage"
)

// @title GymDash API
// @version 1.0
// @description Admin dashboard API for gym members, memberships, payments, PT, classes and check-ins.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.Debug)
	logger.Info("Starting GymDash", "storage", cfg.StorageDriver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snap, redisClient, database := openStorage(ctx, cfg)
	if database != nil {
		defer database.Close()
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	dataset, err := seed.Load(cfg.SeedFile)
	if err != nil {
		logger.Fatalf("Failed to load seed data: %v", err)
	}

	stores, gate, err := server.LoadStores(ctx, snap, dataset, cfg.PasswordLength)
	if err != nil {
		logger.Fatalf("Failed to load stores: %v", err)
	}
	logger.Info("Stores loaded")

	var scheduler *jobs.Scheduler
	if redisClient != nil {
		emailService := email.New(redisClient, email.Config{
			From:     cfg.EmailFrom,
			FromName: cfg.EmailFromName,
			SMTPHost: cfg.SMTPHost,
			SMTPPort: cfg.SMTPPort,
			SMTPUser: cfg.SMTPUser,
			SMTPPass: cfg.SMTPPass,
		})
		go emailService.Start(ctx)

		scheduler = jobs.NewScheduler(cfg.ReminderCron, stores.Memberships, stores.Users, stores.Packages, emailService)
		if err := scheduler.Start(); err != nil {
			logger.Fatalf("Failed to start reminder scheduler: %v", err)
		}
	} else {
		logger.Info("Mail queue unavailable, expiry reminders disabled")
	}

	srv := server.New(cfg, stores, gate, scheduler)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
	cancel()

	logger.Info("Server stopped")
}

// openStorage picks the snapshot backend. The redis client, when one can be
// reached, also carries the mail queue.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Snapshotter, *redis.Client, *sqlx.DB) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return storage.NewMemoryStore(), nil, nil

	case config.DriverPostgres:
		logger.Info("Connecting to database...")
		database, err := db.Connect(cfg.DatabaseURL, db.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		})
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.RunMigrations(database, "migrations"); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")

		client, err := storage.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			logger.WithError(err).Error("Redis unreachable")
			client = nil
		}
		return storage.NewPostgresStore(database), client, database

	default:
		client, err := storage.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("Failed to connect to redis: %v", err)
		}
		return storage.NewRedisStore(client), client, nil
	}
}
