package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"school-security-backend/config"
	"school-security-backend/internal/api"
	"school-security-backend/internal/db"
	"school-security-backend/internal/geofence"
	"school-security-backend/internal/locations"
	"school-security-backend/internal/model"
	"school-security-backend/internal/notification"
	"school-security-backend/internal/simulate"
	"school-security-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "security-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Check for VAPID keys
	if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
		logger.Fatalf("VAPID keys must be configured. Please generate them and add them to your config file.")
	}

	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	// Build the geofence engine over the school's catalogue and zones.
	catalogue := locations.Default()
	registry := geofence.NewRegistry(geofence.DefaultZones(catalogue))
	engine := geofence.NewEngine(registry, cfg.Geofence.HistoryLimit)

	// Time windows are evaluated in the school's timezone.
	loc, err := time.LoadLocation(cfg.Geofence.Timezone)
	if err != nil {
		logger.Fatalf("invalid geofence timezone %q: %v", cfg.Geofence.Timezone, err)
	}
	engine.SetClock(func() time.Time { return time.Now().In(loc) })

	// Archive emitted events and resolution write-throughs in the background.
	archiver := store.NewArchiver(appStore)
	archiver.Start(ctx)
	engine.OnEvent(archiver.RecordEvent)
	engine.OnEventResolved(archiver.RecordResolution)

	// Deliver alerts to push subscribers through the worker pool.
	workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, appStore, &webpushOptions)
	workerPool.Start(ctx)
	engine.OnAlert(func(a model.Alert) { workerPool.Dispatch(a) })

	// Demo location feed (placeholder for real positioning hardware).
	simulator := simulate.NewService(cfg, engine, catalogue)
	go simulator.Run(ctx)

	// Initialize router
	handler := api.NewHandler(engine, catalogue, appStore, &webpushOptions)
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
