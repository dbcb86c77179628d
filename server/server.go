package server

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noteserv/pkg/api"
	"noteserv/pkg/auth"
	"noteserv/pkg/config"
	"noteserv/pkg/health"
	"noteserv/pkg/logger"
	"noteserv/pkg/storage"
)

// Main parses flags, wires the service together, and runs the HTTP server
// until interrupted
func Main() {
	addr := flag.String("addr", ":8080", "Server address")
	configPath := flag.String("config", "", "Config file path (optional)")
	dbPath := flag.String("db", "", "Database path (sqlite file or mysql DSN)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "text", "Log format: text or json")
	flag.Parse()

	// Initialize structured logger
	logger.Init(logger.LogLevel(*logLevel), *logFormat)
	log := logger.Get()

	log.InfoWith("server starting", "version", "1.0.0")

	// Load configuration (from file or defaults)
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.ErrorWithErr("failed to load configuration", err)
		os.Exit(1)
	}

	// Override config with command-line flags if provided
	if *addr != ":8080" {
		cfg.Address = *addr
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	log.InfoWith("configuration loaded", "config", cfg.String())

	srv, cleanup, err := buildServer(cfg)
	if err != nil {
		log.ErrorWithErr("failed to initialize server", err)
		os.Exit(1)
	}
	defer cleanup()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	// Start server in a goroutine
	errorChan := make(chan error, 1)
	go func() {
		log.InfoWith("server listening", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		log.InfoWith("received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.ErrorWithErr("error during shutdown", err)
		}
		log.InfoWith("server stopped")

	case err := <-errorChan:
		log.ErrorWithErr("server encountered fatal error", err)
		os.Exit(1)
	}
}

// buildServer assembles the storage, authentication core, and router into an
// http.Server. The returned cleanup closes the store.
func buildServer(cfg *config.ServerConfig) (*http.Server, func(), error) {
	hasher := auth.NewPasswordHasher()

	store, err := storage.NewStore(cfg.Database, hasher)
	if err != nil {
		return nil, nil, err
	}

	sessions := auth.NewSessionManager(cfg.SessionTTL())
	guard := auth.NewGuard(sessions, store)

	monitor := health.NewMonitor()
	monitor.SetComponentStatus("storage", health.StatusHealthy, cfg.Database.Type)
	monitor.SetComponentStatus("sessions", health.StatusHealthy, "in-memory")

	cookieMaxAge := int(cfg.SessionTTL().Seconds())
	handler := api.NewHandler(store, sessions, monitor, cookieMaxAge, cfg.Session.CookieSecure)
	router := api.NewRouter(handler, guard)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Get().WarnWith("failed to close store", "error", err)
		}
	}

	return srv, cleanup, nil
}
