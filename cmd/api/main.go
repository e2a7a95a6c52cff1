package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financeapp/internal/auth"
	"financeapp/internal/config"
	"financeapp/internal/database"
	"financeapp/internal/events"
	"financeapp/internal/handlers"
	"financeapp/internal/logger"
	"financeapp/internal/router"
	"financeapp/internal/services"
)

// @title           Finance API
// @version         1.0
// @description     Income and expense tracking with role based access, monthly reports and CSV/PDF exports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session_token
// @description Signed session token issued after GitHub sign-in.

const sessionPurgeInterval = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	// Create database manager
	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	publisher, err := events.New(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return fmt.Errorf("failed to connect to message broker: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorw("failed to close event publisher", "error", err)
		}
	}()

	// Initialize services
	db := dbManager.DB()
	sessionService := services.NewSessionService(db)
	movementService := services.NewMovementService(db, publisher)
	userService := services.NewUserService(db, cfg.AdminEmails)
	reportService := services.NewReportService(movementService)
	auditService := services.NewAuditService(db)

	sessions := auth.NewManager(
		sessionService,
		auth.NewTokenSigner(cfg.SessionSecret),
		auth.NewSessionCache(cfg.SessionCacheSize, cfg.SessionCacheTTL),
		cfg.SessionTTL,
	)
	github := auth.NewGitHubProvider(cfg.GitHubClientID, cfg.GitHubClientSecret, cfg.GitHubRedirectURL)
	if !github.Configured() {
		log.Warn("GitHub OAuth is not configured; sign-in is disabled")
	}

	engine := router.New(router.Deps{
		Sessions:  sessions,
		Provider:  github,
		Movements: movementService,
		Users:     userService,
		Reports:   reportService,
		Audit:     auditService,
		Auth: handlers.AuthConfig{
			FrontendURL:  cfg.FrontendURL,
			CookieSecure: cfg.CookieSecure,
			SessionTTL:   cfg.SessionTTL,
		},
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go purgeExpiredSessions(ctx, sessionService)

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("Starting finance API server", "port", cfg.Port, "db_driver", cfg.DBDriver)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("Server stopped gracefully")
	return nil
}

// purgeExpiredSessions deletes expired session rows until ctx is done.
func purgeExpiredSessions(ctx context.Context, sessions services.SessionServicer) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := sessions.DeleteExpiredSessions(ctx, now)
			if err != nil {
				logger.Get().Errorw("failed to purge expired sessions", "error", err)
				continue
			}
			if n > 0 {
				logger.Get().Infow("purged expired sessions", "count", n)
			}
		}
	}
}
