// Package main is the entry point for the K2K World travel API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/jayxvj/k2k-world/internal/auth"
	"github.com/jayxvj/k2k-world/internal/config"
	"github.com/jayxvj/k2k-world/internal/handler"
	"github.com/jayxvj/k2k-world/internal/mailer"
	"github.com/jayxvj/k2k-world/internal/middleware"
	"github.com/jayxvj/k2k-world/internal/repo"
	"github.com/jayxvj/k2k-world/internal/service"
)

// maxBodySize caps request bodies at 1 MiB; the largest legitimate payload
// is a destination document with a full itinerary, far below this.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// One JSON line per event; log aggregators parse this directly.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool.New only parses the connection string; connections are opened
	// lazily on first use.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// An unreachable database is logged but does not stop the server: the
	// submission forms keep working through the notification channel, and
	// store errors surface per request.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Warn("database unreachable; store operations will fail until it recovers", "error", err)
	} else {
		slog.Info("database connection established")
	}

	// --- Mailer -----------------------------------------------------------
	mail, err := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword, cfg.NotifyEmails)
	if err != nil {
		slog.Error("failed to initialize mailer", "error", err)
		os.Exit(1)
	}
	if !cfg.MailConfigured() {
		slog.Warn("email transport not configured; notifications will be reported as failed")
	}

	// --- Auth -------------------------------------------------------------
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	if !cfg.AuthConfigured() {
		slog.Warn("admin identity not configured; sign-in is disabled")
	}

	// --- Services ---------------------------------------------------------
	destinations := repo.NewDestinationRepo(pool)
	customRequests := repo.NewCustomRequestRepo(pool)
	contacts := repo.NewContactRepo(pool)

	srv := handler.NewServer(
		service.NewCatalogService(destinations, cfg.SeedSecret, logger),
		service.NewSubmissionService(customRequests, contacts, mail, logger),
		service.NewLeadService(customRequests, contacts),
		service.NewBookingService(mail, logger),
		service.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, tokens, cfg.AuthConfigured()),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body cap. Recoverer converts panics into HTTP 500 so nothing
	// propagates uncaught past the request boundary.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	r.Mount("/", srv.Routes(middleware.RequireAdmin(tokens)))

	// --- HTTP Server ------------------------------------------------------
	// Timeouts are explicit so a slow client cannot hold a connection open
	// indefinitely.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // SMTP sends happen inside the request
		IdleTimeout:  60 * time.Second,
	}

	// On SIGINT/SIGTERM, in-flight requests get 15 seconds to finish before
	// the listener is torn down.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
