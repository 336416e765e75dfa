package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	apihttp "stayhaven-backend/internal/api/http"
	"stayhaven-backend/internal/config"
	"stayhaven-backend/internal/logger"
	"stayhaven-backend/internal/repository/postgres"
	"stayhaven-backend/internal/security"
	"stayhaven-backend/internal/service"
)

func main() {
	// Local development convenience; in deployed environments the
	// variables come from the runtime.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	log := logger.WithService("server")

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store := postgres.NewStore(db)
	tokens := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	userSvc := service.NewUserService(store.Users, store.Listings, store.Bookings)
	listingSvc := service.NewListingService(store.Listings, store.Users, userSvc)
	bookingSvc := service.NewBookingService(store.Bookings, store.Listings, store.Users, cfg.Booking.BlockPendingOverlaps)
	reviewSvc := service.NewReviewService(store.Reviews, store.Users, store.Listings)

	router := apihttp.NewRouter(apihttp.RouterConfig{
		Users:              userSvc,
		Listings:           listingSvc,
		Bookings:           bookingSvc,
		Reviews:            reviewSvc,
		Tokens:             tokens,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("http server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
