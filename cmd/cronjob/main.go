package main

import (
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"stayhaven-backend/internal/config"
	"stayhaven-backend/internal/jobs"
	"stayhaven-backend/internal/logger"
	"stayhaven-backend/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "path to configuration file")
	runOnce := flag.String("run-once", "", "run a single job and exit (complete-past-bookings)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	log := logger.WithService("cronjob")

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	runner := jobs.NewJobRunner(db, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "complete-past-bookings":
			runner.CompletePastBookings()
		default:
			log.Error("unknown job", "job", *runOnce)
			os.Exit(1)
		}
		return
	}

	sched := scheduler.New(runner)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
