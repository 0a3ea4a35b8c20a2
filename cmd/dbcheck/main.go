package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"skilllink/config"
	"skilllink/internal/repository"
	"skilllink/pkg/db"
	"skilllink/pkg/logger"
)

// dbcheck verifies the configured database is reachable and populated.
func main() {
	cfg := config.MustLoad()

	log := logger.NewLogger(cfg.Log)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout+10*time.Second)
	defer cancel()

	session := db.NewSession(cfg.DB, log)
	if err := session.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connection failed: %v\n", err)
		fmt.Fprintln(os.Stderr, "check that PostgreSQL is running and the db settings in config/ are correct")
		log.Sync()
		os.Exit(1)
	}
	defer session.Disconnect(context.Background())

	report, err := repository.NewDiagnosticsRepository(session, log).Report(ctx)
	if err != nil {
		log.Error("Diagnostics failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "diagnostics failed: %v\n", err)
		session.Disconnect(context.Background())
		log.Sync()
		os.Exit(1)
	}

	fmt.Printf("Connected to %s:%d/%s\n", cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
	fmt.Printf("PostgreSQL version: %s\n", report.ServerVersion)
	fmt.Printf("Tables (%d):\n", len(report.Tables))
	for _, t := range report.Tables {
		fmt.Printf("  - %s\n", t)
	}
	fmt.Printf("Users: %d\n", report.UserCount)
}
