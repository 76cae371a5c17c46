package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clovehq/momtrack/internal/api"
	"github.com/clovehq/momtrack/internal/config"
	"github.com/clovehq/momtrack/internal/export"
	"github.com/clovehq/momtrack/internal/normalize"
	"github.com/clovehq/momtrack/internal/platform/logger"
	"github.com/clovehq/momtrack/internal/report"
	"github.com/clovehq/momtrack/internal/seed"
	"github.com/clovehq/momtrack/internal/services"
	"github.com/clovehq/momtrack/internal/store/sqlite"
)

func main() {
	// Optional port override for ad-hoc runs
	port := flag.Int("port", 0, "Override MOMTRACK_HTTP_PORT")
	flag.Parse()

	log := logger.New("momtrack-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *port != 0 {
		cfg.HTTPPort = *port
	}

	log.Info().
		Str("db_path", cfg.DBPath).
		Int("http_port", cfg.HTTPPort).
		Msg("Meeting tracker starting…")

	// -------- Storage layer -----------------
	slotStore, err := sqlite.NewSlotStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Storage adapter unavailable")
	}
	defer func() { _ = slotStore.Close() }()

	if err := os.MkdirAll(cfg.ExportDir, 0o700); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.ExportDir).Msg("Export directory unavailable")
	}

	// -------- Services ----------------------
	users := seed.Users()
	pipeline := normalize.New(users)
	meetingSvc := services.NewMeetingService(slotStore, pipeline, seed.Meetings(), log)
	directorySvc := services.NewDirectoryService(users, seed.Departments())

	builder := report.NewBuilder()
	builder.OrgName = cfg.OrgName
	builder.Venue = cfg.Venue
	exporter := export.New(builder, nil, cfg.ExportDir)

	// -------- Router & Server --------------
	router := api.NewRouter(meetingSvc, directorySvc, builder, exporter, slotStore)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
