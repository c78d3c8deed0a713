package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adstradigital/adinvoice-sub000/internal/config"
	"github.com/adstradigital/adinvoice-sub000/internal/db"
	"github.com/adstradigital/adinvoice-sub000/internal/export"
	"github.com/adstradigital/adinvoice-sub000/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.App.Dev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	dbConn, err := db.ConnectAndMigrate(cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	if *migrateOnlyFlag {
		log.Info().Msg("migrations completed")
		return
	}

	exporter := export.Select(cfg.App.Exporter, cfg.App.TemplateAssetDir)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.New(dbConn, exporter),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("exporter", cfg.App.Exporter).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped gracefully")
}
