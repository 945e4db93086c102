package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/globallang/gla-backend/internal/config"
	"github.com/globallang/gla-backend/internal/logger"
	"github.com/globallang/gla-backend/internal/payments"
	"github.com/globallang/gla-backend/internal/server"
	"github.com/globallang/gla-backend/internal/storage/postgres"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("gla-backend", "info")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New("gla-backend", cfg.LogLevel)

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}
	defer store.Close()

	stripeClient := payments.NewStripeClient(cfg.PaymentSecret)

	srv := server.New(cfg, log, store, stripeClient)

	go func() {
		log.Info().Str("addr", cfg.HTTPAddress()).Msg("marketplace backend listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
