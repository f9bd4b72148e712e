package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wbrent/config"
	"wbrent/di"
	"wbrent/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	worker.Run(ctx)

	log.Info().Msg("Worker stopping, waiting for pending emails")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	worker.Shutdown(shutdownCtx)
	log.Info().Msg("Worker stopped")
}
