package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wbrent/config"
	"wbrent/di"
	"wbrent/internal/jobs"
	"wbrent/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	runOnce := flag.String("run-once", "", "Run a job once and exit ('pickup-reminders' or 'all-daily')")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	runner := di.InitializeJobRunner()

	if *runOnce != "" {
		log.Info().Str("job", *runOnce).Msg("Running job once")

		if err := runner.Run(*runOnce); err != nil {
			log.Error().Err(err).Msg("Cannot run job")
			fmt.Fprintf(os.Stderr, "Available jobs:\n  - %s\n  - %s\n", jobs.JobPickupReminders, jobs.JobAllDaily)
			flushTraces(runner)
			os.Exit(1)
		}

		log.Info().Str("job", *runOnce).Msg("Job execution completed")
		flushTraces(runner)

		return
	}

	scheduler, err := jobs.NewScheduler(runner)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	scheduler.Start()
	log.Info().Msg("Cronjob scheduler is running. Press Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
	flushTraces(runner)
}

func flushTraces(runner *jobs.Runner) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := runner.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
