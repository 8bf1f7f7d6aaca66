package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	notifier := di.InitializeRelay()

	interval := time.Duration(cfg.Relay.PollIntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	log.Info().Dur("interval", interval).Msg("Starting up housekeeping relay.")

	for {
		select {
		case <-done:
			log.Info().Msg("Received SIGTERM. Shutting down now.")

			return
		case <-ticker.C:
			dispatched, err := notifier.DispatchPending(context.Background())
			if err != nil {
				log.Error().Err(err).Msg("failed to dispatch pending turnover tasks")

				continue
			}

			if dispatched > 0 {
				log.Info().Int("count", dispatched).Msg("Dispatched turnover tasks.")
			}
		}
	}
}
