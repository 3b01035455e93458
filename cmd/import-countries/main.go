// Command import-countries loads the full REST Countries list into the
// country store, skipping codes that are already present.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abstract-333/name-origin-api/internal/app"
	"github.com/abstract-333/name-origin-api/internal/mediator"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/service"
	"github.com/abstract-333/name-origin-api/internal/platform/config"
	"github.com/abstract-333/name-origin-api/internal/platform/logger"
	"github.com/abstract-333/name-origin-api/pkg/requestcontext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = requestcontext.WithTime(ctx, time.Now().UTC())

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()

	start := time.Now()
	res, err := mediator.Send[service.SyncResult](ctx, a.Mediator, service.SyncCountriesCommand{})
	if err != nil {
		return fmt.Errorf("import countries: %w", err)
	}
	log.InfoContext(ctx, "countries imported",
		"fetched", res.Fetched,
		"added", res.Added,
		"skipped", res.Skipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
