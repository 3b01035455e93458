package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/abstract-333/name-origin-api/internal/app"
	httpapi "github.com/abstract-333/name-origin-api/internal/http"
	"github.com/abstract-333/name-origin-api/internal/nameorigin/handler"
	"github.com/abstract-333/name-origin-api/internal/platform/config"
	"github.com/abstract-333/name-origin-api/internal/platform/httpserver"
	"github.com/abstract-333/name-origin-api/internal/platform/logger"
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

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()

	routerCfg := httpapi.Config{
		Logger:   log,
		Metrics:  a.HTTPMetrics,
		Gatherer: a.Registry,
		Handlers: []httpapi.Registrar{handler.New(a.Mediator, log)},
	}
	if a.DB != nil {
		routerCfg.Health = a.DB
	}
	srv := httpserver.New(cfg.Addr, httpapi.NewRouter(routerCfg))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, srv, cfg.ShutdownTimeout, log)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
