package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/bootstrap"
	"github.com/osse101/DragonKeeper_Go/internal/config"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		// No config means no log settings; report the failure with the defaults
		logger.InitLogger(logger.DefaultConfig())
		return err
	}
	bootstrap.SetupLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment check failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	if err := bootstrap.SyncSpeciesCatalog(ctx, storage.Store, cfg.SpeciesCatalog); err != nil {
		storage.Close()
		return err
	}

	mailer, mailQueue := bootstrap.NewMailer(cfg)
	svcs := bootstrap.InitializeServices(cfg, storage.Store, mailer)
	handlers, err := bootstrap.InitializeHandlers(svcs)
	if err != nil {
		storage.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		Ready:          storage.HealthChecker(),
	}, handlers, svcs.Tokens)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
				MailQueue: mailQueue,
				Storage:   storage,
			})
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		MailQueue: mailQueue,
		Storage:   storage,
	})
	return nil
}
