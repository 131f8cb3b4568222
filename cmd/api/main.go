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

	"bookreviews/internal/cache"
	"bookreviews/internal/config"
	"bookreviews/internal/logging"
	"bookreviews/internal/store"
)

func main() {
	if err := run(); err != nil {
		logging.Error(context.Background(), "server exited", logging.Err(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFmt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(db) }()

	c, closeCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer func() { _ = closeCache() }()
	logging.Info(ctx, "cache ready", slog.String("backend", cfg.Cache.Backend), slog.Duration("ttl", cfg.Cache.TTL))

	a := newApp(cfg, db, c)
	defer a.Close()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(ctx, "starting server", slog.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
