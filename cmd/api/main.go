package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/analyzer"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/config"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/logger"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/seo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if cfg.AllowPrivateNetworks {
		log.Warn("private network guard disabled")
	}

	fetcher := seo.NewHTTPClient(seo.ClientOptions{
		Timeout:              cfg.FetchTimeout,
		AllowPrivateNetworks: cfg.AllowPrivateNetworks,
	})
	engine := seo.NewEngine(fetcher)
	svc := analyzer.NewService(engine, log)
	transport := analyzer.NewTransport(svc, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           analyzer.NewRouter(transport, log, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
