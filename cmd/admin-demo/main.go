// Command admin-demo serves a sample admin panel mounted on a chi router.
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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-admin/pkg/admin"
	"github.com/goliatone/go-admin/pkg/config"
	"github.com/goliatone/go-admin/pkg/logging"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "configuration file (defaults to ./admin.yaml when present)")
	addr := pflag.String("addr", ":8080", "HTTP listen address")
	logLevel := pflag.String("log-level", "", "override the configured log level")
	debug := pflag.Bool("debug", false, "show internal errors on error pages")
	shutdownGrace := pflag.Duration("shutdown-grace", 5*time.Second, "time allowed for in-flight requests on shutdown")
	pflag.Parse()

	if err := run(*configPath, *addr, *logLevel, *debug, *shutdownGrace); err != nil {
		fmt.Fprintf(os.Stderr, "admin-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, addr, logLevel string, debug bool, shutdownGrace time.Duration) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if debug {
		cfg.Debug = true
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	host, err := newHost(cfg, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           host,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	logger.Infow("admin demo listening", "addr", addr, "base_url", cfg.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Infow("admin demo stopped")
	return nil
}

// newHost builds the demo admin and mounts it on a chi router that also
// answers health checks, serves time zone options and redirects / to the
// panel.
func newHost(cfg config.Config, logger logging.Logger) (http.Handler, error) {
	app, err := buildAdmin([]admin.Option{
		admin.WithConfig(cfg),
		admin.WithLogger(logger),
	})
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if app.BaseURL() != "" {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, app.BaseURL()+"/", http.StatusFound)
		})
	}
	if _, err := zones.Register(r, app.BaseURL()); err != nil {
		return nil, err
	}
	if err := app.MountTo(r); err != nil {
		return nil, err
	}
	return r, nil
}
