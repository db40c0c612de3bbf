package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hazyhaar/corrector-es/pkg/api"
	"github.com/hazyhaar/corrector-es/pkg/cache"
)

// setup loads the config for a long-running subcommand and builds the
// service with its back-ends.
func setup(cfgPath string) (*app, *api.Service, func()) {
	bootstrap := newLogger("info")
	cfg, err := loadConfig(cfgPath, bootstrap)
	if err != nil {
		bootstrap.Error("config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	info := a.corr.Lexicon().Info()
	logger.Info("lexicon loaded", "id", info.ID, "words", info.Words, "abbreviations", info.Abbreviations,
		"special_cases", info.SpecialCases, "fingerprint", info.Fingerprint)

	opts := []api.ServiceOption{api.WithLogger(logger)}
	if a.history != nil {
		opts = append(opts, api.WithHistory(a.history))
	}
	c := openCache(cfg, logger)
	if c != nil {
		opts = append(opts, api.WithCache(c))
	}
	cleanup := func() {
		if c != nil {
			c.Close()
		}
		a.Close()
	}
	return a, api.NewService(a.corr, opts...), cleanup
}

// openCache returns nil when caching is off. An unreachable Redis is
// logged and the service runs uncached.
func openCache(cfg config, logger *slog.Logger) cache.Cache {
	switch cfg.Cache {
	case "memory":
		return cache.NewMemory(cfg.CacheEntries, cfg.Redis.TTL)
	case "redis":
		r := cache.NewRedis(cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := r.Ping(ctx); err != nil {
			logger.Warn("redis cache disabled", "addr", cfg.Redis.Addr, "error", err)
			r.Close()
			return nil
		}
		logger.Info("redis cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
		return r
	default:
		return nil
	}
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "path to config file")
	addr := fs.String("addr", "", "listen address (overrides config)")
	fs.Parse(args)

	a, svc, cleanup := setup(*cfgPath)
	defer cleanup()
	if *addr != "" {
		a.cfg.Addr = *addr
	}
	logger := a.logger

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           api.NewRouter(svc, api.MakeEndpoints(svc, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("corrector listening", "addr", a.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errc:
		logger.Error("server error", "error", err)
		cleanup()
		os.Exit(1)
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}
