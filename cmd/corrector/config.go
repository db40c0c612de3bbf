package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hazyhaar/corrector-es/pkg/cache"
	"github.com/hazyhaar/corrector-es/pkg/corrector"
	"gopkg.in/yaml.v3"
)

type config struct {
	Addr          string            `yaml:"addr"`
	Lexicon       string            `yaml:"lexicon"`
	HistoryDB     string            `yaml:"history_db"`
	InputEncoding string            `yaml:"input_encoding"`
	LogLevel      string            `yaml:"log_level"` // empty: info for servers, warn otherwise
	Cutoff        float64           `yaml:"cutoff"`
	Cache         string            `yaml:"cache"` // "none", "memory", "redis"
	CacheEntries  int               `yaml:"cache_entries"`
	Redis         cache.RedisConfig `yaml:"redis"`
}

func defaultConfig() config {
	return config{
		Addr:         ":8420",
		Cutoff:       corrector.DefaultCutoff,
		Cache:        "none",
		CacheEntries: 1024,
		Redis: cache.RedisConfig{
			Addr: "localhost:6379",
			TTL:  24 * time.Hour,
		},
	}
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string, logger *slog.Logger) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Cache {
	case "", "none", "memory", "redis":
	default:
		return cfg, fmt.Errorf("config %s: unknown cache backend %q", path, cfg.Cache)
	}
	return cfg, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)}))
}
