// Package cli provides common CLI initialization utilities: environment
// loading, logger setup and opening a ledger session on the configured
// backend.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"habits/internal/backend"
	"habits/internal/config"
	"habits/internal/core"
	"habits/internal/ledger"
	applog "habits/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// LoadAndValidateConfig loads configuration from the environment and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the application logger from cfg, writing to stderr,
// and installs it as the slog default.
func SetupLogger(cfg *config.Config) *applog.Logger {
	lc := applog.DefaultConfig()
	if level, err := applog.ParseLevel(cfg.LogLevel); err == nil {
		lc.Level = level
	}
	lc.Format = cfg.LogFormat
	lc.Output = os.Stderr

	logger := applog.New(lc)
	applog.SetDefault(logger)
	return logger
}

// Session is one run of the tracker: a loaded, rolled-over ledger on an
// open backend.
type Session struct {
	Ledger *ledger.Ledger
	Config *config.Config
	Logger *applog.Logger

	backend *backend.BackendResult
}

// OpenSession creates the configured backend, loads the ledger anchored at
// now and performs the day rollover.
func OpenSession(ctx context.Context, cfg *config.Config, logger *applog.Logger, now time.Time) (*Session, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}

	result, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, err
	}

	l := ledger.New(result.Store, core.NewCalendar(now), ledger.WithLogger(logger))
	if err := l.Load(ctx); err != nil {
		result.Close()
		return nil, fmt.Errorf("load habits: %w", err)
	}
	if err := l.RolloverDay(ctx); err != nil {
		result.Close()
		return nil, fmt.Errorf("roll over day: %w", err)
	}

	logger.WithComponent(applog.ComponentCLI).DebugContext(ctx, "Session opened",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, cfg.DataBackend,
		applog.FieldDate, l.Calendar().Today())

	return &Session{Ledger: l, Config: cfg, Logger: logger, backend: result}, nil
}

// Close releases the backend.
func (s *Session) Close() error {
	return s.backend.Close()
}
