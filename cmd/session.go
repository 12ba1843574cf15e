package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/matheuskafuri/newsforge/internal/config"
	"github.com/matheuskafuri/newsforge/internal/headline"
	"github.com/matheuskafuri/newsforge/internal/history"
	"github.com/matheuskafuri/newsforge/internal/logging"
	"github.com/spf13/cobra"
)

// session bundles everything a command needs for one run.
type session struct {
	cfg  *config.Config
	log  *slog.Logger
	gen  *headline.Generator
	hist *history.Store
}

// newSession loads config, applies flag overrides and builds the generator
// and the session history. Callers must Close it.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = flagNoColor
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.NoColor)
	slog.SetDefault(log)

	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("building word banks: %w", err)
	}

	opts := []headline.Option{headline.WithRegistry(registry), headline.WithLogger(log)}
	if cfg.Seed != 0 {
		opts = append(opts, headline.WithSeed(cfg.Seed))
	}
	gen, err := headline.New(opts...)
	if err != nil {
		return nil, err
	}

	hist, err := history.Open()
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	hist.WithLogger(log)

	log.Debug("session ready", "seed", cfg.Seed, "demo_count", cfg.GetDemoCount())
	return &session{cfg: cfg, log: log, gen: gen, hist: hist}, nil
}

func (s *session) Close() error {
	return s.hist.Close()
}
