package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/config"
	"github.com/genesis-cli/genesis/internal/decisions"
	"github.com/genesis-cli/genesis/internal/engine"
	"github.com/genesis-cli/genesis/internal/logging"
	"github.com/genesis-cli/genesis/internal/server"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Genesis - concept development and execution mode recommendation",
	Long: `Genesis develops project concepts through collaborative storytelling,
analyzes them for development complexity, and recommends an execution mode
(lightweight, knowledge_graph, hybrid, creative) backed by rationale,
timeline estimates, and cross-project learning.`,
	Version:       server.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("genesis version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.genesis/config.toml)")
}

// loadConfig reads the configured or default config file. A missing
// file yields defaults; a broken file is an error.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger from config.
func newLogger(cfg config.Config) *slog.Logger {
	return logging.New(logging.LevelFromString(cfg.Logging.Level))
}

// buildEngine assembles the engine for CLI commands. Storage failure
// degrades to a history-free engine with a warning, mirroring the
// server composition root.
func buildEngine(cfg config.Config, logger *slog.Logger) *engine.Engine {
	analyzer := analysis.New(analysis.DefaultVocabulary())

	store, err := decisions.NewStore(cfg.ResolvedStorageRoot(), logger)
	if err != nil {
		logger.Warn("decision storage disabled", "error", err)
		store = nil
	} else if err := store.LoadAll(); err != nil {
		logger.Warn("failed to load history", "error", err)
	}

	return engine.New(analyzer, store, logger)
}
