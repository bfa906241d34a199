// Package main is the entry point for the skillsheet pipeline CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sawakaze/skillsheet/internal/config"
)

var (
	cfgPath   string
	flagStore string
	flagData  string
	flagOut   string
	flagLevel string
	// flagWorkers < 0 means "not set on the command line".
	flagWorkers int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "skillsheet",
	Short: "Hero skill description exporter",
	Long: `skillsheet turns the game's raw hero, ability, and localization exports
into reviewable bilingual skill descriptions, one row per hero.

The pipeline runs in two phases: "resolve" expands every hero's catalog
references into a self-contained tree and stores it; "render" matches the
stored trees against the localization templates and writes the reports.
"run" does both.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "skillsheet.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "tree store: file or redis (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "game data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "output directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", -1, "resolution worker count (overrides config)")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(runCmd)
}

// loadConfig builds the effective configuration: file, then environment,
// then any flags set on this invocation.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if flagStore != "" {
		loaded.Store = flagStore
	}
	if flagData != "" {
		loaded.Data.Dir = flagData
	}
	if flagOut != "" {
		loaded.OutputDir = flagOut
	}
	if flagLevel != "" {
		loaded.LogLevel = flagLevel
	}
	if flagWorkers >= 0 {
		loaded.Workers = flagWorkers
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(loaded.LogLevel),
	})))

	cfg = loaded
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
