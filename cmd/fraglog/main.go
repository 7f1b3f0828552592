package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraglog/fraglog-go/internal/config"
)

var (
	// Version information (set by ldflags)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	verbose    bool
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fraglog",
	Short: "Far Cry session log parser",
	Long: `fraglog parses Far Cry multiplayer session logs.

It extracts every frag (kill or suicide) with an absolute timestamp, along
with the session window, game mode and map. Frags can be printed as JSON
Lines, CSV or decorated text, or stored in SQLite or PostgreSQL.

Settings are read from fraglog.yaml, a .env file and FRAGLOG_* environment
variables; command-line flags take precedence.`,
	SilenceUsage: true, // Don't show usage on error
}

func init() {
	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Config file (default: ./fraglog.yaml if present)")

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fraglog %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// loadConfig resolves file and environment settings.
func loadConfig() (config.Config, error) {
	return config.Load(config.WithFile(configPath))
}

// newLogger returns the stderr logger; debug records are shown with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
