package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fraglog/fraglog-go/internal/config"
	"github.com/fraglog/fraglog-go/pkg/fraglog"
)

var (
	// parse flags
	parseLogDir       string
	parseIncludeKinds []string
	parseExcludeKinds []string
	parseSince        string
	parseUntil        string
	parseFormat       string
	parseOutput       string
	parseSession      bool
	parseTimezone     int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|dir]",
	Short: "Parse a session log and output frags",
	Long: `Parse a Far Cry session log and output its frags in document order.

With no argument the newest *.txt log is taken from --log-dir,
$FRAGLOG_LOGDIR, ./logs or the working directory. A directory argument
resolves to its newest log.

Examples:
  # Parse the newest log in ./logs
  fraglog parse

  # Parse a specific file as CSV
  fraglog parse logs/log04.txt --format csv --output log04.csv

  # Human-readable output
  fraglog parse logs/log04.txt --format pretty

  # Only suicides
  fraglog parse logs/log04.txt --include-kinds suicide

  # Logs without a g_timezone declaration
  fraglog parse old.txt --timezone 2

  # Pipe to jq for filtering
  fraglog parse --session | jq 'select(.type == "frag" and .weapon_code == "Machete")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseLogDir, "log-dir", "d", "",
		"Log directory searched when no file is given")
	parseCmd.Flags().StringSliceVar(&parseIncludeKinds, "include-kinds", nil,
		"Frag kinds to include (comma-separated: kill,suicide)")
	parseCmd.Flags().StringSliceVar(&parseExcludeKinds, "exclude-kinds", nil,
		"Frag kinds to exclude (comma-separated)")
	parseCmd.Flags().StringVar(&parseSince, "since", "",
		"Only frags at/after timestamp (RFC3339 format, e.g., 2018-11-09T12:30:00+07:00)")
	parseCmd.Flags().StringVar(&parseUntil, "until", "",
		"Only frags before timestamp (RFC3339 format)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", FormatJSONL,
		"Output format: "+strings.Join(FormatNames(), ", "))
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "",
		"Write output to file instead of stdout")
	parseCmd.Flags().BoolVar(&parseSession, "session", false,
		"Emit a session record before the frags (jsonl only)")
	parseCmd.Flags().IntVar(&parseTimezone, "timezone", 0,
		"UTC offset in hours for logs without g_timezone")

	registerKindCompletion(parseCmd, "include-kinds")
	registerKindCompletion(parseCmd, "exclude-kinds")
	_ = parseCmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions(FormatNames(), cobra.ShellCompDirectiveNoFileComp))
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Validate format
	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format = parseFormat
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format %q: must be one of: %s", format, strings.Join(FormatNames(), ", "))
	}
	if parseSession && format != FormatJSONL {
		return fmt.Errorf("--session requires --format %s", FormatJSONL)
	}

	// Normalize and validate frag kinds
	includes, err := NormalizeKinds(parseIncludeKinds)
	if err != nil {
		return err
	}
	excludes, err := NormalizeKinds(parseExcludeKinds)
	if err != nil {
		return err
	}
	if err := RejectOverlap(includes, excludes); err != nil {
		return err
	}

	// Parse time range
	sinceTime, untilTime, err := parseTimeRange(parseSince, parseUntil)
	if err != nil {
		return err
	}

	path, err := fraglog.ResolveLogFile(firstArg(args), flagOrConfig(cmd, "log-dir", parseLogDir, cfg.LogDir))
	if err != nil {
		return err
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build parse options
	opts := []fraglog.ParseOption{fraglog.WithLogger(newLogger())}
	opts = append(opts, timezoneOptions(cmd, parseTimezone, cfg)...)
	if len(includes) > 0 {
		opts = append(opts, fraglog.WithIncludeKinds(includes...))
	}
	if len(excludes) > 0 {
		opts = append(opts, fraglog.WithExcludeKinds(excludes...))
	}
	if !sinceTime.IsZero() || !untilTime.IsZero() {
		opts = append(opts, fraglog.WithTimeRange(sinceTime, untilTime))
	}

	m, err := fraglog.ParseFile(ctx, path, opts...)
	if err != nil {
		// Ctrl+C: exit silently
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil
		}
		if m == nil {
			return fmt.Errorf("parse error: %w", err)
		}
		// Frags are still usable without the session window.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	out, err := openOutput(parseOutput, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := OutputMatch(format, m, parseSession, out); err != nil {
		out.Close()
		return fmt.Errorf("output error: %w", err)
	}
	return out.Close()
}

// parseTimeRange parses since and until strings into time.Time values.
func parseTimeRange(since, until string) (time.Time, time.Time, error) {
	var sinceTime, untilTime time.Time
	var err error

	if since != "" {
		sinceTime, err = time.Parse(time.RFC3339, since)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --since format: %w (expected RFC3339, e.g., 2018-11-09T12:30:00+07:00)", err)
		}
	}

	if until != "" {
		untilTime, err = time.Parse(time.RFC3339, until)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --until format: %w (expected RFC3339, e.g., 2018-11-09T12:30:00+07:00)", err)
		}
	}

	// Validate that since is before until
	if !sinceTime.IsZero() && !untilTime.IsZero() && sinceTime.After(untilTime) {
		return time.Time{}, time.Time{}, fmt.Errorf("--since must be before --until")
	}

	return sinceTime, untilTime, nil
}

// timezoneOptions returns the fallback offset from --timezone, or from the
// config when the flag was not set.
func timezoneOptions(cmd *cobra.Command, flagValue int, cfg config.Config) []fraglog.ParseOption {
	if cmd.Flags().Changed("timezone") {
		return []fraglog.ParseOption{fraglog.WithTimezone(flagValue)}
	}
	if cfg.Timezone != nil {
		return []fraglog.ParseOption{fraglog.WithTimezone(*cfg.Timezone)}
	}
	return nil
}

// flagOrConfig prefers an explicitly set flag over the config value.
func flagOrConfig(cmd *cobra.Command, name, flagValue, configValue string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
