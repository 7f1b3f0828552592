package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fraglog/fraglog-go/internal/config"
	"github.com/fraglog/fraglog-go/internal/store"
	"github.com/fraglog/fraglog-go/pkg/fraglog"
)

var (
	// store flags
	storeLogDir     string
	storeDriver     string
	storeDSN        string
	storeInitSchema bool
	storeTimezone   int
)

var storeCmd = &cobra.Command{
	Use:   "store [file|dir]",
	Short: "Parse a session log and save the match to a database",
	Long: `Parse a Far Cry session log and insert the match and all of its frags
in a single transaction. The generated match id is printed on success.

The log is resolved the same way as for 'parse'. Unlike 'parse', a log
whose session start or end cannot be found is rejected.

Examples:
  # SQLite file, creating the tables on first use
  fraglog store logs/log04.txt --dsn farcry.db --init-schema

  # PostgreSQL
  fraglog store logs/log04.txt --driver postgres --dsn "postgres://farcry@localhost/farcry"

  # Connection settings from the environment
  FRAGLOG_DRIVER=postgres FRAGLOG_DSN=postgres://localhost/farcry fraglog store`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStore,
}

func init() {
	storeCmd.Flags().StringVarP(&storeLogDir, "log-dir", "d", "",
		"Log directory searched when no file is given")
	storeCmd.Flags().StringVar(&storeDriver, "driver", store.DriverSQLite,
		"Database driver: "+strings.Join(store.Drivers(), ", "))
	storeCmd.Flags().StringVar(&storeDSN, "dsn", "",
		"Database file (sqlite) or connection string (postgres)")
	storeCmd.Flags().BoolVar(&storeInitSchema, "init-schema", false,
		"Create the match tables if they do not exist")
	storeCmd.Flags().IntVar(&storeTimezone, "timezone", 0,
		"UTC offset in hours for logs without g_timezone")

	_ = storeCmd.RegisterFlagCompletionFunc("driver",
		cobra.FixedCompletions(store.Drivers(), cobra.ShellCompDirectiveNoFileComp))
}

func runStore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	driver := flagOrConfig(cmd, "driver", storeDriver, cfg.Store.Driver)
	dsn := flagOrConfig(cmd, "dsn", storeDSN, cfg.Store.DSN)
	if dsn == "" {
		return fmt.Errorf("no database given: set --dsn or %s", config.EnvDSN)
	}

	path, err := fraglog.ResolveLogFile(firstArg(args), flagOrConfig(cmd, "log-dir", storeLogDir, cfg.LogDir))
	if err != nil {
		return err
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := newLogger()
	opts := []fraglog.ParseOption{fraglog.WithLogger(logger)}
	opts = append(opts, timezoneOptions(cmd, storeTimezone, cfg)...)

	m, err := fraglog.ParseFile(ctx, path, opts...)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	st, err := store.Open(ctx, driver, dsn)
	if err != nil {
		return err
	}
	defer st.Close()

	if storeInitSchema {
		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	id, err := store.SaveMatch(ctx, st, m.Window, m.Frags)
	if err != nil {
		return fmt.Errorf("store error: %w", err)
	}
	logger.Debug("match stored", "match_id", id, "driver", driver, "frags", len(m.Frags))

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
