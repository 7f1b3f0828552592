// Package store persists parsed matches to SQLite or PostgreSQL.
//
// Both backends share the same two-table layout:
//
//	match(match_id, start_time, end_time, game_mode, map_name)
//	match_frag(match_id, frag_time, killer_name, victim_name, weapon_code)
//
// Suicides leave victim_name and weapon_code NULL.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// Store opens match sessions against a database.
type Store interface {
	// BeginSession starts a transaction and inserts the match row.
	BeginSession(ctx context.Context, w frag.Window) (SessionTx, error)
	// EnsureSchema creates the match tables if they do not exist.
	EnsureSchema(ctx context.Context) error
	Close() error
}

// SessionTx is an open transaction holding one inserted match.
type SessionTx interface {
	MatchID() int64
	InsertFrag(ctx context.Context, f frag.Frag) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Drivers returns the supported driver names.
func Drivers() []string {
	return []string{DriverSQLite, DriverPostgres}
}

// Open connects to the backend named by driver. For sqlite the dsn is a
// file path; for postgres it is a connection string or URL.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case DriverSQLite:
		return OpenSQLite(ctx, dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("%w: %q (valid: sqlite, postgres)", ErrUnknownDriver, driver)
	}
}

// SaveMatch stores the window and every frag in a single transaction and
// returns the generated match id. Nothing is committed if any insert fails.
func SaveMatch(ctx context.Context, s Store, w frag.Window, frags []frag.Frag) (int64, error) {
	tx, err := s.BeginSession(ctx, w)
	if err != nil {
		return 0, fmt.Errorf("inserting match: %w", err)
	}

	for i, f := range frags {
		if err := tx.InsertFrag(ctx, f); err != nil {
			err = fmt.Errorf("inserting frag %d: %w", i, err)
			return 0, rollback(ctx, tx, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing match: %w", err)
	}
	return tx.MatchID(), nil
}

func rollback(ctx context.Context, tx SessionTx, cause error) error {
	if err := tx.Rollback(ctx); err != nil {
		return errors.Join(cause, fmt.Errorf("rolling back: %w", err))
	}
	return cause
}

// nullable maps an empty column value to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
