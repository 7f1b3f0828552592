package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

// SQLiteTimeLayout is the text form of times stored in SQLite.
const SQLiteTimeLayout = "2006-01-02 15:04:05-07:00"

const (
	sqliteInsertMatch = `INSERT INTO "match" (start_time, end_time, game_mode, map_name) VALUES (?, ?, ?, ?)`
	sqliteInsertFrag  = `INSERT INTO match_frag (match_id, frag_time, killer_name, victim_name, weapon_code) VALUES (?, ?, ?, ?, ?)`
)

// SQLiteStore writes matches to a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite: empty database path")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}
	// A single connection keeps the foreign_keys pragma in effect for
	// every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

// EnsureSchema creates the match tables if they do not exist.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range sqliteSchema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: creating schema: %w", err)
		}
	}
	return nil
}

// BeginSession starts a transaction and inserts the match row.
func (s *SQLiteStore) BeginSession(ctx context.Context, w frag.Window) (SessionTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}

	res, err := tx.ExecContext(ctx, sqliteInsertMatch,
		w.Start.Format(SQLiteTimeLayout), w.End.Format(SQLiteTimeLayout), w.Mode, w.Map)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return &sqliteTx{tx: tx, id: id}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteTx struct {
	tx *sql.Tx
	id int64
}

func (t *sqliteTx) MatchID() int64 { return t.id }

func (t *sqliteTx) InsertFrag(ctx context.Context, f frag.Frag) error {
	_, err := t.tx.ExecContext(ctx, sqliteInsertFrag,
		t.id, f.Time.Format(SQLiteTimeLayout), f.Killer, nullable(f.Victim), nullable(f.Weapon))
	if err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

func (t *sqliteTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback(context.Context) error {
	return t.tx.Rollback()
}
