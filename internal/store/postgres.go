package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fraglog/fraglog-go/pkg/fraglog/frag"
)

const (
	pgInsertMatch = `INSERT INTO "match" (start_time, end_time, game_mode, map_name) VALUES ($1, $2, $3, $4) RETURNING match_id`
	pgInsertFrag  = `INSERT INTO match_frag (match_id, frag_time, killer_name, victim_name, weapon_code) VALUES ($1, $2, $3, $4, $5)`
)

// PostgresStore writes matches over a single PostgreSQL connection.
type PostgresStore struct {
	conn *pgx.Conn
}

// OpenPostgres connects using a libpq-style connection string or URL.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connecting: %w", err)
	}
	return &PostgresStore{conn: conn}, nil
}

// EnsureSchema creates the match tables if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range postgresSchema {
		if _, err := s.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: creating schema: %w", err)
		}
	}
	return nil
}

// BeginSession starts a transaction and inserts the match row.
func (s *PostgresStore) BeginSession(ctx context.Context, w frag.Window) (SessionTx, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, pgInsertMatch, w.Start, w.End, w.Mode, w.Map).Scan(&id); err != nil {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return &postgresTx{tx: tx, id: id}, nil
}

// Close closes the connection.
func (s *PostgresStore) Close() error {
	return s.conn.Close(context.Background())
}

type postgresTx struct {
	tx pgx.Tx
	id int64
}

func (t *postgresTx) MatchID() int64 { return t.id }

func (t *postgresTx) InsertFrag(ctx context.Context, f frag.Frag) error {
	if _, err := t.tx.Exec(ctx, pgInsertFrag, t.id, f.Time, f.Killer, nullable(f.Victim), nullable(f.Weapon)); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}

func (t *postgresTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *postgresTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
