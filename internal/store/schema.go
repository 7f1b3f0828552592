package store

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS "match" (
		match_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		game_mode  TEXT NOT NULL,
		map_name   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS match_frag (
		match_id    INTEGER NOT NULL REFERENCES "match"(match_id),
		frag_time   TEXT NOT NULL,
		killer_name TEXT NOT NULL,
		victim_name TEXT,
		weapon_code TEXT
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS "match" (
		match_id   SERIAL PRIMARY KEY,
		start_time TIMESTAMPTZ NOT NULL,
		end_time   TIMESTAMPTZ NOT NULL,
		game_mode  TEXT NOT NULL,
		map_name   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS match_frag (
		match_id    INTEGER NOT NULL REFERENCES "match"(match_id),
		frag_time   TIMESTAMPTZ NOT NULL,
		killer_name TEXT NOT NULL,
		victim_name TEXT,
		weapon_code TEXT
	)`,
}
