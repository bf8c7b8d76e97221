// Package sqlite provides SQLite-based persistent storage for LandLord.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Progression snapshot, one row per user. Level, rank and title are
		// derived from experience_points and never stored.
		`CREATE TABLE IF NOT EXISTS user_progress (
			user_id             TEXT PRIMARY KEY,
			experience_points   INTEGER NOT NULL DEFAULT 0,
			gold_balance        INTEGER NOT NULL DEFAULT 0,
			shield_count        INTEGER NOT NULL DEFAULT 0,
			last_shield_lost_at INTEGER,
			heart_count         INTEGER NOT NULL DEFAULT 0,
			last_heart_lost_at  INTEGER,
			current_streak_days INTEGER NOT NULL DEFAULT 0,
			last_active_date    INTEGER,
			quests_completed    INTEGER NOT NULL DEFAULT 0,
			properties_listed   INTEGER NOT NULL DEFAULT 0,
			properties_sold     INTEGER NOT NULL DEFAULT 0,
			client_meetings     INTEGER NOT NULL DEFAULT 0,
			sales_volume        INTEGER NOT NULL DEFAULT 0,
			gold_earned         INTEGER NOT NULL DEFAULT 0,
			created_at          INTEGER NOT NULL,
			updated_at          INTEGER NOT NULL
		)`,

		// Quests
		`CREATE TABLE IF NOT EXISTS quests (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			title        TEXT NOT NULL DEFAULT '',
			description  TEXT NOT NULL DEFAULT '',
			type         TEXT NOT NULL,
			status       TEXT NOT NULL,
			date         INTEGER NOT NULL,
			gold_reward  INTEGER NOT NULL DEFAULT 0,
			xp_reward    INTEGER NOT NULL DEFAULT 0,
			is_special   BOOLEAN DEFAULT 0,
			completed_at INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quests_user_date ON quests(user_id, date)`,

		// Earned achievements; one per user per catalog entry
		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			type        TEXT NOT NULL,
			earned_date INTEGER NOT NULL,
			metadata    TEXT NOT NULL DEFAULT '{}',
			is_new      BOOLEAN DEFAULT 1,
			UNIQUE(user_id, type)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_achievements_user ON achievements(user_id, earned_date)`,

		// Annual goals and their accumulated progress
		`CREATE TABLE IF NOT EXISTS annual_goals (
			user_id            TEXT NOT NULL,
			year               INTEGER NOT NULL,
			gci_target         REAL NOT NULL DEFAULT 0,
			volume_target      REAL NOT NULL DEFAULT 0,
			transaction_target INTEGER NOT NULL DEFAULT 0,
			created_at         INTEGER NOT NULL,
			updated_at         INTEGER NOT NULL,
			PRIMARY KEY (user_id, year)
		)`,
		`CREATE TABLE IF NOT EXISTS goal_progress (
			user_id              TEXT NOT NULL,
			year                 INTEGER NOT NULL,
			current_gci          REAL NOT NULL DEFAULT 0,
			current_volume       REAL NOT NULL DEFAULT 0,
			current_transactions INTEGER NOT NULL DEFAULT 0,
			updated_at           INTEGER NOT NULL,
			PRIMARY KEY (user_id, year)
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by both *sql.DB and *sql.Tx, so the write helpers can
// run standalone or inside a transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func nullableUnix(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func unixOrZero(v sql.NullInt64) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return time.Unix(v.Int64, 0).UTC()
}
