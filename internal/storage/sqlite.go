// Package storage provides SQLite-based persistence for run history and
// the player profile (wallet, stashed consumables, unlocked launch
// power). Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hopper/internal/sim"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished run.
type RunEntry struct {
	ID              int64
	Score           int
	Currency        int
	Distance        float64
	ConsumablesUsed int
	LongestStreak   int
	CreatedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			currency INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			consumables_used INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS stash (
			consumable TEXT PRIMARY KEY,
			count INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted
// record.
func (s *Store) SaveRun(summary sim.RunSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (score, currency, distance, consumables_used, longest_streak)
		 VALUES (?, ?, ?, ?, ?)`,
		summary.Score, summary.Currency, summary.Distance,
		summary.ConsumablesUsed, summary.LongestStreak,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, currency, distance, consumables_used, longest_streak, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Currency, &e.Distance,
			&e.ConsumablesUsed, &e.LongestStreak, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Profile keys. power_tenths stores the launch power multiplier in
// tenths to keep the profile table integer-only.
const (
	profileKeyPowerTenths = "power_tenths"
	profileKeyWallet      = "wallet"
)

// profileValue returns the stored value for key, or fallback when the
// key is absent.
func (s *Store) profileValue(key string, fallback int) (int, error) {
	var v int
	err := s.db.QueryRow("SELECT value FROM profile WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query profile %s: %w", key, err)
	}
	return v, nil
}

func (s *Store) setProfileValue(key string, v int) error {
	_, err := s.db.Exec(
		`INSERT INTO profile (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, v,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set profile %s: %w", key, err)
	}
	return nil
}

// Wallet returns the banked currency total.
func (s *Store) Wallet() (int, error) {
	return s.profileValue(profileKeyWallet, 0)
}

// Deposit adds earned currency to the wallet.
func (s *Store) Deposit(amount int) error {
	current, err := s.Wallet()
	if err != nil {
		return err
	}
	return s.setProfileValue(profileKeyWallet, current+amount)
}

// PowerMultiplier returns the unlocked launch power multiplier.
func (s *Store) PowerMultiplier() (float64, error) {
	tenths, err := s.profileValue(profileKeyPowerTenths, 10)
	if err != nil {
		return 1.0, err
	}
	return float64(tenths) / 10.0, nil
}

// SetPowerMultiplier stores the unlocked launch power multiplier.
func (s *Store) SetPowerMultiplier(mult float64) error {
	return s.setProfileValue(profileKeyPowerTenths, int(math.Round(mult*10)))
}

// Stash returns the stored consumable counts.
func (s *Store) Stash() (map[sim.ConsumableKind]int, error) {
	rows, err := s.db.Query("SELECT consumable, count FROM stash")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stash: %w", err)
	}
	defer rows.Close()

	stash := map[sim.ConsumableKind]int{}
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stash row: %w", err)
		}
		if kind, ok := consumableByName(name); ok && count > 0 {
			stash[kind] = count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stash, nil
}

// SetStash replaces the stored count for one consumable.
func (s *Store) SetStash(kind sim.ConsumableKind, count int) error {
	_, err := s.db.Exec(
		`INSERT INTO stash (consumable, count) VALUES (?, ?)
		 ON CONFLICT(consumable) DO UPDATE SET count = excluded.count`,
		kind.String(), count,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set stash: %w", err)
	}
	return nil
}

func consumableByName(name string) (sim.ConsumableKind, bool) {
	for _, k := range []sim.ConsumableKind{
		sim.ConsumableLifebuoy,
		sim.ConsumableSnakeCharm,
		sim.ConsumableBugSpray,
		sim.ConsumableMachete,
	} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
