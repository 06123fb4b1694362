package progress

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrInsufficientCoins is returned when a purchase exceeds the balance.
var ErrInsufficientCoins = errors.New("insufficient coins")

// Store persists progression state: coin balance, upgrade purchases,
// achievements, run history and per-level high scores.
type Store struct {
	*sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save store: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS save (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			coins INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO save (id, coins) VALUES (1, 0);
		CREATE TABLE IF NOT EXISTS upgrades (
			effect TEXT PRIMARY KEY,
			level INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			completed INTEGER NOT NULL,
			distance DOUBLE NOT NULL,
			coins INTEGER NOT NULL,
			duration DOUBLE NOT NULL,
			top_speed DOUBLE NOT NULL,
			flips INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS high_scores (
			level INTEGER PRIMARY KEY,
			distance DOUBLE NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init save schema: %w", err)
	}

	return &Store{db}, nil
}

func (s *Store) Balance() (int, error) {
	var coins int
	err := s.QueryRow("SELECT coins FROM save WHERE id = 1").Scan(&coins)
	return coins, err
}

func (s *Store) AddCoins(n int) error {
	_, err := s.Exec("UPDATE save SET coins = coins + ? WHERE id = 1", n)
	return err
}

// SpendCoins deducts n coins, failing without change if the balance is
// too low.
func (s *Store) SpendCoins(n int) error {
	res, err := s.Exec("UPDATE save SET coins = coins - ? WHERE id = 1 AND coins >= ?", n, n)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientCoins
	}
	return nil
}

func (s *Store) UpgradeLevels() (map[string]int, error) {
	rows, err := s.Query("SELECT effect, level FROM upgrades")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var effect string
		var level int
		if err := rows.Scan(&effect, &level); err != nil {
			return nil, err
		}
		out[effect] = level
	}
	return out, rows.Err()
}

func (s *Store) IncrementUpgrade(effect string) error {
	_, err := s.Exec(`
		INSERT INTO upgrades (effect, level) VALUES (?, 1)
		ON CONFLICT(effect) DO UPDATE SET level = level + 1
	`, effect)
	return err
}

// UnlockAchievement records an unlock and reports whether it was new.
func (s *Store) UnlockAchievement(id string) (bool, error) {
	res, err := s.Exec("INSERT OR IGNORE INTO achievements (id) VALUES (?)", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Store) UnlockedAchievements() ([]string, error) {
	rows, err := s.Query("SELECT id FROM achievements ORDER BY unlocked_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// RunRecord is one row of run history.
type RunRecord struct {
	Level     int
	LevelName string
	Completed bool
	Distance  float64
	Coins     int
	Duration  float64
	TopSpeed  float64
	Flips     int
}

func (s *Store) RecordRun(r RunRecord) error {
	_, err := s.Exec(`
		INSERT INTO runs (id, level, level_name, completed, distance, coins, duration, top_speed, flips)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), r.Level, r.LevelName, r.Completed, r.Distance, r.Coins, r.Duration, r.TopSpeed, r.Flips)
	return err
}

func (s *Store) RunCount() (int, error) {
	var n int
	err := s.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n)
	return n, err
}

// RecordHighScore keeps the best distance per level.
func (s *Store) RecordHighScore(level int, distance float64) error {
	_, err := s.Exec(`
		INSERT INTO high_scores (level, distance) VALUES (?, ?)
		ON CONFLICT(level) DO UPDATE SET distance = MAX(distance, excluded.distance)
	`, level, distance)
	return err
}

// HighScore returns the best distance for a level, zero if none recorded.
func (s *Store) HighScore(level int) (float64, error) {
	var d float64
	err := s.QueryRow("SELECT distance FROM high_scores WHERE level = ?", level).Scan(&d)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return d, err
}
