package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DefaultLimit is the number of scores TopScores returns for a zero limit.
const DefaultLimit = 10

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string // mode: "jezzball" or "jezzball_timed"
	Player    string
	Score     int
	Level     int // level reached
	CreatedAt time.Time
}

// GameStats summarizes every recorded game of a mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

const scoreColumns = "id, game_id, player, score, level, created_at"

// SaveScore records a finished game and returns its ID.
func (s *Store) SaveScore(gameID, player string, score, level int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score, level) VALUES (?, ?, ?, ?)",
		gameID, player, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit scores of a mode. Ties go to the higher
// level, then to the older entry.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.Query(
		"SELECT "+scoreColumns+` FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, level DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var created any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Level, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score of a mode, 0 when there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	return s.best("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID)
}

// PersonalBest returns a player's best score in a mode, 0 when there is none.
func (s *Store) PersonalBest(gameID, player string) (int, error) {
	return s.best("SELECT MAX(score) FROM scores WHERE game_id = ? AND player = ?", gameID, player)
}

func (s *Store) best(query string, args ...any) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearScores deletes every score of a mode.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats aggregates the scores of a mode. A mode without scores
// returns zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestLevel, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		"SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1",
		gameID,
	).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = parseTime(last)
	}
	return stats, nil
}

// parseTime accepts the time.Time or text form SQLite returns for
// CURRENT_TIMESTAMP.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
