package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rdsafin/mathquiz/internal/domain/entities"
)

// HistoryRepository stores per-answer activity and finished session results
// in a local SQLite database. It backs player statistics and the leaderboard.
type HistoryRepository struct {
	conn *sql.DB
}

// NewHistoryRepository opens the database at the given path and creates
// the tables if they do not exist.
func NewHistoryRepository(path string) (*HistoryRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	if err = createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history tables: %w", err)
	}

	return &HistoryRepository{conn: db}, nil
}

// Close closes the database connection.
func (r *HistoryRepository) Close() error {
	return r.conn.Close()
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS answer_activity (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			prompt TEXT NOT NULL,
			correct BOOLEAN NOT NULL,
			answered_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS session_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			lives_remaining INTEGER NOT NULL,
			hints_used INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		)
	`)
	return err
}

// RecordAnswer stores one answered question.
func (r *HistoryRepository) RecordAnswer(
	ctx context.Context,
	player string,
	difficulty entities.Difficulty,
	prompt string,
	correct bool,
	answeredAt time.Time,
) error {
	_, err := r.conn.ExecContext(ctx,
		"INSERT INTO answer_activity (player, difficulty, prompt, correct, answered_at) VALUES (?, ?, ?, ?, ?)",
		player, string(difficulty), prompt, correct, answeredAt.Unix(),
	)
	return err
}

// SaveResult stores one finished session record.
func (r *HistoryRepository) SaveResult(ctx context.Context, res *entities.Result) error {
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO session_results
			(player, difficulty, score, total_questions, lives_remaining, hints_used, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.PlayerName, string(res.Difficulty), res.Score, res.TotalQuestions,
		res.LivesRemaining, res.HintsUsed, res.FinishedAt.Unix(),
	)
	return err
}

// PlayerStats returns the number of correct and incorrect answers a player
// has submitted across all sessions.
func (r *HistoryRepository) PlayerStats(ctx context.Context, player string) (correct int, incorrect int, err error) {
	err = r.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM answer_activity WHERE player = ? AND correct = 1",
		player,
	).Scan(&correct)
	if err != nil {
		return 0, 0, err
	}

	err = r.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM answer_activity WHERE player = ? AND correct = 0",
		player,
	).Scan(&incorrect)
	return correct, incorrect, err
}

// TopResults returns finished sessions ordered best-first: by score share,
// then by absolute score.
func (r *HistoryRepository) TopResults(ctx context.Context, limit int) ([]*entities.Result, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT player, difficulty, score, total_questions, lives_remaining, hints_used, finished_at
		FROM session_results
		WHERE total_questions > 0
		ORDER BY CAST(score AS REAL) / total_questions DESC, score DESC, finished_at ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entities.Result
	for rows.Next() {
		var (
			res        entities.Result
			difficulty string
			finishedAt int64
		)
		if err = rows.Scan(
			&res.PlayerName, &difficulty, &res.Score, &res.TotalQuestions,
			&res.LivesRemaining, &res.HintsUsed, &finishedAt,
		); err != nil {
			return nil, err
		}
		res.Difficulty = entities.Difficulty(difficulty)
		res.FinishedAt = time.Unix(finishedAt, 0)
		out = append(out, &res)
	}

	return out, rows.Err()
}
